package repositories

import (
	"errors"

	"github.com/cppla/aaquestions/models"
	"github.com/cppla/aaquestions/store"
)

// ErrNoParent is returned when the parent of a top-level reply is requested.
var ErrNoParent = errors.New("reply has no parent reply")

// ReplyRepository reads replies and walks reply threads one level at a time.
type ReplyRepository struct {
	h *store.Handle
}

// NewReplyRepository creates a new ReplyRepository instance.
func NewReplyRepository(h *store.Handle) *ReplyRepository {
	return &ReplyRepository{h: h}
}

// FindByID returns the reply with the given id, or nil when there is none.
func (r *ReplyRepository) FindByID(id uint) (*models.Reply, error) {
	return findByID[models.Reply](r.h, id)
}

// FindByUserID returns every reply written by the given user.
func (r *ReplyRepository) FindByUserID(userID uint) ([]models.Reply, error) {
	return findWhere[models.Reply](r.h, "user_id", userID)
}

// FindByQuestionID returns the replies posted under the given question.
func (r *ReplyRepository) FindByQuestionID(questionID uint) ([]models.Reply, error) {
	return findWhere[models.Reply](r.h, "question_id", questionID)
}

// FindByParentID returns the direct answers to the given reply.
func (r *ReplyRepository) FindByParentID(parentID uint) ([]models.Reply, error) {
	return findWhere[models.Reply](r.h, "replies_id", parentID)
}

// Author returns the user who wrote reply, or nil if that user no longer exists.
func (r *ReplyRepository) Author(reply *models.Reply) (*models.User, error) {
	return findByID[models.User](r.h, reply.UserID)
}

// Question returns the question reply belongs to, or nil when it is gone.
func (r *ReplyRepository) Question(reply *models.Reply) (*models.Question, error) {
	return findByID[models.Question](r.h, reply.QuestionID)
}

// ParentReply returns the reply that reply answers. It fails with ErrNoParent
// for a top-level reply and returns nil when the parent row is missing.
func (r *ReplyRepository) ParentReply(reply *models.Reply) (*models.Reply, error) {
	if reply.ParentID == nil {
		return nil, ErrNoParent
	}
	return r.FindByID(*reply.ParentID)
}

// ChildReplies returns the direct children of reply only; callers recurse to
// walk deeper.
func (r *ReplyRepository) ChildReplies(reply *models.Reply) ([]models.Reply, error) {
	return r.FindByParentID(reply.ID)
}

// Thread loads every reply of the question with a single query.
func (r *ReplyRepository) Thread(questionID uint) (*ReplyThread, error) {
	replies, err := r.FindByQuestionID(questionID)
	if err != nil {
		return nil, err
	}
	return NewReplyThread(replies), nil
}
