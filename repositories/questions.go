package repositories

import (
	"github.com/cppla/aaquestions/models"
	"github.com/cppla/aaquestions/store"
)

// QuestionRepository reads questions and walks to their author, replies,
// followers and likers.
type QuestionRepository struct {
	h *store.Handle
}

// NewQuestionRepository creates a new QuestionRepository instance.
func NewQuestionRepository(h *store.Handle) *QuestionRepository {
	return &QuestionRepository{h: h}
}

// FindByID returns the question with the given id, or nil when there is none.
func (r *QuestionRepository) FindByID(id uint) (*models.Question, error) {
	return findByID[models.Question](r.h, id)
}

// FindByAuthorID returns the questions asked by the given user.
func (r *QuestionRepository) FindByAuthorID(authorID uint) ([]models.Question, error) {
	return findWhere[models.Question](r.h, "user_id", authorID)
}

// MostFollowed returns the n questions with the most followers.
func (r *QuestionRepository) MostFollowed(n int) ([]models.RankedQuestion, error) {
	return NewQuestionFollowRepository(r.h).MostFollowedQuestions(n)
}

// MostLiked returns the n questions with the most likes.
func (r *QuestionRepository) MostLiked(n int) ([]models.RankedQuestion, error) {
	return NewQuestionLikeRepository(r.h).MostLikedQuestions(n)
}

// Author returns the user who asked q, or nil if that user no longer exists.
func (r *QuestionRepository) Author(q *models.Question) (*models.User, error) {
	return findByID[models.User](r.h, q.UserID)
}

// Replies returns every reply posted under q, nested ones included.
func (r *QuestionRepository) Replies(q *models.Question) ([]models.Reply, error) {
	return NewReplyRepository(r.h).FindByQuestionID(q.ID)
}

// Followers returns one user per follow row on q.
func (r *QuestionRepository) Followers(q *models.Question) ([]models.User, error) {
	return NewQuestionFollowRepository(r.h).FollowersForQuestionID(q.ID)
}

// Likers returns each user who liked q once, however many like rows they hold.
func (r *QuestionRepository) Likers(q *models.Question) ([]models.User, error) {
	return NewQuestionLikeRepository(r.h).LikersForQuestionID(q.ID)
}

// NumLikes counts the like rows on q.
func (r *QuestionRepository) NumLikes(q *models.Question) (int64, error) {
	return NewQuestionLikeRepository(r.h).NumLikesForQuestionID(q.ID)
}
