package repositories

import (
	"github.com/cppla/aaquestions/models"
	"github.com/cppla/aaquestions/store"
)

// UserRepository reads users and the questions and replies attached to them.
type UserRepository struct {
	h *store.Handle
}

// NewUserRepository creates a new UserRepository instance.
func NewUserRepository(h *store.Handle) *UserRepository {
	return &UserRepository{h: h}
}

// FindByID returns the user with the given id, or nil when there is none.
func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	return findByID[models.User](r.h, id)
}

// FindByName returns every user with exactly this first and last name.
func (r *UserRepository) FindByName(fname, lname string) ([]models.User, error) {
	users := []models.User{}
	if err := r.h.DB().Where("fname = ? AND lname = ?", fname, lname).Order("id").Find(&users).Error; err != nil {
		return nil, store.Wrap("users.find_by_name", err)
	}
	return users, nil
}

// AuthoredQuestions returns the questions u asked.
func (r *UserRepository) AuthoredQuestions(u *models.User) ([]models.Question, error) {
	return NewQuestionRepository(r.h).FindByAuthorID(u.ID)
}

// AuthoredReplies returns every reply u wrote.
func (r *UserRepository) AuthoredReplies(u *models.User) ([]models.Reply, error) {
	return NewReplyRepository(r.h).FindByUserID(u.ID)
}

// FollowedQuestions returns the questions u follows.
func (r *UserRepository) FollowedQuestions(u *models.User) ([]models.Question, error) {
	return NewQuestionFollowRepository(r.h).FollowedQuestionsForUserID(u.ID)
}

// LikedQuestions returns the questions u liked.
func (r *UserRepository) LikedQuestions(u *models.User) ([]models.Question, error) {
	return NewQuestionLikeRepository(r.h).LikedQuestionsForUserID(u.ID)
}

// AverageKarma is the number of likes received on u's questions divided by the
// number of questions u asked, unliked questions included. It is 0 for a user
// who asked nothing.
func (r *UserRepository) AverageKarma(u *models.User) (float64, error) {
	rows, err := r.h.Execute(`
		SELECT COUNT(DISTINCT questions.id) AS num_questions,
		       COUNT(question_likes.id) AS num_likes
		FROM questions
		LEFT JOIN question_likes ON question_likes.question_id = questions.id
		WHERE questions.user_id = ?`, u.ID)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	questions := rows[0].Int64("num_questions")
	if questions == 0 {
		return 0, nil
	}
	return float64(rows[0].Int64("num_likes")) / float64(questions), nil
}
