package repositories

import (
	"github.com/cppla/aaquestions/models"
	"github.com/cppla/aaquestions/store"
)

// QuestionFollowRepository reads the user/question follow associations.
type QuestionFollowRepository struct {
	h *store.Handle
}

// NewQuestionFollowRepository creates a new QuestionFollowRepository instance.
func NewQuestionFollowRepository(h *store.Handle) *QuestionFollowRepository {
	return &QuestionFollowRepository{h: h}
}

// FindByID returns the follow record with the given id, or nil when there is none.
func (r *QuestionFollowRepository) FindByID(id uint) (*models.QuestionFollow, error) {
	return findByID[models.QuestionFollow](r.h, id)
}

// FollowersForQuestionID returns the users following the question, one entry
// per follow record.
func (r *QuestionFollowRepository) FollowersForQuestionID(questionID uint) ([]models.User, error) {
	users := []models.User{}
	err := r.h.DB().
		Select("users.*").
		Joins("JOIN question_follows ON question_follows.user_id = users.id").
		Where("question_follows.question_id = ?", questionID).
		Order("question_follows.id").
		Find(&users).Error
	if err != nil {
		return nil, store.Wrap("question_follows.followers_for_question_id", err)
	}
	return users, nil
}

// FollowedQuestionsForUserID returns the questions the user follows.
func (r *QuestionFollowRepository) FollowedQuestionsForUserID(userID uint) ([]models.Question, error) {
	questions := []models.Question{}
	err := r.h.DB().
		Select("questions.*").
		Joins("JOIN question_follows ON question_follows.question_id = questions.id").
		Where("question_follows.user_id = ?", userID).
		Order("question_follows.id").
		Find(&questions).Error
	if err != nil {
		return nil, store.Wrap("question_follows.followed_questions_for_user_id", err)
	}
	return questions, nil
}

// MostFollowedQuestions returns up to n questions ordered by follower count,
// highest first. Ties go to the lower question id. n < 1 means 1.
func (r *QuestionFollowRepository) MostFollowedQuestions(n int) ([]models.RankedQuestion, error) {
	rows, err := r.h.Execute(`
		SELECT questions.id, questions.title, questions.body, questions.user_id,
		       COUNT(question_follows.id) AS num_follows
		FROM questions
		JOIN question_follows ON question_follows.question_id = questions.id
		GROUP BY questions.id, questions.title, questions.body, questions.user_id
		ORDER BY num_follows DESC, questions.id ASC
		LIMIT ?`, normalizeLimit(n))
	if err != nil {
		return nil, err
	}
	ranked := make([]models.RankedQuestion, 0, len(rows))
	for _, row := range rows {
		ranked = append(ranked, models.RankedQuestion{
			Question: models.QuestionFromRecord(row),
			Count:    row.Int64("num_follows"),
		})
	}
	return ranked, nil
}
