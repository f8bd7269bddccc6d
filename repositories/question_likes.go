package repositories

import (
	"github.com/cppla/aaquestions/models"
	"github.com/cppla/aaquestions/store"
)

// QuestionLikeRepository reads question likes and the aggregates built on them.
type QuestionLikeRepository struct {
	h *store.Handle
}

// NewQuestionLikeRepository creates a new QuestionLikeRepository instance.
func NewQuestionLikeRepository(h *store.Handle) *QuestionLikeRepository {
	return &QuestionLikeRepository{h: h}
}

// FindByID returns the like record with the given id, or nil when there is none.
func (r *QuestionLikeRepository) FindByID(id uint) (*models.QuestionLike, error) {
	return findByID[models.QuestionLike](r.h, id)
}

// LikersForQuestionID returns the distinct users who liked the question.
func (r *QuestionLikeRepository) LikersForQuestionID(questionID uint) ([]models.User, error) {
	users := []models.User{}
	err := r.h.DB().
		Distinct("users.id", "users.fname", "users.lname").
		Joins("JOIN question_likes ON question_likes.user_id = users.id").
		Where("question_likes.question_id = ?", questionID).
		Order("users.id").
		Find(&users).Error
	if err != nil {
		return nil, store.Wrap("question_likes.likers_for_question_id", err)
	}
	return users, nil
}

// NumLikesForQuestionID counts the like rows of the question.
func (r *QuestionLikeRepository) NumLikesForQuestionID(questionID uint) (int64, error) {
	rows, err := r.h.Execute(`
		SELECT COUNT(question_likes.id) AS num_likes
		FROM question_likes
		WHERE question_likes.question_id = ?`, questionID)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Int64("num_likes"), nil
}

// LikedQuestionsForUserID returns the questions the user liked.
func (r *QuestionLikeRepository) LikedQuestionsForUserID(userID uint) ([]models.Question, error) {
	questions := []models.Question{}
	err := r.h.DB().
		Select("questions.*").
		Joins("JOIN question_likes ON question_likes.question_id = questions.id").
		Where("question_likes.user_id = ?", userID).
		Order("question_likes.id").
		Find(&questions).Error
	if err != nil {
		return nil, store.Wrap("question_likes.liked_questions_for_user_id", err)
	}
	return questions, nil
}

// MostLikedQuestions returns up to n questions ordered by like count, highest
// first. Ties go to the lower question id. n < 1 means 1.
func (r *QuestionLikeRepository) MostLikedQuestions(n int) ([]models.RankedQuestion, error) {
	rows, err := r.h.Execute(`
		SELECT questions.id, questions.title, questions.body, questions.user_id,
		       COUNT(question_likes.id) AS num_likes
		FROM questions
		JOIN question_likes ON question_likes.question_id = questions.id
		GROUP BY questions.id, questions.title, questions.body, questions.user_id
		ORDER BY num_likes DESC, questions.id ASC
		LIMIT ?`, normalizeLimit(n))
	if err != nil {
		return nil, err
	}
	ranked := make([]models.RankedQuestion, 0, len(rows))
	for _, row := range rows {
		ranked = append(ranked, models.RankedQuestion{
			Question: models.QuestionFromRecord(row),
			Count:    row.Int64("num_likes"),
		})
	}
	return ranked, nil
}
