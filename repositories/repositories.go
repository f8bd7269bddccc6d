// Package repositories implements the finders and relationship traversals of the
// forum entities. Every method issues exactly one query through the shared
// store.Handle; nothing is cached between calls.
package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/cppla/aaquestions/models"
	"github.com/cppla/aaquestions/store"
)

// Repositories groups one repository per entity around a single handle.
type Repositories struct {
	Users           *UserRepository
	Questions       *QuestionRepository
	Replies         *ReplyRepository
	QuestionFollows *QuestionFollowRepository
	QuestionLikes   *QuestionLikeRepository
}

// NewRepositories builds every repository on top of h.
func NewRepositories(h *store.Handle) *Repositories {
	return &Repositories{
		Users:           NewUserRepository(h),
		Questions:       NewQuestionRepository(h),
		Replies:         NewReplyRepository(h),
		QuestionFollows: NewQuestionFollowRepository(h),
		QuestionLikes:   NewQuestionLikeRepository(h),
	}
}

// findByID loads the single row of T's table with the given id.
// It returns nil, nil when no row matches.
func findByID[T any, PT interface {
	*T
	models.Entity
}](h *store.Handle, id uint) (*T, error) {
	var row T
	op := PT(&row).TableName() + ".find_by_id"
	err := h.DB().Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, store.Wrap(op, err)
	}
	return &row, nil
}

// findWhere loads every row of T's table whose column equals value, by id.
func findWhere[T any, PT interface {
	*T
	models.Entity
}](h *store.Handle, column string, value any) ([]T, error) {
	rows := []T{}
	var zero T
	op := PT(&zero).TableName() + ".find_by_" + column
	if err := h.DB().Where(column+" = ?", value).Order("id").Find(&rows).Error; err != nil {
		return nil, store.Wrap(op, err)
	}
	return rows, nil
}

// normalizeLimit applies the default ranking size of one.
func normalizeLimit(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
