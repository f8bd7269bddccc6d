package models

// QuestionLike records a user liking a question.
type QuestionLike struct {
	ID         uint `gorm:"column:id;primaryKey" json:"id"`
	UserID     uint `gorm:"column:user_id;index;not null" json:"user_id"`
	QuestionID uint `gorm:"column:question_id;index;not null" json:"question_id"`
}

func (QuestionLike) TableName() string { return "question_likes" }

func (l QuestionLike) PrimaryKey() uint { return l.ID }
