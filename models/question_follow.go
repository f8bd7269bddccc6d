package models

// QuestionFollow links a user to a question they follow.
// Duplicate (user, question) pairs are not rejected here.
type QuestionFollow struct {
	ID         uint `gorm:"column:id;primaryKey" json:"id"`
	UserID     uint `gorm:"column:user_id;index;not null" json:"user_id"`
	QuestionID uint `gorm:"column:question_id;index;not null" json:"question_id"`
}

func (QuestionFollow) TableName() string { return "question_follows" }

func (f QuestionFollow) PrimaryKey() uint { return f.ID }
