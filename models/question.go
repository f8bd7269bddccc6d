package models

// Question represents a question asked by a user.
type Question struct {
	ID     uint   `gorm:"column:id;primaryKey" json:"id"`
	Title  string `gorm:"column:title;size:255;not null" json:"title"`
	Body   string `gorm:"column:body;type:text;not null" json:"body"`
	UserID uint   `gorm:"column:user_id;index;not null" json:"user_id"`
}

func (Question) TableName() string { return "questions" }

func (q Question) PrimaryKey() uint { return q.ID }

// RankedQuestion pairs a question with the association count it was ranked by.
type RankedQuestion struct {
	Question
	Count int64 `json:"count"`
}

// QuestionFromRecord decodes the questions columns of a raw row.
func QuestionFromRecord(r Record) Question {
	return Question{
		ID:     r.Uint("id"),
		Title:  r.String("title"),
		Body:   r.String("body"),
		UserID: r.Uint("user_id"),
	}
}
