package models

// Reply is an answer to a question. Replies without a parent are top-level;
// ParentID points at another reply of the same thread when present.
type Reply struct {
	ID         uint   `gorm:"column:id;primaryKey" json:"id"`
	UserID     uint   `gorm:"column:user_id;index;not null" json:"user_id"`
	QuestionID uint   `gorm:"column:question_id;index;not null" json:"question_id"`
	ParentID   *uint  `gorm:"column:replies_id;index" json:"parent_id"`
	Body       string `gorm:"column:body;type:text;not null" json:"body"`
}

func (Reply) TableName() string { return "replies" }

func (r Reply) PrimaryKey() uint { return r.ID }

// HasParent reports whether the reply answers another reply.
func (r Reply) HasParent() bool { return r.ParentID != nil }
