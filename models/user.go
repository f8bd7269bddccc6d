package models

// User represents a forum member who asks, replies to, follows and likes questions.
type User struct {
	ID    uint   `gorm:"column:id;primaryKey" json:"id"`
	FName string `gorm:"column:fname;size:255;not null" json:"fname"`
	LName string `gorm:"column:lname;size:255;not null" json:"lname"`
}

// TableName pins the users table name.
func (User) TableName() string { return "users" }

// PrimaryKey returns the store-assigned id.
func (u User) PrimaryKey() uint { return u.ID }
