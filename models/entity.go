package models

// Entity is the shape shared by every table-backed model: a stable table name
// and an immutable integer id assigned by the store.
type Entity interface {
	TableName() string
	PrimaryKey() uint
}

// All lists every entity model, in the order their tables are created.
func All() []interface{} {
	return []interface{}{&User{}, &Question{}, &Reply{}, &QuestionFollow{}, &QuestionLike{}}
}
