package models

import (
	"github.com/spf13/cast"
)

// Record is one result row keyed by column name, as returned by raw queries.
type Record map[string]any

// Int64 returns the column as an integer. Missing, NULL or non-numeric values yield 0.
func (r Record) Int64(col string) int64 {
	v, ok := r[col]
	if !ok || v == nil {
		return 0
	}
	if b, isBytes := v.([]byte); isBytes {
		v = string(b)
	}
	n, err := cast.ToInt64E(v)
	if err != nil {
		return 0
	}
	return n
}

// Uint returns the column as an id.
func (r Record) Uint(col string) uint {
	n := r.Int64(col)
	if n < 0 {
		return 0
	}
	return uint(n)
}

// String returns the column as text.
func (r Record) String(col string) string {
	v, ok := r[col]
	if !ok || v == nil {
		return ""
	}
	if b, isBytes := v.([]byte); isBytes {
		return string(b)
	}
	return cast.ToString(v)
}
