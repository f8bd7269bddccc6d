// Package store holds the connection handle shared by every repository.
package store

import (
	"gorm.io/gorm"

	"github.com/cppla/aaquestions/models"
)

// Handle wraps the process-wide gorm connection. It is built once at boot and
// passed to every repository constructor.
type Handle struct {
	db *gorm.DB
}

// New wraps an opened gorm DB.
func New(db *gorm.DB) *Handle {
	return &Handle{db: db}
}

// DB exposes the underlying gorm instance for query building.
func (h *Handle) DB() *gorm.DB {
	return h.db
}

// Execute runs a raw query with positional "?" parameters and returns the rows
// keyed by column name, in the order the store produced them. Column values keep
// the type the driver scanned them as, so integers stay integers.
func (h *Handle) Execute(query string, args ...any) ([]models.Record, error) {
	var rows []map[string]any
	if err := h.db.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, Wrap("execute", err)
	}
	records := make([]models.Record, 0, len(rows))
	for _, row := range rows {
		// Computed columns (COUNT, expressions) come back boxed as *interface{}.
		for col, v := range row {
			if p, ok := v.(*interface{}); ok {
				row[col] = *p
			}
		}
		records = append(records, models.Record(row))
	}
	return records, nil
}
