package store

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// Kind groups driver failures into the few categories callers care about.
type Kind int

const (
	KindUnknown Kind = iota
	KindConnection
	KindQuery
	KindConstraint
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindQuery:
		return "query"
	case KindConstraint:
		return "constraint"
	default:
		return "unknown"
	}
}

// StorageError is returned for every failure raised by the underlying store.
// The data layer never retries or recovers from it.
type StorageError struct {
	Op         string
	Kind       Kind
	DriverCode string
	Err        error
}

func (e *StorageError) Error() string {
	if e.DriverCode != "" {
		return fmt.Sprintf("%s: %s error (code %s): %v", e.Op, e.Kind, e.DriverCode, e.Err)
	}
	return fmt.Sprintf("%s: %s error: %v", e.Op, e.Kind, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Wrap converts a driver or gorm error into a *StorageError tagged with op.
// A nil error stays nil and an existing *StorageError is returned unchanged.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	kind, code := classify(err)
	return &StorageError{Op: op, Kind: kind, DriverCode: code, Err: err}
}

// classify inspects the error chain for the driver-specific types of the three
// supported stores.
func classify(err error) (Kind, string) {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		code := strconv.Itoa(int(myErr.Number))
		switch myErr.Number {
		case 1048, 1062, 1216, 1217, 1451, 1452:
			return KindConstraint, code
		case 1054, 1064, 1146, 1149:
			return KindQuery, code
		case 1040, 1045, 1049, 2002, 2003, 2006, 2013:
			return KindConnection, code
		}
		return KindUnknown, code
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, "23"):
			return KindConstraint, pgErr.Code
		case strings.HasPrefix(pgErr.Code, "42"):
			return KindQuery, pgErr.Code
		case strings.HasPrefix(pgErr.Code, "08"):
			return KindConnection, pgErr.Code
		}
		return KindUnknown, pgErr.Code
	}
	var pgConnErr *pgconn.ConnectError
	if errors.As(err, &pgConnErr) {
		return KindConnection, ""
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		code := strconv.Itoa(int(liteErr.ExtendedCode))
		switch liteErr.Code {
		case sqlite3.ErrConstraint:
			return KindConstraint, code
		case sqlite3.ErrError, sqlite3.ErrRange, sqlite3.ErrMismatch:
			return KindQuery, code
		case sqlite3.ErrCantOpen, sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrNotADB, sqlite3.ErrIoErr:
			return KindConnection, code
		}
		return KindUnknown, code
	}

	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, mysql.ErrInvalidConn) || errors.Is(err, sql.ErrConnDone) {
		return KindConnection, ""
	}
	return KindUnknown, ""
}
