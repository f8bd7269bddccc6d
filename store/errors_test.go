package store

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestWrapNil(t *testing.T) {
	require.NoError(t, Wrap("op", nil))
}

func TestWrapKeepsExistingStorageError(t *testing.T) {
	first := Wrap("inner", errors.New("boom"))
	second := Wrap("outer", first)
	require.Same(t, first, second)
}

func TestWrapClassifiesDriverErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind Kind
		code string
	}{
		{"mysql duplicate", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, KindConstraint, "1062"},
		{"mysql syntax", &mysql.MySQLError{Number: 1064, Message: "syntax"}, KindQuery, "1064"},
		{"mysql gone away", &mysql.MySQLError{Number: 2006}, KindConnection, "2006"},
		{"mysql other", &mysql.MySQLError{Number: 1205}, KindUnknown, "1205"},
		{"postgres unique", &pgconn.PgError{Code: "23505"}, KindConstraint, "23505"},
		{"postgres undefined table", &pgconn.PgError{Code: "42P01"}, KindQuery, "42P01"},
		{"postgres connection", &pgconn.PgError{Code: "08006"}, KindConnection, "08006"},
		{"bad conn", fmt.Errorf("query: %w", driver.ErrBadConn), KindConnection, ""},
		{"plain", errors.New("mystery"), KindUnknown, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Wrap("users.find_by_id", tc.err)

			var se *StorageError
			require.ErrorAs(t, err, &se)
			require.Equal(t, tc.kind, se.Kind)
			require.Equal(t, tc.code, se.DriverCode)
			require.ErrorIs(t, err, tc.err)
			require.Contains(t, err.Error(), "users.find_by_id")
		})
	}
}
