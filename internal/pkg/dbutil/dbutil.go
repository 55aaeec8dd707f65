package dbutil

import (
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Finalize rewrites the `?` placeholders emitted by the query builder into
// the bindvar style of the active driver. SQLite takes `?` natively.
func Finalize(driver, query string, args []interface{}) (string, []interface{}) {
	if driver == DriverPostgres {
		query = sqlx.Rebind(sqlx.DOLLAR, query)
	}
	return query, args
}

func IsConflict(err error) bool {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// modernc sqlite surfaces constraint failures as plain error strings
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "unique")
}
