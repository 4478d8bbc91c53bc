// File: internal/platform/cassandra/store.go
package cassandra

import (
	"context"
	"time"
)

// Row is a single result row with column access by name.
type Row map[string]interface{}

// String returns the named text column, or "" when absent/null.
func (r Row) String(col string) string {
	v, _ := r[col].(string)
	return v
}

// Strings returns the named list<text> column, or nil when absent/null.
func (r Row) Strings(col string) []string {
	v, _ := r[col].([]string)
	return v
}

// Time returns the named timestamp column, or the zero time when absent/null.
func (r Row) Time(col string) time.Time {
	v, _ := r[col].(time.Time)
	return v
}

// Store executes parameterized statements against the cluster. Repositories
// depend on this interface rather than on the driver session so they can be
// exercised against an in-memory fake.
type Store interface {
	// Query runs a SELECT and returns all matching rows.
	Query(ctx context.Context, stmt string, values ...interface{}) ([]Row, error)

	// Exec runs a statement with no result rows (INSERT, UPDATE, DELETE, DDL).
	Exec(ctx context.Context, stmt string, values ...interface{}) error

	// ExecCAS runs a conditional statement (IF NOT EXISTS / IF EXISTS) and
	// reports whether it was applied.
	ExecCAS(ctx context.Context, stmt string, values ...interface{}) (bool, error)
}
