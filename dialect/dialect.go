package dialect

import "context"

// Dialect name constants. A driver's Dialect() method returns one of these.
const (
	Postgres = "postgres"
	MySQL    = "mysql"
	SQLite   = "sqlite"
)

// Feature is a bit in a dialect's feature set (spec.md §6 "dialect feature
// flag"), consulted by the builder before emitting dialect-specific syntax.
type Feature uint32

const (
	// LimitOffset indicates the dialect supports "LIMIT n OFFSET m".
	LimitOffset Feature = 1 << iota
	// FetchOffset indicates the dialect supports the SQL-standard
	// "OFFSET m ROW FETCH FIRST n ROWS ONLY" form instead.
	FetchOffset
	// StrictSubQueryColumnNames indicates the dialect rejects duplicate
	// column names inside a derived table and so requires an explicit,
	// de-duplicated projection list rather than "SELECT *".
	StrictSubQueryColumnNames
	// MaterializedViews indicates support for CREATE MATERIALIZED VIEW.
	MaterializedViews
	// Truncate indicates support for TRUNCATE TABLE.
	Truncate
	// Cascades indicates support for ON DELETE/UPDATE CASCADE clauses.
	Cascades
	// ReturningClause indicates support for "RETURNING col, ...".
	ReturningClause
)

// Has reports whether f includes all bits in other.
func (f Feature) Has(other Feature) bool { return f&other == other }

// Driver is the interface implemented by database-specific drivers,
// consumed by the compiler and builder. Connection pooling, transaction
// isolation negotiation, and retry policy are collaborator concerns left to
// the implementation wrapped by a Driver, not to this interface.
type Driver interface {
	// Exec executes a non-row-returning statement.
	Exec(ctx context.Context, query string, args, v any) error
	// Query executes a row-returning statement.
	Query(ctx context.Context, query string, args, v any) error
	// Tx starts and returns a new transaction.
	Tx(ctx context.Context) (Tx, error)
	// Close closes the underlying connection.
	Close() error
	// Dialect returns the dialect name (Postgres, MySQL, or SQLite).
	Dialect() string
}

// Tx extends Driver with transaction-scoped commit/rollback. At most one
// writable Tx may be open per connection at a time; nested clones re-enter
// the provider's lock recursively (spec.md §5).
type Tx interface {
	Driver
	Commit() error
	Rollback() error
}

// ExecQuerier is implemented by both Driver and Tx.
type ExecQuerier interface {
	Exec(ctx context.Context, query string, args, v any) error
	Query(ctx context.Context, query string, args, v any) error
}
