package sqlgraph

// ConstraintKind classifies the database constraint a ConstraintError reports.
type ConstraintKind string

const (
	ConstraintUnique     ConstraintKind = "unique"
	ConstraintForeignKey ConstraintKind = "foreign_key"
	ConstraintCheck      ConstraintKind = "check"
)

// ConstraintError wraps a driver error that IsConstraintError (or one of its
// per-kind variants) has classified as a constraint violation, attaching the
// table the violation was raised against.
type ConstraintError struct {
	Kind  ConstraintKind
	Table string
	Err   error
}

func (e *ConstraintError) Error() string {
	if e.Table != "" {
		return "sqlgraph: " + string(e.Kind) + " constraint violation on " + e.Table + ": " + e.Err.Error()
	}
	return "sqlgraph: " + string(e.Kind) + " constraint violation: " + e.Err.Error()
}

func (e *ConstraintError) Unwrap() error { return e.Err }

// NewConstraintError classifies err against the unique/foreign-key/check
// detectors and wraps it as a ConstraintError, or returns nil if err does
// not match any known constraint-violation shape.
func NewConstraintError(table string, err error) *ConstraintError {
	switch {
	case IsUniqueConstraintError(err):
		return &ConstraintError{Kind: ConstraintUnique, Table: table, Err: err}
	case IsForeignKeyConstraintError(err):
		return &ConstraintError{Kind: ConstraintForeignKey, Table: table, Err: err}
	case IsCheckConstraintError(err):
		return &ConstraintError{Kind: ConstraintCheck, Table: table, Err: err}
	default:
		return nil
	}
}
