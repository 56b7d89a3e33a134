package dialect

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// KeywordKind identifies a dialect-specific SQL keyword or syntax fragment
// requested via Provider.EmitKeyword.
type KeywordKind string

const (
	// KeywordAutoIncrement renders the dialect's auto-increment column
	// modifier (e.g. "AUTO_INCREMENT", "AUTOINCREMENT", "GENERATED ALWAYS
	// AS IDENTITY").
	KeywordAutoIncrement KeywordKind = "auto_increment"
	// KeywordQuote renders the dialect's identifier-quoting character.
	KeywordQuote KeywordKind = "quote"
	// KeywordTrue/KeywordFalse render the dialect's boolean literals.
	KeywordTrue  KeywordKind = "true"
	KeywordFalse KeywordKind = "false"
)

// Provider is the dialect driver interface consumed by the compiler and
// builder (spec.md §6). It is distinct from Driver: Driver executes SQL;
// Provider describes how to build and coerce values for SQL of a given
// dialect, and has no I/O of its own.
type Provider interface {
	// InvariantName is the dialect's unique identifier, e.g. "postgres".
	InvariantName() string
	// Features returns the dialect's advertised feature bit-set.
	Features() Feature
	// CoerceValue converts a raw predicate value to the dialect's
	// representation of targetType. Returns an error the caller should
	// surface as a TypeCoercionError.
	CoerceValue(raw any, targetType string) (any, error)
	// EmitKeyword renders a dialect-specific token.
	EmitKeyword(kind KeywordKind) string
	// MapSchemaType maps a logical/Go type name to a dialect column type.
	MapSchemaType(goType string) string
}

type baseProvider struct {
	name     string
	features Feature
	types    map[string]string
	quote    string
	autoincr string
}

func (p baseProvider) InvariantName() string { return p.name }
func (p baseProvider) Features() Feature     { return p.features }

func (p baseProvider) EmitKeyword(kind KeywordKind) string {
	switch kind {
	case KeywordAutoIncrement:
		return p.autoincr
	case KeywordQuote:
		return p.quote
	case KeywordTrue:
		return "true"
	case KeywordFalse:
		return "false"
	default:
		return ""
	}
}

func (p baseProvider) MapSchemaType(goType string) string {
	if t, ok := p.types[goType]; ok {
		return t
	}
	return goType
}

func (p baseProvider) CoerceValue(raw any, targetType string) (any, error) {
	s, isStr := raw.(string)
	switch targetType {
	case "int", "int32", "int64":
		if !isStr {
			return raw, nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("coerce %q to %s: %w", s, targetType, err)
		}
		return n, nil
	case "float32", "float64":
		if !isStr {
			return raw, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("coerce %q to %s: %w", s, targetType, err)
		}
		return f, nil
	case "bool":
		if !isStr {
			return raw, nil
		}
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("coerce %q to bool: %w", s, err)
		}
		return b, nil
	case "time.Time":
		if !isStr {
			return raw, nil
		}
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, fmt.Errorf("coerce %q to time.Time: %w", s, err)
		}
		return t, nil
	case "uuid.UUID":
		if !isStr {
			return raw, nil
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("coerce %q to uuid.UUID: %w", s, err)
		}
		return id, nil
	default:
		return raw, nil
	}
}

// NewPostgres returns the built-in PostgreSQL provider.
func NewPostgres() Provider {
	return baseProvider{
		name:     Postgres,
		features: LimitOffset | Cascades | ReturningClause,
		quote:    `"`,
		autoincr: "GENERATED ALWAYS AS IDENTITY",
		types: map[string]string{
			"string": "text", "int": "integer", "int64": "bigint",
			"bool": "boolean", "time.Time": "timestamptz", "uuid.UUID": "uuid",
			"float64": "double precision",
		},
	}
}

// NewMySQL returns the built-in MySQL provider.
func NewMySQL() Provider {
	return baseProvider{
		name:     MySQL,
		features: LimitOffset | Cascades,
		quote:    "`",
		autoincr: "AUTO_INCREMENT",
		types: map[string]string{
			"string": "varchar(255)", "int": "int", "int64": "bigint",
			"bool": "tinyint(1)", "time.Time": "datetime", "uuid.UUID": "char(36)",
			"float64": "double",
		},
	}
}

// NewSQLite returns the built-in SQLite provider.
func NewSQLite() Provider {
	return baseProvider{
		name:     SQLite,
		features: LimitOffset,
		quote:    `"`,
		autoincr: "AUTOINCREMENT",
		types: map[string]string{
			"string": "text", "int": "integer", "int64": "integer",
			"bool": "boolean", "time.Time": "datetime", "uuid.UUID": "text",
			"float64": "real",
		},
	}
}

// featureNames maps a config-file-friendly feature name to its bit, for
// the config package's YAML dialect overrides.
var featureNames = map[string]Feature{
	"LimitOffset":               LimitOffset,
	"FetchOffset":               FetchOffset,
	"StrictSubQueryColumnNames": StrictSubQueryColumnNames,
	"MaterializedViews":         MaterializedViews,
	"Truncate":                  Truncate,
	"Cascades":                  Cascades,
	"ReturningClause":           ReturningClause,
}

// ParseFeature resolves a feature's config-file name to its bit.
func ParseFeature(name string) (Feature, bool) {
	f, ok := featureNames[name]
	return f, ok
}

// overriddenProvider layers feature-bit and schema-type-map overrides on
// top of a base Provider, for deployments that need to tweak a dialect's
// advertised surface without a code change (e.g. an older Postgres without
// ReturningClause).
type overriddenProvider struct {
	Provider
	features    Feature
	hasFeatures bool
	types       map[string]string
}

func (p overriddenProvider) Features() Feature {
	if p.hasFeatures {
		return p.features
	}
	return p.Provider.Features()
}

func (p overriddenProvider) MapSchemaType(goType string) string {
	if t, ok := p.types[goType]; ok {
		return t
	}
	return p.Provider.MapSchemaType(goType)
}

// WithOverrides returns base with its advertised features replaced by
// features (when present) and its schema-type map extended by types.
func WithOverrides(base Provider, features Feature, hasFeatures bool, types map[string]string) Provider {
	return overriddenProvider{Provider: base, features: features, hasFeatures: hasFeatures, types: types}
}

// NewFBSQL returns an illustrative dialect used only in tests to exercise
// the FETCH FIRST/OFFSET and strict-sub-query-column-name code paths that
// none of the three shipped dialects trigger on their own.
func NewFBSQL() Provider {
	return baseProvider{
		name:     "fbsql",
		features: FetchOffset | StrictSubQueryColumnNames,
		quote:    `"`,
		autoincr: "GENERATED BY DEFAULT AS IDENTITY",
		types: map[string]string{
			"string": "varchar(255)", "int": "integer", "int64": "bigint",
			"bool": "boolean", "time.Time": "timestamp", "uuid.UUID": "char(36)",
			"float64": "double precision",
		},
	}
}
