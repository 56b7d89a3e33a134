package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ormpath/ormpath/config"
	"github.com/ormpath/ormpath/dialect"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dialects.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAndApplyOverrides(t *testing.T) {
	path := writeYAML(t, `
dialects:
  postgres:
    features: ["LimitOffset"]
    types:
      uuid.UUID: "uuid"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	base := map[string]dialect.Provider{
		"postgres": dialect.NewPostgres(),
		"mysql":    dialect.NewMySQL(),
	}
	overridden := cfg.ApplyOverrides(base)

	pg := overridden["postgres"]
	assert.True(t, pg.Features().Has(dialect.LimitOffset))
	assert.False(t, pg.Features().Has(dialect.ReturningClause), "overridden feature set should replace, not extend, the base bits")
	assert.Equal(t, "uuid", pg.MapSchemaType("uuid.UUID"))

	mysql := overridden["mysql"]
	assert.Equal(t, dialect.NewMySQL().Features(), mysql.Features(), "dialect with no override entry is untouched")
}

func TestApplyOverridesIgnoresUnregisteredDialect(t *testing.T) {
	path := writeYAML(t, `
dialects:
  oracle:
    features: ["LimitOffset"]
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	base := map[string]dialect.Provider{"postgres": dialect.NewPostgres()}
	overridden := cfg.ApplyOverrides(base)
	assert.Len(t, overridden, 1)
}
