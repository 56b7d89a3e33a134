package sql

import "github.com/ormpath/ormpath/dialect"

func init() {
	for _, p := range []dialect.Provider{dialect.NewPostgres(), dialect.NewMySQL(), dialect.NewSQLite(), dialect.NewFBSQL()} {
		RegisterDialectFeatures(p.InvariantName(), p.Features().Has(dialect.LimitOffset), p.Features().Has(dialect.FetchOffset))
	}
}
