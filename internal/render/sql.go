// Package render turns row models into fully-resolved INSERT statements.
// Statement building is delegated to gorm in dry-run mode against an
// in-memory sqlite handle; nothing is ever executed.
package render

import (
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/glebarez/sqlite"
	"go.uber.org/fx"
)

// Module provides the SQL renderer.
var Module = fx.Module("render", fx.Provide(New))

type Renderer struct {
	db *gorm.DB
}

func New() (*Renderer, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DryRun: true,
		Logger: gormlogger.Discard,
	})
	if err != nil {
		return nil, err
	}
	return &Renderer{db: db}, nil
}

// Insert renders one INSERT statement for row with all values inlined.
func (r *Renderer) Insert(row any) (string, error) {
	stmt := r.db.Session(&gorm.Session{DryRun: true, NewDB: true}).Create(row).Statement
	if stmt.Error != nil {
		return "", stmt.Error
	}
	return r.db.Dialector.Explain(stmt.SQL.String(), stmt.Vars...) + ";", nil
}
