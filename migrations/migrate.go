// Package migrations embeds the schema of the documents table.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"

	"RECIPEBOOK_BACK-END/internal/logger"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate brings the documents schema up to date, logging each applied
// version through log.
func Migrate(db *sql.DB, log *logger.Logger) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{log})

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	before, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("apply migrations from version %d: %w", before, err)
	}

	after, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	log.Info().Int64("from", before).Int64("to", after).Msg("documents schema up to date")
	return nil
}

// gooseLogger routes goose output into zerolog.
type gooseLogger struct {
	log *logger.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Info().Str("component", "goose").Msgf(format, v...)
}

// Fatalf logs at error level; failures still surface as errors from Up.
func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Error().Str("component", "goose").Msgf(format, v...)
}
