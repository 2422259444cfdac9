package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

const (
	PgxDriverName   = "pgx"
	PostgresDialect = "postgres"
)

func MigrateDatabase(ctx context.Context, databaseUrl string, migrations fs.FS, dir string) error {
	db, err := sql.Open(PgxDriverName, databaseUrl)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations)

	if err := goose.SetDialect(PostgresDialect); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
