package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// maintenanceDatabase is the database every PostgreSQL server ships with.
const maintenanceDatabase = "postgres"

// EnsureDatabase creates the configured database when it does not exist yet.
// It connects to the maintenance database through lib/pq, since CREATE DATABASE
// cannot run against the database being created.
func EnsureDatabase(ctx context.Context, s Settings) (created bool, err error) {
	admin, err := sql.Open("postgres", s.DSN(maintenanceDatabase))
	if err != nil {
		return false, fmt.Errorf("open maintenance database: %w", err)
	}
	defer func() {
		if closeErr := admin.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	var exists bool
	err = admin.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", s.Name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check database %q: %w", s.Name, err)
	}
	if exists {
		return false, nil
	}

	if _, err = admin.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(s.Name)); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == duplicateDatabaseCode {
			return false, nil
		}
		return false, fmt.Errorf("create database %q: %w", s.Name, err)
	}

	return true, nil
}

// duplicateDatabaseCode is raised when a concurrent bootstrap created the database first.
const duplicateDatabaseCode = "42P04"
