// File: internal/platform/cassandra/schema.go
package cassandra

import (
	"context"

	"go.uber.org/zap"
)

// Schema statements are executed in order at startup. All of them are
// idempotent so a restart against a populated keyspace is a no-op.
var schemaStatements = []string{
	`CREATE TYPE IF NOT EXISTS swipe (
		swiped_by text,
		liked boolean
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id text,
		name text,
		username text,
		schedules list<text>,
		liked_projects list<text>,
		personal_projects list<text>,
		auth_token text,
		created_at timestamp,
		PRIMARY KEY (id, username)
	)`,
	`CREATE INDEX IF NOT EXISTS users_username_idx ON users (username)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id text PRIMARY KEY,
		name text,
		author text,
		readme text,
		lat text,
		long text,
		tags list<text>,
		swipes list<frozen<swipe>>,
		repo_id text,
		repo_link text,
		description text
	)`,
	`CREATE TABLE IF NOT EXISTS meetings (
		id text PRIMARY KEY,
		owner_id text,
		invitee_id text,
		link text,
		scheduled_at timestamp,
		created_at timestamp
	)`,
}

// EnsureSchema creates the application tables inside the configured keyspace.
func EnsureSchema(ctx context.Context, store Store, logger *zap.Logger) error {
	for _, stmt := range schemaStatements {
		if err := store.Exec(ctx, stmt); err != nil {
			logger.Error("Schema statement failed", zap.String("stmt", stmt), zap.Error(err))
			return err
		}
	}
	logger.Info("Cassandra schema is up to date")
	return nil
}
