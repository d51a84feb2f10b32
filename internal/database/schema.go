package database

import (
	"context"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS user_tokens (
	user_id    UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	access     TEXT NOT NULL,
	token      TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_user_tokens_token ON user_tokens (token, access);
CREATE INDEX IF NOT EXISTS idx_user_tokens_user_id ON user_tokens (user_id);

CREATE TABLE IF NOT EXISTS todos (
	id           UUID PRIMARY KEY,
	text         TEXT NOT NULL,
	completed    BOOLEAN NOT NULL DEFAULT FALSE,
	completed_at TIMESTAMPTZ,
	user_id      UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	created_at   TIMESTAMPTZ NOT NULL,
	updated_at   TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_todos_user_id ON todos (user_id, created_at);
`

// EnsureSchema applies the idempotent DDL for all tables. The statements
// use IF NOT EXISTS so running it on every startup is safe.
func (m *Manager) EnsureSchema(ctx context.Context) error {
	if _, err := m.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
