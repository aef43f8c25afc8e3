// Package schema holds the database initialization script.
package schema

// SchemaSQL contains the full database schema initialization script.
// Users are stored as one row per account; the friend list lives inside
// the row as a JSONB array so a single-row UPDATE replaces it atomically.
const SchemaSQL = `
-- Users & Auth Schema

CREATE TABLE IF NOT EXISTS users (
    user_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    username VARCHAR(50) UNIQUE NOT NULL,
    password_hash TEXT NOT NULL,
    is_admin BOOLEAN NOT NULL DEFAULT FALSE,
    first_name VARCHAR(100),
    last_name VARCHAR(100),
    date_of_birth VARCHAR(50),
    friends JSONB NOT NULL DEFAULT '[]'::jsonb,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_users_username ON users (username);
`
