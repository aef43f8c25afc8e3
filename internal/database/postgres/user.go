package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mvirden/Confidant_Go/internal/domain"
)

// PostgreSQL error code for unique constraint violations
const uniqueViolationCode = "23505"

// UserRepository implements the user repository for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// InsertUser creates a new user row and fills in the generated ID.
// The unique index on username is the conflict authority; a violation
// maps to domain.ErrUsernameTaken.
func (r *UserRepository) InsertUser(ctx context.Context, user *domain.User) error {
	friendsJSON, err := marshalFriends(user.Friends)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (username, password_hash, is_admin, first_name, last_name, date_of_birth, friends, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING user_id
	`
	err = r.db.QueryRow(ctx, query,
		user.Username,
		user.PasswordHash,
		user.IsAdmin,
		user.FirstName,
		user.LastName,
		user.DateOfBirth,
		friendsJSON,
	).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: %s", domain.ErrUsernameTaken, user.Username)
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetUserByID fetches a single user document by its store-assigned ID
func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.getUser(ctx, "user_id = $1", userID)
}

// GetUserByUsername fetches a single user document by its unique username
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getUser(ctx, "username = $1", username)
}

func (r *UserRepository) getUser(ctx context.Context, where string, arg any) (*domain.User, error) {
	query := `
		SELECT user_id, username, password_hash, is_admin,
		       COALESCE(first_name, ''), COALESCE(last_name, ''), COALESCE(date_of_birth, ''),
		       friends
		FROM users
		WHERE ` + where

	var user domain.User
	var friendsJSON []byte
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.IsAdmin,
		&user.FirstName,
		&user.LastName,
		&user.DateOfBirth,
		&friendsJSON,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := json.Unmarshal(friendsJSON, &user.Friends); err != nil {
		return nil, fmt.Errorf("failed to decode friends list: %w", err)
	}
	return &user, nil
}

// ListUsers returns every user document
func (r *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT user_id, username, password_hash, is_admin,
		       COALESCE(first_name, ''), COALESCE(last_name, ''), COALESCE(date_of_birth, ''),
		       friends
		FROM users
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		var friendsJSON []byte
		if err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.PasswordHash,
			&user.IsAdmin,
			&user.FirstName,
			&user.LastName,
			&user.DateOfBirth,
			&friendsJSON,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		if err := json.Unmarshal(friendsJSON, &user.Friends); err != nil {
			return nil, fmt.Errorf("failed to decode friends list: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user rows: %w", err)
	}
	return users, nil
}

// UpdatePasswordHash atomically replaces the password hash of one document
func (r *UserRepository) UpdatePasswordHash(ctx context.Context, userID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE user_id = $2`
	tag, err := r.db.Exec(ctx, query, passwordHash, userID)
	if err != nil {
		return fmt.Errorf("failed to update password hash: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpdateFriends atomically replaces the embedded friends array of one document
func (r *UserRepository) UpdateFriends(ctx context.Context, userID string, friends []domain.FriendRef) error {
	friendsJSON, err := marshalFriends(friends)
	if err != nil {
		return err
	}

	query := `UPDATE users SET friends = $1, updated_at = NOW() WHERE user_id = $2`
	tag, err := r.db.Exec(ctx, query, friendsJSON, userID)
	if err != nil {
		return fmt.Errorf("failed to update friends: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// DeleteUser removes one user document entirely
func (r *UserRepository) DeleteUser(ctx context.Context, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// marshalFriends encodes the friend list for the JSONB column. A nil list
// is stored as an empty array so reads never see SQL NULL.
func marshalFriends(friends []domain.FriendRef) ([]byte, error) {
	if friends == nil {
		friends = []domain.FriendRef{}
	}
	data, err := json.Marshal(friends)
	if err != nil {
		return nil, fmt.Errorf("failed to encode friends list: %w", err)
	}
	return data, nil
}
