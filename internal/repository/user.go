package repository

import (
	"context"

	"github.com/mvirden/Confidant_Go/internal/domain"
)

// User defines the interface for user persistence.
//
// Every method touches exactly one document and relies on the store's
// per-document atomicity. There is no multi-document transaction here;
// callers that mutate two records (friend edges) issue two independent
// calls and own the consistency consequences.
type User interface {
	// InsertUser creates a new user and fills in the store-assigned ID.
	// Returns domain.ErrUsernameTaken when the username already exists.
	InsertUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdatePasswordHash(ctx context.Context, userID, passwordHash string) error
	UpdateFriends(ctx context.Context, userID string, friends []domain.FriendRef) error
	DeleteUser(ctx context.Context, userID string) error
}
