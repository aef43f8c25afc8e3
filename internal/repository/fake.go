package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/mvirden/Confidant_Go/internal/domain"
)

// FakeUser is a stateful "fake" implementation of the User repository for
// testing. It stores state in memory (maps) to enable integration-style
// unit tests of the service layer without a database.
//
// It lives beside the interface so the auth, friends and user service
// packages can all share it.
type FakeUser struct {
	mu     sync.Mutex
	users  map[string]*domain.User // keyed by user ID
	nextID int

	// FailUpdateFriendsFor, when set, makes UpdateFriends fail for that
	// user ID. Used to exercise the non-atomic two-document window.
	FailUpdateFriendsFor string
}

func NewFakeUser() *FakeUser {
	return &FakeUser{users: make(map[string]*domain.User)}
}

func (f *FakeUser) InsertUser(ctx context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == user.Username {
			return domain.ErrUsernameTaken
		}
	}
	f.nextID++
	stored := *user
	stored.ID = fmt.Sprintf("user-%d", f.nextID)
	f.users[stored.ID] = &stored
	user.ID = stored.ID
	return nil
}

func (f *FakeUser) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *u
	copied.Friends = append([]domain.FriendRef(nil), u.Friends...)
	return &copied, nil
}

func (f *FakeUser) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			copied := *u
			copied.Friends = append([]domain.FriendRef(nil), u.Friends...)
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *FakeUser) ListUsers(ctx context.Context) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	users := make([]domain.User, 0, len(f.users))
	for _, u := range f.users {
		copied := *u
		copied.Friends = append([]domain.FriendRef(nil), u.Friends...)
		users = append(users, copied)
	}
	return users, nil
}

func (f *FakeUser) UpdatePasswordHash(ctx context.Context, userID, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (f *FakeUser) UpdateFriends(ctx context.Context, userID string, friends []domain.FriendRef) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailUpdateFriendsFor == userID {
		return fmt.Errorf("%w: injected failure", domain.ErrDatabaseError)
	}
	u, ok := f.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Friends = append([]domain.FriendRef(nil), friends...)
	return nil
}

func (f *FakeUser) DeleteUser(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[userID]; !ok {
		return domain.ErrUserNotFound
	}
	delete(f.users, userID)
	return nil
}
