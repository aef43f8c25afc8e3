package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mvirden/Confidant_Go/internal/auth"
	"github.com/mvirden/Confidant_Go/internal/domain"
)

// Hand-written testify mocks for the service interfaces the handlers
// depend on.

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, params auth.RegisterParams) (domain.User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, domain.User, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Get(1).(domain.User), args.Error(2)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	args := m.Called(ctx, username, oldPassword, newPassword)
	return args.Error(0)
}

func (m *MockAuthService) Authenticate(tokenString string) (*auth.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Claims), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, userID string) (domain.PublicProfile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.PublicProfile), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, requesterID, targetID string) error {
	args := m.Called(ctx, requesterID, targetID)
	return args.Error(0)
}

type MockFriendsService struct {
	mock.Mock
}

func (m *MockFriendsService) AddFriend(ctx context.Context, requesterID, targetUsername string) ([]domain.FriendRef, error) {
	args := m.Called(ctx, requesterID, targetUsername)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FriendRef), args.Error(1)
}

func (m *MockFriendsService) RemoveFriend(ctx context.Context, requesterID, targetID string) ([]domain.FriendRef, error) {
	args := m.Called(ctx, requesterID, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FriendRef), args.Error(1)
}

func (m *MockFriendsService) RemoveAllFriends(ctx context.Context, requesterID string) error {
	args := m.Called(ctx, requesterID)
	return args.Error(0)
}

func (m *MockFriendsService) ListFriends(ctx context.Context, userID string) ([]domain.FriendRef, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FriendRef), args.Error(1)
}
