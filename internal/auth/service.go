package auth

import (
	"context"
	"fmt"

	"github.com/mvirden/Confidant_Go/internal/domain"
	"github.com/mvirden/Confidant_Go/internal/logger"
	"github.com/mvirden/Confidant_Go/internal/metrics"
	"github.com/mvirden/Confidant_Go/internal/repository"
)

// MinPasswordLength is the minimum accepted plaintext password length
const MinPasswordLength = 8

// RegisterParams carries the fields accepted at registration
type RegisterParams struct {
	Username    string
	Password    string
	IsAdmin     bool
	FirstName   string
	LastName    string
	DateOfBirth string
}

// Service defines the interface for authentication operations
type Service interface {
	Register(ctx context.Context, params RegisterParams) (domain.User, error)
	Login(ctx context.Context, username, password string) (string, domain.User, error)
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error
	Authenticate(tokenString string) (*Claims, error)
}

// service implements the Service interface
type service struct {
	repo   repository.User
	hasher PasswordHasher
	tokens TokenService
}

// NewService creates a new auth service
func NewService(repo repository.User, hasher PasswordHasher, tokens TokenService) Service {
	return &service{repo: repo, hasher: hasher, tokens: tokens}
}

// Register validates the credentials, hashes the password and creates the
// user document. Nothing is persisted when validation fails.
func (s *service) Register(ctx context.Context, params RegisterParams) (domain.User, error) {
	log := logger.FromContext(ctx)

	if params.Username == "" {
		return domain.User{}, fmt.Errorf("%w: username missing", domain.ErrInvalidInput)
	}
	if len(params.Password) < MinPasswordLength {
		return domain.User{}, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, MinPasswordLength)
	}

	hash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		Username:     params.Username,
		PasswordHash: hash,
		IsAdmin:      params.IsAdmin,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		DateOfBirth:  params.DateOfBirth,
		Friends:      []domain.FriendRef{},
	}
	if err := s.repo.InsertUser(ctx, &user); err != nil {
		return domain.User{}, err
	}

	metrics.UsersRegistered.Inc()
	log.Info("User registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Login verifies the credentials and issues a bearer token embedding the
// store ID and username of the subject.
func (s *service) Login(ctx context.Context, username, password string) (string, domain.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return "", domain.User{}, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		metrics.LoginAttempts.WithLabelValues(metrics.LabelValueFailure).Inc()
		log.Warn("Login rejected", "username", username)
		return "", domain.User{}, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return "", domain.User{}, err
	}

	metrics.LoginAttempts.WithLabelValues(metrics.LabelValueSuccess).Inc()
	log.Info("User logged in", "user_id", user.ID, "username", user.Username)
	return token, *user, nil
}

// ChangePassword replaces the password hash of the named account after
// verifying the old password. The target is the username in the request,
// not the authenticated subject; callers must already hold a valid token.
func (s *service) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	log := logger.FromContext(ctx)

	if len(newPassword) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, MinPasswordLength)
	}

	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}

	if !s.hasher.Verify(oldPassword, user.PasswordHash) {
		log.Warn("Password change rejected", "username", username)
		return domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.repo.UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		return err
	}

	log.Info("Password changed", "user_id", user.ID, "username", username)
	return nil
}

// Authenticate verifies a bearer token and yields the subject's claims
func (s *service) Authenticate(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("%w: token missing", domain.ErrInvalidToken)
	}
	return s.tokens.Verify(tokenString)
}
