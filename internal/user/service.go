package user

import (
	"context"
	"fmt"

	"github.com/mvirden/Confidant_Go/internal/domain"
	"github.com/mvirden/Confidant_Go/internal/logger"
	"github.com/mvirden/Confidant_Go/internal/repository"
)

// Service defines the interface for user lookup and administration
type Service interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, userID string) (domain.PublicProfile, error)
	// DeleteUser removes the target document. The requester must be an
	// admin; the authorization check runs before the target lookup.
	DeleteUser(ctx context.Context, requesterID, targetID string) error
}

type service struct {
	repo repository.User
}

// NewService creates a new user service
func NewService(repo repository.User) Service {
	return &service{repo: repo}
}

func (s *service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *service) GetUser(ctx context.Context, userID string) (domain.PublicProfile, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return domain.PublicProfile{}, err
	}
	return user.Profile(), nil
}

func (s *service) DeleteUser(ctx context.Context, requesterID, targetID string) error {
	log := logger.FromContext(ctx)

	requester, err := s.repo.GetUserByID(ctx, requesterID)
	if err != nil {
		return fmt.Errorf("failed to resolve requester: %w", err)
	}
	if !requester.IsAdmin {
		return fmt.Errorf("%w: admin required", domain.ErrPermissionDenied)
	}

	if err := s.repo.DeleteUser(ctx, targetID); err != nil {
		return err
	}

	log.Info("User deleted", "requester_id", requesterID, "target_id", targetID)
	return nil
}
