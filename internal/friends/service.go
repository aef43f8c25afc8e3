// Package friends implements the friend-relationship engine: a symmetric
// edge maintained across two independently stored user documents.
//
// The store guarantees atomicity per document only. Every mutation here is
// two sequential single-document writes with no transaction across them:
// if the process dies or the second write fails, the edge is asymmetric
// until a later mutation converges it. Pushes use set semantics (skip when
// the edge already exists) so retries converge instead of duplicating.
package friends

import (
	"context"
	"fmt"

	"github.com/mvirden/Confidant_Go/internal/domain"
	"github.com/mvirden/Confidant_Go/internal/logger"
	"github.com/mvirden/Confidant_Go/internal/repository"
)

// Service defines the interface for friend-relationship operations
type Service interface {
	AddFriend(ctx context.Context, requesterID, targetUsername string) ([]domain.FriendRef, error)
	RemoveFriend(ctx context.Context, requesterID, targetID string) ([]domain.FriendRef, error)
	RemoveAllFriends(ctx context.Context, requesterID string) error
	ListFriends(ctx context.Context, userID string) ([]domain.FriendRef, error)
}

type service struct {
	repo repository.User
}

// NewService creates a new friends service
func NewService(repo repository.User) Service {
	return &service{repo: repo}
}

// AddFriend creates the symmetric edge requester<->target. The requester's
// side is written first; the mirror side is best-effort. A mirror failure
// is logged and left for a retried AddFriend to converge - the first side
// is never rolled back.
func (s *service) AddFriend(ctx context.Context, requesterID, targetUsername string) ([]domain.FriendRef, error) {
	log := logger.FromContext(ctx)

	target, err := s.repo.GetUserByUsername(ctx, targetUsername)
	if err != nil {
		return nil, err
	}
	if target.ID == requesterID {
		return nil, fmt.Errorf("%w: %s", domain.ErrSelfFriend, targetUsername)
	}

	requester, err := s.repo.GetUserByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	if !requester.HasFriend(target.ID) {
		requester.Friends = append(requester.Friends, target.Ref())
		if err := s.repo.UpdateFriends(ctx, requester.ID, requester.Friends); err != nil {
			return nil, err
		}
	}

	if !target.HasFriend(requester.ID) {
		target.Friends = append(target.Friends, requester.Ref())
		if err := s.repo.UpdateFriends(ctx, target.ID, target.Friends); err != nil {
			// Asymmetric window: requester->target exists, mirror does not.
			log.Error("Mirror friend write failed, edge left asymmetric",
				"requester_id", requester.ID,
				"target_id", target.ID,
				"error", err)
		}
	}

	log.Info("Friend added", "requester_id", requester.ID, "target_id", target.ID)
	return requester.Friends, nil
}

// RemoveFriend removes the first matching edge from the requester's list,
// then mirrors the removal on the target. A missing edge on either side is
// a silent no-op.
func (s *service) RemoveFriend(ctx context.Context, requesterID, targetID string) ([]domain.FriendRef, error) {
	log := logger.FromContext(ctx)

	requester, err := s.repo.GetUserByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	if trimmed, removed := removeFirst(requester.Friends, targetID); removed {
		requester.Friends = trimmed
		if err := s.repo.UpdateFriends(ctx, requester.ID, requester.Friends); err != nil {
			return nil, err
		}
	}

	// Mirror side: complete it even though the first side already landed;
	// never roll the first side back.
	target, err := s.repo.GetUserByID(ctx, targetID)
	if err != nil {
		log.Warn("Mirror friend removal skipped, target missing",
			"requester_id", requesterID, "target_id", targetID, "error", err)
		return requester.Friends, nil
	}
	if trimmed, removed := removeFirst(target.Friends, requesterID); removed {
		if err := s.repo.UpdateFriends(ctx, target.ID, trimmed); err != nil {
			log.Error("Mirror friend removal failed, edge left asymmetric",
				"requester_id", requesterID, "target_id", targetID, "error", err)
		}
	}

	log.Info("Friend removed", "requester_id", requesterID, "target_id", targetID)
	return requester.Friends, nil
}

// RemoveAllFriends empties the requester's own list. One-sided: former
// friends keep their dangling reference to the requester.
func (s *service) RemoveAllFriends(ctx context.Context, requesterID string) error {
	if _, err := s.repo.GetUserByID(ctx, requesterID); err != nil {
		return err
	}
	return s.repo.UpdateFriends(ctx, requesterID, []domain.FriendRef{})
}

// ListFriends returns the stored friend list verbatim: stored order, no
// deduplication.
func (s *service) ListFriends(ctx context.Context, userID string) ([]domain.FriendRef, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Friends == nil {
		return []domain.FriendRef{}, nil
	}
	return user.Friends, nil
}

// removeFirst drops the first entry matching friendID. Reports whether an
// entry was removed so callers can skip the write on a no-op.
func removeFirst(friends []domain.FriendRef, friendID string) ([]domain.FriendRef, bool) {
	for i, ref := range friends {
		if ref.FriendID == friendID {
			return append(friends[:i:i], friends[i+1:]...), true
		}
	}
	return friends, false
}
