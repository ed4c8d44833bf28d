package services

import (
	"context"

	"github.com/lksmueller/fankurve/internal/apperrors"
	"github.com/lksmueller/fankurve/internal/models"
	"github.com/lksmueller/fankurve/internal/repositories"
)

// FriendshipService drives the friend-request state machine between fans:
// NONE → REQUESTED → {FRIENDS, NONE}. FRIENDS is symmetric and terminal;
// there is no un-friend operation.
type FriendshipService struct {
	users       repositories.UserRepository
	friendships repositories.FriendshipRepository
}

// NewFriendshipService creates a new FriendshipService
func NewFriendshipService(users repositories.UserRepository, friendships repositories.FriendshipRepository) *FriendshipService {
	return &FriendshipService{users: users, friendships: friendships}
}

// SendRequest creates a pending request requester→target. Both parties
// must be fans, the target must exist, and at most one request per ordered
// pair can be outstanding.
func (s *FriendshipService) SendRequest(ctx context.Context, requesterEmail, targetEmail string) error {
	if requesterEmail == targetEmail {
		return apperrors.Validationf("cannot send a friend request to yourself")
	}
	requester, err := s.users.GetUserByEmail(ctx, requesterEmail)
	if err != nil {
		return err
	}
	if err := requireFan(requester); err != nil {
		return err
	}
	target, err := s.users.GetUserByEmail(ctx, targetEmail)
	if err != nil {
		return err
	}
	if err := requireFan(target); err != nil {
		return err
	}
	created, err := s.friendships.CreateRequest(ctx, requesterEmail, targetEmail)
	if err != nil {
		return err
	}
	if !created {
		return apperrors.Conflictf("friend request to %s already sent", targetEmail)
	}
	return nil
}

// ListIncoming returns the pending requests directed at the caller. An
// empty list is a normal outcome.
func (s *FriendshipService) ListIncoming(ctx context.Context, userEmail string) ([]models.FriendRequest, error) {
	user, err := s.users.GetUserByEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}
	if err := requireFan(user); err != nil {
		return nil, err
	}
	return s.friendships.ListIncoming(ctx, userEmail)
}

// Resolve accepts or rejects the pending request requester→caller. Accept
// removes the request and creates both friendship directions in one
// atomic step; reject only removes the request.
func (s *FriendshipService) Resolve(ctx context.Context, requesterEmail, targetEmail string, decision models.Decision) error {
	target, err := s.users.GetUserByEmail(ctx, targetEmail)
	if err != nil {
		return err
	}
	if err := requireFan(target); err != nil {
		return err
	}

	var found bool
	switch decision {
	case models.DecisionAccept:
		found, err = s.friendships.AcceptRequest(ctx, requesterEmail, targetEmail)
	case models.DecisionReject:
		found, err = s.friendships.RejectRequest(ctx, requesterEmail, targetEmail)
	default:
		return apperrors.Validationf("unknown decision %q", decision)
	}
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NotFoundf("no pending friend request from %s", requesterEmail)
	}
	return nil
}
