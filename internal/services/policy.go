// Package services holds the application core: the friend-request state
// machine, the feed aggregation engine and the authorization policy that
// gates every operation by role and ownership.
package services

import (
	"github.com/lksmueller/fankurve/internal/apperrors"
	"github.com/lksmueller/fankurve/internal/models"
)

// The authorization policy. Checks run before any state-machine or
// aggregation call; a failed check is always an Authorization error.

// requireFan gates the friendship operations: both endpoints must be fans.
func requireFan(u *models.User) error {
	if u.Role != models.RoleFan {
		return apperrors.Authorizationf("only fans can manage friendships")
	}
	return nil
}

// requireAuthorRole gates content authorship. Admin cannot publish or
// comment.
func requireAuthorRole(u *models.User) error {
	switch u.Role {
	case models.RoleFan, models.RoleClub, models.RoleJournalist:
		return nil
	}
	return apperrors.Authorizationf("role %s cannot publish content", u.Role)
}

// requireAdmin gates the admin-only operations: user listing and the
// global data export.
func requireAdmin(u *models.User) error {
	if u.Role != models.RoleAdmin {
		return apperrors.Authorizationf("access denied: admins only")
	}
	return nil
}

// requireOwner gates post mutation: only the authoring user may edit or
// delete, regardless of role.
func requireOwner(callerEmail, authorEmail string) error {
	if callerEmail != authorEmail {
		return apperrors.Authorizationf("only the author can modify this post")
	}
	return nil
}
