package services

import (
	"context"

	"github.com/lksmueller/fankurve/internal/models"
	"github.com/lksmueller/fankurve/internal/repositories"
)

// UserService covers the directory operations: the public club list and
// the admin-only user listing and data export.
type UserService struct {
	users  repositories.UserRepository
	export repositories.ExportRepository
}

// NewUserService creates a new UserService
func NewUserService(users repositories.UserRepository, export repositories.ExportRepository) *UserService {
	return &UserService{users: users, export: export}
}

// ListClubs returns all registered club names, available to any
// authenticated user.
func (s *UserService) ListClubs(ctx context.Context, callerEmail string) ([]string, error) {
	if _, err := s.users.GetUserByEmail(ctx, callerEmail); err != nil {
		return nil, err
	}
	return s.users.ListClubs(ctx)
}

// ListUsers returns every registered user. Admin only.
func (s *UserService) ListUsers(ctx context.Context, callerEmail string) ([]models.User, error) {
	caller, err := s.users.GetUserByEmail(ctx, callerEmail)
	if err != nil {
		return nil, err
	}
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	return s.users.ListUsers(ctx)
}

// ExportData returns the full graph dump with credential hashes redacted.
// Admin only.
func (s *UserService) ExportData(ctx context.Context, callerEmail string) (*models.GraphExport, error) {
	caller, err := s.users.GetUserByEmail(ctx, callerEmail)
	if err != nil {
		return nil, err
	}
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	export, err := s.export.ExportGraph(ctx)
	if err != nil {
		return nil, err
	}
	for _, node := range export.Nodes {
		delete(node.Properties, "passwordHash")
	}
	return export, nil
}
