package repositories

import (
	"context"
	"sort"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/lksmueller/fankurve/internal/apperrors"
	"github.com/lksmueller/fankurve/internal/graph"
	"github.com/lksmueller/fankurve/internal/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	CreateAdmin(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByIdentifier(ctx context.Context, identifier string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	ListClubs(ctx context.Context) ([]string, error)
}

// Neo4jUserRepository implements UserRepository against the graph store
type Neo4jUserRepository struct {
	runner graph.Runner
}

// NewNeo4jUserRepository creates a new Neo4jUserRepository
func NewNeo4jUserRepository(runner graph.Runner) *Neo4jUserRepository {
	return &Neo4jUserRepository{runner: runner}
}

// CreateUser creates a User node. Uniqueness of email, username and club
// name is enforced by the store's constraints, so concurrent duplicate
// registrations cannot both succeed.
func (r *Neo4jUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	props := map[string]any{
		"email":        user.Email,
		"username":     user.Username,
		"passwordHash": user.PasswordHash,
		"role":         string(user.Role),
	}
	switch p := user.Profile.(type) {
	case models.FanProfile:
		props["favoriteTeam"] = p.FavoriteTeam
	case models.ClubProfile:
		props["clubName"] = p.ClubName
	case models.JournalistProfile:
		props["affiliation"] = p.Affiliation
	case models.AdminProfile:
		// no role-specific property
	}
	if err := graph.CreateNode(ctx, r.runner, "User", props); err != nil {
		if graph.IsConstraintViolation(err) {
			return apperrors.Conflictf("email, username or club name already taken")
		}
		return err
	}
	return nil
}

// CreateAdmin creates the singleton admin account. The existence check and
// the create run in one statement, so two concurrent bootstraps cannot
// both create an admin.
func (r *Neo4jUserRepository) CreateAdmin(ctx context.Context, user *models.User) error {
	query := `
		OPTIONAL MATCH (existing:User {role: 'Admin'})
		WITH existing
		WHERE existing IS NULL
		CREATE (u:User {email: $email, passwordHash: $passwordHash, role: 'Admin'})
		RETURN u`
	result, err := r.runner.Run(ctx, query, map[string]any{
		"email":        user.Email,
		"passwordHash": user.PasswordHash,
	})
	if err != nil {
		if graph.IsConstraintViolation(err) {
			return apperrors.Conflictf("email already taken")
		}
		return err
	}
	if len(result.Records) == 0 {
		return apperrors.Conflictf("an admin account already exists")
	}
	return nil
}

// GetUserByEmail retrieves a user by email
func (r *Neo4jUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	node, found, err := graph.FindOneNode(ctx, r.runner, "User", map[string]any{"email": email})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NotFoundf("user %s not found", email)
	}
	return userFromNode(node), nil
}

// GetUserByIdentifier retrieves a user by email or username
func (r *Neo4jUserRepository) GetUserByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	query := `
		MATCH (u:User)
		WHERE u.email = $identifier OR u.username = $identifier
		RETURN u`
	result, err := r.runner.Run(ctx, query, map[string]any{"identifier": identifier})
	if err != nil {
		return nil, err
	}
	if len(result.Records) == 0 {
		return nil, apperrors.NotFoundf("user %s not found", identifier)
	}
	node, ok := graph.NodeValue(result.Records[0], "u")
	if !ok {
		return nil, apperrors.NotFoundf("user %s not found", identifier)
	}
	return userFromNode(node), nil
}

// ListUsers retrieves all users, ordered by email
func (r *Neo4jUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	query := `MATCH (u:User) RETURN u ORDER BY u.email`
	result, err := r.runner.Run(ctx, query, nil)
	if err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(result.Records))
	for _, rec := range result.Records {
		if node, ok := graph.NodeValue(rec, "u"); ok {
			users = append(users, *userFromNode(node))
		}
	}
	return users, nil
}

// ListClubs retrieves the names of all registered clubs, ordered ascending
func (r *Neo4jUserRepository) ListClubs(ctx context.Context) ([]string, error) {
	nodes, err := graph.FindNodes(ctx, r.runner, "User", map[string]any{"role": string(models.RoleClub)})
	if err != nil {
		return nil, err
	}
	clubs := make([]string, 0, len(nodes))
	for _, node := range nodes {
		if name := nodeString(node, "clubName"); name != "" {
			clubs = append(clubs, name)
		}
	}
	sort.Strings(clubs)
	return clubs, nil
}

// userFromNode maps a User node onto the tagged role variant.
func userFromNode(node neo4j.Node) *models.User {
	user := &models.User{
		Email:        nodeString(node, "email"),
		Username:     nodeString(node, "username"),
		PasswordHash: nodeString(node, "passwordHash"),
		Role:         models.Role(nodeString(node, "role")),
	}
	switch user.Role {
	case models.RoleFan:
		user.Profile = models.FanProfile{FavoriteTeam: nodeString(node, "favoriteTeam")}
	case models.RoleClub:
		user.Profile = models.ClubProfile{ClubName: nodeString(node, "clubName")}
	case models.RoleJournalist:
		user.Profile = models.JournalistProfile{Affiliation: nodeString(node, "affiliation")}
	case models.RoleAdmin:
		user.Profile = models.AdminProfile{}
	}
	return user
}

func nodeString(node neo4j.Node, key string) string {
	if v, ok := node.Props[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
