package repositories

import (
	"context"

	"github.com/lksmueller/fankurve/internal/graph"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	// LikePost creates the LIKED edge user→post. found is false when the
	// post does not exist; created is false when the edge already existed.
	LikePost(ctx context.Context, userEmail, postID string) (created bool, found bool, err error)
}

// Neo4jLikeRepository implements LikeRepository against the graph store
type Neo4jLikeRepository struct {
	runner graph.Runner
}

// NewNeo4jLikeRepository creates a new Neo4jLikeRepository
func NewNeo4jLikeRepository(runner graph.Runner) *Neo4jLikeRepository {
	return &Neo4jLikeRepository{runner: runner}
}

// LikePost creates the like edge unless it already exists. MERGE keeps the
// (user, post) pair unique even when two callers like the same post at
// once.
func (r *Neo4jLikeRepository) LikePost(ctx context.Context, userEmail, postID string) (bool, bool, error) {
	query := `
		MATCH (u:User {email: $email})
		MATCH (p:Post)
		WHERE elementId(p) = $postID
		MERGE (u)-[:LIKED]->(p)
		RETURN p`
	result, err := r.runner.Run(ctx, query, map[string]any{
		"email":  userEmail,
		"postID": postID,
	})
	if err != nil {
		return false, false, err
	}
	if len(result.Records) == 0 {
		return false, false, nil
	}
	return result.Summary.Counters().RelationshipsCreated() > 0, true, nil
}
