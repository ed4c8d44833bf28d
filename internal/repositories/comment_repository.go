package repositories

import (
	"context"

	"github.com/lksmueller/fankurve/internal/graph"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	AddComment(ctx context.Context, authorEmail, postID, content string) (found bool, err error)
}

// Neo4jCommentRepository implements CommentRepository against the graph store
type Neo4jCommentRepository struct {
	runner graph.Runner
}

// NewNeo4jCommentRepository creates a new Neo4jCommentRepository
func NewNeo4jCommentRepository(runner graph.Runner) *Neo4jCommentRepository {
	return &Neo4jCommentRepository{runner: runner}
}

// AddComment attaches a comment edge from the author to the post. Returns
// false when the post does not exist.
func (r *Neo4jCommentRepository) AddComment(ctx context.Context, authorEmail, postID, content string) (bool, error) {
	query := `
		MATCH (u:User {email: $email})
		MATCH (p:Post)
		WHERE elementId(p) = $postID
		CREATE (u)-[:COMMENTED {content: $content, createdAt: timestamp()}]->(p)
		RETURN p`
	result, err := r.runner.Run(ctx, query, map[string]any{
		"email":   authorEmail,
		"postID":  postID,
		"content": content,
	})
	if err != nil {
		return false, err
	}
	return len(result.Records) > 0, nil
}
