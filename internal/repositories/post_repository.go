package repositories

import (
	"context"

	"github.com/lksmueller/fankurve/internal/apperrors"
	"github.com/lksmueller/fankurve/internal/graph"
	"github.com/lksmueller/fankurve/internal/models"
)

// PostRepository defines the interface for post data operations. Mutations
// match the authorship edge in the same statement, so a non-owner can
// never modify a post even under concurrent calls; the ownership error
// split is the service layer's job via GetPostAuthor.
type PostRepository interface {
	CreatePost(ctx context.Context, authorEmail, content, clubTag string) (*models.Post, error)
	GetPostAuthor(ctx context.Context, postID string) (string, error)
	UpdatePost(ctx context.Context, authorEmail, postID, content string) (found bool, err error)
	DeletePost(ctx context.Context, authorEmail, postID string) (found bool, err error)
	ListPostsByAuthor(ctx context.Context, email string) ([]models.EnrichedPost, error)
}

// Neo4jPostRepository implements PostRepository against the graph store
type Neo4jPostRepository struct {
	runner graph.Runner
}

// NewNeo4jPostRepository creates a new Neo4jPostRepository
func NewNeo4jPostRepository(runner graph.Runner) *Neo4jPostRepository {
	return &Neo4jPostRepository{runner: runner}
}

// CreatePost publishes a post authored by authorEmail. The timestamp is
// assigned by the store (millisecond epoch).
func (r *Neo4jPostRepository) CreatePost(ctx context.Context, authorEmail, content, clubTag string) (*models.Post, error) {
	props := "{content: $content, createdAt: timestamp()}"
	params := map[string]any{
		"email":   authorEmail,
		"content": content,
	}
	if clubTag != "" {
		props = "{content: $content, createdAt: timestamp(), clubTag: $clubTag}"
		params["clubTag"] = clubTag
	}
	query := `
		MATCH (u:User {email: $email})
		CREATE (u)-[:POSTED]->(p:Post ` + props + `)
		RETURN elementId(p) AS id, p.content AS content, p.createdAt AS createdAt, p.clubTag AS clubTag`
	result, err := r.runner.Run(ctx, query, params)
	if err != nil {
		return nil, err
	}
	if len(result.Records) == 0 {
		return nil, apperrors.NotFoundf("user %s not found", authorEmail)
	}
	rec := result.Records[0]
	return &models.Post{
		ID:        graph.StringValue(rec, "id"),
		Author:    authorEmail,
		Content:   graph.StringValue(rec, "content"),
		CreatedAt: graph.IntValue(rec, "createdAt"),
		ClubTag:   graph.StringValue(rec, "clubTag"),
	}, nil
}

// GetPostAuthor returns the email of the post's author
func (r *Neo4jPostRepository) GetPostAuthor(ctx context.Context, postID string) (string, error) {
	query := `
		MATCH (u:User)-[:POSTED]->(p:Post)
		WHERE elementId(p) = $postID
		RETURN u.email AS author`
	result, err := r.runner.Run(ctx, query, map[string]any{"postID": postID})
	if err != nil {
		return "", err
	}
	if len(result.Records) == 0 {
		return "", apperrors.NotFoundf("post not found")
	}
	return graph.StringValue(result.Records[0], "author"), nil
}

// UpdatePost replaces the content of an own post
func (r *Neo4jPostRepository) UpdatePost(ctx context.Context, authorEmail, postID, content string) (bool, error) {
	query := `
		MATCH (u:User {email: $email})-[:POSTED]->(p:Post)
		WHERE elementId(p) = $postID
		SET p.content = $content
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

// DeletePost removes an own post together with its comment and like edges
func (r *Neo4jPostRepository) DeletePost(ctx context.Context, authorEmail, postID string) (bool, error) {
	query := `
		MATCH (u:User {email: $email})-[:POSTED]->(p:Post)
		WHERE elementId(p) = $postID
		DETACH DELETE p`
	result, err := r.runner.Run(ctx, query, map[string]any{
		"email":  authorEmail,
		"postID": postID,
	})
	if err != nil {
		return false, err
	}
	return result.Summary.Counters().NodesDeleted() > 0, nil
}

// ListPostsByAuthor retrieves the author's own posts with engagement data,
// newest first
func (r *Neo4jPostRepository) ListPostsByAuthor(ctx context.Context, email string) ([]models.EnrichedPost, error) {
	query := `
		MATCH (author:User {email: $email})-[:POSTED]->(p:Post)` +
		enrichedBranches + enrichedReturn + `
		ORDER BY createdAt DESC`
	result, err := r.runner.Run(ctx, query, map[string]any{"email": email})
	if err != nil {
		return nil, err
	}
	posts := make([]models.EnrichedPost, 0, len(result.Records))
	for _, rec := range result.Records {
		posts = append(posts, enrichedFromRecord(rec))
	}
	return posts, nil
}
