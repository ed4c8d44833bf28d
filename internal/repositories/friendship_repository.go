package repositories

import (
	"context"

	"github.com/lksmueller/fankurve/internal/graph"
	"github.com/lksmueller/fankurve/internal/models"
)

// FriendshipRepository defines the interface for friend-request and
// friendship edge operations. Created/found flags let the service layer
// decide the error kind without a second round trip.
type FriendshipRepository interface {
	CreateRequest(ctx context.Context, requester, target string) (created bool, err error)
	ListIncoming(ctx context.Context, target string) ([]models.FriendRequest, error)
	AcceptRequest(ctx context.Context, requester, target string) (found bool, err error)
	RejectRequest(ctx context.Context, requester, target string) (found bool, err error)
}

// Neo4jFriendshipRepository implements FriendshipRepository against the graph store
type Neo4jFriendshipRepository struct {
	runner graph.Runner
}

// NewNeo4jFriendshipRepository creates a new Neo4jFriendshipRepository
func NewNeo4jFriendshipRepository(runner graph.Runner) *Neo4jFriendshipRepository {
	return &Neo4jFriendshipRepository{runner: runner}
}

// CreateRequest creates the FRIEND_REQUEST edge requester→target unless it
// already exists. MERGE makes the existence check and the create a single
// indivisible step, so concurrent duplicate sends produce exactly one edge.
func (r *Neo4jFriendshipRepository) CreateRequest(ctx context.Context, requester, target string) (bool, error) {
	query := `
		MATCH (a:User {email: $requester}), (b:User {email: $target})
		MERGE (a)-[req:FRIEND_REQUEST]->(b)
		RETURN req`
	result, err := r.runner.Run(ctx, query, map[string]any{
		"requester": requester,
		"target":    target,
	})
	if err != nil {
		return false, err
	}
	return result.Summary.Counters().RelationshipsCreated() > 0, nil
}

// ListIncoming retrieves all pending requests directed at target
func (r *Neo4jFriendshipRepository) ListIncoming(ctx context.Context, target string) ([]models.FriendRequest, error) {
	query := `
		MATCH (requester:User)-[:FRIEND_REQUEST]->(u:User {email: $email})
		RETURN requester.email AS requester
		ORDER BY requester`
	result, err := r.runner.Run(ctx, query, map[string]any{"email": target})
	if err != nil {
		return nil, err
	}
	requests := make([]models.FriendRequest, 0, len(result.Records))
	for _, rec := range result.Records {
		requests = append(requests, models.FriendRequest{
			Requester: graph.StringValue(rec, "requester"),
			Target:    target,
		})
	}
	return requests, nil
}

// AcceptRequest deletes the pending request and creates both FRIENDS_WITH
// directions in one statement. No reader can observe the request gone with
// only one direction present. Returns false when no pending request exists.
func (r *Neo4jFriendshipRepository) AcceptRequest(ctx context.Context, requester, target string) (bool, error) {
	query := `
		MATCH (a:User {email: $requester})-[req:FRIEND_REQUEST]->(b:User {email: $target})
		DELETE req
		CREATE (a)-[:FRIENDS_WITH]->(b)
		CREATE (b)-[:FRIENDS_WITH]->(a)`
	result, err := r.runner.Run(ctx, query, map[string]any{
		"requester": requester,
		"target":    target,
	})
	if err != nil {
		return false, err
	}
	return result.Summary.Counters().RelationshipsDeleted() > 0, nil
}

// RejectRequest deletes the pending request without creating a friendship.
// Returns false when no pending request exists.
func (r *Neo4jFriendshipRepository) RejectRequest(ctx context.Context, requester, target string) (bool, error) {
	query := `
		MATCH (a:User {email: $requester})-[req:FRIEND_REQUEST]->(b:User {email: $target})
		DELETE req`
	result, err := r.runner.Run(ctx, query, map[string]any{
		"requester": requester,
		"target":    target,
	})
	if err != nil {
		return false, err
	}
	return result.Summary.Counters().RelationshipsDeleted() > 0, nil
}
