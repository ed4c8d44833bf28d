package repositories

import (
	"context"

	"github.com/lksmueller/fankurve/internal/graph"
	"github.com/lksmueller/fankurve/internal/models"
)

// FeedRepository defines the typed source queries the feed aggregation
// engine merges. Each query returns a flat, enriched post list ordered by
// createdAt descending; category labelling, threshold logic and the final
// merge happen in the service layer.
type FeedRepository interface {
	// TeamPosts: posts authored by the club with the given name.
	TeamPosts(ctx context.Context, clubName string) ([]models.EnrichedPost, error)
	// FanExchangePosts: posts by other fans of the same favorite team.
	FanExchangePosts(ctx context.Context, favoriteTeam, excludeEmail string) ([]models.EnrichedPost, error)
	// FriendPosts: posts authored by the viewer's friends.
	FriendPosts(ctx context.Context, viewerEmail string) ([]models.EnrichedPost, error)
	// ClubPosts: posts authored by any club whose name is in clubNames.
	ClubPosts(ctx context.Context, clubNames []string) ([]models.EnrichedPost, error)
	// FriendTeamCounts: distinct friends of the viewer per favorite team.
	FriendTeamCounts(ctx context.Context, viewerEmail string) (map[string]int64, error)
	// FanPostsForClub: posts by fans of the club, or tagged with its name.
	FanPostsForClub(ctx context.Context, clubName string) ([]models.EnrichedPost, error)
	// AllPosts: every post, regardless of author or relationships.
	AllPosts(ctx context.Context) ([]models.EnrichedPost, error)
	// PostsByClubTag: posts carrying the given club tag.
	PostsByClubTag(ctx context.Context, team string) ([]models.EnrichedPost, error)
	// PostsSince: posts created at or after the given millisecond epoch.
	PostsSince(ctx context.Context, sinceMillis int64) ([]models.EnrichedPost, error)
}

// Neo4jFeedRepository implements FeedRepository against the graph store
type Neo4jFeedRepository struct {
	runner graph.Runner
}

// NewNeo4jFeedRepository creates a new Neo4jFeedRepository
func NewNeo4jFeedRepository(runner graph.Runner) *Neo4jFeedRepository {
	return &Neo4jFeedRepository{runner: runner}
}

// queryEnriched runs a post selection clause binding author and p, then
// joins likes and comments and scans the enriched rows, newest first.
func (r *Neo4jFeedRepository) queryEnriched(ctx context.Context, matchClause string, params map[string]any) ([]models.EnrichedPost, error) {
	query := matchClause + enrichedBranches + enrichedReturn + `
		ORDER BY createdAt DESC`
	result, err := r.runner.Run(ctx, query, params)
	if err != nil {
		return nil, err
	}
	posts := make([]models.EnrichedPost, 0, len(result.Records))
	for _, rec := range result.Records {
		post := enrichedFromRecord(rec)
		if post.Content == "" {
			// optional-match artifact, no real post behind the row
			continue
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// TeamPosts retrieves the posts of the club the viewer favors
func (r *Neo4jFeedRepository) TeamPosts(ctx context.Context, clubName string) ([]models.EnrichedPost, error) {
	return r.queryEnriched(ctx, `
		MATCH (author:User {role: 'Club', clubName: $clubName})-[:POSTED]->(p:Post)`,
		map[string]any{"clubName": clubName})
}

// FanExchangePosts retrieves posts by other fans of the same team
func (r *Neo4jFeedRepository) FanExchangePosts(ctx context.Context, favoriteTeam, excludeEmail string) ([]models.EnrichedPost, error) {
	return r.queryEnriched(ctx, `
		MATCH (author:User {role: 'Fan', favoriteTeam: $favoriteTeam})-[:POSTED]->(p:Post)
		WHERE author.email <> $viewer`,
		map[string]any{"favoriteTeam": favoriteTeam, "viewer": excludeEmail})
}

// FriendPosts retrieves posts authored by the viewer's friends
func (r *Neo4jFeedRepository) FriendPosts(ctx context.Context, viewerEmail string) ([]models.EnrichedPost, error) {
	return r.queryEnriched(ctx, `
		MATCH (me:User {email: $viewer})-[:FRIENDS_WITH]->(author:User)-[:POSTED]->(p:Post)`,
		map[string]any{"viewer": viewerEmail})
}

// ClubPosts retrieves posts by any club named in clubNames
func (r *Neo4jFeedRepository) ClubPosts(ctx context.Context, clubNames []string) ([]models.EnrichedPost, error) {
	if len(clubNames) == 0 {
		return nil, nil
	}
	return r.queryEnriched(ctx, `
		MATCH (author:User {role: 'Club'})-[:POSTED]->(p:Post)
		WHERE author.clubName IN $clubNames`,
		map[string]any{"clubNames": clubNames})
}

// FriendTeamCounts counts the viewer's distinct friends per favorite team
func (r *Neo4jFeedRepository) FriendTeamCounts(ctx context.Context, viewerEmail string) (map[string]int64, error) {
	query := `
		MATCH (me:User {email: $viewer})-[:FRIENDS_WITH]->(friend:User)
		WHERE friend.favoriteTeam IS NOT NULL
		RETURN friend.favoriteTeam AS team, count(DISTINCT friend) AS friends`
	result, err := r.runner.Run(ctx, query, map[string]any{"viewer": viewerEmail})
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(result.Records))
	for _, rec := range result.Records {
		if team := graph.StringValue(rec, "team"); team != "" {
			counts[team] = graph.IntValue(rec, "friends")
		}
	}
	return counts, nil
}

// FanPostsForClub retrieves fan posts about the club: authored by its fans
// or tagged with its name
func (r *Neo4jFeedRepository) FanPostsForClub(ctx context.Context, clubName string) ([]models.EnrichedPost, error) {
	return r.queryEnriched(ctx, `
		MATCH (author:User {role: 'Fan'})-[:POSTED]->(p:Post)
		WHERE author.favoriteTeam = $clubName OR p.clubTag = $clubName`,
		map[string]any{"clubName": clubName})
}

// AllPosts retrieves every post
func (r *Neo4jFeedRepository) AllPosts(ctx context.Context) ([]models.EnrichedPost, error) {
	return r.queryEnriched(ctx, `
		MATCH (author:User)-[:POSTED]->(p:Post)`, nil)
}

// PostsByClubTag retrieves posts tagged with the given club name
func (r *Neo4jFeedRepository) PostsByClubTag(ctx context.Context, team string) ([]models.EnrichedPost, error) {
	return r.queryEnriched(ctx, `
		MATCH (author:User)-[:POSTED]->(p:Post)
		WHERE p.clubTag = $team`,
		map[string]any{"team": team})
}

// PostsSince retrieves posts created at or after sinceMillis
func (r *Neo4jFeedRepository) PostsSince(ctx context.Context, sinceMillis int64) ([]models.EnrichedPost, error) {
	return r.queryEnriched(ctx, `
		MATCH (author:User)-[:POSTED]->(p:Post)
		WHERE p.createdAt >= $since`,
		map[string]any{"since": sinceMillis})
}
