package services

import (
	"context"
	"testing"

	"github.com/lksmueller/fankurve/internal/apperrors"
	"github.com/lksmueller/fankurve/internal/models"
)

func post(id string, createdAt int64) models.EnrichedPost {
	return models.EnrichedPost{ID: id, Author: "author@example.com", Content: "content " + id, CreatedAt: createdAt}
}

func newFeedFixture(feeds *fakeFeedRepo, users ...*models.User) (*FeedService, *fakeContentStore) {
	store := newFakeContentStore()
	return NewFeedService(newFakeUserRepo(users...), feeds, store), store
}

func feedIDs(posts []models.EnrichedPost) []string {
	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	return ids
}

func TestFanFeedExtraTeamThreshold(t *testing.T) {
	// Six friends favor SC Borealis, three favor TSV Cosmos, seven favor
	// the viewer's own club. Only SC Borealis crosses into extraTeam.
	feeds := &fakeFeedRepo{
		teamCounts: map[string]int64{
			"FC Aurora":   7,
			"SC Borealis": 6,
			"TSV Cosmos":  3,
		},
	}
	svc, _ := newFeedFixture(feeds, fan("anna@example.com", "FC Aurora"))

	if _, err := svc.ComputeFeed(context.Background(), "anna@example.com", models.FeedOptions{}); err != nil {
		t.Fatalf("ComputeFeed failed: %v", err)
	}

	if len(feeds.clubPostsArg) != 1 || feeds.clubPostsArg[0] != "SC Borealis" {
		t.Fatalf("expected extraTeam query for [SC Borealis], got %v", feeds.clubPostsArg)
	}
}

func TestFanFeedExtraTeamExactThreshold(t *testing.T) {
	feeds := &fakeFeedRepo{
		teamCounts: map[string]int64{
			"SC Borealis": 5,
			"TSV Cosmos":  4,
		},
	}
	svc, _ := newFeedFixture(feeds, fan("anna@example.com", "FC Aurora"))

	if _, err := svc.ComputeFeed(context.Background(), "anna@example.com", models.FeedOptions{}); err != nil {
		t.Fatalf("ComputeFeed failed: %v", err)
	}

	if len(feeds.clubPostsArg) != 1 || feeds.clubPostsArg[0] != "SC Borealis" {
		t.Fatalf("expected exactly five friends to qualify, got %v", feeds.clubPostsArg)
	}
}

func TestFanFeedMergeDedupAndOrder(t *testing.T) {
	// p2 shows up both as a team post and a friend post; the team category
	// wins. Ordering is createdAt descending across all categories.
	feeds := &fakeFeedRepo{
		teamPosts: map[string][]models.EnrichedPost{
			"FC Aurora": {post("p2", 200), post("p1", 100)},
		},
		exchangePosts: []models.EnrichedPost{post("p4", 400)},
		friendPosts:   []models.EnrichedPost{post("p2", 200), post("p3", 300)},
	}
	svc, _ := newFeedFixture(feeds, fan("anna@example.com", "FC Aurora"))

	feed, err := svc.ComputeFeed(context.Background(), "anna@example.com", models.FeedOptions{})
	if err != nil {
		t.Fatalf("ComputeFeed failed: %v", err)
	}

	wantIDs := []string{"p4", "p3", "p2", "p1"}
	gotIDs := feedIDs(feed)
	if len(gotIDs) != len(wantIDs) {
		t.Fatalf("expected %v, got %v", wantIDs, gotIDs)
	}
	for i := range wantIDs {
		if gotIDs[i] != wantIDs[i] {
			t.Fatalf("expected %v, got %v", wantIDs, gotIDs)
		}
	}

	categories := map[string]models.FeedCategory{}
	for _, p := range feed {
		categories[p.ID] = p.Category
	}
	if categories["p2"] != models.CategoryTeam {
		t.Fatalf("expected p2 to keep the team category, got %s", categories["p2"])
	}
	if categories["p4"] != models.CategoryFanExchange {
		t.Fatalf("expected p4 in fanExchange, got %s", categories["p4"])
	}
	if categories["p3"] != models.CategoryFriend {
		t.Fatalf("expected p3 in friend, got %s", categories["p3"])
	}
}

func TestFanFeedDropsContentlessRows(t *testing.T) {
	feeds := &fakeFeedRepo{
		friendPosts: []models.EnrichedPost{
			{ID: "ghost", CreatedAt: 500},
			post("p1", 100),
		},
	}
	svc, _ := newFeedFixture(feeds, fan("anna@example.com", "FC Aurora"))

	feed, err := svc.ComputeFeed(context.Background(), "anna@example.com", models.FeedOptions{})
	if err != nil {
		t.Fatalf("ComputeFeed failed: %v", err)
	}
	if len(feed) != 1 || feed[0].ID != "p1" {
		t.Fatalf("expected only p1, got %v", feedIDs(feed))
	}
}

func TestClubFeedOwnAndFanCategories(t *testing.T) {
	feeds := &fakeFeedRepo{
		fanForClub: []models.EnrichedPost{post("f1", 50)},
	}
	svc, store := newFeedFixture(feeds, club("club@example.com", "FC Aurora"))
	ctx := context.Background()

	if _, err := store.CreatePost(ctx, "club@example.com", "match day", ""); err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}

	feed, err := svc.ComputeFeed(ctx, "club@example.com", models.FeedOptions{})
	if err != nil {
		t.Fatalf("ComputeFeed failed: %v", err)
	}
	if len(feed) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(feed))
	}

	for _, p := range feed {
		switch p.Author {
		case "club@example.com":
			if p.Category != models.CategoryOwn {
				t.Fatalf("expected own category for the club's post, got %s", p.Category)
			}
		default:
			if p.Category != models.CategoryFan {
				t.Fatalf("expected fan category for %s, got %s", p.ID, p.Category)
			}
		}
	}
}

func TestJournalistTopLiked(t *testing.T) {
	feeds := &fakeFeedRepo{
		allPosts: []models.EnrichedPost{
			{ID: "a", Content: "a", CreatedAt: 10, LikeCount: 9},
			{ID: "b", Content: "b", CreatedAt: 20, LikeCount: 1},
			{ID: "c", Content: "c", CreatedAt: 30, LikeCount: 9},
			{ID: "d", Content: "d", CreatedAt: 40, LikeCount: 5},
			{ID: "e", Content: "e", CreatedAt: 50, LikeCount: 0},
			{ID: "f", Content: "f", CreatedAt: 60, LikeCount: 3},
			{ID: "g", Content: "g", CreatedAt: 70, LikeCount: 9},
		},
	}
	svc, _ := newFeedFixture(feeds, journalist("press@example.com", "Daily Kick"))

	feed, err := svc.ComputeFeed(context.Background(), "press@example.com", models.FeedOptions{Mode: models.ModeTopLiked})
	if err != nil {
		t.Fatalf("ComputeFeed failed: %v", err)
	}

	// Three posts tie at 9 likes; newer ones rank first. The cap is five.
	wantIDs := []string{"g", "c", "a", "d", "f"}
	gotIDs := feedIDs(feed)
	if len(gotIDs) != len(wantIDs) {
		t.Fatalf("expected %v, got %v", wantIDs, gotIDs)
	}
	for i := range wantIDs {
		if gotIDs[i] != wantIDs[i] {
			t.Fatalf("expected %v, got %v", wantIDs, gotIDs)
		}
	}
}

func TestJournalistTopCommented(t *testing.T) {
	comment := models.CommentEntry{Author: "anna@example.com", Content: "nice"}
	feeds := &fakeFeedRepo{
		allPosts: []models.EnrichedPost{
			{ID: "a", Content: "a", CreatedAt: 10, Comments: []models.CommentEntry{comment, comment}},
			{ID: "b", Content: "b", CreatedAt: 20},
			{ID: "c", Content: "c", CreatedAt: 30, Comments: []models.CommentEntry{comment}},
		},
	}
	svc, _ := newFeedFixture(feeds, journalist("press@example.com", "Daily Kick"))

	feed, err := svc.ComputeFeed(context.Background(), "press@example.com", models.FeedOptions{Mode: models.ModeTopCommented})
	if err != nil {
		t.Fatalf("ComputeFeed failed: %v", err)
	}
	gotIDs := feedIDs(feed)
	if len(gotIDs) != 3 || gotIDs[0] != "a" || gotIDs[1] != "c" || gotIDs[2] != "b" {
		t.Fatalf("unexpected order: %v", gotIDs)
	}
}

func TestJournalistFilterByTeamTrimsInput(t *testing.T) {
	feeds := &fakeFeedRepo{
		taggedPosts: map[string][]models.EnrichedPost{
			"FC Aurora": {post("p1", 100)},
		},
	}
	svc, _ := newFeedFixture(feeds, journalist("press@example.com", "Daily Kick"))

	feed, err := svc.ComputeFeed(context.Background(), "press@example.com", models.FeedOptions{
		Mode: models.ModeFilterByTeam,
		Team: "  FC Aurora  ",
	})
	if err != nil {
		t.Fatalf("ComputeFeed failed: %v", err)
	}
	if feeds.tagArg != "FC Aurora" {
		t.Fatalf("expected trimmed team name, got %q", feeds.tagArg)
	}
	if len(feed) != 1 || feed[0].ID != "p1" {
		t.Fatalf("unexpected feed: %v", feedIDs(feed))
	}
}

func TestJournalistFilterByTeamRejectsBlank(t *testing.T) {
	svc, _ := newFeedFixture(&fakeFeedRepo{}, journalist("press@example.com", "Daily Kick"))

	_, err := svc.ComputeFeed(context.Background(), "press@example.com", models.FeedOptions{
		Mode: models.ModeFilterByTeam,
		Team: "   ",
	})
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestJournalistLast24hWindow(t *testing.T) {
	now := int64(2_000_000_000)
	feeds := &fakeFeedRepo{
		allPosts: []models.EnrichedPost{
			post("old", now-dayMillis-1),
			post("edge", now-dayMillis),
			post("new", now),
		},
	}
	svc, _ := newFeedFixture(feeds, journalist("press@example.com", "Daily Kick"))
	svc.now = func() int64 { return now }

	feed, err := svc.ComputeFeed(context.Background(), "press@example.com", models.FeedOptions{Mode: models.ModeLast24h})
	if err != nil {
		t.Fatalf("ComputeFeed failed: %v", err)
	}
	if feeds.sinceArg != now-dayMillis {
		t.Fatalf("expected since %d, got %d", now-dayMillis, feeds.sinceArg)
	}
	gotIDs := feedIDs(feed)
	if len(gotIDs) != 2 || gotIDs[0] != "edge" || gotIDs[1] != "new" {
		t.Fatalf("expected the edge and new posts, got %v", gotIDs)
	}
}

func TestJournalistDefaultsToAllPosts(t *testing.T) {
	feeds := &fakeFeedRepo{allPosts: []models.EnrichedPost{post("p1", 100)}}
	svc, _ := newFeedFixture(feeds, journalist("press@example.com", "Daily Kick"))

	feed, err := svc.ComputeFeed(context.Background(), "press@example.com", models.FeedOptions{})
	if err != nil {
		t.Fatalf("ComputeFeed failed: %v", err)
	}
	if len(feed) != 1 || feed[0].ID != "p1" {
		t.Fatalf("unexpected feed: %v", feedIDs(feed))
	}
}

func TestJournalistUnknownMode(t *testing.T) {
	svc, _ := newFeedFixture(&fakeFeedRepo{}, journalist("press@example.com", "Daily Kick"))

	_, err := svc.ComputeFeed(context.Background(), "press@example.com", models.FeedOptions{Mode: "trending"})
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAdminHasNoFeed(t *testing.T) {
	svc, _ := newFeedFixture(&fakeFeedRepo{}, admin("admin@example.com"))

	_, err := svc.ComputeFeed(context.Background(), "admin@example.com", models.FeedOptions{})
	if !apperrors.IsAuthorization(err) {
		t.Fatalf("expected authorization error, got %v", err)
	}
}

func TestComputeFeedUnknownViewer(t *testing.T) {
	svc, _ := newFeedFixture(&fakeFeedRepo{})

	_, err := svc.ComputeFeed(context.Background(), "ghost@example.com", models.FeedOptions{})
	if !apperrors.IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
}
