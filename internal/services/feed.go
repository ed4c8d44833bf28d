package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/lksmueller/fankurve/internal/apperrors"
	"github.com/lksmueller/fankurve/internal/models"
	"github.com/lksmueller/fankurve/internal/repositories"
)

const (
	// extraTeamThreshold is the minimum number of distinct friends that
	// must favor a club before it surfaces in a fan's extraTeam category.
	extraTeamThreshold = 5
	// dayMillis is the last24h window.
	dayMillis = 86_400_000
	// topFeedLimit caps the journalist topLiked/topCommented views.
	topFeedLimit = 5
)

// FeedService is the feed aggregation engine. It selects post sources by
// viewer role, enriches them with deduplicated engagement data and merges
// them into one timestamp-ordered sequence.
type FeedService struct {
	users repositories.UserRepository
	feeds repositories.FeedRepository
	posts repositories.PostRepository
	now   func() int64
}

// NewFeedService creates a new FeedService
func NewFeedService(users repositories.UserRepository, feeds repositories.FeedRepository, posts repositories.PostRepository) *FeedService {
	return &FeedService{
		users: users,
		feeds: feeds,
		posts: posts,
		now:   func() int64 { return time.Now().UnixMilli() },
	}
}

// ComputeFeed returns the personalized or filtered feed for the viewer.
// Fans get the four-category merge, clubs the own/fan split, journalists
// the mode-selected flat view. The admin account has no feed.
func (s *FeedService) ComputeFeed(ctx context.Context, viewerEmail string, opts models.FeedOptions) ([]models.EnrichedPost, error) {
	viewer, err := s.users.GetUserByEmail(ctx, viewerEmail)
	if err != nil {
		return nil, err
	}
	switch profile := viewer.Profile.(type) {
	case models.FanProfile:
		return s.fanFeed(ctx, viewer, profile)
	case models.ClubProfile:
		return s.clubFeed(ctx, viewer, profile)
	case models.JournalistProfile:
		return s.journalistFeed(ctx, opts)
	case models.AdminProfile:
		return nil, apperrors.Authorizationf("no feed exists for role %s", viewer.Role)
	default:
		return nil, apperrors.Authorizationf("no feed exists for role %s", viewer.Role)
	}
}

// fanFeed merges four independently queried categories: the favorite
// club's posts, same-team fan posts, friend posts and posts by clubs
// popular within the friend circle.
func (s *FeedService) fanFeed(ctx context.Context, viewer *models.User, profile models.FanProfile) ([]models.EnrichedPost, error) {
	team, err := s.feeds.TeamPosts(ctx, profile.FavoriteTeam)
	if err != nil {
		return nil, err
	}
	exchange, err := s.feeds.FanExchangePosts(ctx, profile.FavoriteTeam, viewer.Email)
	if err != nil {
		return nil, err
	}
	friends, err := s.feeds.FriendPosts(ctx, viewer.Email)
	if err != nil {
		return nil, err
	}
	extraTeams, err := s.extraTeams(ctx, viewer.Email, profile.FavoriteTeam)
	if err != nil {
		return nil, err
	}
	extra, err := s.feeds.ClubPosts(ctx, extraTeams)
	if err != nil {
		return nil, err
	}

	return mergeFeed(
		labelCategory(team, models.CategoryTeam),
		labelCategory(exchange, models.CategoryFanExchange),
		labelCategory(friends, models.CategoryFriend),
		labelCategory(extra, models.CategoryExtraTeam),
	), nil
}

// extraTeams lists the clubs favored by at least extraTeamThreshold
// distinct friends of the viewer, excluding the viewer's own team. Sorted
// so repeated calls produce the same query parameters.
func (s *FeedService) extraTeams(ctx context.Context, viewerEmail, favoriteTeam string) ([]string, error) {
	counts, err := s.feeds.FriendTeamCounts(ctx, viewerEmail)
	if err != nil {
		return nil, err
	}
	teams := make([]string, 0, len(counts))
	for team, friends := range counts {
		if friends >= extraTeamThreshold && team != favoriteTeam {
			teams = append(teams, team)
		}
	}
	sort.Strings(teams)
	return teams, nil
}

// clubFeed merges the club's own posts with fan posts about the club.
func (s *FeedService) clubFeed(ctx context.Context, viewer *models.User, profile models.ClubProfile) ([]models.EnrichedPost, error) {
	own, err := s.posts.ListPostsByAuthor(ctx, viewer.Email)
	if err != nil {
		return nil, err
	}
	fan, err := s.feeds.FanPostsForClub(ctx, profile.ClubName)
	if err != nil {
		return nil, err
	}
	return mergeFeed(
		labelCategory(own, models.CategoryOwn),
		labelCategory(fan, models.CategoryFan),
	), nil
}

// journalistFeed is the flat view over all posts, shaped by the caller's
// mode.
func (s *FeedService) journalistFeed(ctx context.Context, opts models.FeedOptions) ([]models.EnrichedPost, error) {
	switch opts.Mode {
	case models.ModeFilterByTeam:
		team := strings.TrimSpace(opts.Team)
		if team == "" {
			return nil, apperrors.Validationf("team filter must not be blank")
		}
		return s.feeds.PostsByClubTag(ctx, team)
	case models.ModeTopLiked:
		posts, err := s.feeds.AllPosts(ctx)
		if err != nil {
			return nil, err
		}
		return topBy(posts, func(p models.EnrichedPost) int { return p.LikeCount }), nil
	case models.ModeTopCommented:
		posts, err := s.feeds.AllPosts(ctx)
		if err != nil {
			return nil, err
		}
		return topBy(posts, func(p models.EnrichedPost) int { return len(p.Comments) }), nil
	case models.ModeLast24h:
		return s.feeds.PostsSince(ctx, s.now()-dayMillis)
	case models.ModeAll, "":
		return s.feeds.AllPosts(ctx)
	default:
		return nil, apperrors.Validationf("unknown feed mode %q", opts.Mode)
	}
}

// labelCategory stamps the source category onto every post of a subset.
func labelCategory(posts []models.EnrichedPost, category models.FeedCategory) []models.EnrichedPost {
	for i := range posts {
		posts[i].Category = category
	}
	return posts
}

// mergeFeed unions the category subsets, dropping duplicate posts (the
// first category in priority order wins) and content-less rows, then
// orders everything by createdAt descending. The stable sort keeps the
// category priority order among equal timestamps.
func mergeFeed(groups ...[]models.EnrichedPost) []models.EnrichedPost {
	seen := make(map[string]struct{})
	merged := make([]models.EnrichedPost, 0)
	for _, group := range groups {
		for _, post := range group {
			if post.Content == "" {
				continue
			}
			if post.ID != "" {
				if _, dup := seen[post.ID]; dup {
					continue
				}
				seen[post.ID] = struct{}{}
			}
			merged = append(merged, post)
		}
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt > merged[j].CreatedAt
	})
	return merged
}

// topBy orders posts by the given count descending, breaking ties by
// createdAt descending, and caps the result at topFeedLimit.
func topBy(posts []models.EnrichedPost, count func(models.EnrichedPost) int) []models.EnrichedPost {
	ranked := make([]models.EnrichedPost, len(posts))
	copy(ranked, posts)
	sort.SliceStable(ranked, func(i, j int) bool {
		ci, cj := count(ranked[i]), count(ranked[j])
		if ci != cj {
			return ci > cj
		}
		return ranked[i].CreatedAt > ranked[j].CreatedAt
	})
	if len(ranked) > topFeedLimit {
		ranked = ranked[:topFeedLimit]
	}
	return ranked
}
