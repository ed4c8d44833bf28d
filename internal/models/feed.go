package models

// FeedCategory labels the source a feed entry was selected by. Fan feeds
// use team, fanExchange, friend and extraTeam; club feeds use own and fan.
// Journalist feeds carry no category.
type FeedCategory string

const (
	CategoryTeam        FeedCategory = "team"
	CategoryFanExchange FeedCategory = "fanExchange"
	CategoryFriend      FeedCategory = "friend"
	CategoryExtraTeam   FeedCategory = "extraTeam"
	CategoryOwn         FeedCategory = "own"
	CategoryFan         FeedCategory = "fan"
)

// EnrichedPost is a post augmented with its engagement data: the
// deduplicated set of liking users and the full comment sequence with
// resolved authors. LikeCount is the cardinality of LikedBy, never a raw
// edge count.
type EnrichedPost struct {
	ID        string         `json:"id"`
	Author    string         `json:"author"`
	Content   string         `json:"content"`
	CreatedAt int64          `json:"created_at"`
	ClubTag   string         `json:"club_tag,omitempty"`
	Category  FeedCategory   `json:"category,omitempty"`
	LikeCount int            `json:"like_count"`
	LikedBy   []string       `json:"liked_by"`
	Comments  []CommentEntry `json:"comments"`
}

// FeedMode selects the journalist view over all posts.
type FeedMode string

const (
	ModeFilterByTeam FeedMode = "filterByTeam"
	ModeTopLiked     FeedMode = "topLiked"
	ModeTopCommented FeedMode = "topCommented"
	ModeLast24h      FeedMode = "last24h"
	ModeAll          FeedMode = "all"
)

// FeedOptions are the caller-selected options for computeFeed. Only
// journalist feeds interpret them; Team is the club name for
// filterByTeam.
type FeedOptions struct {
	Mode FeedMode
	Team string
}
