package models

// CommentEntry is a comment paired with its resolved author, as surfaced
// in feed enrichment. Comments are immutable once created.
type CommentEntry struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

// CreateCommentRequest defines the request body for commenting on a post.
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
}
