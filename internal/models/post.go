package models

// Post is a published text post. The ID is the store-assigned opaque
// element id; CreatedAt is a millisecond epoch timestamp assigned by the
// store at publish time.
type Post struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"created_at"`
	ClubTag   string `json:"club_tag,omitempty"`
}

// CreatePostRequest defines the request body for publishing a new post.
type CreatePostRequest struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
	ClubTag string `json:"club_tag" validate:"omitempty,max=100"`
}

// UpdatePostRequest defines the request body for editing an own post.
type UpdatePostRequest struct {
	Content string `json:"content" validate:"required,min=1,max=500"`
}
