package services

import (
	"context"
	"strings"

	"github.com/lksmueller/fankurve/internal/apperrors"
	"github.com/lksmueller/fankurve/internal/models"
	"github.com/lksmueller/fankurve/internal/repositories"
)

// PostService covers publishing, editing and deleting posts plus the
// engagement operations (comment, like). Ownership and role gates run
// before every mutation.
type PostService struct {
	users    repositories.UserRepository
	posts    repositories.PostRepository
	comments repositories.CommentRepository
	likes    repositories.LikeRepository
}

// NewPostService creates a new PostService
func NewPostService(users repositories.UserRepository, posts repositories.PostRepository, comments repositories.CommentRepository, likes repositories.LikeRepository) *PostService {
	return &PostService{users: users, posts: posts, comments: comments, likes: likes}
}

// Publish creates a new post authored by the caller.
func (s *PostService) Publish(ctx context.Context, callerEmail, content, clubTag string) (*models.Post, error) {
	caller, err := s.users.GetUserByEmail(ctx, callerEmail)
	if err != nil {
		return nil, err
	}
	if err := requireAuthorRole(caller); err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.Validationf("post content must not be empty")
	}
	return s.posts.CreatePost(ctx, callerEmail, content, strings.TrimSpace(clubTag))
}

// EditOwn replaces the content of a post owned by the caller.
func (s *PostService) EditOwn(ctx context.Context, callerEmail, postID, content string) error {
	if strings.TrimSpace(content) == "" {
		return apperrors.Validationf("post content must not be empty")
	}
	author, err := s.posts.GetPostAuthor(ctx, postID)
	if err != nil {
		return err
	}
	if err := requireOwner(callerEmail, author); err != nil {
		return err
	}
	found, err := s.posts.UpdatePost(ctx, callerEmail, postID, content)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NotFoundf("post not found")
	}
	return nil
}

// DeleteOwn removes a post owned by the caller; its comment and like edges
// go with it.
func (s *PostService) DeleteOwn(ctx context.Context, callerEmail, postID string) error {
	author, err := s.posts.GetPostAuthor(ctx, postID)
	if err != nil {
		return err
	}
	if err := requireOwner(callerEmail, author); err != nil {
		return err
	}
	found, err := s.posts.DeletePost(ctx, callerEmail, postID)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NotFoundf("post not found")
	}
	return nil
}

// AddComment attaches an immutable comment to an existing post.
func (s *PostService) AddComment(ctx context.Context, callerEmail, postID, content string) error {
	caller, err := s.users.GetUserByEmail(ctx, callerEmail)
	if err != nil {
		return err
	}
	if err := requireAuthorRole(caller); err != nil {
		return err
	}
	if strings.TrimSpace(content) == "" {
		return apperrors.Validationf("comment content must not be empty")
	}
	found, err := s.comments.AddComment(ctx, callerEmail, postID, content)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NotFoundf("post not found")
	}
	return nil
}

// Like records that the caller likes the post. Liking twice is a conflict;
// the edge count never exceeds one per (user, post) pair. There is no
// unlike path. Any role may like, so only the caller's existence is
// checked.
func (s *PostService) Like(ctx context.Context, callerEmail, postID string) error {
	if _, err := s.users.GetUserByEmail(ctx, callerEmail); err != nil {
		return err
	}
	created, found, err := s.likes.LikePost(ctx, callerEmail, postID)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NotFoundf("post not found")
	}
	if !created {
		return apperrors.Conflictf("post already liked")
	}
	return nil
}

// ListOwn returns the caller's own posts with engagement data, newest
// first.
func (s *PostService) ListOwn(ctx context.Context, callerEmail string) ([]models.EnrichedPost, error) {
	return s.posts.ListPostsByAuthor(ctx, callerEmail)
}
