package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/lksmueller/fankurve/internal/apperrors"
	"github.com/lksmueller/fankurve/internal/models"
)

// In-memory stand-ins for the Neo4j repositories. They reproduce the
// found/created flag semantics of the real implementations so the service
// layer can be exercised without a running store.

func fan(email, team string) *models.User {
	return &models.User{Email: email, Role: models.RoleFan, Profile: models.FanProfile{FavoriteTeam: team}}
}

func club(email, name string) *models.User {
	return &models.User{Email: email, Role: models.RoleClub, Profile: models.ClubProfile{ClubName: name}}
}

func journalist(email, affiliation string) *models.User {
	return &models.User{Email: email, Role: models.RoleJournalist, Profile: models.JournalistProfile{Affiliation: affiliation}}
}

func admin(email string) *models.User {
	return &models.User{Email: email, Role: models.RoleAdmin, Profile: models.AdminProfile{}}
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		repo.users[u.Email] = u
	}
	return repo
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *models.User) error {
	if _, ok := f.users[user.Email]; ok {
		return apperrors.Conflictf("email, username or club name already taken")
	}
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) CreateAdmin(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Role == models.RoleAdmin {
			return apperrors.Conflictf("an admin account already exists")
		}
	}
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, apperrors.NotFoundf("user %s not found", email)
	}
	return u, nil
}

func (f *fakeUserRepo) GetUserByIdentifier(_ context.Context, identifier string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == identifier || u.Username == identifier {
			return u, nil
		}
	}
	return nil, apperrors.NotFoundf("user %s not found", identifier)
}

func (f *fakeUserRepo) ListUsers(_ context.Context) ([]models.User, error) {
	users := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })
	return users, nil
}

func (f *fakeUserRepo) ListClubs(_ context.Context) ([]string, error) {
	clubs := make([]string, 0)
	for _, u := range f.users {
		if name, ok := u.ClubName(); ok {
			clubs = append(clubs, name)
		}
	}
	sort.Strings(clubs)
	return clubs, nil
}

type fakeFriendshipRepo struct {
	requests map[string]map[string]bool
	friends  map[string]map[string]bool
}

func newFakeFriendshipRepo() *fakeFriendshipRepo {
	return &fakeFriendshipRepo{
		requests: make(map[string]map[string]bool),
		friends:  make(map[string]map[string]bool),
	}
}

func (f *fakeFriendshipRepo) CreateRequest(_ context.Context, requester, target string) (bool, error) {
	if f.requests[requester][target] {
		return false, nil
	}
	if f.requests[requester] == nil {
		f.requests[requester] = make(map[string]bool)
	}
	f.requests[requester][target] = true
	return true, nil
}

func (f *fakeFriendshipRepo) ListIncoming(_ context.Context, target string) ([]models.FriendRequest, error) {
	incoming := make([]models.FriendRequest, 0)
	for requester, targets := range f.requests {
		if targets[target] {
			incoming = append(incoming, models.FriendRequest{Requester: requester, Target: target})
		}
	}
	sort.Slice(incoming, func(i, j int) bool { return incoming[i].Requester < incoming[j].Requester })
	return incoming, nil
}

func (f *fakeFriendshipRepo) AcceptRequest(_ context.Context, requester, target string) (bool, error) {
	if !f.requests[requester][target] {
		return false, nil
	}
	delete(f.requests[requester], target)
	f.addFriend(requester, target)
	f.addFriend(target, requester)
	return true, nil
}

func (f *fakeFriendshipRepo) RejectRequest(_ context.Context, requester, target string) (bool, error) {
	if !f.requests[requester][target] {
		return false, nil
	}
	delete(f.requests[requester], target)
	return true, nil
}

func (f *fakeFriendshipRepo) addFriend(a, b string) {
	if f.friends[a] == nil {
		f.friends[a] = make(map[string]bool)
	}
	f.friends[a][b] = true
}

func (f *fakeFriendshipRepo) areFriends(a, b string) bool {
	return f.friends[a][b] && f.friends[b][a]
}

type fakeFeedRepo struct {
	teamPosts     map[string][]models.EnrichedPost
	exchangePosts []models.EnrichedPost
	friendPosts   []models.EnrichedPost
	clubPosts     []models.EnrichedPost
	teamCounts    map[string]int64
	fanForClub    []models.EnrichedPost
	allPosts      []models.EnrichedPost
	taggedPosts   map[string][]models.EnrichedPost

	clubPostsArg []string
	sinceArg     int64
	tagArg       string
}

func (f *fakeFeedRepo) TeamPosts(_ context.Context, clubName string) ([]models.EnrichedPost, error) {
	return f.teamPosts[clubName], nil
}

func (f *fakeFeedRepo) FanExchangePosts(_ context.Context, _, _ string) ([]models.EnrichedPost, error) {
	return f.exchangePosts, nil
}

func (f *fakeFeedRepo) FriendPosts(_ context.Context, _ string) ([]models.EnrichedPost, error) {
	return f.friendPosts, nil
}

func (f *fakeFeedRepo) ClubPosts(_ context.Context, clubNames []string) ([]models.EnrichedPost, error) {
	f.clubPostsArg = clubNames
	if len(clubNames) == 0 {
		return nil, nil
	}
	return f.clubPosts, nil
}

func (f *fakeFeedRepo) FriendTeamCounts(_ context.Context, _ string) (map[string]int64, error) {
	return f.teamCounts, nil
}

func (f *fakeFeedRepo) FanPostsForClub(_ context.Context, _ string) ([]models.EnrichedPost, error) {
	return f.fanForClub, nil
}

func (f *fakeFeedRepo) AllPosts(_ context.Context) ([]models.EnrichedPost, error) {
	return f.allPosts, nil
}

func (f *fakeFeedRepo) PostsByClubTag(_ context.Context, team string) ([]models.EnrichedPost, error) {
	f.tagArg = team
	return f.taggedPosts[team], nil
}

func (f *fakeFeedRepo) PostsSince(_ context.Context, sinceMillis int64) ([]models.EnrichedPost, error) {
	f.sinceArg = sinceMillis
	recent := make([]models.EnrichedPost, 0)
	for _, p := range f.allPosts {
		if p.CreatedAt >= sinceMillis {
			recent = append(recent, p)
		}
	}
	return recent, nil
}

type storedPost struct {
	id        string
	author    string
	content   string
	clubTag   string
	createdAt int64
}

// fakeContentStore backs the post, comment and like repositories with one
// shared map so the delete cascade is observable.
type fakeContentStore struct {
	seq      int
	now      int64
	posts    map[string]*storedPost
	likes    map[string]map[string]bool
	comments map[string][]models.CommentEntry
}

func newFakeContentStore() *fakeContentStore {
	return &fakeContentStore{
		posts:    make(map[string]*storedPost),
		likes:    make(map[string]map[string]bool),
		comments: make(map[string][]models.CommentEntry),
	}
}

func (f *fakeContentStore) CreatePost(_ context.Context, authorEmail, content, clubTag string) (*models.Post, error) {
	f.seq++
	f.now++
	post := &storedPost{
		id:        fmt.Sprintf("post-%d", f.seq),
		author:    authorEmail,
		content:   content,
		clubTag:   clubTag,
		createdAt: f.now,
	}
	f.posts[post.id] = post
	return &models.Post{ID: post.id, Author: authorEmail, Content: content, CreatedAt: post.createdAt, ClubTag: clubTag}, nil
}

func (f *fakeContentStore) GetPostAuthor(_ context.Context, postID string) (string, error) {
	post, ok := f.posts[postID]
	if !ok {
		return "", apperrors.NotFoundf("post not found")
	}
	return post.author, nil
}

func (f *fakeContentStore) UpdatePost(_ context.Context, authorEmail, postID, content string) (bool, error) {
	post, ok := f.posts[postID]
	if !ok || post.author != authorEmail {
		return false, nil
	}
	post.content = content
	return true, nil
}

func (f *fakeContentStore) DeletePost(_ context.Context, authorEmail, postID string) (bool, error) {
	post, ok := f.posts[postID]
	if !ok || post.author != authorEmail {
		return false, nil
	}
	delete(f.posts, postID)
	delete(f.likes, postID)
	delete(f.comments, postID)
	return true, nil
}

func (f *fakeContentStore) ListPostsByAuthor(_ context.Context, email string) ([]models.EnrichedPost, error) {
	posts := make([]models.EnrichedPost, 0)
	for _, p := range f.posts {
		if p.author != email {
			continue
		}
		posts = append(posts, f.enrich(p))
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt > posts[j].CreatedAt })
	return posts, nil
}

func (f *fakeContentStore) AddComment(_ context.Context, authorEmail, postID, content string) (bool, error) {
	if _, ok := f.posts[postID]; !ok {
		return false, nil
	}
	f.comments[postID] = append(f.comments[postID], models.CommentEntry{Author: authorEmail, Content: content})
	return true, nil
}

func (f *fakeContentStore) LikePost(_ context.Context, userEmail, postID string) (bool, bool, error) {
	if _, ok := f.posts[postID]; !ok {
		return false, false, nil
	}
	if f.likes[postID][userEmail] {
		return false, true, nil
	}
	if f.likes[postID] == nil {
		f.likes[postID] = make(map[string]bool)
	}
	f.likes[postID][userEmail] = true
	return true, true, nil
}

func (f *fakeContentStore) enrich(p *storedPost) models.EnrichedPost {
	likedBy := make([]string, 0, len(f.likes[p.id]))
	for email := range f.likes[p.id] {
		likedBy = append(likedBy, email)
	}
	sort.Strings(likedBy)
	comments := make([]models.CommentEntry, 0, len(f.comments[p.id]))
	comments = append(comments, f.comments[p.id]...)
	return models.EnrichedPost{
		ID:        p.id,
		Author:    p.author,
		Content:   p.content,
		CreatedAt: p.createdAt,
		ClubTag:   p.clubTag,
		LikeCount: len(likedBy),
		LikedBy:   likedBy,
		Comments:  comments,
	}
}

type fakeExportRepo struct {
	export *models.GraphExport
}

func (f *fakeExportRepo) ExportGraph(_ context.Context) (*models.GraphExport, error) {
	return f.export, nil
}
