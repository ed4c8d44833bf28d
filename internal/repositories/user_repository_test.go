package repositories

import (
	"context"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/lksmueller/fankurve/internal/models"
)

type fakeRunner struct {
	result     *neo4j.EagerResult
	lastQuery  string
	lastParams map[string]any
}

func (f *fakeRunner) Run(_ context.Context, query string, params map[string]any) (*neo4j.EagerResult, error) {
	f.lastQuery = query
	f.lastParams = params
	return f.result, nil
}

func nodeRecord(alias string, props map[string]any) *neo4j.Record {
	return &neo4j.Record{Keys: []string{alias}, Values: []any{neo4j.Node{Props: props}}}
}

func TestListClubsSortedByName(t *testing.T) {
	runner := &fakeRunner{result: &neo4j.EagerResult{Records: []*neo4j.Record{
		nodeRecord("n", map[string]any{"role": "Club", "clubName": "SC Borealis"}),
		nodeRecord("n", map[string]any{"role": "Club", "clubName": "FC Aurora"}),
		nodeRecord("n", map[string]any{"role": "Club"}),
	}}}
	repo := NewNeo4jUserRepository(runner)

	clubs, err := repo.ListClubs(context.Background())
	if err != nil {
		t.Fatalf("ListClubs failed: %v", err)
	}
	if len(clubs) != 2 || clubs[0] != "FC Aurora" || clubs[1] != "SC Borealis" {
		t.Fatalf("unexpected clubs: %v", clubs)
	}
}

func TestUserFromNodeRoles(t *testing.T) {
	cases := []struct {
		props   map[string]any
		profile models.Profile
	}{
		{
			map[string]any{"email": "anna@example.com", "role": "Fan", "favoriteTeam": "FC Aurora"},
			models.FanProfile{FavoriteTeam: "FC Aurora"},
		},
		{
			map[string]any{"email": "aurora@example.com", "role": "Club", "clubName": "FC Aurora"},
			models.ClubProfile{ClubName: "FC Aurora"},
		},
		{
			map[string]any{"email": "press@example.com", "role": "Journalist", "affiliation": "Daily Kick"},
			models.JournalistProfile{Affiliation: "Daily Kick"},
		},
		{
			map[string]any{"email": "admin@example.com", "role": "Admin"},
			models.AdminProfile{},
		},
	}
	for _, c := range cases {
		user := userFromNode(neo4j.Node{Props: c.props})
		if user.Profile != c.profile {
			t.Errorf("userFromNode(%v).Profile = %#v, want %#v", c.props, user.Profile, c.profile)
		}
		if string(user.Role) != c.props["role"] {
			t.Errorf("userFromNode(%v).Role = %s", c.props, user.Role)
		}
	}
}
