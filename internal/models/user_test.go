package models

import "testing"

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleFan, RoleClub, RoleJournalist, RoleAdmin} {
		if !r.Valid() {
			t.Errorf("expected %s to be valid", r)
		}
	}
	if Role("Moderator").Valid() {
		t.Error("unknown role must not be valid")
	}
}

func TestProfileRoles(t *testing.T) {
	cases := []struct {
		profile Profile
		role    Role
	}{
		{FanProfile{FavoriteTeam: "FC Aurora"}, RoleFan},
		{ClubProfile{ClubName: "FC Aurora"}, RoleClub},
		{JournalistProfile{Affiliation: "Daily Kick"}, RoleJournalist},
		{AdminProfile{}, RoleAdmin},
	}
	for _, c := range cases {
		if got := c.profile.Role(); got != c.role {
			t.Errorf("%T.Role() = %s, want %s", c.profile, got, c.role)
		}
	}
}

func TestBuildProfile(t *testing.T) {
	req := RegisterRequest{Role: "Fan", FavoriteTeam: "FC Aurora"}
	p, ok := req.BuildProfile().(FanProfile)
	if !ok || p.FavoriteTeam != "FC Aurora" {
		t.Fatalf("BuildProfile = %#v", req.BuildProfile())
	}

	req = RegisterRequest{Role: "Club", ClubName: "FC Aurora"}
	if c, ok := req.BuildProfile().(ClubProfile); !ok || c.ClubName != "FC Aurora" {
		t.Fatalf("BuildProfile = %#v", req.BuildProfile())
	}

	req = RegisterRequest{Role: "Admin"}
	if req.BuildProfile() != nil {
		t.Fatal("admin accounts are not built from a registration request")
	}
}

func TestProfileAccessors(t *testing.T) {
	fan := &User{Role: RoleFan, Profile: FanProfile{FavoriteTeam: "FC Aurora"}}
	if team, ok := fan.FavoriteTeam(); !ok || team != "FC Aurora" {
		t.Fatalf("FavoriteTeam = %q, %v", team, ok)
	}
	if _, ok := fan.ClubName(); ok {
		t.Fatal("a fan has no club name")
	}

	clubUser := &User{Role: RoleClub, Profile: ClubProfile{ClubName: "SC Borealis"}}
	if name, ok := clubUser.ClubName(); !ok || name != "SC Borealis" {
		t.Fatalf("ClubName = %q, %v", name, ok)
	}
}
