package models

import (
	"github.com/golang-jwt/jwt/v4"
)

// Role is the community role a user registers with. Roles are mutually
// exclusive and immutable after registration.
type Role string

const (
	RoleFan        Role = "Fan"
	RoleClub       Role = "Club"
	RoleJournalist Role = "Journalist"
	RoleAdmin      Role = "Admin"
)

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleFan, RoleClub, RoleJournalist, RoleAdmin:
		return true
	}
	return false
}

// Profile holds the role-specific attribute of a user. It is a sealed
// variant over Role: exactly one implementation exists per role, so access
// points switch exhaustively instead of probing optional fields.
type Profile interface {
	Role() Role
}

// FanProfile carries a fan's favorite team.
type FanProfile struct {
	FavoriteTeam string `json:"favoriteTeam"`
}

// ClubProfile carries a club's name, unique among Club users.
type ClubProfile struct {
	ClubName string `json:"clubName"`
}

// JournalistProfile carries the medium a journalist works for.
type JournalistProfile struct {
	Affiliation string `json:"affiliation"`
}

// AdminProfile is the empty profile of the singleton admin account.
type AdminProfile struct{}

func (FanProfile) Role() Role        { return RoleFan }
func (ClubProfile) Role() Role       { return RoleClub }
func (JournalistProfile) Role() Role { return RoleJournalist }
func (AdminProfile) Role() Role      { return RoleAdmin }

// User is a registered community member. Identity is the email; the
// username is a secondary unique key.
type User struct {
	Email        string  `json:"email"`
	Username     string  `json:"username"`
	PasswordHash string  `json:"-"`
	Role         Role    `json:"role"`
	Profile      Profile `json:"profile,omitempty"`
}

// FavoriteTeam returns the fan's favorite team, if the user is a Fan.
func (u *User) FavoriteTeam() (string, bool) {
	if p, ok := u.Profile.(FanProfile); ok {
		return p.FavoriteTeam, true
	}
	return "", false
}

// ClubName returns the club's name, if the user is a Club.
func (u *User) ClubName() (string, bool) {
	if p, ok := u.Profile.(ClubProfile); ok {
		return p.ClubName, true
	}
	return "", false
}

// RegisterRequest defines the request body for registering a new user.
// The role-specific field matching Role is required, the others must be
// left empty.
type RegisterRequest struct {
	Username        string `json:"username" validate:"required,min=2,max=50"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	Role            string `json:"role" validate:"required,oneof=Fan Club Journalist"`
	FavoriteTeam    string `json:"favorite_team" validate:"required_if=Role Fan,excluded_unless=Role Fan"`
	ClubName        string `json:"club_name" validate:"required_if=Role Club,excluded_unless=Role Club"`
	Affiliation     string `json:"affiliation" validate:"required_if=Role Journalist,excluded_unless=Role Journalist"`
}

// BuildProfile builds the tagged profile variant from the request fields.
func (r *RegisterRequest) BuildProfile() Profile {
	switch Role(r.Role) {
	case RoleFan:
		return FanProfile{FavoriteTeam: r.FavoriteTeam}
	case RoleClub:
		return ClubProfile{ClubName: r.ClubName}
	case RoleJournalist:
		return JournalistProfile{Affiliation: r.Affiliation}
	}
	return nil
}

// LoginRequest defines the request body for logging in. The identifier is
// either the email or the username.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// CreateAdminRequest defines the request body for bootstrapping the
// singleton admin account.
type CreateAdminRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}
