package graph

import (
	"context"
	"fmt"
)

// Uniqueness constraints the write paths rely on. Duplicate emails,
// usernames and club names are rejected by the store itself, so the
// existence check and the create are indivisible even under concurrent
// registration. Null properties are exempt, so the clubName constraint
// only binds Club users.
var constraints = []string{
	"CREATE CONSTRAINT user_email_unique IF NOT EXISTS FOR (u:User) REQUIRE u.email IS UNIQUE",
	"CREATE CONSTRAINT user_username_unique IF NOT EXISTS FOR (u:User) REQUIRE u.username IS UNIQUE",
	"CREATE CONSTRAINT user_club_name_unique IF NOT EXISTS FOR (u:User) REQUIRE u.clubName IS UNIQUE",
}

// EnsureConstraints creates the schema constraints if they do not exist.
// Safe to run on every startup.
func EnsureConstraints(ctx context.Context, runner Runner) error {
	for _, stmt := range constraints {
		if _, err := runner.Run(ctx, stmt, nil); err != nil {
			return fmt.Errorf("failed to ensure constraint: %w", err)
		}
	}
	return nil
}
