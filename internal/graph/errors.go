package graph

import (
	"errors"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"
)

// IsConstraintViolation reports whether err is the store rejecting a write
// that would break a uniqueness constraint.
func IsConstraintViolation(err error) bool {
	var neoErr *db.Neo4jError
	if !errors.As(err, &neoErr) {
		return false
	}
	return strings.Contains(neoErr.Code, "ConstraintValidationFailed") ||
		strings.Contains(neoErr.Code, "ConstraintViolation")
}
