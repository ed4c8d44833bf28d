// Package graph wraps the official Neo4j Go driver into the small store
// surface the repositories consume: single-statement execution, simple
// property-match reads and node creation, plus schema bootstrap.
//
// Every Run call executes exactly one Cypher statement in its own
// transaction, so multi-clause statements (check-then-create via MERGE,
// the request-accept delete+create swap) are applied atomically with
// respect to concurrent callers.
package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Runner defines the interface for a generic query executor. It abstracts
// the execution of a Cypher statement, allowing for mocking in tests.
type Runner interface {
	// Run executes a Cypher statement with parameters and returns a
	// fully-buffered result.
	Run(ctx context.Context, query string, params map[string]any) (*neo4j.EagerResult, error)
}

// Executor is the Neo4j-backed Runner used in production.
type Executor struct {
	Driver neo4j.DriverWithContext
	DBName string
}

// NewExecutor creates an Executor connected to the given Neo4j instance.
func NewExecutor(uri, username, password, dbName string) (*Executor, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("could not create Neo4j driver: %w", err)
	}
	return &Executor{Driver: driver, DBName: dbName}, nil
}

// Verify checks connectivity to the database.
func (e *Executor) Verify(ctx context.Context) error {
	return e.Driver.VerifyConnectivity(ctx)
}

// Close releases the underlying driver.
func (e *Executor) Close(ctx context.Context) error {
	return e.Driver.Close(ctx)
}

// Run executes a Cypher statement via neo4j.ExecuteQuery, which manages
// session and transaction lifecycle per call.
func (e *Executor) Run(ctx context.Context, query string, params map[string]any) (*neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(
		ctx,
		e.Driver,
		query,
		params,
		neo4j.EagerResultTransformer,
		neo4j.ExecuteQueryWithDatabase(e.DBName),
	)
	if err != nil {
		return nil, fmt.Errorf("error executing neo4j query: %w", err)
	}
	return result, nil
}
