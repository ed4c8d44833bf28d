package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/saulfrancisco-ruizacevedo/gocypher"
)

// Simple property-match operations built with gocypher. Traversals with
// optional branches, distinct collection, ordering or limiting, and edge
// writes that need counter feedback are written as plain Cypher in the
// repositories instead.

// FindOneNode looks up a single node by label and exact property match.
// The second return value is false when no node matches.
func FindOneNode(ctx context.Context, runner Runner, label string, props map[string]any) (neo4j.Node, bool, error) {
	query, params, err := gocypher.NewQueryBuilder().
		Match(gocypher.N("n", label).WithProperties(props)).
		Return("n").
		Build()
	if err != nil {
		return neo4j.Node{}, false, err
	}
	result, err := runner.Run(ctx, query, params)
	if err != nil {
		return neo4j.Node{}, false, err
	}
	if len(result.Records) == 0 {
		return neo4j.Node{}, false, nil
	}
	node, ok := NodeValue(result.Records[0], "n")
	if !ok {
		return neo4j.Node{}, false, fmt.Errorf("return value 'n' is not a node")
	}
	return node, true, nil
}

// FindNodes looks up all nodes matching a label and exact properties.
func FindNodes(ctx context.Context, runner Runner, label string, props map[string]any) ([]neo4j.Node, error) {
	query, params, err := gocypher.NewQueryBuilder().
		Match(gocypher.N("n", label).WithProperties(props)).
		Return("n").
		Build()
	if err != nil {
		return nil, err
	}
	result, err := runner.Run(ctx, query, params)
	if err != nil {
		return nil, err
	}
	nodes := make([]neo4j.Node, 0, len(result.Records))
	for _, rec := range result.Records {
		if node, ok := NodeValue(rec, "n"); ok {
			nodes = append(nodes, node)
		}
	}
	return nodes, nil
}

// CreateNode creates a node with the given label and properties. Schema
// constraints apply; IsConstraintViolation classifies the resulting error.
func CreateNode(ctx context.Context, runner Runner, label string, props map[string]any) error {
	query, params, err := gocypher.NewQueryBuilder().
		Create(gocypher.N("n", label).WithProperties(props)).
		Build()
	if err != nil {
		return err
	}
	_, err = runner.Run(ctx, query, params)
	return err
}
