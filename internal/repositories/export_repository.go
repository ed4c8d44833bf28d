package repositories

import (
	"context"

	"github.com/lksmueller/fankurve/internal/graph"
	"github.com/lksmueller/fankurve/internal/models"
)

// ExportRepository defines the admin-only full graph dump
type ExportRepository interface {
	ExportGraph(ctx context.Context) (*models.GraphExport, error)
}

// Neo4jExportRepository implements ExportRepository against the graph store
type Neo4jExportRepository struct {
	runner graph.Runner
}

// NewNeo4jExportRepository creates a new Neo4jExportRepository
func NewNeo4jExportRepository(runner graph.Runner) *Neo4jExportRepository {
	return &Neo4jExportRepository{runner: runner}
}

// ExportGraph collects every node and relationship in the store
func (r *Neo4jExportRepository) ExportGraph(ctx context.Context) (*models.GraphExport, error) {
	export := &models.GraphExport{
		Nodes: make([]models.GraphNode, 0),
		Edges: make([]models.GraphEdge, 0),
	}

	nodes, err := r.runner.Run(ctx, `
		MATCH (n)
		RETURN elementId(n) AS id, labels(n) AS labels, properties(n) AS props`, nil)
	if err != nil {
		return nil, err
	}
	for _, rec := range nodes.Records {
		props, _ := recordMap(rec, "props")
		export.Nodes = append(export.Nodes, models.GraphNode{
			ID:         graph.StringValue(rec, "id"),
			Labels:     graph.StringsValue(rec, "labels"),
			Properties: props,
		})
	}

	edges, err := r.runner.Run(ctx, `
		MATCH (a)-[rel]->(b)
		RETURN elementId(rel) AS id, type(rel) AS type,
		       elementId(a) AS from, elementId(b) AS to,
		       properties(rel) AS props`, nil)
	if err != nil {
		return nil, err
	}
	for _, rec := range edges.Records {
		props, _ := recordMap(rec, "props")
		export.Edges = append(export.Edges, models.GraphEdge{
			ID:         graph.StringValue(rec, "id"),
			Type:       graph.StringValue(rec, "type"),
			From:       graph.StringValue(rec, "from"),
			To:         graph.StringValue(rec, "to"),
			Properties: props,
		})
	}
	return export, nil
}
