package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/lksmueller/fankurve/internal/graph"
)

// DB holds the graph store connection
type DB struct {
	Executor *graph.Executor
}

// InitDB initializes and returns the Neo4j connection
func InitDB() (*DB, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	cfg := Load()

	executor, err := graph.NewExecutor(cfg.Neo4jURI, cfg.Neo4jUsername, cfg.Neo4jPassword, cfg.Neo4jDatabase)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Neo4j: %w", err)
	}

	// Ping the database to verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := executor.Verify(ctx); err != nil {
		return nil, fmt.Errorf("failed to verify Neo4j connectivity: %w", err)
	}
	log.Println("Successfully connected to Neo4j!")

	// Schema bootstrap is idempotent
	if err := graph.EnsureConstraints(ctx, executor); err != nil {
		return nil, fmt.Errorf("failed to ensure schema constraints: %w", err)
	}
	log.Println("Schema constraints ensured.")

	return &DB{Executor: executor}, nil
}

// CloseDB closes the graph store connection
func (db *DB) CloseDB() {
	if db.Executor != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Executor.Close(ctx); err != nil {
			log.Printf("Error closing Neo4j connection: %v\n", err)
		} else {
			log.Println("Neo4j connection closed.")
		}
	}
}
