// Package topicspg is the PostgreSQL topic store. It serves the topic list
// ordered by title; callers layer their own fallback on top, a database
// failure here is never fatal to a session.
package topicspg

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // register the pgx driver as "pgx" for migrations
	"github.com/pressly/goose/v3"

	"github.com/eburon-ai/pitchlive/pkg/core/topics"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Store reads topics from PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

// Open connects to the database, runs pending migrations, and returns the
// store.
func Open(ctx context.Context, connStr string) (*Store, error) {
	if err := migrate(connStr); err != nil {
		return nil, fmt.Errorf("migrate topics schema: %w", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("open topics database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping topics database: %w", err)
	}
	return &Store{pool: pool}, nil
}

func migrate(connStr string) error {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, "migrations")
}

// List returns all topics ordered by title.
func (s *Store) List(ctx context.Context) ([]topics.Topic, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, COALESCE(description, ''), COALESCE(video_url, '')
		 FROM topics
		 ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	defer rows.Close()

	var out []topics.Topic
	for rows.Next() {
		var t topics.Topic
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.VideoURL); err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return out, nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}
