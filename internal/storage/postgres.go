package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS collections (
	collection TEXT NOT NULL,
	id TEXT NOT NULL,
	doc JSONB NOT NULL,
	PRIMARY KEY (collection, id)
);
`

// PostgresStore keeps every collection in a single documents table, one row
// per record. Save keeps the whole-collection overwrite semantics of the
// Store contract by replacing all rows of the collection in one transaction.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func OpenPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	cfg.MaxConnLifetime = 5 * time.Minute
	cfg.MaxConnIdleTime = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, schemaSQL)
	return err
}

func (s *PostgresStore) Load(ctx context.Context, name string) (Collection, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, doc FROM collections WHERE collection=$1`, name)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	defer rows.Close()

	col := Collection{}
	for rows.Next() {
		var id string
		var doc []byte
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("scan %s: %w", name, err)
		}
		col[id] = json.RawMessage(doc)
	}
	return col, rows.Err()
}

func (s *PostgresStore) Save(ctx context.Context, name string, col Collection) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM collections WHERE collection=$1`, name); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	for id, doc := range col {
		if _, err := tx.Exec(ctx,
			`INSERT INTO collections (collection, id, doc) VALUES ($1,$2,$3)`,
			name, id, []byte(doc),
		); err != nil {
			return fmt.Errorf("save %s record %s: %w", name, id, err)
		}
	}
	return tx.Commit(ctx)
}
