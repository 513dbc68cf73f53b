package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgxQuerier is the subset of *pgxpool.Pool used by PostgresStore.
type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// PostgresStore keeps documents in the JSONB "documents" table created by
// the migrations package.
type PostgresStore struct {
	db pgxQuerier
}

// NewPostgresStore creates a new PostgresStore instance
func NewPostgresStore(db pgxQuerier) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Set(ctx context.Context, collection, id string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO documents (collection, id, data)
		 VALUES ($1, $2, $3::jsonb)
		 ON CONFLICT (collection, id) DO UPDATE
		 SET data = EXCLUDED.data, updated_at = now()`,
		collection, id, string(data)) // a []byte arg would be sent as bytea
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return fmt.Errorf("upsert document: %w", ErrDuplicateDocument)
		}
		return fmt.Errorf("upsert document: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	var data []byte
	err := s.db.QueryRow(ctx,
		`SELECT data FROM documents WHERE collection = $1 AND id = $2`,
		collection, id).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select document: %w", err)
	}
	return data, nil
}

func (s *PostgresStore) Where(ctx context.Context, collection, field, value string) ([]json.RawMessage, error) {
	return s.collect(ctx,
		`SELECT data FROM documents
		 WHERE collection = $1 AND data->>$2 = $3
		 ORDER BY created_at, id`,
		collection, field, value)
}

func (s *PostgresStore) All(ctx context.Context, collection string) ([]json.RawMessage, error) {
	return s.collect(ctx,
		`SELECT data FROM documents WHERE collection = $1 ORDER BY created_at, id`,
		collection)
}

func (s *PostgresStore) Delete(ctx context.Context, collection, id string) error {
	_, err := s.db.Exec(ctx,
		`DELETE FROM documents WHERE collection = $1 AND id = $2`,
		collection, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *PostgresStore) collect(ctx context.Context, sql string, args ...any) ([]json.RawMessage, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("select documents: %w", err)
	}
	docs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (json.RawMessage, error) {
		var data []byte
		err := row.Scan(&data)
		return data, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan documents: %w", err)
	}
	return docs, nil
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
