// Package history records dataset loads so the gateway can answer "what have
// I looked at" questions and warm the chat context with recent sources.
package history

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Entry records one successful dataset load.
type Entry struct {
	URL      string    `json:"url"`
	Format   string    `json:"format"`
	Rows     int       `json:"rows"`
	LoadedAt time.Time `json:"loaded_at"`
}

// Store keeps load history in Postgres when a DSN is configured and in
// memory otherwise. A small LRU in front answers per-source lookups without
// touching the database.
type Store struct {
	db *sql.DB

	mu  sync.Mutex
	mem []Entry

	schemaOnce sync.Once
	schemaErr  error

	recent *lru.Cache[string, Entry]
}

// New returns a memory-only store.
func New() *Store {
	cache, _ := lru.New[string, Entry](256)
	return &Store{recent: cache}
}

// NewPostgres returns a store backed by the given Postgres DSN.
func NewPostgres(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(dsn))
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	cache, err := lru.New[string, Entry](256)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db, recent: cache}, nil
}

// NewFromEnv picks Postgres when DATASET_HISTORY_PG_DSN is set and falls back
// to memory otherwise (or when the connection fails).
func NewFromEnv() *Store {
	dsn := strings.TrimSpace(os.Getenv("DATASET_HISTORY_PG_DSN"))
	if dsn == "" {
		return New()
	}
	s, err := NewPostgres(dsn)
	if err != nil {
		log.Printf("history: postgres unavailable, using memory store: %v", err)
		return New()
	}
	return s
}

func (s *Store) ensureSchema(ctx context.Context) error {
	s.schemaOnce.Do(func() {
		_, s.schemaErr = s.db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS dataset_loads (
				id        BIGSERIAL PRIMARY KEY,
				url       TEXT NOT NULL,
				format    TEXT NOT NULL,
				row_count INT NOT NULL,
				loaded_at TIMESTAMPTZ NOT NULL
			)`)
	})
	return s.schemaErr
}

// Record stores one load entry.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if s == nil {
		return nil
	}
	if e.LoadedAt.IsZero() {
		e.LoadedAt = time.Now().UTC()
	}
	if s.recent != nil {
		s.recent.Add(sourceKey(e.URL, e.Format), e)
	}
	if s.db == nil {
		s.mu.Lock()
		s.mem = append(s.mem, e)
		s.mu.Unlock()
		return nil
	}
	if err := s.ensureSchema(ctx); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO dataset_loads (url, format, row_count, loaded_at) VALUES ($1, $2, $3, $4)`,
		e.URL, e.Format, e.Rows, e.LoadedAt)
	return err
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if s == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		out := make([]Entry, 0, limit)
		for i := len(s.mem) - 1; i >= 0 && len(out) < limit; i-- {
			out = append(out, s.mem[i])
		}
		return out, nil
	}
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT url, format, row_count, loaded_at FROM dataset_loads ORDER BY loaded_at DESC, id DESC LIMIT $1`,
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.URL, &e.Format, &e.Rows, &e.LoadedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Last returns the most recent entry recorded for (url, format), if any.
func (s *Store) Last(url, format string) (Entry, bool) {
	if s == nil || s.recent == nil {
		return Entry{}, false
	}
	return s.recent.Get(sourceKey(url, format))
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func sourceKey(url, format string) string {
	return url + "|" + format
}
