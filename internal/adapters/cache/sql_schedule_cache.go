package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"freight-dispatch-service/internal/domain"
	"freight-dispatch-service/internal/platform/db"
	"freight-dispatch-service/internal/platform/obs"
	"strings"
	"time"
)

// SQLScheduleCache is a SQL-backed cache of computed schedules keyed by
// input fingerprint. Expired rows are ignored on read and replaced on write.
type SQLScheduleCache struct {
	DB      *sql.DB
	Dialect db.Dialect
	TTL     time.Duration
	now     func() time.Time
}

func NewSQLScheduleCache(conn *sql.DB, dialect db.Dialect, ttl time.Duration) *SQLScheduleCache {
	return &SQLScheduleCache{DB: conn, Dialect: dialect, TTL: ttl, now: time.Now}
}

// Fetch a cached schedule.
func (s *SQLScheduleCache) Get(ctx context.Context, key string) (_ []domain.LogEntry, _ bool, err error) {
	defer obs.Time(ctx, "schedule.cache.Get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("schedule cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get schedule cache: key must not be empty")
	}

	q := `
	SELECT entries
	FROM schedule_cache
	WHERE cache_key = ` + s.Dialect.Placeholder(1) + `
		AND expires_at > ` + s.Dialect.Placeholder(2) + `;
	`

	var raw string
	err = s.DB.QueryRowContext(ctx, q, key, s.now().Unix()).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get schedule cache: query schedule_cache table: %w", err)
	}

	var entries []domain.LogEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, false, fmt.Errorf("get schedule cache: decode entries: %w", err)
	}

	return entries, true, nil
}

// Store a schedule under key.
func (s *SQLScheduleCache) Put(ctx context.Context, key string, entries []domain.LogEntry) error {
	if s.DB == nil {
		return errors.New("schedule cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return errors.New("insert schedule cache: key must not be empty")
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("insert schedule cache: encode entries: %w", err)
	}

	q := `
	INSERT INTO schedule_cache (cache_key, entries, expires_at)
	VALUES (` + s.Dialect.Placeholder(1) + `, ` + s.Dialect.Placeholder(2) + `, ` + s.Dialect.Placeholder(3) + `)
	ON CONFLICT (cache_key) DO UPDATE
	SET entries = EXCLUDED.entries,
		expires_at = EXCLUDED.expires_at;
	`

	expiresAt := s.now().Add(s.TTL).Unix()
	if _, err := s.DB.ExecContext(ctx, q, key, string(raw), expiresAt); err != nil {
		return fmt.Errorf("insert schedule cache key=%q: %w", key, err)
	}

	return nil
}
