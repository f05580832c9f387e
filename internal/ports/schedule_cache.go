package ports

import (
	"context"
	"freight-dispatch-service/internal/domain"
)

// Contract for caching computed schedules by input fingerprint.
// Dispatch runs are deterministic, so a schedule never goes stale for its key.
type ScheduleCache interface {
	// Return the cached schedule and whether it was found.
	Get(ctx context.Context, key string) ([]domain.LogEntry, bool, error)
	// Store a schedule under key.
	Put(ctx context.Context, key string, entries []domain.LogEntry) error
}
