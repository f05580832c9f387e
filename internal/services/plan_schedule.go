package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"freight-dispatch-service/internal/domain"
	"freight-dispatch-service/internal/platform/obs"
	"freight-dispatch-service/internal/ports"
	"log"
	"strings"
)

type PlanScheduleRequest struct {
	// Scenario names a stored scenario. Ignored when Input is set.
	Scenario string
	Input    *domain.Input
}

type ScheduleResult struct {
	Key     string
	Entries []domain.LogEntry
	Cached  bool
}

// PlanSchedule resolves the scenario of req, serves it from cache when the
// same input was planned before, and otherwise runs a dispatch and caches
// the schedule. Cache write failures are logged, not returned.
func PlanSchedule(
	ctx context.Context,
	req PlanScheduleRequest,
	repo ports.ScenarioRepository,
	cache ports.ScheduleCache,
) (_ *ScheduleResult, err error) {
	defer obs.Time(ctx, "services.PlanSchedule")(&err)

	var in domain.Input
	switch {
	case req.Input != nil:
		in = *req.Input
	case strings.TrimSpace(req.Scenario) != "":
		if repo == nil {
			return nil, errors.New("plan schedule: scenario repository is not configured")
		}
		sc, err := repo.GetScenario(ctx, strings.TrimSpace(req.Scenario))
		if err != nil {
			return nil, fmt.Errorf("plan schedule: get scenario %q: %w", req.Scenario, err)
		}
		in = sc.Input
	default:
		return nil, errors.New("plan schedule: either a scenario name or an input is required")
	}

	if err := ValidateInput(in); err != nil {
		return nil, fmt.Errorf("plan schedule: %w", err)
	}

	key, err := ScheduleKey(in)
	if err != nil {
		return nil, fmt.Errorf("plan schedule: %w", err)
	}

	if cache != nil {
		entries, ok, err := cache.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("plan schedule: get schedule cache: %w", err)
		}
		if ok {
			return &ScheduleResult{Key: key, Entries: entries, Cached: true}, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := RouteSchedule(in)
	if err != nil {
		return nil, fmt.Errorf("plan schedule: %w", err)
	}

	if cache != nil {
		if err := cache.Put(ctx, key, entries); err != nil {
			log.Printf("schedule cache write failed: key=%s err=%v", key, err)
		}
	}

	return &ScheduleResult{Key: key, Entries: entries, Cached: false}, nil
}

// ScheduleKey fingerprints a normalized input. Equal inputs, rows in the
// same order, give equal keys.
func ScheduleKey(in domain.Input) (string, error) {
	b, err := json.Marshal(in)
	if err != nil {
		return "", fmt.Errorf("schedule key: encode input: %w", err)
	}
	sum := sha256.Sum256(b)
	return "schedule:" + hex.EncodeToString(sum[:]), nil
}
