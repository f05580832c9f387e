package services

import (
	"context"
	"errors"
	"fmt"
	"freight-dispatch-service/internal/platform/obs"
	"freight-dispatch-service/internal/ports"
	"sync"
)

const defaultWarmWorkers = 4

// WarmResult reports how one stored scenario was planned.
type WarmResult struct {
	Scenario string
	Entries  int
	Cached   bool
	Err      error
}

type warmResult struct {
	index int
	res   WarmResult
}

// WarmSchedules plans every stored scenario so later requests are served
// from cache. Scenarios are planned concurrently, at most workers at a time.
// A scenario that cannot be planned is reported in its result and does not
// stop the others; only failing to list scenarios is returned as an error.
func WarmSchedules(
	ctx context.Context,
	repo ports.ScenarioRepository,
	cache ports.ScheduleCache,
	workers int,
) (_ []WarmResult, err error) {
	defer obs.Time(ctx, "services.WarmSchedules")(&err)

	if repo == nil {
		return nil, errors.New("warm schedules: scenario repository is not configured")
	}
	if workers < 1 {
		workers = defaultWarmWorkers
	}

	scenarios, err := repo.ListScenarios(ctx)
	if err != nil {
		return nil, fmt.Errorf("warm schedules: list scenarios: %w", err)
	}

	sem := make(chan struct{}, workers)
	resultsCh := make(chan warmResult, len(scenarios))
	var wg sync.WaitGroup

	for i, sc := range scenarios {
		wg.Add(1)
		go func(idx int, name string) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			out := WarmResult{Scenario: name}
			if err := ctx.Err(); err != nil {
				out.Err = err
				resultsCh <- warmResult{index: idx, res: out}
				return
			}

			res, err := PlanSchedule(ctx, PlanScheduleRequest{Scenario: name}, repo, cache)
			if err != nil {
				out.Err = err
			} else {
				out.Entries = len(res.Entries)
				out.Cached = res.Cached
			}
			resultsCh <- warmResult{index: idx, res: out}
		}(i, sc.Name)
	}

	wg.Wait()
	close(resultsCh)

	results := make([]WarmResult, len(scenarios))
	for r := range resultsCh {
		results[r.index] = r.res
	}

	return results, nil
}
