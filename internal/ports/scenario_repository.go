package ports

import (
	"context"
	"freight-dispatch-service/internal/domain"
)

// Port: a boundary for retrieving stored dispatch scenarios.
type ScenarioRepository interface {
	// List every stored scenario, ordered by name.
	ListScenarios(ctx context.Context) ([]domain.ScenarioSummary, error)
	// Retrieve one scenario; domain.ErrScenarioNotFound when it does not exist.
	GetScenario(ctx context.Context, name string) (domain.Scenario, error)
}
