package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"freight-dispatch-service/internal/domain"
	"os"
	"strings"
)

// Initialize the scenario and schedule cache schema.
// The statements are valid for both SQLite and Postgres.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createScenariosQuery := `
	CREATE TABLE IF NOT EXISTS scenarios (
		name TEXT PRIMARY KEY,
		document TEXT NOT NULL
	);
	`

	createScheduleCacheQuery := `
	CREATE TABLE IF NOT EXISTS schedule_cache (
		cache_key TEXT PRIMARY KEY,
		entries TEXT NOT NULL,
		expires_at BIGINT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_schedule_cache_expires_at
	ON schedule_cache(expires_at);
	`

	statements := []string{
		createScenariosQuery,
		createScheduleCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type ScenarioSeed struct {
	Name string `json:"name"`
	domain.Input
}

// ReadSeeds loads named scenarios from a JSON file.
func ReadSeeds(jsonPath string) ([]domain.Scenario, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read seeds: read %q: %w", jsonPath, err)
	}

	var data []ScenarioSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("read seeds: parse json: %w", err)
	}

	out := make([]domain.Scenario, 0, len(data))
	for i, item := range data {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, fmt.Errorf("read seeds: item at index %d: name cannot be empty", i+1)
		}
		out = append(out, domain.Scenario{Name: name, Input: item.Input})
	}
	return out, nil
}
