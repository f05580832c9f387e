package repositories

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
)

// SQL-backed implementation of the ScenarioRepository port.
// Scenario inputs are stored as JSON documents.
type SQLScenarioRepository struct {
	DB      *sql.DB
	Dialect db.Dialect
}

func NewSQLScenarioRepository(conn *sql.DB, dialect db.Dialect) *SQLScenarioRepository {
	return &SQLScenarioRepository{DB: conn, Dialect: dialect}
}

// Return a summary of every stored scenario, ordered by name.
func (s *SQLScenarioRepository) ListScenarios(ctx context.Context) (_ []domain.ScenarioSummary, err error) {
	defer obs.Time(ctx, "scenarios.List")(&err)

	if s.DB == nil {
		return nil, errors.New("scenario repository: DB is nil")
	}

	query := `
	SELECT
		name,
		document
	FROM scenarios
	ORDER BY name;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list scenarios: query scenarios table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ScenarioSummary, 0, 16)
	for rows.Next() {
		var name, document string
		if err := rows.Scan(&name, &document); err != nil {
			return nil, fmt.Errorf("list scenarios: scan row: %w", err)
		}
		var in domain.Input
		if err := json.Unmarshal([]byte(document), &in); err != nil {
			return nil, fmt.Errorf("list scenarios: decode scenario %q: %w", name, err)
		}
		out = append(out, domain.Scenario{Name: name, Input: in}.Summarize())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list scenarios: row iteration: %w", err)
	}

	return out, nil
}

// Return one stored scenario.
func (s *SQLScenarioRepository) GetScenario(ctx context.Context, name string) (_ domain.Scenario, err error) {
	defer obs.Time(ctx, "scenarios.Get")(&err)

	if s.DB == nil {
		return domain.Scenario{}, errors.New("scenario repository: DB is nil")
	}

	query := `SELECT document FROM scenarios WHERE name = ` + s.Dialect.Placeholder(1) + `;`

	var document string
	err = s.DB.QueryRowContext(ctx, query, name).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Scenario{}, fmt.Errorf("get scenario %q: %w", name, domain.ErrScenarioNotFound)
	}
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("get scenario %q: query scenarios table: %w", name, err)
	}

	var in domain.Input
	if err := json.Unmarshal([]byte(document), &in); err != nil {
		return domain.Scenario{}, fmt.Errorf("get scenario %q: decode document: %w", name, err)
	}

	return domain.Scenario{Name: name, Input: in}, nil
}

// Store scenarios, replacing any existing scenario with the same name.
func (s *SQLScenarioRepository) SaveScenarios(ctx context.Context, scenarios []domain.Scenario) error {
	if s.DB == nil {
		return errors.New("scenario repository: DB is nil")
	}

	if len(scenarios) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save scenarios: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO scenarios (name, document)
	VALUES (` + s.Dialect.Placeholder(1) + `, ` + s.Dialect.Placeholder(2) + `)
	ON CONFLICT (name) DO UPDATE
	SET document = EXCLUDED.document;
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("save scenarios: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, sc := range scenarios {
		name := strings.TrimSpace(sc.Name)
		if name == "" {
			return errors.New("save scenarios: empty scenario name")
		}

		document, err := json.Marshal(sc.Input)
		if err != nil {
			return fmt.Errorf("save scenarios: encode scenario %q: %w", name, err)
		}

		if _, err := stmt.ExecContext(ctx, name, string(document)); err != nil {
			return fmt.Errorf("save scenarios: insert scenario %q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save scenarios: commit tx: %w", err)
	}

	return nil
}

// Populate the scenarios table from a JSON seed file.
func SeedFromJSON(ctx context.Context, repo *SQLScenarioRepository, jsonPath string) error {
	scenarios, err := ReadSeeds(jsonPath)
	if err != nil {
		return fmt.Errorf("seed scenarios: %w", err)
	}
	if err := repo.SaveScenarios(ctx, scenarios); err != nil {
		return fmt.Errorf("seed scenarios: %w", err)
	}
	return nil
}
