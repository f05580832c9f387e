package repositories

import (
	"context"
	"database/sql"
	"freight-dispatch-service/internal/domain"
	"freight-dispatch-service/internal/platform/db"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, InitSchema(conn))
	return conn
}

func sampleScenario(name string) domain.Scenario {
	return domain.Scenario{
		Name: name,
		Input: domain.Input{
			Stations:   []string{"A", "B", "C"},
			Routes:     []domain.RouteRow{{Name: "E1", StationA: "A", StationB: "B", Cost: 3}, {Name: "E2", StationA: "B", StationB: "C", Cost: 1}},
			Deliveries: []domain.DeliveryRow{{Name: "P1", Origin: "A", Destination: "C", Weight: 5}},
			Vehicles:   []domain.VehicleRow{{Name: "Q1", Station: "B", MaxCapacity: 6}},
		},
	}
}

func TestSQLScenarioRepositoryRoundTrip(t *testing.T) {
	repo := NewSQLScenarioRepository(openTestDB(t), db.SQLite)
	ctx := context.Background()

	require.NoError(t, repo.SaveScenarios(ctx, []domain.Scenario{sampleScenario("zeta"), sampleScenario("alpha")}))

	got, err := repo.GetScenario(ctx, "alpha")
	require.NoError(t, err)
	assert.Equal(t, sampleScenario("alpha"), got)

	list, err := repo.ListScenarios(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "alpha", list[0].Name)
	assert.Equal(t, domain.ScenarioSummary{Name: "zeta", Stations: 3, Routes: 2, Deliveries: 1, Vehicles: 1}, list[1])
}

func TestSQLScenarioRepositoryUpsert(t *testing.T) {
	repo := NewSQLScenarioRepository(openTestDB(t), db.SQLite)
	ctx := context.Background()

	require.NoError(t, repo.SaveScenarios(ctx, []domain.Scenario{sampleScenario("ground")}))

	changed := sampleScenario("ground")
	changed.Input.Vehicles = append(changed.Input.Vehicles, domain.VehicleRow{Name: "Q2", Station: "C", MaxCapacity: 5})
	require.NoError(t, repo.SaveScenarios(ctx, []domain.Scenario{changed}))

	got, err := repo.GetScenario(ctx, "ground")
	require.NoError(t, err)
	assert.Len(t, got.Input.Vehicles, 2)

	list, err := repo.ListScenarios(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSQLScenarioRepositoryNotFound(t *testing.T) {
	repo := NewSQLScenarioRepository(openTestDB(t), db.SQLite)

	_, err := repo.GetScenario(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrScenarioNotFound)
}

func TestSeedFromJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.json")
	doc := `[
		{
			"name": "direct",
			"stations": ["A", "B"],
			"routes": [{"name": "E1", "station_a": "A", "station_b": "B", "cost": 4}],
			"deliveries": [{"name": "P1", "origin": "A", "destination": "B", "weight": 1}],
			"vehicles": [{"name": "Q1", "station": "A", "max_capacity": 2}]
		}
	]`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	repo := NewSQLScenarioRepository(openTestDB(t), db.SQLite)
	ctx := context.Background()
	require.NoError(t, SeedFromJSON(ctx, repo, path))
	// Seeding twice replaces rows instead of failing.
	require.NoError(t, SeedFromJSON(ctx, repo, path))

	got, err := repo.GetScenario(ctx, "direct")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, got.Input.Stations)
	assert.Equal(t, 4, got.Input.Routes[0].Cost)
	assert.Equal(t, 2, got.Input.Vehicles[0].MaxCapacity)
}

func TestReadSeedsRejectsBlankName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name": " "}]`), 0o600))

	_, err := ReadSeeds(path)
	assert.Error(t, err)
}
