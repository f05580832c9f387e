package services

import (
	"freight-dispatch-service/internal/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenarioYAML(t *testing.T) {
	doc := `
stations: [A, B, C]
routes:
  - [E1, A, B, 3]
  - [E2, B, C, 1]
deliveries:
  - [P1, A, C, 5]
vehicles:
  - [Q1, B, 6]
`
	in, err := LoadScenario(strings.NewReader(doc))
	require.NoError(t, err)

	entries, err := RouteSchedule(in)
	require.NoError(t, err)
	require.Len(t, entries, 4)
	assert.Equal(t, 7, entries[3].Time)
	assert.Equal(t, []string{"P1"}, entries[3].DroppedPackages)
}

func TestLoadScenarioJSON(t *testing.T) {
	doc := `{"stations": ["A", "B"], "routes": [["E1", "A", "B", 2]],
		"deliveries": [["P1", "A", "B", 1]], "vehicles": [["Q1", "A", 1]]}`

	in, err := LoadScenario(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []domain.VehicleRow{vehicle("Q1", "A", 1)}, in.Vehicles)
}

func TestDecodeScenarioErrors(t *testing.T) {
	_, err := DecodeScenario(strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrInputShape)

	_, err = DecodeScenario(strings.NewReader("- just\n- a list\n"))
	assert.ErrorIs(t, err, domain.ErrInputShape)

	_, err = LoadScenario(strings.NewReader("stations: A\nroutes: []\ndeliveries: []\nvehicles: []\n"))
	assert.ErrorIs(t, err, domain.ErrInputShape)
}
