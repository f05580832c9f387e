package main

import (
	"bytes"
	"encoding/json"
	"freight-dispatch-service/internal/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const direct = `
stations: [A, B, C]
routes: [[E1, A, B, 3], [E2, B, C, 1]]
deliveries: [[P1, A, C, 5]]
vehicles: [[Q1, B, 6]]
`

func TestRunText(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(strings.NewReader(direct), &out, "text"))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "time=0 vehicle=Q1 station=B loaded=[] dropped=[] next=A route=E1 duration=3", lines[0])
	assert.Equal(t, "time=7 vehicle=Q1 station=C loaded=[] dropped=[P1]", lines[3])
}

func TestRunJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(strings.NewReader(direct), &out, "json"))

	var entries []domain.LogEntry
	require.NoError(t, json.Unmarshal(out.Bytes(), &entries))
	require.Len(t, entries, 4)
	assert.Equal(t, []string{"P1"}, entries[1].LoadedPackages)
}

func TestRunRejectsBadScenario(t *testing.T) {
	var out bytes.Buffer
	err := run(strings.NewReader("stations: []\nroutes: []\ndeliveries: []\nvehicles: []\n"), &out, "text")
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
	assert.Empty(t, out.String())
}
