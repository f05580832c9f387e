package services

import (
	"freight-dispatch-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectVehicleCheapestPickup(t *testing.T) {
	d, err := NewDispatch(groundScenario())
	require.NoError(t, err)

	a, err := d.SelectVehicle(d.Packages()[0])
	require.NoError(t, err)
	assert.Equal(t, "Q1", a.Vehicle.Name)
	assert.Equal(t, 3, a.PickupCost)
	assert.Equal(t, []string{"B", "A"}, d.Graph().Names(a.PickupPath.Stations))
}

func TestSelectVehicleAccountsForElapsedTime(t *testing.T) {
	d, err := NewDispatch(groundScenario())
	require.NoError(t, err)

	// Q1 is next to P2 but busy until t=10; Q2 is one stop away and idle.
	d.Vehicles()[0].ElapsedTime = 10
	a, err := d.SelectVehicle(d.Packages()[1])
	require.NoError(t, err)
	assert.Equal(t, "Q2", a.Vehicle.Name)
	assert.Equal(t, 1, a.PickupCost)
}

func TestSelectVehicleTieGoesToFirst(t *testing.T) {
	in := domain.Input{
		Stations:   []string{"A", "B", "C"},
		Routes:     []domain.RouteRow{route("E1", "A", "B", 2), route("E2", "B", "C", 2)},
		Deliveries: []domain.DeliveryRow{delivery("P1", "B", "A", 1)},
		Vehicles:   []domain.VehicleRow{vehicle("Q1", "C", 1), vehicle("Q2", "A", 1)},
	}
	d, err := NewDispatch(in)
	require.NoError(t, err)

	a, err := d.SelectVehicle(d.Packages()[0])
	require.NoError(t, err)
	assert.Equal(t, "Q1", a.Vehicle.Name)
	assert.Equal(t, 2, a.PickupCost)
}

func TestSelectVehicleSkipsSmallVehicles(t *testing.T) {
	d, err := NewDispatch(groundScenario())
	require.NoError(t, err)

	// P1 weighs 5; both can carry it but only Q1 can carry 6.
	pkg := d.Packages()[0]
	pkg.Weight = 6
	a, err := d.SelectVehicle(pkg)
	require.NoError(t, err)
	assert.Equal(t, "Q1", a.Vehicle.Name)

	pkg.Weight = 7
	_, err = d.SelectVehicle(pkg)
	assert.ErrorIs(t, err, domain.ErrNoCapableVehicle)
}
