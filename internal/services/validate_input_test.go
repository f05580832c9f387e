package services

import (
	"freight-dispatch-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInputRejects(t *testing.T) {
	tests := []struct {
		name string
		in   domain.Input
		want error
	}{
		{
			name: "empty",
			in:   domain.Input{},
			want: domain.ErrEmptyInput,
		},
		{
			name: "no vehicles",
			in: domain.Input{
				Stations:   []string{"A", "B"},
				Routes:     []domain.RouteRow{route("E1", "A", "B", 1)},
				Deliveries: []domain.DeliveryRow{delivery("P1", "A", "B", 1)},
			},
			want: domain.ErrEmptyInput,
		},
		{
			name: "unknown station",
			in: domain.Input{
				Stations:   []string{"A", "B"},
				Routes:     []domain.RouteRow{route("E1", "A", "C", 3)},
				Deliveries: []domain.DeliveryRow{delivery("P1", "A", "C", 5)},
				Vehicles:   []domain.VehicleRow{vehicle("Q1", "B", 6)},
			},
			want: domain.ErrUnknownStation,
		},
		{
			name: "self loop route",
			in: domain.Input{
				Stations:   []string{"A", "F"},
				Routes:     []domain.RouteRow{route("E2", "A", "F", 3), route("E1", "A", "A", 3)},
				Deliveries: []domain.DeliveryRow{delivery("P1", "A", "F", 5)},
				Vehicles:   []domain.VehicleRow{vehicle("Q1", "A", 6)},
			},
			want: domain.ErrSelfLoopRoute,
		},
		{
			name: "repeated station",
			in: domain.Input{
				Stations:   []string{"A", "A"},
				Routes:     []domain.RouteRow{route("E1", "A", "C", 3)},
				Deliveries: []domain.DeliveryRow{delivery("P1", "A", "C", 5)},
				Vehicles:   []domain.VehicleRow{vehicle("Q1", "A", 6)},
			},
			want: domain.ErrDuplicateName,
		},
		{
			name: "repeated route",
			in: domain.Input{
				Stations:   []string{"A", "E", "C"},
				Routes:     []domain.RouteRow{route("E1", "A", "C", 3), route("E1", "A", "E", 3)},
				Deliveries: []domain.DeliveryRow{delivery("P1", "A", "C", 5)},
				Vehicles:   []domain.VehicleRow{vehicle("Q1", "A", 6)},
			},
			want: domain.ErrDuplicateName,
		},
		{
			name: "repeated delivery",
			in: domain.Input{
				Stations:   []string{"A", "E", "C"},
				Routes:     []domain.RouteRow{route("E1", "A", "C", 3), route("E2", "A", "E", 3)},
				Deliveries: []domain.DeliveryRow{delivery("P1", "A", "C", 5), delivery("P1", "A", "E", 3)},
				Vehicles:   []domain.VehicleRow{vehicle("Q1", "A", 6)},
			},
			want: domain.ErrDuplicateName,
		},
		{
			name: "repeated vehicle",
			in: domain.Input{
				Stations:   []string{"A", "Z", "C"},
				Routes:     []domain.RouteRow{route("E1", "A", "C", 3), route("E2", "A", "Z", 3)},
				Deliveries: []domain.DeliveryRow{delivery("P1", "A", "C", 5), delivery("P2", "A", "Z", 3)},
				Vehicles:   []domain.VehicleRow{vehicle("Q1", "A", 6), vehicle("Q1", "A", 6)},
			},
			want: domain.ErrDuplicateName,
		},
		{
			name: "negative weight",
			in: domain.Input{
				Stations:   []string{"A", "C"},
				Routes:     []domain.RouteRow{route("E1", "A", "C", 3)},
				Deliveries: []domain.DeliveryRow{delivery("P1", "A", "C", -5)},
				Vehicles:   []domain.VehicleRow{vehicle("Q1", "A", 6)},
			},
			want: domain.ErrNonPositiveValue,
		},
		{
			name: "zero capacity",
			in: domain.Input{
				Stations:   []string{"A", "C"},
				Routes:     []domain.RouteRow{route("E1", "A", "C", 3)},
				Deliveries: []domain.DeliveryRow{delivery("P1", "A", "C", 5)},
				Vehicles:   []domain.VehicleRow{vehicle("Q1", "A", 0)},
			},
			want: domain.ErrNonPositiveValue,
		},
		{
			name: "blank package name",
			in: domain.Input{
				Stations:   []string{"A", "C"},
				Routes:     []domain.RouteRow{route("E1", "A", "C", 3)},
				Deliveries: []domain.DeliveryRow{delivery("", "A", "C", 5)},
				Vehicles:   []domain.VehicleRow{vehicle("Q1", "A", 6)},
			},
			want: domain.ErrInputShape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInput(tt.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, domain.KindOf(err).IsValidation())
		})
	}
}

func TestValidateInputIsIdempotent(t *testing.T) {
	in := hitchhikeScenario()
	before := hitchhikeScenario()

	require.NoError(t, ValidateInput(in))
	require.NoError(t, ValidateInput(in))
	assert.Equal(t, before, in)
}
