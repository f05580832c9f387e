package services

import (
	"errors"
	"fmt"
	"freight-dispatch-service/internal/domain"
	"freight-dispatch-service/internal/network"
	"math"
)

// Assignment is the vehicle chosen to pick a package up.
type Assignment struct {
	Vehicle    *domain.Vehicle
	PickupCost int
	PickupPath network.Path
}

// SelectVehicle picks the vehicle that can reach pkg's origin the earliest.
//
// Vehicles are scanned in input order. Those too small for the package or
// with no path to its origin are skipped. Pickup cost is the vehicle's
// elapsed time plus the travel time to the origin; on equal cost the first
// vehicle wins. The choice is greedy and never revisited.
func (d *Dispatch) SelectVehicle(pkg *domain.Package) (Assignment, error) {
	best := Assignment{PickupCost: math.MaxInt}

	for _, v := range d.vehicles {
		if v.MaxCapacity < pkg.Weight {
			continue
		}

		pickup, err := d.paths.Lookup(v.Location, pkg.Origin)
		if errors.Is(err, domain.ErrUnreachable) {
			continue
		}
		if err != nil {
			return Assignment{}, fmt.Errorf("select vehicle: vehicle %q: %w", v.Name, err)
		}

		if cost := v.ElapsedTime + pickup.Cost; cost < best.PickupCost {
			best = Assignment{Vehicle: v, PickupCost: cost, PickupPath: pickup}
		}
	}

	if best.Vehicle == nil {
		return Assignment{}, fmt.Errorf(
			"select vehicle: package %q (weight=%d) at %q: %w",
			pkg.Name, pkg.Weight, d.graph.Name(pkg.Origin), domain.ErrNoCapableVehicle,
		)
	}
	return best, nil
}
