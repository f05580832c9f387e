package services

import (
	"fmt"
	"freight-dispatch-service/internal/domain"
	"freight-dispatch-service/internal/network"
	"slices"
)

// SimulateJourney drives v along the pickup path to target's origin and on
// along the delivery path to its destination, one station at a time.
//
// At every station the vehicle first drops the cargo bound for it, then
// loads what it can take: always the target package, and any other waiting
// package ("hitchhiker") that fits next to the target's reserved weight and
// whose own delivery path crosses the rest of the journey. A log entry is
// recorded per station before the vehicle moves on.
func (d *Dispatch) SimulateJourney(target *domain.Package, v *domain.Vehicle, pickup, delivery network.Path) error {
	if len(pickup.Stations) == 0 || len(delivery.Stations) == 0 {
		return fmt.Errorf("simulate journey: package %q: empty path", target.Name)
	}

	journey := make([]int, 0, len(pickup.Stations)+len(delivery.Stations)-1)
	journey = append(journey, pickup.Stations...)
	journey = append(journey, delivery.Stations[1:]...)
	pickupAt := len(pickup.Stations) - 1

	aboard := false
	for i, station := range journey {
		dropped, err := d.dropCargo(v, station)
		if err != nil {
			return fmt.Errorf("simulate journey: %w", err)
		}

		if i == pickupAt {
			// The target may have been left here by another vehicle at a
			// later time than this one arrives; wait for it.
			if s, ok := findStock(d.inventory.At(station), target.Name); ok {
				v.WaitUntil(s.DropTime)
			}
		}

		loaded := []string{}
		for _, s := range d.inventory.At(station) {
			pkg := d.packages[s.Index]
			if pkg.Delivered() || s.DropTime > v.ElapsedTime {
				continue
			}

			dropAt := pkg.Destination
			if pkg != target {
				reserved := 0
				if !aboard {
					reserved = target.Weight
				}
				if !v.CanCarry(pkg, reserved) {
					continue
				}
				at, ok, err := d.hitchhikeDrop(pkg, journey[i+1:])
				if err != nil {
					return fmt.Errorf("simulate journey: %w", err)
				}
				if !ok {
					continue
				}
				dropAt = at
			}

			if err := d.loadCargo(v, pkg, station, dropAt); err != nil {
				return fmt.Errorf("simulate journey: %w", err)
			}
			loaded = append(loaded, pkg.Name)
			if pkg == target {
				aboard = true
			}
		}

		entry := domain.LogEntry{
			Time:            v.ElapsedTime,
			Vehicle:         v.Name,
			Station:         d.graph.Name(station),
			LoadedPackages:  loaded,
			DroppedPackages: dropped,
		}

		if i == len(journey)-1 {
			d.record(v, entry)
			break
		}

		next := journey[i+1]
		route, err := d.graph.Route(station, next)
		if err != nil {
			return fmt.Errorf("simulate journey: %w", err)
		}
		entry.NextStation = d.graph.Name(next)
		entry.NextRoute = route.Name
		entry.NextDuration = route.Cost
		d.record(v, entry)

		v.Move(next, route.Cost)
	}

	if !target.Delivered() {
		return fmt.Errorf("simulate journey: package %q was not delivered by vehicle %q", target.Name, v.Name)
	}
	return nil
}

// dropCargo unloads everything v carries for station and leaves it in the
// station inventory, available from the vehicle's current time.
func (d *Dispatch) dropCargo(v *domain.Vehicle, station int) ([]string, error) {
	dropped := []string{}
	for _, c := range v.Unload(station) {
		pkg := d.packages[c.Index]
		if err := pkg.Drop(station); err != nil {
			return nil, fmt.Errorf("drop cargo: vehicle %q: %w", v.Name, err)
		}
		d.inventory.Put(station, domain.Stock{Name: pkg.Name, Index: pkg.Index, DropTime: v.ElapsedTime})
		dropped = append(dropped, c.Name)
	}
	return dropped, nil
}

func (d *Dispatch) loadCargo(v *domain.Vehicle, pkg *domain.Package, station, dropAt int) error {
	if err := v.Load(pkg, dropAt); err != nil {
		return err
	}
	if _, ok := d.inventory.Take(station, pkg.Name); !ok {
		return fmt.Errorf("load cargo: package %q missing from inventory at %q", pkg.Name, d.graph.Name(station))
	}
	return pkg.Load()
}

// hitchhikeDrop picks where a hitchhiker should leave the vehicle: the
// station of its own delivery path closest to its destination that the
// vehicle still visits. The package's current station does not count.
func (d *Dispatch) hitchhikeDrop(pkg *domain.Package, remaining []int) (int, bool, error) {
	if len(remaining) == 0 {
		return 0, false, nil
	}
	path, err := d.paths.Lookup(pkg.Origin, pkg.Destination)
	if err != nil {
		return 0, false, fmt.Errorf("hitchhike package %q: %w", pkg.Name, err)
	}
	for j := len(path.Stations) - 1; j >= 1; j-- {
		if slices.Contains(remaining, path.Stations[j]) {
			return path.Stations[j], true, nil
		}
	}
	return 0, false, nil
}

func (d *Dispatch) record(v *domain.Vehicle, entry domain.LogEntry) {
	v.Record(entry)
	if d.observe != nil {
		d.observe(v, entry)
	}
}

func findStock(stock []domain.Stock, name string) (domain.Stock, bool) {
	for _, s := range stock {
		if s.Name == name {
			return s, true
		}
	}
	return domain.Stock{}, false
}
