package services

import (
	"fmt"
	"freight-dispatch-service/internal/domain"
	"freight-dispatch-service/internal/network"
)

func buildVehicles(g *network.Graph, rows []domain.VehicleRow) ([]*domain.Vehicle, error) {
	vehicles := make([]*domain.Vehicle, 0, len(rows))
	for i, r := range rows {
		station, err := g.Index(r.Station)
		if err != nil {
			return nil, fmt.Errorf("build vehicles: vehicle %q: %w", r.Name, err)
		}
		vehicles = append(vehicles, domain.NewVehicle(i, r.Name, station, r.MaxCapacity))
	}
	return vehicles, nil
}

// buildPackages creates the package registry and places every package that
// still has to travel in the inventory of its origin, available from time 0.
func buildPackages(g *network.Graph, rows []domain.DeliveryRow, inv *domain.Inventory) ([]*domain.Package, error) {
	packages := make([]*domain.Package, 0, len(rows))
	for i, r := range rows {
		origin, err := g.Index(r.Origin)
		if err != nil {
			return nil, fmt.Errorf("build packages: package %q: %w", r.Name, err)
		}
		destination, err := g.Index(r.Destination)
		if err != nil {
			return nil, fmt.Errorf("build packages: package %q: %w", r.Name, err)
		}

		pkg := domain.NewPackage(i, r.Name, origin, destination, r.Weight)
		packages = append(packages, pkg)
		if pkg.Delivered() {
			continue
		}
		inv.Put(origin, domain.Stock{Name: pkg.Name, Index: pkg.Index, DropTime: 0})
	}
	return packages, nil
}
