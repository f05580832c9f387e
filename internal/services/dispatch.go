package services

import (
	"errors"
	"fmt"
	"freight-dispatch-service/internal/domain"
	"freight-dispatch-service/internal/network"
)

// Observer is called after every log entry is recorded, with the vehicle in
// the state the entry describes.
type Observer func(v *domain.Vehicle, entry domain.LogEntry)

// Option customizes a Dispatch.
type Option func(*Dispatch)

// WithObserver registers fn to be called for every recorded log entry.
func WithObserver(fn Observer) Option {
	return func(d *Dispatch) { d.observe = fn }
}

// Dispatch is the planning context of one run. It owns the station graph,
// the path cache, the station inventory and every package and vehicle, and
// it is discarded once the run is over.
//
// A Dispatch is not safe for concurrent use; independent runs each get
// their own.
type Dispatch struct {
	graph     *network.Graph
	paths     *network.PathCache
	inventory *domain.Inventory
	packages  []*domain.Package
	vehicles  []*domain.Vehicle
	observe   Observer
	ran       bool
}

// NewDispatch validates in, builds the network and the registries, and
// resolves every pending delivery path so a disconnected delivery fails
// before any vehicle moves.
func NewDispatch(in domain.Input, opts ...Option) (*Dispatch, error) {
	if err := ValidateInput(in); err != nil {
		return nil, err
	}

	g, err := network.NewGraph(in.Stations, in.Routes)
	if err != nil {
		return nil, fmt.Errorf("new dispatch: %w", err)
	}

	d := &Dispatch{
		graph:     g,
		paths:     network.NewPathCache(g),
		inventory: domain.NewInventory(),
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.vehicles, err = buildVehicles(g, in.Vehicles); err != nil {
		return nil, fmt.Errorf("new dispatch: %w", err)
	}
	if d.packages, err = buildPackages(g, in.Deliveries, d.inventory); err != nil {
		return nil, fmt.Errorf("new dispatch: %w", err)
	}

	for _, pkg := range d.packages {
		if pkg.Delivered() {
			continue
		}
		if _, err := d.paths.Lookup(pkg.Origin, pkg.Destination); err != nil {
			return nil, fmt.Errorf("new dispatch: package %q: %w", pkg.Name, err)
		}
	}

	return d, nil
}

// Run plans every undelivered package in input order and returns the merged
// movement log sorted by time. A Dispatch runs at most once.
func (d *Dispatch) Run() ([]domain.LogEntry, error) {
	if d.ran {
		return nil, errors.New("dispatch run: already ran")
	}
	d.ran = true

	for _, pkg := range d.packages {
		// Earlier journeys may have carried it all the way as a hitchhiker.
		if pkg.Delivered() {
			continue
		}

		delivery, err := d.paths.Lookup(pkg.Origin, pkg.Destination)
		if err != nil {
			return nil, fmt.Errorf("dispatch run: package %q: %w", pkg.Name, err)
		}

		a, err := d.SelectVehicle(pkg)
		if err != nil {
			return nil, fmt.Errorf("dispatch run: %w", err)
		}

		if err := d.SimulateJourney(pkg, a.Vehicle, a.PickupPath, delivery); err != nil {
			return nil, fmt.Errorf("dispatch run: %w", err)
		}
	}

	return MergeLogs(d.vehicles), nil
}

// RouteSchedule runs a complete dispatch for in and returns the sorted log.
func RouteSchedule(in domain.Input) ([]domain.LogEntry, error) {
	d, err := NewDispatch(in)
	if err != nil {
		return nil, err
	}
	return d.Run()
}

func (d *Dispatch) Graph() *network.Graph { return d.graph }

func (d *Dispatch) Packages() []*domain.Package { return d.packages }

func (d *Dispatch) Vehicles() []*domain.Vehicle { return d.vehicles }

func (d *Dispatch) Inventory() *domain.Inventory { return d.inventory }
