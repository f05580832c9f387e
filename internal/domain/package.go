package domain

import "fmt"

// PackageStatus is the lifecycle state of a package.
type PackageStatus int

const (
	StatusPending PackageStatus = iota
	StatusShipping
	StatusDelivered
)

func (s PackageStatus) String() string {
	switch s {
	case StatusPending:
		return "PENDING"
	case StatusShipping:
		return "SHIPPING"
	case StatusDelivered:
		return "DELIVERED"
	}
	return fmt.Sprintf("PackageStatus(%d)", int(s))
}

// transitions lists every permitted status change.
// Shipping -> Pending is the only regression and happens on an intermediate drop.
var transitions = map[PackageStatus][]PackageStatus{
	StatusPending:  {StatusShipping},
	StatusShipping: {StatusDelivered, StatusPending},
}

func canTransition(from, to PackageStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Package is a single weighted item travelling through the station network.
// Origin is the station the package currently waits at; it moves forward
// every time a vehicle leaves the package somewhere short of its destination.
type Package struct {
	Index       int
	Name        string
	Origin      int
	Destination int
	Weight      int
	status      PackageStatus
}

// NewPackage creates a package that is already delivered when it starts at
// its destination.
func NewPackage(index int, name string, origin, destination, weight int) *Package {
	p := &Package{
		Index:       index,
		Name:        name,
		Origin:      origin,
		Destination: destination,
		Weight:      weight,
		status:      StatusPending,
	}
	if origin == destination {
		p.status = StatusDelivered
	}
	return p
}

func (p *Package) Status() PackageStatus { return p.status }

func (p *Package) Delivered() bool { return p.status == StatusDelivered }

func (p *Package) setStatus(to PackageStatus) error {
	if !canTransition(p.status, to) {
		return fmt.Errorf("package %q: %s -> %s: %w", p.Name, p.status, to, ErrInvalidTransition)
	}
	p.status = to
	return nil
}

// Load marks the package as travelling on a vehicle.
func (p *Package) Load() error {
	return p.setStatus(StatusShipping)
}

// Drop leaves the package at station. It is delivered when station is its
// destination, otherwise it waits there for another pickup.
func (p *Package) Drop(station int) error {
	if station == p.Destination {
		return p.setStatus(StatusDelivered)
	}
	if err := p.setStatus(StatusPending); err != nil {
		return err
	}
	p.Origin = station
	return nil
}
