package domain

import "fmt"

// Cargo is one package aboard a vehicle.
type Cargo struct {
	Name   string
	Index  int
	Weight int
}

// Vehicle is a capacity-bounded carrier moving through the station network.
// Its manifest groups cargo by the station where it will be dropped, in the
// order it was loaded.
type Vehicle struct {
	Index       int
	Name        string
	Location    int
	MaxCapacity int
	Capacity    int
	ElapsedTime int
	manifest    map[int][]Cargo
	log         []LogEntry
}

func NewVehicle(index int, name string, station int, maxCapacity int) *Vehicle {
	return &Vehicle{
		Index:       index,
		Name:        name,
		Location:    station,
		MaxCapacity: maxCapacity,
		Capacity:    maxCapacity,
		manifest:    make(map[int][]Cargo),
	}
}

// CanCarry reports whether pkg fits next to reserved weight that is
// already promised to another package.
func (v *Vehicle) CanCarry(pkg *Package, reserved int) bool {
	return v.Capacity >= pkg.Weight+reserved
}

// Load puts a package aboard, to be dropped at dropAt.
func (v *Vehicle) Load(pkg *Package, dropAt int) error {
	if pkg.Weight > v.Capacity {
		return fmt.Errorf(
			"load vehicle: vehicle %q cannot take package %q (weight=%d free=%d): %w",
			v.Name, pkg.Name, pkg.Weight, v.Capacity, ErrCapacityExceeded,
		)
	}
	v.manifest[dropAt] = append(v.manifest[dropAt], Cargo{Name: pkg.Name, Index: pkg.Index, Weight: pkg.Weight})
	v.Capacity -= pkg.Weight
	return nil
}

// Unload removes and returns all cargo bound for station.
func (v *Vehicle) Unload(station int) []Cargo {
	cargo := v.manifest[station]
	if len(cargo) == 0 {
		return nil
	}
	delete(v.manifest, station)
	for _, c := range cargo {
		v.Capacity += c.Weight
	}
	return cargo
}

// Manifest returns a copy of the cargo aboard, keyed by drop station.
func (v *Vehicle) Manifest() map[int][]Cargo {
	out := make(map[int][]Cargo, len(v.manifest))
	for station, cargo := range v.manifest {
		out[station] = append([]Cargo(nil), cargo...)
	}
	return out
}

// CargoWeight returns the total weight aboard.
func (v *Vehicle) CargoWeight() int {
	return v.MaxCapacity - v.Capacity
}

// Move advances the vehicle to station after travelling for duration.
func (v *Vehicle) Move(station int, duration int) {
	v.Location = station
	v.ElapsedTime += duration
}

// WaitUntil idles the vehicle until t. Time never goes backwards.
func (v *Vehicle) WaitUntil(t int) {
	if t > v.ElapsedTime {
		v.ElapsedTime = t
	}
}

func (v *Vehicle) Record(entry LogEntry) {
	v.log = append(v.log, entry)
}

// Log returns the trip log in the order it was recorded.
func (v *Vehicle) Log() []LogEntry {
	return v.log
}
