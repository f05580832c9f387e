package domain

import "slices"

// Stock is a package waiting at a station. It may be picked up from
// DropTime onward.
type Stock struct {
	Name     string
	Index    int
	DropTime int
}

// Inventory tracks the packages physically present at each station.
// Entries keep insertion order so scans over a station are deterministic.
type Inventory struct {
	stations map[int][]Stock
}

func NewInventory() *Inventory {
	return &Inventory{stations: make(map[int][]Stock)}
}

// Put places a package at station, replacing an older entry of the same name.
func (inv *Inventory) Put(station int, s Stock) {
	stock := inv.stations[station]
	for i := range stock {
		if stock[i].Name == s.Name {
			stock = append(stock[:i], stock[i+1:]...)
			break
		}
	}
	inv.stations[station] = append(stock, s)
}

// Take removes the named package from station. It reports whether the
// package was there.
func (inv *Inventory) Take(station int, name string) (Stock, bool) {
	stock := inv.stations[station]
	for i, s := range stock {
		if s.Name == name {
			inv.stations[station] = append(stock[:i:i], stock[i+1:]...)
			return s, true
		}
	}
	return Stock{}, false
}

// At returns a snapshot of the packages waiting at station.
func (inv *Inventory) At(station int) []Stock {
	return append([]Stock(nil), inv.stations[station]...)
}

// Locate returns every station holding the named package, in ascending
// station order. A consistent inventory yields at most one.
func (inv *Inventory) Locate(name string) []int {
	var out []int
	for station, stock := range inv.stations {
		for _, s := range stock {
			if s.Name == name {
				out = append(out, station)
			}
		}
	}
	slices.Sort(out)
	return out
}
