package domain

// Station is a node of the transport network. Index is its stable position
// in the station list.
type Station struct {
	Index int
	Name  string
}

// Route is a weighted undirected edge between two stations.
// Cost is the travel time in either direction.
type Route struct {
	Name string
	A    int
	B    int
	Cost int
}

// Represents one stop of a vehicle in the movement log.
// A LogEntry is recorded after the vehicle has dropped and loaded packages
// at Station. Next* fields describe the leg that follows and are omitted
// on the last stop of a journey.
type LogEntry struct {
	Time            int      `json:"time"`
	Vehicle         string   `json:"vehicle"`
	Station         string   `json:"station"`
	LoadedPackages  []string `json:"loaded_packages"`
	DroppedPackages []string `json:"dropped_packages"`
	NextStation     string   `json:"next_station,omitempty"`
	NextRoute       string   `json:"next_route,omitempty"`
	NextDuration    int      `json:"next_duration,omitempty"`
}

// HasNext reports whether the entry is followed by a transit leg.
func (e LogEntry) HasNext() bool { return e.NextStation != "" }
