package domain

// Input is the normalized description of one dispatch run.
// Rows keep the order they were given in; that order drives every tie-break.
type Input struct {
	Stations   []string      `json:"stations" validate:"dive,required"`
	Routes     []RouteRow    `json:"routes" validate:"dive"`
	Deliveries []DeliveryRow `json:"deliveries" validate:"dive"`
	Vehicles   []VehicleRow  `json:"vehicles" validate:"dive"`
}

// RouteRow is an undirected connection between two stations.
type RouteRow struct {
	Name     string `json:"name" validate:"required"`
	StationA string `json:"station_a" validate:"required"`
	StationB string `json:"station_b" validate:"required"`
	Cost     int    `json:"cost"`
}

// DeliveryRow is a package to move from Origin to Destination.
type DeliveryRow struct {
	Name        string `json:"name" validate:"required"`
	Origin      string `json:"origin" validate:"required"`
	Destination string `json:"destination" validate:"required"`
	Weight      int    `json:"weight"`
}

// VehicleRow is a carrier starting at Station.
type VehicleRow struct {
	Name        string `json:"name" validate:"required"`
	Station     string `json:"station" validate:"required"`
	MaxCapacity int    `json:"max_capacity"`
}
