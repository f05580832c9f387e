package dto

type ScenarioResponse struct {
	Name       string `json:"name"`
	Stations   int    `json:"stations"`
	Routes     int    `json:"routes"`
	Deliveries int    `json:"deliveries"`
	Vehicles   int    `json:"vehicles"`
}

type ListScenariosResponse struct {
	Scenarios []ScenarioResponse `json:"scenarios"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}
