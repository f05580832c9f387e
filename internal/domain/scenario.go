package domain

import "errors"

var ErrScenarioNotFound = errors.New("scenario not found")

// Scenario is a named, stored dispatch input.
type Scenario struct {
	Name  string
	Input Input
}

// ScenarioSummary describes a stored scenario without its rows.
type ScenarioSummary struct {
	Name       string
	Stations   int
	Routes     int
	Deliveries int
	Vehicles   int
}

// Summarize counts the rows of a scenario.
func (s Scenario) Summarize() ScenarioSummary {
	return ScenarioSummary{
		Name:       s.Name,
		Stations:   len(s.Input.Stations),
		Routes:     len(s.Input.Routes),
		Deliveries: len(s.Input.Deliveries),
		Vehicles:   len(s.Input.Vehicles),
	}
}
