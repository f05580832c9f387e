package services

import (
	"encoding/json"
	"fmt"
	"freight-dispatch-service/internal/domain"
	"math"
	"strconv"
	"strings"
)

// RawInput is a dispatch scenario as decoded from JSON or YAML, before any
// type checking. Every field is expected to be a list; routes, deliveries
// and vehicles are lists of rows, each row itself a list.
type RawInput struct {
	Stations   any `json:"stations" yaml:"stations"`
	Routes     any `json:"routes" yaml:"routes"`
	Deliveries any `json:"deliveries" yaml:"deliveries"`
	Vehicles   any `json:"vehicles" yaml:"vehicles"`
}

// NormalizeInput turns raw decoded rows into typed records and validates
// them. Names are stringified; numeric fields accept integers, integral
// floats and numeric strings.
func NormalizeInput(raw RawInput) (domain.Input, error) {
	stations, err := asList("stations", raw.Stations)
	if err != nil {
		return domain.Input{}, err
	}
	routes, err := asList("routes", raw.Routes)
	if err != nil {
		return domain.Input{}, err
	}
	deliveries, err := asList("deliveries", raw.Deliveries)
	if err != nil {
		return domain.Input{}, err
	}
	vehicles, err := asList("vehicles", raw.Vehicles)
	if err != nil {
		return domain.Input{}, err
	}
	if err := checkNotEmpty(len(stations), len(routes), len(deliveries), len(vehicles)); err != nil {
		return domain.Input{}, fmt.Errorf("normalize input: %w", err)
	}

	in := domain.Input{
		Stations:   make([]string, 0, len(stations)),
		Routes:     make([]domain.RouteRow, 0, len(routes)),
		Deliveries: make([]domain.DeliveryRow, 0, len(deliveries)),
		Vehicles:   make([]domain.VehicleRow, 0, len(vehicles)),
	}

	for _, s := range stations {
		name, err := asString(s)
		if err != nil {
			return domain.Input{}, fmt.Errorf("normalize input: station: %w", err)
		}
		in.Stations = append(in.Stations, name)
	}

	for i, r := range routes {
		f, err := asRow(r, 4)
		if err != nil {
			return domain.Input{}, fmt.Errorf("normalize input: route #%d: %w", i+1, err)
		}
		row := domain.RouteRow{}
		if row.Name, err = asString(f[0]); err == nil {
			if row.StationA, err = asString(f[1]); err == nil {
				if row.StationB, err = asString(f[2]); err == nil {
					row.Cost, err = asInt(f[3])
				}
			}
		}
		if err != nil {
			return domain.Input{}, fmt.Errorf("normalize input: route #%d: %w", i+1, err)
		}
		in.Routes = append(in.Routes, row)
	}

	for i, d := range deliveries {
		f, err := asRow(d, 4)
		if err != nil {
			return domain.Input{}, fmt.Errorf("normalize input: delivery #%d: %w", i+1, err)
		}
		row := domain.DeliveryRow{}
		if row.Name, err = asString(f[0]); err == nil {
			if row.Origin, err = asString(f[1]); err == nil {
				if row.Destination, err = asString(f[2]); err == nil {
					row.Weight, err = asInt(f[3])
				}
			}
		}
		if err != nil {
			return domain.Input{}, fmt.Errorf("normalize input: delivery #%d: %w", i+1, err)
		}
		in.Deliveries = append(in.Deliveries, row)
	}

	for i, v := range vehicles {
		f, err := asRow(v, 3)
		if err != nil {
			return domain.Input{}, fmt.Errorf("normalize input: vehicle #%d: %w", i+1, err)
		}
		row := domain.VehicleRow{}
		if row.Name, err = asString(f[0]); err == nil {
			if row.Station, err = asString(f[1]); err == nil {
				row.MaxCapacity, err = asInt(f[2])
			}
		}
		if err != nil {
			return domain.Input{}, fmt.Errorf("normalize input: vehicle #%d: %w", i+1, err)
		}
		in.Vehicles = append(in.Vehicles, row)
	}

	if err := ValidateInput(in); err != nil {
		return domain.Input{}, err
	}
	return in, nil
}

// RawFromInput converts a typed input back into raw rows, so a normalized
// scenario can be stored or sent in the same shape it was received.
func RawFromInput(in domain.Input) RawInput {
	stations := make([]any, 0, len(in.Stations))
	for _, s := range in.Stations {
		stations = append(stations, s)
	}
	routes := make([]any, 0, len(in.Routes))
	for _, r := range in.Routes {
		routes = append(routes, []any{r.Name, r.StationA, r.StationB, r.Cost})
	}
	deliveries := make([]any, 0, len(in.Deliveries))
	for _, d := range in.Deliveries {
		deliveries = append(deliveries, []any{d.Name, d.Origin, d.Destination, d.Weight})
	}
	vehicles := make([]any, 0, len(in.Vehicles))
	for _, v := range in.Vehicles {
		vehicles = append(vehicles, []any{v.Name, v.Station, v.MaxCapacity})
	}
	return RawInput{Stations: stations, Routes: routes, Deliveries: deliveries, Vehicles: vehicles}
}

func asList(field string, v any) ([]any, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("normalize input: %s must be a list, got %T: %w", field, v, domain.ErrInputShape)
	}
	return list, nil
}

func asRow(v any, arity int) ([]any, error) {
	row, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("row must be a list, got %T: %w", v, domain.ErrInputShape)
	}
	if len(row) != arity {
		return nil, fmt.Errorf("row must have %d fields, got %d: %w", arity, len(row), domain.ErrInputShape)
	}
	return row, nil
}

func asString(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case uint64:
		return strconv.FormatUint(t, 10), nil
	case float64:
		return floatName(t), nil
	case json.Number:
		return t.String(), nil
	case bool:
		if t {
			return "True", nil
		}
		return "False", nil
	}
	return "", fmt.Errorf("cannot use %T as a name: %w", v, domain.ErrInputShape)
}

// floatName renders a float the way it was written in the source document:
// whole numbers keep their ".0" and very large or small magnitudes use an
// exponent, so 1.0 and 1 name different stations.
func floatName(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func asInt(v any) (int, error) {
	switch t := v.(type) {
	case int:
		return t, nil
	case int64:
		return int(t), nil
	case uint64:
		if t > math.MaxInt {
			break
		}
		return int(t), nil
	case float64:
		if t != math.Trunc(t) || math.Abs(t) > math.MaxInt32 {
			break
		}
		return int(t), nil
	case json.Number:
		n, err := strconv.Atoi(t.String())
		if err != nil {
			break
		}
		return n, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			break
		}
		return n, nil
	}
	return 0, fmt.Errorf("cannot use %v (%T) as an integer: %w", v, v, domain.ErrInputShape)
}
