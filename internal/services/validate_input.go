package services

import (
	"errors"
	"fmt"
	"freight-dispatch-service/internal/domain"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateInput checks a typed input against every precondition of a
// dispatch run. It never modifies in, so validating twice is a no-op.
//
// Checks run in a fixed order: emptiness, blank names, duplicate stations,
// then routes, deliveries and vehicles row by row.
func ValidateInput(in domain.Input) error {
	if err := checkNotEmpty(len(in.Stations), len(in.Routes), len(in.Deliveries), len(in.Vehicles)); err != nil {
		return fmt.Errorf("validate input: %w", err)
	}

	if err := validate.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("validate input: %s failed %q: %w", fe.Namespace(), fe.Tag(), domain.ErrInputShape)
		}
		return fmt.Errorf("validate input: %w", err)
	}

	stations := make(map[string]struct{}, len(in.Stations))
	for _, s := range in.Stations {
		if _, ok := stations[s]; ok {
			return fmt.Errorf("validate input: station %q: %w", s, domain.ErrDuplicateName)
		}
		stations[s] = struct{}{}
	}
	known := func(name string) bool {
		_, ok := stations[name]
		return ok
	}

	routeNames := make(map[string]struct{}, len(in.Routes))
	for _, r := range in.Routes {
		if r.StationA == r.StationB {
			return fmt.Errorf("validate input: route %q at station %q: %w", r.Name, r.StationA, domain.ErrSelfLoopRoute)
		}
		if _, ok := routeNames[r.Name]; ok {
			return fmt.Errorf("validate input: route %q: %w", r.Name, domain.ErrDuplicateName)
		}
		routeNames[r.Name] = struct{}{}
		if r.Cost <= 0 {
			return fmt.Errorf("validate input: route %q time cost=%d: %w", r.Name, r.Cost, domain.ErrNonPositiveValue)
		}
		if !known(r.StationA) || !known(r.StationB) {
			return fmt.Errorf("validate input: route %q %q-%q: %w", r.Name, r.StationA, r.StationB, domain.ErrUnknownStation)
		}
	}

	packageNames := make(map[string]struct{}, len(in.Deliveries))
	for _, d := range in.Deliveries {
		if _, ok := packageNames[d.Name]; ok {
			return fmt.Errorf("validate input: package %q: %w", d.Name, domain.ErrDuplicateName)
		}
		packageNames[d.Name] = struct{}{}
		if d.Weight <= 0 {
			return fmt.Errorf("validate input: package %q weight=%d: %w", d.Name, d.Weight, domain.ErrNonPositiveValue)
		}
		if !known(d.Origin) || !known(d.Destination) {
			return fmt.Errorf("validate input: package %q %q->%q: %w", d.Name, d.Origin, d.Destination, domain.ErrUnknownStation)
		}
	}

	vehicleNames := make(map[string]struct{}, len(in.Vehicles))
	for _, v := range in.Vehicles {
		if _, ok := vehicleNames[v.Name]; ok {
			return fmt.Errorf("validate input: vehicle %q: %w", v.Name, domain.ErrDuplicateName)
		}
		vehicleNames[v.Name] = struct{}{}
		if v.MaxCapacity <= 0 {
			return fmt.Errorf("validate input: vehicle %q max capacity=%d: %w", v.Name, v.MaxCapacity, domain.ErrNonPositiveValue)
		}
		if !known(v.Station) {
			return fmt.Errorf("validate input: vehicle %q station %q: %w", v.Name, v.Station, domain.ErrUnknownStation)
		}
	}

	return nil
}

func checkNotEmpty(stations, routes, deliveries, vehicles int) error {
	switch {
	case stations == 0:
		return fmt.Errorf("no station defined: %w", domain.ErrEmptyInput)
	case routes == 0:
		return fmt.Errorf("no route defined between stations: %w", domain.ErrEmptyInput)
	case deliveries == 0:
		return fmt.Errorf("no deliveries to be made: %w", domain.ErrEmptyInput)
	case vehicles == 0:
		return fmt.Errorf("no vehicle to deliver: %w", domain.ErrEmptyInput)
	}
	return nil
}
