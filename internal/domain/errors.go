package domain

import "errors"

// Sentinel errors for every fatal condition of a dispatch run.
// Callers wrap them with entity context and match with errors.Is.
var (
	ErrInputShape       = errors.New("input shape")
	ErrEmptyInput       = errors.New("empty input")
	ErrDuplicateName    = errors.New("duplicate name")
	ErrSelfLoopRoute    = errors.New("route connects a station to itself")
	ErrNonPositiveValue = errors.New("value must be bigger than zero")
	ErrUnknownStation   = errors.New("unknown station")
	ErrUnreachable      = errors.New("no path between stations")
	ErrNoCapableVehicle = errors.New("no capable vehicle")

	ErrInvalidTransition = errors.New("invalid package status transition")
	ErrCapacityExceeded  = errors.New("vehicle capacity exceeded")
)

// ErrorKind discriminates run failures for callers that need to react
// differently to bad input and to infeasible plans.
type ErrorKind string

const (
	KindInputShape       ErrorKind = "input_shape"
	KindEmptyInput       ErrorKind = "empty_input"
	KindDuplicateName    ErrorKind = "duplicate_name"
	KindSelfLoopRoute    ErrorKind = "self_loop_route"
	KindNonPositiveValue ErrorKind = "non_positive_value"
	KindUnknownStation   ErrorKind = "unknown_station"
	KindUnreachable      ErrorKind = "unreachable"
	KindNoCapableVehicle ErrorKind = "no_capable_vehicle"
	KindInternal         ErrorKind = "internal"
)

var kinds = []struct {
	err  error
	kind ErrorKind
}{
	{ErrInputShape, KindInputShape},
	{ErrEmptyInput, KindEmptyInput},
	{ErrDuplicateName, KindDuplicateName},
	{ErrSelfLoopRoute, KindSelfLoopRoute},
	{ErrNonPositiveValue, KindNonPositiveValue},
	{ErrUnknownStation, KindUnknownStation},
	{ErrUnreachable, KindUnreachable},
	{ErrNoCapableVehicle, KindNoCapableVehicle},
}

// KindOf returns the kind of the first sentinel found in err's chain.
// Errors outside the taxonomy are reported as KindInternal.
func KindOf(err error) ErrorKind {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}

// IsValidation reports whether the kind is detected before planning starts.
func (k ErrorKind) IsValidation() bool {
	switch k {
	case KindInputShape, KindEmptyInput, KindDuplicateName, KindSelfLoopRoute,
		KindNonPositiveValue, KindUnknownStation:
		return true
	}
	return false
}
