package domain

import "fmt"

// Availability display tier of a session's remaining capacity
type Availability string

const (
	AvailabilityFull  Availability = "full"
	AvailabilityLow   Availability = "low"
	AvailabilityAmple Availability = "ample"
)

// Classify maps (available, total) to Full / Low / Ample.
//
//	available == 0           -> Full
//	available/total < 0.3    -> Low
//	available/total >= 0.3   -> Ample
//
// The ratio is compared in integers, so 3 of 10 is exactly on the boundary and
// is Ample. total <= 0 or available outside [0, total] is ErrInvalidCapacity.
func Classify(available, total int) (Availability, error) {
	if total <= 0 {
		return "", fmt.Errorf("%w: total %d must be positive", ErrInvalidCapacity, total)
	}
	if available < 0 || available > total {
		return "", fmt.Errorf("%w: available %d outside [0, %d]", ErrInvalidCapacity, available, total)
	}

	switch {
	case available == 0:
		return AvailabilityFull, nil
	case available*lowRatioDenominator < total*lowRatioNumerator:
		return AvailabilityLow, nil
	default:
		return AvailabilityAmple, nil
	}
}
