package order

import (
	"fmt"

	"assettransfer/internal/pkg/errs"
)

// Status is the fulfilment stage of an order. Stages only move forward, one
// step at a time:
//
//	ORDERED ──> COLLECTING_MATERIALS ──> MATERIALS_COLLECTED ──> MATERIALS_DELIVERED ──> PRODUCED
//
// Status is converted to and from its label only at the codec boundary.
type Status int

const (
	// Unknown stands for any label outside the enumeration. Orders may be
	// created with such a label but can never be advanced.
	Unknown Status = iota

	// Ordered is the stage of a freshly placed order.
	Ordered

	// CollectingMaterials lasts until leather and metal are gathered for every unit.
	CollectingMaterials

	// MaterialsCollected means every unit has its materials.
	MaterialsCollected

	// MaterialsDelivered means the materials reached the assembler.
	MaterialsDelivered

	// Produced is terminal.
	Produced
)

// getStatusStrings returns the wire label of every status.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:             "UNKNOWN",
		Ordered:             "ORDERED",
		CollectingMaterials: "COLLECTING_MATERIALS",
		MaterialsCollected:  "MATERIALS_COLLECTED",
		MaterialsDelivered:  "MATERIALS_DELIVERED",
		Produced:            "PRODUCED",
	}
}

// getValidStatusStrings returns only the statuses an order can really be in.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Ordered:             "ORDERED",
		CollectingMaterials: "COLLECTING_MATERIALS",
		MaterialsCollected:  "MATERIALS_COLLECTED",
		MaterialsDelivered:  "MATERIALS_DELIVERED",
		Produced:            "PRODUCED",
	}
}

// ParseStatus maps a wire label to its Status. Labels are case-sensitive and
// anything unrecognised yields Unknown.
func ParseStatus(label string) Status {
	for status, str := range getValidStatusStrings() {
		if str == label {
			return status
		}
	}
	return Unknown
}

// Validate checks that s is one of the five lifecycle stages.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire label, "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transition exists.
func (s Status) IsTerminal() bool {
	return s == Produced
}

// Next returns the stage that follows s.
//
// Returns:
//   - (next, nil) for the four non-terminal stages
//   - (0, InvalidOrderError) for Produced and Unknown
//
// Next applies no business guard; see Order.Revise for the guarded transition.
func (s Status) Next() (Status, error) {
	//nolint:exhaustive // Produced and Unknown have no successor
	switch s {
	case Ordered:
		return CollectingMaterials, nil
	case CollectingMaterials:
		return MaterialsCollected, nil
	case MaterialsCollected:
		return MaterialsDelivered, nil
	case MaterialsDelivered:
		return Produced, nil
	default:
		return 0, errs.NewInvalidOrderErrorf("No valid transition from status %s", s)
	}
}
