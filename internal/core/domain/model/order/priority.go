package order

import (
	"fmt"

	"github.com/shopspring/decimal"

	"orderflow/internal/pkg/errs"
)

// Priority represents the processing priority of an order.
// It is derived solely from the order amount, independent of type and status.
type Priority int

const (
	// PriorityUndefined represents an invalid or uninitialized priority.
	PriorityUndefined Priority = iota

	// PriorityLow is the default priority.
	PriorityLow

	// PriorityHigh applies to orders whose amount exceeds the high-priority threshold.
	PriorityHigh
)

// highPriorityAmount is the exclusive amount threshold above which an order
// is high priority. An amount equal to the threshold stays low.
var highPriorityAmount = decimal.NewFromInt(200)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUndefined: "undefined",
		PriorityLow:       "low",
		PriorityHigh:      "high",
	}
}

// Validate checks that the priority is low or high.
func (p Priority) Validate() error {
	if p != PriorityLow && p != PriorityHigh {
		return errs.NewValueIsInvalidErrorWithCause("priority is invalid",
			fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String returns the persisted name of the priority.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "undefined"
}

// ParsePriority maps a stored priority name to its Priority value.
func ParsePriority(s string) (Priority, error) {
	for p, str := range getPriorityStrings() {
		if str == s && p != PriorityUndefined {
			return p, nil
		}
	}
	return PriorityUndefined, errs.NewValueIsInvalidErrorWithCause("priority is invalid",
		fmt.Errorf("%q is not a valid priority name", s))
}

// PriorityFor derives the priority for an amount: high when the amount
// strictly exceeds 200, low otherwise.
func PriorityFor(amount decimal.Decimal) Priority {
	if amount.GreaterThan(highPriorityAmount) {
		return PriorityHigh
	}
	return PriorityLow
}
