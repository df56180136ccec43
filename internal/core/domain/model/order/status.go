package order

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// Status represents the processing outcome of an order.
//
// Unlike a strict lifecycle state machine, statuses here record the result
// of the most recent batch run: classification outcomes (processed, pending,
// review_required, completed, in_progress, unknown_type), export outcomes
// (exported, export_failed), lookup outcomes (lookup_error,
// lookup_data_error, lookup_failure) and the catch-all processing_error.
// A later run may legally move an order from any valid status to any other.
type Status int

const (
	// StatusUndefined represents an invalid or uninitialized status.
	StatusUndefined Status = iota

	// StatusNew is the initial status of a freshly created order.
	StatusNew

	// StatusExported marks an export-type order whose CSV export succeeded.
	StatusExported

	// StatusExportFailed marks an export-type order whose CSV export failed.
	StatusExportFailed

	// StatusProcessed marks a lookup-type order with payload >= the data
	// threshold and amount below the review threshold.
	StatusProcessed

	// StatusPending marks a lookup-type order with payload below the data threshold.
	StatusPending

	// StatusReviewRequired marks a lookup-type order with payload >= the data
	// threshold and amount >= the review threshold.
	StatusReviewRequired

	// StatusLookupError marks a lookup-type order for which the lookup service
	// answered with a non-success status. A business outcome, not a fault.
	StatusLookupError

	// StatusLookupDataError marks a lookup-type order whose lookup payload
	// could not be interpreted as a number.
	StatusLookupDataError

	// StatusLookupFailure marks a lookup-type order for which the lookup call
	// itself failed.
	StatusLookupFailure

	// StatusCompleted marks a flag-type order with flag set.
	StatusCompleted

	// StatusInProgress marks a flag-type order with flag unset.
	StatusInProgress

	// StatusUnknownType marks an order of unrecognized type.
	StatusUnknownType

	// StatusProcessingError marks an order whose classification hit an
	// unexpected failure.
	StatusProcessingError
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUndefined:       "undefined",
		StatusNew:             "new",
		StatusExported:        "exported",
		StatusExportFailed:    "export_failed",
		StatusProcessed:       "processed",
		StatusPending:         "pending",
		StatusReviewRequired:  "review_required",
		StatusLookupError:     "lookup_error",
		StatusLookupDataError: "lookup_data_error",
		StatusLookupFailure:   "lookup_failure",
		StatusCompleted:       "completed",
		StatusInProgress:      "in_progress",
		StatusUnknownType:     "unknown_type",
		StatusProcessingError: "processing_error",
	}
}

// Validate checks that the status is one of the defined processing outcomes.
// StatusUndefined and out-of-range values are invalid.
func (s Status) Validate() error {
	if s == StatusUndefined {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status. Implements fmt.Stringer
// and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "undefined"
}

// ParseStatus maps a stored status name to its Status value.
// Returns an error for names outside the closed set.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUndefined {
			return status, nil
		}
	}
	return StatusUndefined, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status name", s))
}
