package ports

import "errors"

// Fault sentinels for collaborator failures. Adapters wrap their errors with
// fmt.Errorf("%w: ...", sentinel) so the pipeline can classify a failure with
// errors.Is without knowing the adapter behind the port.
var (
	// ErrStoreUnavailable marks a store fault. Fatal for the batch when it
	// hits the fetch; recoverable (partial or total persistence failure)
	// when it hits the bulk update.
	ErrStoreUnavailable = errors.New("order store unavailable")

	// ErrLookupUnavailable marks a transport or availability fault of the
	// lookup service. Recoverable per order: the affected order ends up in
	// lookup_failure and the batch continues.
	ErrLookupUnavailable = errors.New("lookup service unavailable")

	// ErrExportFailed marks a write fault of the export sink. Applies to the
	// whole export-eligible subset at once.
	ErrExportFailed = errors.New("order export failed")
)
