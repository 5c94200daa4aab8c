package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ScanReport summarises one scheduler scan. Skipped counts expected races
// (the order changed between scan and write); Failures holds everything else.
// Neither stops the scan.
type ScanReport struct {
	Scanned   int
	Processed int
	Skipped   int
	Failures  []OrderFailure
}

// OrderFailure is a per-order error of a scan.
type OrderFailure struct {
	OrderID kernel.UUID
	Err     error
}

func (r *ScanReport) record(orderID kernel.UUID, err error) {
	switch {
	case err == nil:
		r.Processed++
	case isExpectedRace(err):
		r.Skipped++
	default:
		r.Failures = append(r.Failures, OrderFailure{OrderID: orderID, Err: err})
	}
}

// isExpectedRace: another writer got there first, or the order left the
// escalatable statuses since it was scanned. Retrying is pointless.
func isExpectedRace(err error) bool {
	return errors.Is(err, errs.ErrConcurrentModification) || errors.Is(err, errs.ErrPreconditionFailed)
}
