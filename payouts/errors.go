package payouts

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrInstructorNotFound = errors.New("instructor not found")

	// ErrNothingToPay means disbursement was requested for an instructor
	// with zero unpaid entries. No transfer is attempted and nothing is
	// persisted.
	ErrNothingToPay = errors.New("no unpaid entries for this instructor")

	// ErrTransferTimeout means the transfer call produced no definite
	// outcome. The intent record stays in status "unknown" and must be
	// reconciled against the processor before any retry.
	ErrTransferTimeout = errors.New("transfer outcome unknown: reconciliation required before retry")

	// ErrReconciliationRequired means a prior transfer intent for this
	// instructor never reached a terminal state. A new disbursement with a
	// fresh idempotency key could pay twice if the earlier transfer landed,
	// so the engine refuses until the intent is resolved against the
	// processor.
	ErrReconciliationRequired = errors.New("an unresolved transfer intent exists for this instructor: reconcile with the processor before retrying")
)

// TransferRejectedError means the processor explicitly declined the
// transfer. Nothing was persisted beyond the failed intent, so the
// operator can fix the instructor's destination and trigger again.
type TransferRejectedError struct {
	Reason string
}

func (e *TransferRejectedError) Error() string {
	return fmt.Sprintf("transfer rejected by processor: %s", e.Reason)
}

// ConsistencyError reports a state the engine refuses to touch: an
// already-paid entry targeted by a commit, or a settlement written
// without its ledger update. It is logged for manual audit, never
// auto-corrected.
type ConsistencyError struct {
	Op     string
	Detail string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("payout consistency violation in %s: %s", e.Op, e.Detail)
}
