package payouts

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/mainamike/course_marketplace/models"
	"github.com/mainamike/course_marketplace/utils"
)

const transferTimeout = 30 * time.Second

// Disburse pays out an instructor's entire unpaid balance: it snapshots
// the unpaid set and commission rate, records a durable transfer intent,
// calls the processor once, and on success commits the Settlement, its
// PayoutBatch and the ledger flip as one transaction.
//
// On rejection or timeout nothing is committed and every entry stays
// eligible for a later attempt. At most one transfer is attempted per
// invocation; retrying is always the operator's call. While an earlier
// intent for the instructor is still pending or unknown, disbursement is
// refused outright: a fresh idempotency key would defeat the processor's
// de-duplication if that transfer actually landed.
func (s *Service) Disburse(ctx context.Context, instructorID uuid.UUID) (*models.Settlement, error) {
	lock := s.instructorLock(instructorID.String())
	lock.Lock()
	defer lock.Unlock()

	instructor, err := s.store.GetInstructor(instructorID)
	if err != nil {
		return nil, err
	}

	outstanding, err := s.store.GetOutstandingIntent(instructorID)
	if err != nil {
		return nil, err
	}
	if outstanding != nil {
		log.Printf("⚠️ Refusing disbursement for instructor %s: intent %s is still %q", instructorID, outstanding.ID, outstanding.Status)
		return nil, ErrReconciliationRequired
	}

	entries, err := s.store.ListUnpaid(instructorID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNothingToPay
	}

	if instructor.StripeAccountID == nil || *instructor.StripeAccountID == "" {
		return nil, &TransferRejectedError{Reason: "instructor has no transfer destination configured"}
	}

	var total float64
	entryIDs := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		total += e.Amount
		entryIDs = append(entryIDs, e.ID)
	}

	rate := ResolveCommission(instructor)
	instructorAmount, platformCut := Split(total, rate)

	// The intent must be durable before any money can move: a crash
	// between transfer and commit leaves an intent with no settlement,
	// which the reconciliation sweep surfaces instead of a blind retry.
	intent := &models.TransferIntent{
		ID:             uuid.New(),
		InstructorID:   instructorID,
		Amount:         instructorAmount,
		IdempotencyKey: utils.GenerateIdempotencyKey(),
		Status:         models.IntentPending,
	}
	if err := s.store.CreateIntent(intent); err != nil {
		return nil, err
	}

	transferCtx, cancel := context.WithTimeout(ctx, transferTimeout)
	defer cancel()

	transferRef, err := s.transfers.CreateTransfer(
		transferCtx,
		int64(math.Round(instructorAmount*100)),
		"usd",
		*instructor.StripeAccountID,
		intent.IdempotencyKey,
		fmt.Sprintf("Payout to instructor %s (%s)", instructor.Name, instructorID),
	)
	if err != nil {
		var rejected *TransferRejectedError
		if errors.As(err, &rejected) {
			if updateErr := s.store.SetIntentStatus(intent.ID, models.IntentFailed, nil); updateErr != nil {
				log.Printf("🔥 Failed to mark intent %s as failed: %v", intent.ID, updateErr)
			}
			return nil, err
		}

		// Timeouts and transport failures are unknown outcomes: the
		// transfer may have gone through on the processor's side.
		if updateErr := s.store.SetIntentStatus(intent.ID, models.IntentUnknown, nil); updateErr != nil {
			log.Printf("🔥 Failed to mark intent %s as unknown: %v", intent.ID, updateErr)
		}
		log.Printf("⚠️ Transfer outcome unknown for instructor %s (intent %s): %v", instructorID, intent.ID, err)
		return nil, ErrTransferTimeout
	}

	settlement := &models.Settlement{
		ID:               uuid.New(),
		InstructorID:     instructorID,
		Amount:           total,
		CommissionRate:   rate,
		InstructorAmount: instructorAmount,
		PlatformCut:      platformCut,
		TransferRef:      transferRef,
		PaidAt:           time.Now().UTC(),
	}
	batch := &models.PayoutBatch{
		ID:               uuid.New(),
		InstructorID:     instructorID,
		TotalPlatformCut: platformCut,
		EntryIDs:         entryIDs,
		PayoutAt:         settlement.PaidAt,
	}

	if err := s.store.CommitSettlement(settlement, batch, entryIDs); err != nil {
		// The transfer already succeeded. Leave the intent pending so the
		// reconciliation sweep flags it; correcting this needs an operator.
		log.Printf("🔥 CRITICAL: transfer %s sent but local commit failed for instructor %s: %v", transferRef, instructorID, err)
		return nil, err
	}

	if err := s.store.SetIntentStatus(intent.ID, models.IntentCompleted, &settlement.ID); err != nil {
		log.Printf("🔥 Failed to mark intent %s as completed: %v", intent.ID, err)
	}

	// Attached after the commit so the association is never written back;
	// callers need the instructor for the response and the statement.
	settlement.Instructor = *instructor

	return settlement, nil
}
