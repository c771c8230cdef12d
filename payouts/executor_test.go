package payouts

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/mainamike/course_marketplace/models"
)

func stringPtr(s string) *string { return &s }

func seedInstructor(store *MockStore, rate float64) uuid.UUID {
	id := uuid.New()
	store.Instructors[id] = &models.Instructor{
		ID:              id,
		Name:            "Jane Instructor",
		Email:           "jane@example.com",
		CommissionRate:  rate,
		StripeAccountID: stringPtr("acct_test123"),
	}
	return id
}

func seedEntry(store *MockStore, instructorID uuid.UUID, amount float64) uuid.UUID {
	id := uuid.New()
	store.Entries[id] = &models.UnpaidEntry{
		ID:           id,
		InstructorID: instructorID,
		CourseID:     uuid.New(),
		StudentID:    uuid.New(),
		Amount:       amount,
	}
	return id
}

func TestDisburse(t *testing.T) {
	ctx := context.Background()

	t.Run("Given three entries totaling 300 at rate 70 Then settlement splits 210/90 and all entries flip", func(t *testing.T) {
		store := NewMockStore()
		transfers := &MockTransferClient{Ref: "tr_abc"}
		svc := NewService(store, transfers)

		instructorID := seedInstructor(store, 70)
		seedEntry(store, instructorID, 100)
		seedEntry(store, instructorID, 150)
		seedEntry(store, instructorID, 50)

		settlement, err := svc.Disburse(ctx, instructorID)
		if err != nil {
			t.Fatalf("Disburse failed: %v", err)
		}

		if settlement.Amount != 300 {
			t.Errorf("expected amount 300, got %v", settlement.Amount)
		}
		if settlement.InstructorAmount != 210 {
			t.Errorf("expected instructor amount 210, got %v", settlement.InstructorAmount)
		}
		if settlement.PlatformCut != 90 {
			t.Errorf("expected platform cut 90, got %v", settlement.PlatformCut)
		}
		if settlement.CommissionRate != 70 {
			t.Errorf("expected commission rate 70, got %v", settlement.CommissionRate)
		}
		if settlement.TransferRef != "tr_abc" {
			t.Errorf("expected transfer ref tr_abc, got %q", settlement.TransferRef)
		}
		if settlement.Instructor.Name != "Jane Instructor" {
			t.Errorf("expected instructor attached to the settlement, got %+v", settlement.Instructor)
		}

		for id, entry := range store.Entries {
			if !entry.Paid {
				t.Errorf("entry %s still unpaid after settlement", id)
			}
			if entry.SettlementID == nil || *entry.SettlementID != settlement.ID {
				t.Errorf("entry %s not linked to settlement", id)
			}
		}

		if len(store.Batches) != 1 {
			t.Fatalf("expected 1 batch, got %d", len(store.Batches))
		}
		if store.Batches[0].SettlementID != settlement.ID {
			t.Error("batch not linked to its settlement")
		}
		if store.Batches[0].TotalPlatformCut != 90 {
			t.Errorf("expected batch platform cut 90, got %v", store.Batches[0].TotalPlatformCut)
		}

		for _, intent := range store.Intents {
			if intent.Status != models.IntentCompleted {
				t.Errorf("expected completed intent, got %q", intent.Status)
			}
			if intent.SettlementID == nil || *intent.SettlementID != settlement.ID {
				t.Error("intent not linked to its settlement")
			}
		}

		if len(transfers.Calls) != 1 {
			t.Fatalf("expected 1 transfer call, got %d", len(transfers.Calls))
		}
		call := transfers.Calls[0]
		if call.AmountCents != 21000 {
			t.Errorf("expected transfer of 21000 cents, got %d", call.AmountCents)
		}
		if call.Destination != "acct_test123" {
			t.Errorf("expected destination acct_test123, got %q", call.Destination)
		}
		if call.IdempotencyKey == "" {
			t.Error("transfer sent without idempotency key")
		}
	})

	t.Run("Given no unpaid entries Then NothingToPay and no transfer or records", func(t *testing.T) {
		store := NewMockStore()
		transfers := &MockTransferClient{}
		svc := NewService(store, transfers)

		instructorID := seedInstructor(store, 70)

		_, err := svc.Disburse(ctx, instructorID)
		if !errors.Is(err, ErrNothingToPay) {
			t.Fatalf("expected ErrNothingToPay, got %v", err)
		}
		if len(transfers.Calls) != 0 {
			t.Error("transfer attempted with nothing to pay")
		}
		if len(store.Settlements) != 0 || len(store.Intents) != 0 {
			t.Error("records created with nothing to pay")
		}
	})

	t.Run("Given a second call with no new entries Then NothingToPay and no second settlement", func(t *testing.T) {
		store := NewMockStore()
		transfers := &MockTransferClient{}
		svc := NewService(store, transfers)

		instructorID := seedInstructor(store, 70)
		seedEntry(store, instructorID, 120)

		if _, err := svc.Disburse(ctx, instructorID); err != nil {
			t.Fatalf("first Disburse failed: %v", err)
		}

		_, err := svc.Disburse(ctx, instructorID)
		if !errors.Is(err, ErrNothingToPay) {
			t.Fatalf("expected ErrNothingToPay on second call, got %v", err)
		}
		if len(store.Settlements) != 1 {
			t.Errorf("expected exactly 1 settlement, got %d", len(store.Settlements))
		}
		if len(transfers.Calls) != 1 {
			t.Errorf("expected exactly 1 transfer, got %d", len(transfers.Calls))
		}
	})

	t.Run("Given the processor rejects Then nothing is committed and entries stay payable", func(t *testing.T) {
		store := NewMockStore()
		transfers := &MockTransferClient{Err: &TransferRejectedError{Reason: "account requirements not met"}}
		svc := NewService(store, transfers)

		instructorID := seedInstructor(store, 70)
		entryID := seedEntry(store, instructorID, 150)

		_, err := svc.Disburse(ctx, instructorID)

		var rejected *TransferRejectedError
		if !errors.As(err, &rejected) {
			t.Fatalf("expected TransferRejectedError, got %v", err)
		}
		if len(store.Settlements) != 0 || len(store.Batches) != 0 {
			t.Error("records created despite rejection")
		}
		if store.Entries[entryID].Paid {
			t.Error("entry marked paid despite rejection")
		}

		var intent *models.TransferIntent
		for _, i := range store.Intents {
			intent = i
		}
		if intent == nil || intent.Status != models.IntentFailed {
			t.Errorf("expected a failed intent, got %+v", intent)
		}

		// Retry after fixing the destination succeeds cleanly.
		transfers.Err = nil
		settlement, err := svc.Disburse(ctx, instructorID)
		if err != nil {
			t.Fatalf("retry after rejection failed: %v", err)
		}
		if settlement.Amount != 150 {
			t.Errorf("expected retried settlement of 150, got %v", settlement.Amount)
		}
	})

	t.Run("Given a timeout Then outcome is unknown, intent flagged, nothing committed", func(t *testing.T) {
		store := NewMockStore()
		transfers := &MockTransferClient{Err: context.DeadlineExceeded}
		svc := NewService(store, transfers)

		instructorID := seedInstructor(store, 70)
		entryID := seedEntry(store, instructorID, 80)

		_, err := svc.Disburse(ctx, instructorID)
		if !errors.Is(err, ErrTransferTimeout) {
			t.Fatalf("expected ErrTransferTimeout, got %v", err)
		}
		if store.Entries[entryID].Paid {
			t.Error("entry marked paid on unknown outcome")
		}
		if len(store.Settlements) != 0 {
			t.Error("settlement created on unknown outcome")
		}

		var intent *models.TransferIntent
		for _, i := range store.Intents {
			intent = i
		}
		if intent == nil || intent.Status != models.IntentUnknown {
			t.Errorf("expected intent in unknown status, got %+v", intent)
		}
	})

	t.Run("Given an unresolved intent from a timeout Then a retry is refused until the intent is resolved", func(t *testing.T) {
		store := NewMockStore()
		transfers := &MockTransferClient{Err: context.DeadlineExceeded}
		svc := NewService(store, transfers)

		instructorID := seedInstructor(store, 70)
		seedEntry(store, instructorID, 80)

		if _, err := svc.Disburse(ctx, instructorID); !errors.Is(err, ErrTransferTimeout) {
			t.Fatalf("expected ErrTransferTimeout, got %v", err)
		}

		// Even with a now-healthy processor, a blind retry would send a
		// second transfer under a fresh idempotency key.
		transfers.Err = nil
		_, err := svc.Disburse(ctx, instructorID)
		if !errors.Is(err, ErrReconciliationRequired) {
			t.Fatalf("expected ErrReconciliationRequired, got %v", err)
		}
		if len(transfers.Calls) != 1 {
			t.Errorf("expected exactly 1 transfer call, got %d", len(transfers.Calls))
		}
		if len(store.Settlements) != 0 {
			t.Errorf("expected no settlement, got %d", len(store.Settlements))
		}

		// Once the operator resolves the intent as failed, payout proceeds.
		var intentID uuid.UUID
		for id := range store.Intents {
			intentID = id
		}
		if err := store.SetIntentStatus(intentID, models.IntentFailed, nil); err != nil {
			t.Fatalf("SetIntentStatus failed: %v", err)
		}

		settlement, err := svc.Disburse(ctx, instructorID)
		if err != nil {
			t.Fatalf("Disburse after resolution failed: %v", err)
		}
		if settlement.Amount != 80 {
			t.Errorf("expected settlement of 80, got %v", settlement.Amount)
		}
		if len(transfers.Calls) != 2 {
			t.Errorf("expected 2 transfer calls after resolution, got %d", len(transfers.Calls))
		}
	})

	t.Run("Given no transfer destination Then rejected before any intent or transfer", func(t *testing.T) {
		store := NewMockStore()
		transfers := &MockTransferClient{}
		svc := NewService(store, transfers)

		instructorID := uuid.New()
		store.Instructors[instructorID] = &models.Instructor{ID: instructorID, Name: "No Account", CommissionRate: 70}
		seedEntry(store, instructorID, 50)

		_, err := svc.Disburse(ctx, instructorID)

		var rejected *TransferRejectedError
		if !errors.As(err, &rejected) {
			t.Fatalf("expected TransferRejectedError, got %v", err)
		}
		if len(transfers.Calls) != 0 {
			t.Error("transfer attempted without a destination")
		}
		if len(store.Intents) != 0 {
			t.Error("intent created without a destination")
		}
	})

	t.Run("Given the commit fails after a sent transfer Then the intent stays pending for reconciliation", func(t *testing.T) {
		store := NewMockStore()
		store.CommitErr = &ConsistencyError{Op: "markPaid", Detail: "entry missing or already paid"}
		transfers := &MockTransferClient{}
		svc := NewService(store, transfers)

		instructorID := seedInstructor(store, 70)
		seedEntry(store, instructorID, 60)

		_, err := svc.Disburse(ctx, instructorID)

		var inconsistent *ConsistencyError
		if !errors.As(err, &inconsistent) {
			t.Fatalf("expected ConsistencyError, got %v", err)
		}
		if len(transfers.Calls) != 1 {
			t.Errorf("expected exactly 1 transfer, got %d", len(transfers.Calls))
		}

		for _, intent := range store.Intents {
			if intent.Status != models.IntentPending {
				t.Errorf("expected intent left pending for the sweep, got %q", intent.Status)
			}
		}

		// The pending intent also blocks any further disbursement.
		store.CommitErr = nil
		if _, err := svc.Disburse(ctx, instructorID); !errors.Is(err, ErrReconciliationRequired) {
			t.Errorf("expected ErrReconciliationRequired after a failed commit, got %v", err)
		}
		if len(transfers.Calls) != 1 {
			t.Errorf("expected no second transfer, got %d calls", len(transfers.Calls))
		}
	})

	t.Run("Given an unknown instructor Then ErrInstructorNotFound", func(t *testing.T) {
		store := NewMockStore()
		svc := NewService(store, &MockTransferClient{})

		_, err := svc.Disburse(ctx, uuid.New())
		if !errors.Is(err, ErrInstructorNotFound) {
			t.Fatalf("expected ErrInstructorNotFound, got %v", err)
		}
	})

	t.Run("Given a commission edit after settlement Then the settlement keeps its snapshot", func(t *testing.T) {
		store := NewMockStore()
		svc := NewService(store, &MockTransferClient{})

		instructorID := seedInstructor(store, 70)
		seedEntry(store, instructorID, 200)

		settlement, err := svc.Disburse(ctx, instructorID)
		if err != nil {
			t.Fatalf("Disburse failed: %v", err)
		}

		store.Instructors[instructorID].CommissionRate = 20

		if settlement.CommissionRate != 70 {
			t.Errorf("settlement rate changed after instructor edit: %v", settlement.CommissionRate)
		}
		if store.Settlements[0].CommissionRate != 70 {
			t.Errorf("stored settlement rate changed after instructor edit: %v", store.Settlements[0].CommissionRate)
		}
		if store.Settlements[0].InstructorAmount != 140 {
			t.Errorf("stored instructor amount changed: %v", store.Settlements[0].InstructorAmount)
		}
	})

	t.Run("Given two concurrent calls for the same instructor Then exactly one settlement", func(t *testing.T) {
		store := NewMockStore()
		transfers := &MockTransferClient{}
		svc := NewService(store, transfers)

		instructorID := seedInstructor(store, 70)
		for i := 0; i < 4; i++ {
			seedEntry(store, instructorID, 25)
		}

		var wg sync.WaitGroup
		results := make([]error, 2)
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, results[i] = svc.Disburse(ctx, instructorID)
			}(i)
		}
		wg.Wait()

		var succeeded, nothingToPay int
		for _, err := range results {
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, ErrNothingToPay):
				nothingToPay++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}

		if succeeded != 1 || nothingToPay != 1 {
			t.Errorf("expected one success and one NothingToPay, got %d/%d", succeeded, nothingToPay)
		}
		if len(store.Settlements) != 1 {
			t.Errorf("expected exactly 1 settlement, got %d", len(store.Settlements))
		}
		if store.Settlements[0].Amount != 100 {
			t.Errorf("expected settlement for the full 100, got %v", store.Settlements[0].Amount)
		}
		if len(transfers.Calls) != 1 {
			t.Errorf("expected exactly 1 transfer, got %d", len(transfers.Calls))
		}
		for id, entry := range store.Entries {
			if !entry.Paid {
				t.Errorf("entry %s left unpaid", id)
			}
		}
	})
}
