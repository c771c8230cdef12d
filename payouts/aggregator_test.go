package payouts

import (
	"testing"

	"github.com/google/uuid"
	"github.com/mainamike/course_marketplace/models"
)

func TestSummarize(t *testing.T) {
	t.Run("Given unpaid entries Then totals and split are computed from the ledger", func(t *testing.T) {
		store := NewMockStore()
		svc := NewService(store, &MockTransferClient{})

		instructorID := seedInstructor(store, 70)
		seedEntry(store, instructorID, 100)
		seedEntry(store, instructorID, 250)

		summary, err := svc.Summarize(instructorID)
		if err != nil {
			t.Fatalf("Summarize failed: %v", err)
		}

		if len(summary.Entries) != 2 {
			t.Errorf("expected 2 entries, got %d", len(summary.Entries))
		}
		if summary.TotalAmount != 350 {
			t.Errorf("expected total 350, got %v", summary.TotalAmount)
		}
		if summary.CommissionRate != 70 {
			t.Errorf("expected rate 70, got %v", summary.CommissionRate)
		}
		if summary.InstructorAmount != 245 {
			t.Errorf("expected instructor amount 245, got %v", summary.InstructorAmount)
		}
		if summary.PlatformCut != 105 {
			t.Errorf("expected platform cut 105, got %v", summary.PlatformCut)
		}
	})

	t.Run("Given no unpaid entries Then a zero summary, not an error", func(t *testing.T) {
		store := NewMockStore()
		svc := NewService(store, &MockTransferClient{})

		instructorID := seedInstructor(store, 70)

		summary, err := svc.Summarize(instructorID)
		if err != nil {
			t.Fatalf("Summarize failed: %v", err)
		}
		if summary.TotalAmount != 0 || summary.InstructorAmount != 0 || summary.PlatformCut != 0 {
			t.Errorf("expected zero summary, got %+v", summary)
		}
	})
}

func TestGroupUnpaid(t *testing.T) {
	instructorA := uuid.New()
	instructorB := uuid.New()

	entries := []models.UnpaidEntry{
		{InstructorID: instructorA, Amount: 40, Instructor: models.Instructor{Name: "Alice"}},
		{InstructorID: instructorB, Amount: 10, Instructor: models.Instructor{Name: "Bob"}},
		{InstructorID: instructorA, Amount: 60, Instructor: models.Instructor{Name: "Alice"}},
	}

	summary := groupUnpaid(entries)

	if len(summary) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(summary))
	}

	byID := make(map[uuid.UUID]InstructorUnpaid)
	for _, s := range summary {
		byID[s.InstructorID] = s
	}

	a := byID[instructorA]
	if a.CourseCount != 2 || a.TotalAmount != 100 || a.InstructorName != "Alice" {
		t.Errorf("unexpected group for Alice: %+v", a)
	}
	b := byID[instructorB]
	if b.CourseCount != 1 || b.TotalAmount != 10 {
		t.Errorf("unexpected group for Bob: %+v", b)
	}
	if a.Status != "Pending" {
		t.Errorf("expected Pending status, got %q", a.Status)
	}
}
