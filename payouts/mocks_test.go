package payouts

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mainamike/course_marketplace/models"
)

// MockStore is an in-memory Store for engine tests.
type MockStore struct {
	mu sync.Mutex

	Instructors map[uuid.UUID]*models.Instructor
	Entries     map[uuid.UUID]*models.UnpaidEntry
	Intents     map[uuid.UUID]*models.TransferIntent
	Settlements []*models.Settlement
	Batches     []*models.PayoutBatch
	Payments    []models.Payment

	CommitErr error
}

func NewMockStore() *MockStore {
	return &MockStore{
		Instructors: make(map[uuid.UUID]*models.Instructor),
		Entries:     make(map[uuid.UUID]*models.UnpaidEntry),
		Intents:     make(map[uuid.UUID]*models.TransferIntent),
	}
}

func (m *MockStore) GetInstructor(id uuid.UUID) (*models.Instructor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	instructor, ok := m.Instructors[id]
	if !ok {
		return nil, ErrInstructorNotFound
	}
	copied := *instructor
	return &copied, nil
}

func (m *MockStore) ListUnpaid(instructorID uuid.UUID) ([]models.UnpaidEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var entries []models.UnpaidEntry
	for _, e := range m.Entries {
		if e.InstructorID == instructorID && !e.Paid {
			entries = append(entries, *e)
		}
	}
	return entries, nil
}

func (m *MockStore) ListAllUnpaid() ([]models.UnpaidEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var entries []models.UnpaidEntry
	for _, e := range m.Entries {
		if !e.Paid {
			copied := *e
			if instructor, ok := m.Instructors[e.InstructorID]; ok {
				copied.Instructor = *instructor
			}
			entries = append(entries, copied)
		}
	}
	return entries, nil
}

func (m *MockStore) CreateIntent(intent *models.TransferIntent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *intent
	copied.CreatedAt = time.Now()
	m.Intents[intent.ID] = &copied
	return nil
}

func (m *MockStore) SetIntentStatus(id uuid.UUID, status string, settlementID *uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if intent, ok := m.Intents[id]; ok {
		intent.Status = status
		intent.SettlementID = settlementID
	}
	return nil
}

func (m *MockStore) GetOutstandingIntent(instructorID uuid.UUID) (*models.TransferIntent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, intent := range m.Intents {
		if intent.InstructorID != instructorID {
			continue
		}
		if intent.Status == models.IntentPending || intent.Status == models.IntentUnknown {
			copied := *intent
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *MockStore) CommitSettlement(settlement *models.Settlement, batch *models.PayoutBatch, entryIDs []uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CommitErr != nil {
		return m.CommitErr
	}

	for _, id := range entryIDs {
		entry, ok := m.Entries[id]
		if !ok || entry.Paid {
			return &ConsistencyError{Op: "markPaid", Detail: "entry missing or already paid"}
		}
	}
	for _, id := range entryIDs {
		m.Entries[id].Paid = true
		m.Entries[id].SettlementID = &settlement.ID
	}

	batch.SettlementID = settlement.ID
	m.Settlements = append(m.Settlements, settlement)
	m.Batches = append(m.Batches, batch)
	return nil
}

func (m *MockStore) SumPayments(start, end *time.Time) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var total float64
	for _, p := range m.Payments {
		if p.Status != "succeeded" {
			continue
		}
		if inWindow(p.PaidAt, start, end) {
			total += p.Amount
		}
	}
	return total, nil
}

func (m *MockStore) SumSettledInstructorAmount(start, end *time.Time) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var total float64
	for _, s := range m.Settlements {
		if inWindow(s.PaidAt, start, end) {
			total += s.InstructorAmount
		}
	}
	return total, nil
}

func (m *MockStore) ListUnpaidCreatedBetween(start, end *time.Time) ([]models.UnpaidEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var entries []models.UnpaidEntry
	for _, e := range m.Entries {
		if e.Paid || !inWindow(e.CreatedAt, start, end) {
			continue
		}
		copied := *e
		if instructor, ok := m.Instructors[e.InstructorID]; ok {
			copied.Instructor = *instructor
		}
		entries = append(entries, copied)
	}
	return entries, nil
}

func inWindow(t time.Time, start, end *time.Time) bool {
	if start == nil || end == nil {
		return true
	}
	return !t.Before(*start) && t.Before(*end)
}

// MockTransferClient records calls and returns a canned outcome.
type MockTransferClient struct {
	mu sync.Mutex

	Ref string
	Err error

	Calls []MockTransferCall
}

type MockTransferCall struct {
	AmountCents    int64
	Currency       string
	Destination    string
	IdempotencyKey string
	Memo           string
}

func (m *MockTransferClient) CreateTransfer(ctx context.Context, amountCents int64, currency, destination, idempotencyKey, memo string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, MockTransferCall{
		AmountCents:    amountCents,
		Currency:       currency,
		Destination:    destination,
		IdempotencyKey: idempotencyKey,
		Memo:           memo,
	})
	if m.Err != nil {
		return "", m.Err
	}
	if m.Ref != "" {
		return m.Ref, nil
	}
	return "tr_test_ref", nil
}
