package payouts

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mainamike/course_marketplace/models"
	"gorm.io/gorm"
)

// Store is the persistence surface the payout engine runs against.
type Store interface {
	GetInstructor(id uuid.UUID) (*models.Instructor, error)

	// ListUnpaid returns all unsettled entries for one instructor, in no
	// particular order.
	ListUnpaid(instructorID uuid.UUID) ([]models.UnpaidEntry, error)

	// ListAllUnpaid returns every unsettled entry with its instructor
	// loaded, for the grouped admin summary.
	ListAllUnpaid() ([]models.UnpaidEntry, error)

	CreateIntent(intent *models.TransferIntent) error
	SetIntentStatus(id uuid.UUID, status string, settlementID *uuid.UUID) error

	// GetOutstandingIntent returns an intent for the instructor still in
	// pending or unknown status, or nil if every intent is terminal.
	GetOutstandingIntent(instructorID uuid.UUID) (*models.TransferIntent, error)

	// CommitSettlement persists the settlement, its batch and the ledger
	// flip as one unit. Either everything lands or nothing does.
	CommitSettlement(settlement *models.Settlement, batch *models.PayoutBatch, entryIDs []uuid.UUID) error

	// Reporting reads. A nil bound means unbounded.
	SumPayments(start, end *time.Time) (float64, error)
	SumSettledInstructorAmount(start, end *time.Time) (float64, error)
	ListUnpaidCreatedBetween(start, end *time.Time) ([]models.UnpaidEntry, error)
}

type gormStore struct {
	db *gorm.DB
}

// NewStore wraps a GORM connection in the engine's Store interface.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) GetInstructor(id uuid.UUID) (*models.Instructor, error) {
	var instructor models.Instructor
	if err := s.db.First(&instructor, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInstructorNotFound
		}
		return nil, err
	}
	return &instructor, nil
}

func (s *gormStore) ListUnpaid(instructorID uuid.UUID) ([]models.UnpaidEntry, error) {
	var entries []models.UnpaidEntry
	err := s.db.Preload("Course").Preload("Student").
		Where("instructor_id = ? AND paid = false", instructorID).
		Find(&entries).Error
	return entries, err
}

func (s *gormStore) ListAllUnpaid() ([]models.UnpaidEntry, error) {
	var entries []models.UnpaidEntry
	err := s.db.Preload("Instructor").Where("paid = false").Find(&entries).Error
	return entries, err
}

func (s *gormStore) CreateIntent(intent *models.TransferIntent) error {
	return s.db.Create(intent).Error
}

func (s *gormStore) SetIntentStatus(id uuid.UUID, status string, settlementID *uuid.UUID) error {
	updates := map[string]interface{}{"status": status}
	if settlementID != nil {
		updates["settlement_id"] = *settlementID
	}
	return s.db.Model(&models.TransferIntent{}).Where("id = ?", id).Updates(updates).Error
}

func (s *gormStore) GetOutstandingIntent(instructorID uuid.UUID) (*models.TransferIntent, error) {
	var intent models.TransferIntent
	err := s.db.
		Where("instructor_id = ? AND status IN ?", instructorID, []string{models.IntentPending, models.IntentUnknown}).
		First(&intent).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &intent, nil
}

func (s *gormStore) CommitSettlement(settlement *models.Settlement, batch *models.PayoutBatch, entryIDs []uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(settlement).Error; err != nil {
			return err
		}

		batch.SettlementID = settlement.ID
		if err := tx.Create(batch).Error; err != nil {
			return err
		}

		res := tx.Model(&models.UnpaidEntry{}).
			Where("id IN ? AND paid = false", entryIDs).
			Updates(map[string]interface{}{"paid": true, "settlement_id": settlement.ID})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != int64(len(entryIDs)) {
			return &ConsistencyError{
				Op:     "markPaid",
				Detail: fmt.Sprintf("expected to flip %d entries, flipped %d", len(entryIDs), res.RowsAffected),
			}
		}
		return nil
	})
}

func (s *gormStore) SumPayments(start, end *time.Time) (float64, error) {
	q := s.db.Model(&models.Payment{}).Where("status = ?", "succeeded")
	if start != nil && end != nil {
		q = q.Where("paid_at >= ? AND paid_at < ?", *start, *end)
	}
	var total float64
	err := q.Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	return total, err
}

func (s *gormStore) SumSettledInstructorAmount(start, end *time.Time) (float64, error) {
	q := s.db.Model(&models.Settlement{})
	if start != nil && end != nil {
		q = q.Where("paid_at >= ? AND paid_at < ?", *start, *end)
	}
	var total float64
	err := q.Select("COALESCE(SUM(instructor_amount), 0)").Scan(&total).Error
	return total, err
}

func (s *gormStore) ListUnpaidCreatedBetween(start, end *time.Time) ([]models.UnpaidEntry, error) {
	q := s.db.Preload("Instructor").Where("paid = false")
	if start != nil && end != nil {
		q = q.Where("created_at >= ? AND created_at < ?", *start, *end)
	}
	var entries []models.UnpaidEntry
	err := q.Find(&entries).Error
	return entries, err
}
