package models

import (
	"time"

	"github.com/google/uuid"
)

// PayoutBatch is the admin audit record accompanying a Settlement.
// It is created in the same transaction as its Settlement, never alone.
type PayoutBatch struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SettlementID uuid.UUID `gorm:"not null;unique" json:"settlement_id"`
	InstructorID uuid.UUID `gorm:"not null;index" json:"instructor_id"`

	TotalPlatformCut float64     `gorm:"type:numeric(10,2);not null" json:"total_platform_cut"`
	EntryIDs         []uuid.UUID `gorm:"serializer:json" json:"entry_ids"`
	PayoutAt         time.Time   `gorm:"not null" json:"payout_at"`

	Settlement Settlement `gorm:"foreignkey:SettlementID" json:"settlement,omitempty"`
	Instructor Instructor `gorm:"foreignkey:InstructorID" json:"instructor,omitempty"`
}
