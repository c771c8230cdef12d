package models

import (
	"time"

	"github.com/google/uuid"
)

// Settlement is the immutable record of one completed disbursement.
// Amount, rate and split are copied in at settlement time; editing the
// instructor afterwards never changes an existing Settlement. No update
// or delete is ever issued against this table.
type Settlement struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	InstructorID uuid.UUID `gorm:"not null;index" json:"instructor_id"`

	Amount           float64 `gorm:"type:numeric(10,2);not null" json:"amount"`
	CommissionRate   float64 `gorm:"type:numeric(5,2);not null" json:"commission_rate"`
	InstructorAmount float64 `gorm:"type:numeric(10,2);not null" json:"instructor_amount"`
	PlatformCut      float64 `gorm:"type:numeric(10,2);not null" json:"platform_cut"`

	TransferRef string    `gorm:"size:255;not null" json:"transfer_ref"`
	PaidAt      time.Time `gorm:"not null;index" json:"paid_at"`

	Instructor Instructor    `gorm:"foreignkey:InstructorID" json:"-"`
	Entries    []UnpaidEntry `gorm:"foreignkey:SettlementID" json:"entries,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
