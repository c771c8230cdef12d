package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment is one revenue event recorded by the checkout flow when a
// student buys a course. This service only ever reads them.
type Payment struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID `gorm:"not null" json:"user_id"`
	CourseID      uuid.UUID `gorm:"not null" json:"course_id"`
	Amount        float64   `gorm:"type:numeric(10,2);not null" json:"amount"`
	ProviderTxnID *string   `gorm:"size:255;unique" json:"provider_txn_id"`
	Status        string    `gorm:"size:20;not null" json:"status"`
	PaidAt        time.Time `gorm:"not null" json:"paid_at"`

	User   User   `gorm:"foreignkey:UserID" json:"-"`
	Course Course `gorm:"foreignkey:CourseID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
