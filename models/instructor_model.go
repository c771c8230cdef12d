package models

import (
	"time"

	"github.com/google/uuid"
)

// Instructor owns a mutable commission rate and the external transfer
// destination. Both are read at settlement time and copied into the
// Settlement, so later edits never touch historical payouts.
type Instructor struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null;unique" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Bio       *string   `gorm:"type:text" json:"bio"`
	AvatarURL *string   `gorm:"size:255" json:"avatar_url"`
	Verified  bool      `gorm:"default:false" json:"verified"`
	Expertise []string  `gorm:"serializer:json" json:"expertise"`

	// Percentage of gross the instructor keeps; platform keeps the rest.
	CommissionRate  float64 `gorm:"type:numeric(5,2);default:70" json:"commission_rate"`
	AccountNumber   *string `gorm:"size:64" json:"account_number"`
	StripeAccountID *string `gorm:"size:255" json:"stripe_account_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
