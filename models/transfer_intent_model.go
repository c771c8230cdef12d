package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	IntentPending   = "pending"
	IntentCompleted = "completed"
	IntentFailed    = "failed"
	IntentUnknown   = "unknown"
)

// TransferIntent is persisted before the external transfer call is made.
// The idempotency key sent to the processor is derived from it, so a crash
// or timeout between transfer and commit leaves a durable trace that the
// reconciliation sweep can pick up instead of risking a double payment.
type TransferIntent struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	InstructorID   uuid.UUID  `gorm:"not null;index" json:"instructor_id"`
	Amount         float64    `gorm:"type:numeric(10,2);not null" json:"amount"`
	IdempotencyKey string     `gorm:"size:64;not null;unique" json:"idempotency_key"`
	Status         string     `gorm:"size:20;not null;default:'pending'" json:"status"`
	SettlementID   *uuid.UUID `json:"settlement_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
