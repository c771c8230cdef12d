package models

import (
	"time"

	"github.com/google/uuid"
)

// UnpaidEntry is one instructor's revenue claim from a single enrollment.
// The amount is fixed at creation and never recomputed. Paid flips
// false→true exactly once, only inside a successful disbursement commit.
type UnpaidEntry struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	InstructorID uuid.UUID `gorm:"not null;index" json:"instructor_id"`
	CourseID     uuid.UUID `gorm:"not null" json:"course_id"`
	StudentID    uuid.UUID `gorm:"not null" json:"student_id"`
	Amount       float64   `gorm:"type:numeric(10,2);not null" json:"amount"`
	Paid         bool      `gorm:"default:false;index" json:"paid"`

	// Set together with Paid inside the disbursement commit; a paid entry
	// belongs to exactly one settlement, an unpaid entry to none.
	SettlementID *uuid.UUID `gorm:"index" json:"settlement_id"`

	Instructor Instructor `gorm:"foreignkey:InstructorID" json:"-"`
	Course     Course     `gorm:"foreignkey:CourseID" json:"course"`
	Student    User       `gorm:"foreignkey:StudentID" json:"student"`

	CreatedAt time.Time `json:"created_at"`
}
