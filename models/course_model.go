package models

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title          string     `gorm:"size:255;not null" json:"title"`
	InstructorID   *uuid.UUID `json:"instructor_id"`
	InstructorName string     `gorm:"size:255" json:"instructor_name"`
	ImageURL       *string    `gorm:"size:255" json:"image_url"`
	Lessons        int        `gorm:"not null" json:"lessons"`
	Duration       string     `gorm:"size:50" json:"duration"`
	Price          float64    `gorm:"type:numeric(10,2);not null" json:"price"`
	OriginalPrice  float64    `gorm:"type:numeric(10,2)" json:"original_price"`
	IsFree         bool       `gorm:"default:false" json:"is_free"`
	Category       string     `gorm:"size:100" json:"category"`
	Tags           []string   `gorm:"serializer:json" json:"tags"`
	Level          string     `gorm:"size:20;not null" json:"level"`
	Verified       bool       `gorm:"default:false" json:"verified"`

	Instructor *Instructor `gorm:"foreignkey:InstructorID" json:"instructor,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
