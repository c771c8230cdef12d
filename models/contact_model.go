package models

import (
	"time"

	"github.com/google/uuid"
)

type Contact struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string     `gorm:"size:255;not null" json:"name"`
	Email     string     `gorm:"size:255;not null" json:"email"`
	Message   string     `gorm:"type:text;not null" json:"message"`
	IsReplied bool       `gorm:"default:false" json:"is_replied"`
	RepliedAt *time.Time `json:"replied_at"`

	CreatedAt time.Time `json:"created_at"`
}
