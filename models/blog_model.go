package models

import (
	"time"

	"github.com/google/uuid"
)

type Blog struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Excerpt     string    `gorm:"type:text;not null" json:"excerpt"`
	ImageURL    *string   `gorm:"size:255" json:"image_url"`
	Category    string    `gorm:"size:100;not null" json:"category"`
	Tags        []string  `gorm:"serializer:json" json:"tags"`
	Author      string    `gorm:"size:255;not null" json:"author"`
	PublishedOn time.Time `json:"published_on"`
	Views       int       `gorm:"default:0" json:"views"`
	IsPublished bool      `gorm:"default:false" json:"is_published"`

	CreatedAt time.Time `json:"created_at"`
}
