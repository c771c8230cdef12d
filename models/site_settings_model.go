package models

import (
	"time"

	"github.com/google/uuid"
)

// About is the single editable about-page document. The first GET
// creates it with defaults; the admin SPA edits it in place.
type About struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Heading string    `gorm:"size:255;not null" json:"heading"`

	WhoWeAre      string  `gorm:"type:text;not null" json:"who_we_are"`
	WhoWeAreImage *string `gorm:"size:255" json:"who_we_are_image"`

	Vision      string  `gorm:"type:text;not null" json:"vision"`
	VisionImage *string `gorm:"size:255" json:"vision_image"`

	Mission      string  `gorm:"type:text;not null" json:"mission"`
	MissionImage *string `gorm:"size:255" json:"mission_image"`

	WhatMakesUsDifferent      []string `gorm:"serializer:json" json:"what_makes_us_different"`
	WhatMakesUsDifferentImage *string  `gorm:"size:255" json:"what_makes_us_different_image"`

	WhoCanBenefitImage *string `gorm:"size:255" json:"who_can_benefit_image"`

	Technologies      []string `gorm:"serializer:json" json:"technologies"`
	TechnologiesImage *string  `gorm:"size:255" json:"technologies_image"`

	Commitment      string  `gorm:"type:text" json:"commitment"`
	CommitmentImage *string `gorm:"size:255" json:"commitment_image"`

	ContactEmail string `gorm:"size:255" json:"contact_email"`
	Website      string `gorm:"size:255" json:"website"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactInfo is the single public contact record shown in the site
// footer. Exactly one row exists.
type ContactInfo struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Phone   string    `gorm:"size:30;not null" json:"phone"`
	Email   string    `gorm:"size:255;not null" json:"email"`
	Address string    `gorm:"size:255;not null" json:"address"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
