package entities

import "time"

// DefaultStudioID identifies the single studio row every installation owns.
// It is seeded on first store initialization and never deleted.
const DefaultStudioID = "default-studio"

// Studio holds the practice settings printed on reports and invoices.
type Studio struct {
	ID                  string    `json:"id" gorm:"primaryKey"`
	Name                string    `json:"name" gorm:"not null"`
	VatNumber           *string   `json:"vatNumber,omitempty"`
	Address             *string   `json:"address,omitempty"`
	City                *string   `json:"city,omitempty"`
	PostalCode          *string   `json:"postalCode,omitempty"`
	Province            *string   `json:"province,omitempty"`
	Phone               *string   `json:"phone,omitempty"`
	Email               *string   `json:"email,omitempty"`
	LogoURL             *string   `json:"logoUrl,omitempty" gorm:"column:logo_url"`
	DoctorName          *string   `json:"doctorName,omitempty"`
	DoctorTitle         *string   `json:"doctorTitle,omitempty"`
	DoctorSignaturePath *string   `json:"doctorSignaturePath,omitempty"`
	CreatedAt           time.Time `json:"createdAt" gorm:"not null"`
	UpdatedAt           time.Time `json:"updatedAt" gorm:"not null"`
}

func (Studio) TableName() string { return "studios" }
