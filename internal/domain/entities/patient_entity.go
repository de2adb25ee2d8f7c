package entities

import (
	"time"

	"github.com/google/uuid"
)

// Patient is the medical record holder. Deleting a patient cascades to every
// dependent row (deliveries, reports, invoices, appointments, activities).
type Patient struct {
	ID        uuid.UUID `json:"id" gorm:"type:text;primaryKey"`
	StudioID  string    `json:"studioId" gorm:"not null"`
	FirstName string    `json:"firstName" gorm:"not null;index:idx_patients_names,priority:2"`
	LastName  string    `json:"lastName" gorm:"not null;index:idx_patients_names,priority:1"`
	BirthDate time.Time `json:"birthDate" gorm:"not null"`

	BirthPlace *string `json:"birthPlace,omitempty"`
	FiscalCode *string `json:"fiscalCode,omitempty" gorm:"uniqueIndex:idx_patients_fiscal"`
	Phone      *string `json:"phone,omitempty"`
	Mobile     *string `json:"mobile,omitempty"`
	Email      *string `json:"email,omitempty"`
	Address    *string `json:"address,omitempty"`
	City       *string `json:"city,omitempty"`
	PostalCode *string `json:"postalCode,omitempty"`
	Province   *string `json:"province,omitempty"`
	Country    *string `json:"country,omitempty" gorm:"default:Italia"`

	BloodType            *string `json:"bloodType,omitempty"`
	Allergies            *string `json:"allergies,omitempty"`
	CurrentMedications   *string `json:"currentMedications,omitempty"`
	MedicalNotes         *string `json:"medicalNotes,omitempty"`
	FamilyMedicalHistory *string `json:"familyMedicalHistory,omitempty"`

	FirstMenstruationAge *int       `json:"firstMenstruationAge,omitempty"`
	MenstrualCycleDays   *int       `json:"menstrualCycleDays,omitempty"`
	LastMenstruationDate *time.Time `json:"lastMenstruationDate,omitempty"`
	ContraceptionMethod  *string    `json:"contraceptionMethod,omitempty"`
	PapTestLastDate      *time.Time `json:"papTestLastDate,omitempty"`
	MammographyLastDate  *time.Time `json:"mammographyLastDate,omitempty"`

	PrivacyConsent   bool `json:"privacyConsent" gorm:"not null;default:false"`
	MarketingConsent bool `json:"marketingConsent" gorm:"not null;default:false"`

	CreatedAt time.Time `json:"createdAt" gorm:"not null"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"not null"`

	// Association fields exist so migration emits ON DELETE CASCADE foreign
	// keys. They are never preloaded.
	Deliveries   []Delivery    `json:"-" gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
	Reports      []Report      `json:"-" gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
	Invoices     []Invoice     `json:"-" gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
	Appointments []Appointment `json:"-" gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
	Activities   []Activity    `json:"-" gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
}

func (Patient) TableName() string { return "patients" }
