package dtos

import "time"

// CreatePatientRequest defines the payload for creating a new patient.
// Optional fields are pointers; nil means the column stays NULL.
type CreatePatientRequest struct {
	StudioID  string    `json:"studioId" validate:"required"`
	FirstName string    `json:"firstName" validate:"required,min=1,max=100"`
	LastName  string    `json:"lastName" validate:"required,min=1,max=100"`
	BirthDate time.Time `json:"birthDate" validate:"required"`

	BirthPlace *string `json:"birthPlace,omitempty"`
	FiscalCode *string `json:"fiscalCode,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Mobile     *string `json:"mobile,omitempty"`
	Email      *string `json:"email,omitempty"`
	Address    *string `json:"address,omitempty"`
	City       *string `json:"city,omitempty"`
	PostalCode *string `json:"postalCode,omitempty"`
	Province   *string `json:"province,omitempty"`
	Country    *string `json:"country,omitempty"`

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

	PrivacyConsent   bool `json:"privacyConsent"`
	MarketingConsent bool `json:"marketingConsent"`
}

// UpdatePatientRequest is a sparse update: only non-nil fields are applied,
// everything else keeps its stored value.
type UpdatePatientRequest struct {
	FirstName *string    `json:"firstName,omitempty"`
	LastName  *string    `json:"lastName,omitempty"`
	BirthDate *time.Time `json:"birthDate,omitempty"`

	BirthPlace *string `json:"birthPlace,omitempty"`
	FiscalCode *string `json:"fiscalCode,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Mobile     *string `json:"mobile,omitempty"`
	Email      *string `json:"email,omitempty"`
	Address    *string `json:"address,omitempty"`
	City       *string `json:"city,omitempty"`
	PostalCode *string `json:"postalCode,omitempty"`
	Province   *string `json:"province,omitempty"`
	Country    *string `json:"country,omitempty"`

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

	PrivacyConsent   *bool `json:"privacyConsent,omitempty"`
	MarketingConsent *bool `json:"marketingConsent,omitempty"`
}
