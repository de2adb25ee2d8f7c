package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SnapshotDelivery is a delivery line frozen inside a patient snapshot.
type SnapshotDelivery struct {
	Date   time.Time `json:"date"`
	Type   string    `json:"type"`
	Weeks  *int      `json:"weeks,omitempty"`
	Weight *float64  `json:"weight,omitempty"`
}

// PatientSnapshot is the copy of patient data embedded into a report at
// creation time. It is a point-in-time clinical record and is never
// refreshed when the patient row changes afterwards.
type PatientSnapshot struct {
	FirstName            string             `json:"firstName"`
	LastName             string             `json:"lastName"`
	BirthDate            time.Time          `json:"birthDate"`
	FiscalCode           *string            `json:"fiscalCode,omitempty"`
	Address              *string            `json:"address,omitempty"`
	Phone                *string            `json:"phone,omitempty"`
	BloodType            *string            `json:"bloodType,omitempty"`
	Allergies            *string            `json:"allergies,omitempty"`
	CurrentMedications   *string            `json:"currentMedications,omitempty"`
	LastMenstruationDate *time.Time         `json:"lastMenstruationDate,omitempty"`
	Deliveries           []SnapshotDelivery `json:"deliveries,omitempty"`
}

// Report is a medical report (referto). ReportNumber is the human-readable
// year-scoped identifier, distinct from ID.
type Report struct {
	ID           uuid.UUID `json:"id" gorm:"type:text;primaryKey"`
	PatientID    uuid.UUID `json:"patientId" gorm:"type:text;not null;index:idx_reports_patient,priority:1"`
	StudioID     string    `json:"studioId" gorm:"not null"`
	ReportDate   time.Time `json:"reportDate" gorm:"not null;index:idx_reports_patient,priority:2,sort:desc"`
	VisitType    string    `json:"visitType" gorm:"not null"`
	ReportNumber string    `json:"reportNumber" gorm:"uniqueIndex;not null"`

	PatientSnapshot datatypes.JSONType[PatientSnapshot] `json:"patientSnapshot" gorm:"not null"`
	Examination     string                              `json:"examination" gorm:"not null"`

	UltrasoundResult *string                      `json:"ultrasoundResult,omitempty"`
	Therapy          *string                      `json:"therapy,omitempty"`
	Attachments      datatypes.JSONSlice[string]  `json:"attachments,omitempty"`
	InternalNotes    *string                      `json:"internalNotes,omitempty"`
	DoctorName       *string                      `json:"doctorName,omitempty"`
	DoctorTitle      *string                      `json:"doctorTitle,omitempty"`
	Signed           bool                         `json:"signed" gorm:"not null;default:false"`
	CreatedBy        *string                      `json:"createdBy,omitempty"`

	CreatedAt time.Time `json:"createdAt" gorm:"not null"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"not null"`
}

func (Report) TableName() string { return "reports" }
