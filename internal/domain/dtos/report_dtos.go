package dtos

import (
	"time"

	"github.com/google/uuid"

	"gyneco-record-service/internal/domain/entities"
)

// CreateReportRequest defines the payload for issuing a report. The report
// number is generated by the store, never supplied by the caller.
type CreateReportRequest struct {
	PatientID       uuid.UUID                `json:"patientId" validate:"required"`
	StudioID        string                   `json:"studioId" validate:"required"`
	ReportDate      time.Time                `json:"reportDate" validate:"required"`
	VisitType       string                   `json:"visitType" validate:"required"`
	PatientSnapshot entities.PatientSnapshot `json:"patientSnapshot" validate:"required"`
	Examination     string                   `json:"examination" validate:"required"`

	UltrasoundResult *string  `json:"ultrasoundResult,omitempty"`
	Therapy          *string  `json:"therapy,omitempty"`
	Attachments      []string `json:"attachments,omitempty"`
	InternalNotes    *string  `json:"internalNotes,omitempty"`
	DoctorName       *string  `json:"doctorName,omitempty"`
	DoctorTitle      *string  `json:"doctorTitle,omitempty"`
	CreatedBy        *string  `json:"createdBy,omitempty"`
}

// UpdateReportRequest is a sparse update. The report number is assigned at
// creation and never updatable.
type UpdateReportRequest struct {
	ReportDate      *time.Time                `json:"reportDate,omitempty"`
	VisitType       *string                   `json:"visitType,omitempty"`
	PatientSnapshot *entities.PatientSnapshot `json:"patientSnapshot,omitempty"`
	Examination     *string                   `json:"examination,omitempty"`

	UltrasoundResult *string  `json:"ultrasoundResult,omitempty"`
	Therapy          *string  `json:"therapy,omitempty"`
	Attachments      []string `json:"attachments,omitempty"`
	InternalNotes    *string  `json:"internalNotes,omitempty"`
	DoctorName       *string  `json:"doctorName,omitempty"`
	DoctorTitle      *string  `json:"doctorTitle,omitempty"`
	Signed           *bool    `json:"signed,omitempty"`
}
