package dtos

import (
	"time"

	"github.com/google/uuid"

	"gyneco-record-service/internal/domain/entities"
)

// CreateAppointmentRequest defines the payload for scheduling a visit.
// Duration zero means the default (30 minutes); an empty status means
// "scheduled".
type CreateAppointmentRequest struct {
	PatientID       uuid.UUID `json:"patientId" validate:"required"`
	StudioID        string    `json:"studioId" validate:"required"`
	AppointmentDate time.Time `json:"appointmentDate" validate:"required"`

	Duration        int                        `json:"duration,omitempty"`
	AppointmentType *string                    `json:"appointmentType,omitempty"`
	Status          entities.AppointmentStatus `json:"status,omitempty"`
	Notes           *string                    `json:"notes,omitempty"`
	CreatedBy       *string                    `json:"createdBy,omitempty"`
}

// UpdateAppointmentRequest is a sparse update over the appointment fields.
type UpdateAppointmentRequest struct {
	AppointmentDate *time.Time                  `json:"appointmentDate,omitempty"`
	Duration        *int                        `json:"duration,omitempty"`
	AppointmentType *string                     `json:"appointmentType,omitempty"`
	Status          *entities.AppointmentStatus `json:"status,omitempty"`
	Notes           *string                     `json:"notes,omitempty"`
	ReminderSent    *bool                       `json:"reminderSent,omitempty"`
}

// AppointmentFilters narrows appointment listings. Nil fields are ignored.
type AppointmentFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	Status    *entities.AppointmentStatus
	PatientID *uuid.UUID
}
