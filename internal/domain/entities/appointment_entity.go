package entities

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus tracks the appointment lifecycle.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentNoShow    AppointmentStatus = "no_show"
)

// DefaultAppointmentDuration is the visit length in minutes applied when a
// create request leaves the duration unset.
const DefaultAppointmentDuration = 30

// Appointment is a scheduled visit.
type Appointment struct {
	ID              uuid.UUID         `json:"id" gorm:"type:text;primaryKey"`
	PatientID       uuid.UUID         `json:"patientId" gorm:"type:text;not null;index:idx_appointments_patient,priority:1"`
	StudioID        string            `json:"studioId" gorm:"not null"`
	AppointmentDate time.Time         `json:"appointmentDate" gorm:"not null;index:idx_appointments_patient,priority:2,sort:desc;index:idx_appointments_date"`
	Duration        int               `json:"duration" gorm:"not null;default:30"`
	AppointmentType *string           `json:"appointmentType,omitempty"`
	Status          AppointmentStatus `json:"status" gorm:"not null;index:idx_appointments_status"`
	Notes           *string           `json:"notes,omitempty"`
	ReminderSent    bool              `json:"reminderSent" gorm:"not null;default:false"`
	CreatedBy       *string           `json:"createdBy,omitempty"`

	CreatedAt time.Time `json:"createdAt" gorm:"not null"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"not null"`
}

func (Appointment) TableName() string { return "appointments" }
