package repositories

import (
	"context"

	"github.com/google/uuid"

	"gyneco-record-service/internal/domain/dtos"
	"gyneco-record-service/internal/domain/entities"
)

// AppointmentRepositoryContract defines the interface for appointment operations.
type AppointmentRepositoryContract interface {
	// List returns appointments matching the filters in ascending date
	// order, as the agenda views consume them.
	List(ctx context.Context, filters dtos.AppointmentFilters) ([]*entities.Appointment, error)
	// ListByPatient returns the patient's appointments, most recent first.
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entities.Appointment, error)
	// GetByID returns (nil, nil) when the id does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Appointment, error)
	// Create also appends an "appointment_created" activity to the
	// patient's timeline within the same transaction.
	Create(ctx context.Context, req dtos.CreateAppointmentRequest) (*entities.Appointment, error)
	Update(ctx context.Context, id uuid.UUID, req dtos.UpdateAppointmentRequest) (*entities.Appointment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// CountToday counts today's scheduled and confirmed appointments.
	CountToday(ctx context.Context) (int64, error)
}
