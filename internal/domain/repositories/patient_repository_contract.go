package repositories

import (
	"context"

	"github.com/google/uuid"

	"gyneco-record-service/internal/domain/dtos"
	"gyneco-record-service/internal/domain/entities"
)

// PatientRepositoryContract defines the interface for patient data operations.
type PatientRepositoryContract interface {
	// Search matches the term case-insensitively against first name, last
	// name and fiscal code. Minimum-length filtering is the caller's job.
	Search(ctx context.Context, query string) ([]*entities.Patient, error)
	// ListAll returns every patient ordered by last name, then first name.
	ListAll(ctx context.Context) ([]*entities.Patient, error)
	// GetByID returns (nil, nil) when the id does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Patient, error)
	Create(ctx context.Context, req dtos.CreatePatientRequest) (*entities.Patient, error)
	Update(ctx context.Context, id uuid.UUID, req dtos.UpdatePatientRequest) (*entities.Patient, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
