package repositories

import (
	"context"

	"github.com/google/uuid"

	"gyneco-record-service/internal/domain/dtos"
	"gyneco-record-service/internal/domain/entities"
)

// ActivityRepositoryContract defines the interface for the append-only
// patient timeline.
type ActivityRepositoryContract interface {
	// ListByPatient returns the patient's activities, most recent first.
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entities.Activity, error)
	Create(ctx context.Context, req dtos.CreateActivityRequest) (*entities.Activity, error)
}
