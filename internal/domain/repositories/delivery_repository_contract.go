package repositories

import (
	"context"

	"github.com/google/uuid"

	"gyneco-record-service/internal/domain/dtos"
	"gyneco-record-service/internal/domain/entities"
)

// DeliveryRepositoryContract defines the interface for delivery history operations.
type DeliveryRepositoryContract interface {
	// ListByPatient returns the patient's deliveries, most recent first.
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entities.Delivery, error)
	Create(ctx context.Context, req dtos.CreateDeliveryRequest) (*entities.Delivery, error)
	Update(ctx context.Context, id uuid.UUID, req dtos.UpdateDeliveryRequest) (*entities.Delivery, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
