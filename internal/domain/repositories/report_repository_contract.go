package repositories

import (
	"context"

	"github.com/google/uuid"

	"gyneco-record-service/internal/domain/dtos"
	"gyneco-record-service/internal/domain/entities"
)

// ReportRepositoryContract defines the interface for medical report operations.
type ReportRepositoryContract interface {
	// ListByPatient returns the patient's reports, most recent first.
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entities.Report, error)
	// GetByID returns (nil, nil) when the id does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Report, error)
	// Create assigns the next sequential report number atomically with the
	// insert; if numbering fails no row is written.
	Create(ctx context.Context, req dtos.CreateReportRequest) (*entities.Report, error)
	Update(ctx context.Context, id uuid.UUID, req dtos.UpdateReportRequest) (*entities.Report, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// NextNumber previews the number the next created report would get.
	NextNumber(ctx context.Context) (string, error)
}
