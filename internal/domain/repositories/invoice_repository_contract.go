package repositories

import (
	"context"

	"github.com/google/uuid"

	"gyneco-record-service/internal/domain/dtos"
	"gyneco-record-service/internal/domain/entities"
)

// InvoiceRepositoryContract defines the interface for invoice operations.
type InvoiceRepositoryContract interface {
	// ListByPatient returns the patient's invoices, most recent first.
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entities.Invoice, error)
	// GetByID returns (nil, nil) when the id does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Invoice, error)
	// Create assigns the next sequential invoice number atomically with the
	// insert; if numbering fails no row is written.
	Create(ctx context.Context, req dtos.CreateInvoiceRequest) (*entities.Invoice, error)
	Update(ctx context.Context, id uuid.UUID, req dtos.UpdateInvoiceRequest) (*entities.Invoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// NextNumber previews the number the next created invoice would get.
	NextNumber(ctx context.Context) (string, error)
}
