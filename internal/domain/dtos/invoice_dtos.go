package dtos

import (
	"time"

	"github.com/google/uuid"

	"gyneco-record-service/internal/domain/entities"
)

// CreateInvoiceRequest defines the payload for issuing an invoice. The
// invoice number is generated by the store. TotalAmount is stored verbatim.
type CreateInvoiceRequest struct {
	PatientID   uuid.UUID `json:"patientId" validate:"required"`
	StudioID    string    `json:"studioId" validate:"required"`
	InvoiceDate time.Time `json:"invoiceDate" validate:"required"`
	Amount      float64   `json:"amount" validate:"required"`
	TotalAmount float64   `json:"totalAmount" validate:"required"`

	DueDate       *time.Time             `json:"dueDate,omitempty"`
	VatRate       *float64               `json:"vatRate,omitempty"`
	VatAmount     *float64               `json:"vatAmount,omitempty"`
	PaymentMethod *string                `json:"paymentMethod,omitempty"`
	PaymentStatus entities.PaymentStatus `json:"paymentStatus" validate:"required"`
	PaymentDate   *time.Time             `json:"paymentDate,omitempty"`
	Notes         *string                `json:"notes,omitempty"`
	Items         []entities.InvoiceItem `json:"items,omitempty"`
}

// UpdateInvoiceRequest is a sparse update. The invoice number is assigned at
// creation and never updatable.
type UpdateInvoiceRequest struct {
	InvoiceDate *time.Time `json:"invoiceDate,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Amount      *float64   `json:"amount,omitempty"`
	VatRate     *float64   `json:"vatRate,omitempty"`
	VatAmount   *float64   `json:"vatAmount,omitempty"`
	TotalAmount *float64   `json:"totalAmount,omitempty"`

	PaymentMethod *string                 `json:"paymentMethod,omitempty"`
	PaymentStatus *entities.PaymentStatus `json:"paymentStatus,omitempty"`
	PaymentDate   *time.Time              `json:"paymentDate,omitempty"`
	Notes         *string                 `json:"notes,omitempty"`
	Items         []entities.InvoiceItem  `json:"items,omitempty"`
}
