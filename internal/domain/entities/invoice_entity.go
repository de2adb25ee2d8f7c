package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PaymentStatus tracks the invoice payment lifecycle.
type PaymentStatus string

const (
	PaymentPaid      PaymentStatus = "paid"
	PaymentPending   PaymentStatus = "pending"
	PaymentCancelled PaymentStatus = "cancelled"
	PaymentOverdue   PaymentStatus = "overdue"
)

// InvoiceItem is one billed line inside an invoice.
type InvoiceItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

// Invoice is a billing document. TotalAmount is computed by the caller and
// stored verbatim; the store never recomputes it from Amount and VatAmount.
type Invoice struct {
	ID            uuid.UUID `json:"id" gorm:"type:text;primaryKey"`
	PatientID     uuid.UUID `json:"patientId" gorm:"type:text;not null;index:idx_invoices_patient,priority:1"`
	StudioID      string    `json:"studioId" gorm:"not null"`
	InvoiceNumber string    `json:"invoiceNumber" gorm:"uniqueIndex;not null"`
	InvoiceDate   time.Time `json:"invoiceDate" gorm:"not null;index:idx_invoices_patient,priority:2,sort:desc"`

	DueDate     *time.Time `json:"dueDate,omitempty"`
	Amount      float64    `json:"amount" gorm:"not null"`
	VatRate     *float64   `json:"vatRate,omitempty"`
	VatAmount   *float64   `json:"vatAmount,omitempty"`
	TotalAmount float64    `json:"totalAmount" gorm:"not null"`

	PaymentMethod *string       `json:"paymentMethod,omitempty"`
	PaymentStatus PaymentStatus `json:"paymentStatus" gorm:"not null"`
	PaymentDate   *time.Time    `json:"paymentDate,omitempty"`
	Notes         *string       `json:"notes,omitempty"`

	Items datatypes.JSONSlice[InvoiceItem] `json:"items,omitempty"`

	CreatedAt time.Time `json:"createdAt" gorm:"not null"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"not null"`
}

func (Invoice) TableName() string { return "invoices" }
