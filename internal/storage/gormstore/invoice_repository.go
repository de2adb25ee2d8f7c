package gormstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gyneco-record-service/internal/domain/dtos"
	"gyneco-record-service/internal/domain/entities"
	"gyneco-record-service/internal/domain/repositories"
)

// InvoiceRepository implements repositories.InvoiceRepositoryContract.
type InvoiceRepository struct {
	store *Store
}

var _ repositories.InvoiceRepositoryContract = (*InvoiceRepository)(nil)

func NewInvoiceRepository(store *Store) *InvoiceRepository {
	return &InvoiceRepository{store: store}
}

func (r *InvoiceRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entities.Invoice, error) {
	db, err := r.store.ensureReady()
	if err != nil {
		return nil, err
	}
	var invoices []*entities.Invoice
	err = db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("invoice_date DESC").
		Find(&invoices).Error
	if err != nil {
		return nil, wrap("list invoices", err)
	}
	return invoices, nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Invoice, error) {
	db, err := r.store.ensureReady()
	if err != nil {
		return nil, err
	}
	var invoice entities.Invoice
	err = db.WithContext(ctx).First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("get invoice", err)
	}
	return &invoice, nil
}

// Create assigns the invoice number inside the insert transaction; see
// ReportRepository.Create for the serialization rationale.
func (r *InvoiceRepository) Create(ctx context.Context, req dtos.CreateInvoiceRequest) (*entities.Invoice, error) {
	db, err := r.store.ensureReady()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	invoice := entities.Invoice{
		ID:          uuid.New(),
		PatientID:   req.PatientID,
		StudioID:    req.StudioID,
		InvoiceDate: req.InvoiceDate,

		DueDate:     req.DueDate,
		Amount:      req.Amount,
		VatRate:     req.VatRate,
		VatAmount:   req.VatAmount,
		TotalAmount: req.TotalAmount,

		PaymentMethod: req.PaymentMethod,
		PaymentStatus: req.PaymentStatus,
		PaymentDate:   req.PaymentDate,
		Notes:         req.Notes,
		Items:         datatypes.NewJSONSlice(req.Items),

		CreatedAt: now,
		UpdatedAt: now,
	}
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		year := now.Year()
		if err := r.store.lockSequence(tx, invoiceNumberPrefix, year); err != nil {
			return err
		}
		number, err := nextSequentialNumber(tx, entities.Invoice{}.TableName(), "invoice_number", invoiceNumberPrefix, year)
		if err != nil {
			return err
		}
		invoice.InvoiceNumber = number
		return tx.Create(&invoice).Error
	})
	if err != nil {
		return nil, wrap("create invoice", err)
	}
	return r.reload(ctx, db, invoice.ID)
}

func (r *InvoiceRepository) Update(ctx context.Context, id uuid.UUID, req dtos.UpdateInvoiceRequest) (*entities.Invoice, error) {
	db, err := r.store.ensureReady()
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.InvoiceDate != nil {
		updates["invoice_date"] = *req.InvoiceDate
	}
	if req.DueDate != nil {
		updates["due_date"] = *req.DueDate
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.VatRate != nil {
		updates["vat_rate"] = *req.VatRate
	}
	if req.VatAmount != nil {
		updates["vat_amount"] = *req.VatAmount
	}
	if req.TotalAmount != nil {
		updates["total_amount"] = *req.TotalAmount
	}
	if req.PaymentMethod != nil {
		updates["payment_method"] = *req.PaymentMethod
	}
	if req.PaymentStatus != nil {
		updates["payment_status"] = *req.PaymentStatus
	}
	if req.PaymentDate != nil {
		updates["payment_date"] = *req.PaymentDate
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.Items != nil {
		updates["items"] = datatypes.NewJSONSlice(req.Items)
	}
	updates["updated_at"] = time.Now().UTC()

	res := db.WithContext(ctx).Model(&entities.Invoice{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, wrap("update invoice", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("update invoice %s: %w", id, repositories.ErrNotFound)
	}
	return r.reload(ctx, db, id)
}

func (r *InvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db, err := r.store.ensureReady()
	if err != nil {
		return err
	}
	res := db.WithContext(ctx).Delete(&entities.Invoice{}, "id = ?", id)
	if res.Error != nil {
		return wrap("delete invoice", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete invoice %s: %w", id, repositories.ErrNotFound)
	}
	return nil
}

func (r *InvoiceRepository) NextNumber(ctx context.Context) (string, error) {
	db, err := r.store.ensureReady()
	if err != nil {
		return "", err
	}
	number, err := nextSequentialNumber(db.WithContext(ctx), entities.Invoice{}.TableName(), "invoice_number", invoiceNumberPrefix, time.Now().Year())
	if err != nil {
		return "", wrap("next invoice number", err)
	}
	return number, nil
}

func (r *InvoiceRepository) reload(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entities.Invoice, error) {
	var invoice entities.Invoice
	if err := db.WithContext(ctx).First(&invoice, "id = ?", id).Error; err != nil {
		return nil, wrap("reload invoice", err)
	}
	return &invoice, nil
}
