package memstore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"gyneco-record-service/internal/domain/dtos"
	"gyneco-record-service/internal/domain/entities"
	"gyneco-record-service/internal/domain/repositories"
)

func (s *Store) GetInvoicesByPatient(ctx context.Context, patientID uuid.UUID) ([]*entities.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*entities.Invoice
	for _, i := range s.invoices {
		if i.PatientID == patientID {
			out = append(out, cloneInvoice(i))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].InvoiceDate.After(out[j].InvoiceDate)
	})
	return out, nil
}

func (s *Store) GetInvoiceByID(ctx context.Context, id uuid.UUID) (*entities.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.invoices[id]
	if !ok {
		return nil, nil
	}
	return cloneInvoice(i), nil
}

func (s *Store) CreateInvoice(ctx context.Context, req dtos.CreateInvoiceRequest) (*entities.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	number := nextSequentialNumber(s.countInvoiceNumbers(now.Year()), invoiceNumberPrefix, now.Year())

	invoice := &entities.Invoice{
		ID:            uuid.New(),
		PatientID:     req.PatientID,
		StudioID:      req.StudioID,
		InvoiceNumber: number,
		InvoiceDate:   req.InvoiceDate,

		DueDate:     req.DueDate,
		Amount:      req.Amount,
		VatRate:     req.VatRate,
		VatAmount:   req.VatAmount,
		TotalAmount: req.TotalAmount,

		PaymentMethod: req.PaymentMethod,
		PaymentStatus: req.PaymentStatus,
		PaymentDate:   req.PaymentDate,
		Notes:         req.Notes,
		Items:         datatypes.NewJSONSlice(cloneSlice(req.Items)),

		CreatedAt: now,
		UpdatedAt: now,
	}
	s.invoices[invoice.ID] = cloneInvoice(invoice)
	return invoice, nil
}

func (s *Store) UpdateInvoice(ctx context.Context, id uuid.UUID, req dtos.UpdateInvoiceRequest) (*entities.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.invoices[id]
	if !ok {
		return nil, fmt.Errorf("update invoice %s: %w", id, repositories.ErrNotFound)
	}
	if req.InvoiceDate != nil {
		i.InvoiceDate = *req.InvoiceDate
	}
	if req.DueDate != nil {
		i.DueDate = clonePtr(req.DueDate)
	}
	if req.Amount != nil {
		i.Amount = *req.Amount
	}
	if req.VatRate != nil {
		i.VatRate = clonePtr(req.VatRate)
	}
	if req.VatAmount != nil {
		i.VatAmount = clonePtr(req.VatAmount)
	}
	if req.TotalAmount != nil {
		i.TotalAmount = *req.TotalAmount
	}
	if req.PaymentMethod != nil {
		i.PaymentMethod = clonePtr(req.PaymentMethod)
	}
	if req.PaymentStatus != nil {
		i.PaymentStatus = *req.PaymentStatus
	}
	if req.PaymentDate != nil {
		i.PaymentDate = clonePtr(req.PaymentDate)
	}
	if req.Notes != nil {
		i.Notes = clonePtr(req.Notes)
	}
	if req.Items != nil {
		i.Items = datatypes.NewJSONSlice(cloneSlice(req.Items))
	}
	i.UpdatedAt = time.Now().UTC()
	return cloneInvoice(i), nil
}

func (s *Store) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.invoices[id]; !ok {
		return fmt.Errorf("delete invoice %s: %w", id, repositories.ErrNotFound)
	}
	delete(s.invoices, id)
	return nil
}

func (s *Store) NextInvoiceNumber(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	year := time.Now().Year()
	return nextSequentialNumber(s.countInvoiceNumbers(year), invoiceNumberPrefix, year), nil
}

func (s *Store) countInvoiceNumbers(year int) int {
	prefix := fmt.Sprintf("%s-%d-", invoiceNumberPrefix, year)
	count := 0
	for _, i := range s.invoices {
		if strings.HasPrefix(i.InvoiceNumber, prefix) {
			count++
		}
	}
	return count
}
