package gormstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gyneco-record-service/internal/domain/dtos"
	"gyneco-record-service/internal/domain/entities"
)

func newTestReportRequest(patient *entities.Patient) dtos.CreateReportRequest {
	return dtos.CreateReportRequest{
		PatientID:   patient.ID,
		StudioID:    entities.DefaultStudioID,
		ReportDate:  time.Now().UTC(),
		VisitType:   "controllo",
		Examination: "nella norma",
		PatientSnapshot: entities.PatientSnapshot{
			FirstName: patient.FirstName,
			LastName:  patient.LastName,
			BirthDate: patient.BirthDate,
		},
	}
}

func newTestInvoiceRequest(patient *entities.Patient) dtos.CreateInvoiceRequest {
	return dtos.CreateInvoiceRequest{
		PatientID:     patient.ID,
		StudioID:      entities.DefaultStudioID,
		InvoiceDate:   time.Now().UTC(),
		Amount:        100,
		TotalAmount:   122,
		PaymentStatus: entities.PaymentPending,
	}
}

func TestReportNumbers_SequentialWithinYear(t *testing.T) {
	store := newTestStore(t)
	repo := NewReportRepository(store)
	ctx := context.Background()
	patient := newTestPatient(t, store)
	year := time.Now().Year()

	for i := 1; i <= 3; i++ {
		report, err := repo.Create(ctx, newTestReportRequest(patient))
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("REF-%d-%04d", year, i), report.ReportNumber)
	}
}

func TestReportNumbers_NextNumberDoesNotConsume(t *testing.T) {
	store := newTestStore(t)
	repo := NewReportRepository(store)
	ctx := context.Background()
	patient := newTestPatient(t, store)
	year := time.Now().Year()

	// Preview twice: the number is not reserved until a report is created.
	preview, err := repo.NextNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("REF-%d-0001", year), preview)

	preview, err = repo.NextNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("REF-%d-0001", year), preview)

	report, err := repo.Create(ctx, newTestReportRequest(patient))
	require.NoError(t, err)
	assert.Equal(t, preview, report.ReportNumber)
}

func TestReportNumbers_ReusedAfterDelete(t *testing.T) {
	store := newTestStore(t)
	repo := NewReportRepository(store)
	ctx := context.Background()
	patient := newTestPatient(t, store)
	year := time.Now().Year()

	first, err := repo.Create(ctx, newTestReportRequest(patient))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newTestReportRequest(patient))
	require.NoError(t, err)

	// Deleting shrinks the count, so the freed slot is issued again.
	require.NoError(t, repo.Delete(ctx, first.ID))

	next, err := repo.NextNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("REF-%d-0002", year), next)
}

func TestInvoiceNumbers_SequentialWithinYear(t *testing.T) {
	store := newTestStore(t)
	repo := NewInvoiceRepository(store)
	ctx := context.Background()
	patient := newTestPatient(t, store)
	year := time.Now().Year()

	for i := 1; i <= 3; i++ {
		invoice, err := repo.Create(ctx, newTestInvoiceRequest(patient))
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("INV-%d-%04d", year, i), invoice.InvoiceNumber)
	}
}

func TestReportAndInvoiceSequences_AreIndependent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	patient := newTestPatient(t, store)
	year := time.Now().Year()

	report, err := NewReportRepository(store).Create(ctx, newTestReportRequest(patient))
	require.NoError(t, err)
	invoice, err := NewInvoiceRepository(store).Create(ctx, newTestInvoiceRequest(patient))
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("REF-%d-0001", year), report.ReportNumber)
	assert.Equal(t, fmt.Sprintf("INV-%d-0001", year), invoice.InvoiceNumber)
}
