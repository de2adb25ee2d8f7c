package memstore

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gyneco-record-service/internal/domain/dtos"
	"gyneco-record-service/internal/domain/entities"
	"gyneco-record-service/internal/domain/repositories"
)

func newStorePatient(t *testing.T, store *Store) *entities.Patient {
	t.Helper()
	patient, err := store.CreatePatient(context.Background(), dtos.CreatePatientRequest{
		StudioID:       entities.DefaultStudioID,
		FirstName:      "Maria",
		LastName:       "Rossi",
		BirthDate:      time.Date(1988, 4, 12, 0, 0, 0, 0, time.UTC),
		PrivacyConsent: true,
	})
	require.NoError(t, err)
	return patient
}

func TestStore_CreatePatientDefaultsCountry(t *testing.T) {
	store := New()
	patient := newStorePatient(t, store)

	require.NotNil(t, patient.Country)
	assert.Equal(t, "Italia", *patient.Country)
	assert.NotEqual(t, uuid.Nil, patient.ID)
}

func TestStore_GetPatientByID_AbsentReturnsNilNil(t *testing.T) {
	store := New()

	got, err := store.GetPatientByID(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_DuplicateFiscalCode(t *testing.T) {
	store := New()
	ctx := context.Background()

	req := dtos.CreatePatientRequest{
		StudioID:   entities.DefaultStudioID,
		FirstName:  "Anna",
		LastName:   "Bianchi",
		BirthDate:  time.Date(1985, 1, 20, 0, 0, 0, 0, time.UTC),
		FiscalCode: ptr("BNCNNA85A60H501K"),
	}
	_, err := store.CreatePatient(ctx, req)
	require.NoError(t, err)

	_, err = store.CreatePatient(ctx, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, repositories.ErrDuplicate)
}

func TestStore_UpdatePatientRejectsTakenFiscalCode(t *testing.T) {
	store := New()
	ctx := context.Background()

	first, err := store.CreatePatient(ctx, dtos.CreatePatientRequest{
		StudioID:   entities.DefaultStudioID,
		FirstName:  "Anna",
		LastName:   "Bianchi",
		BirthDate:  time.Date(1985, 1, 20, 0, 0, 0, 0, time.UTC),
		FiscalCode: ptr("BNCNNA85A60H501K"),
	})
	require.NoError(t, err)
	second := newStorePatient(t, store)

	_, err = store.UpdatePatient(ctx, second.ID, dtos.UpdatePatientRequest{
		FiscalCode: first.FiscalCode,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, repositories.ErrDuplicate)
}

func TestStore_ReturnedPatientsAreCopies(t *testing.T) {
	store := New()
	ctx := context.Background()
	patient := newStorePatient(t, store)

	// Mutating what the store handed out must not leak into stored state.
	patient.FirstName = "Manomessa"
	got, err := store.GetPatientByID(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria", got.FirstName)
}

func TestStore_PatientsSortedByLastThenFirstName(t *testing.T) {
	store := New()
	ctx := context.Background()

	for _, p := range []struct{ first, last string }{
		{"Sara", "Verdi"},
		{"Maria", "Bianchi"},
		{"Anna", "Bianchi"},
	} {
		_, err := store.CreatePatient(ctx, dtos.CreatePatientRequest{
			StudioID:  entities.DefaultStudioID,
			FirstName: p.first,
			LastName:  p.last,
			BirthDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
	}

	patients, err := store.GetPatients(ctx)
	require.NoError(t, err)
	require.Len(t, patients, 3)
	assert.Equal(t, "Anna", patients[0].FirstName)
	assert.Equal(t, "Maria", patients[1].FirstName)
	assert.Equal(t, "Verdi", patients[2].LastName)
}

func TestStore_SearchPatientsIsCaseInsensitive(t *testing.T) {
	store := New()
	ctx := context.Background()

	_, err := store.CreatePatient(ctx, dtos.CreatePatientRequest{
		StudioID:   entities.DefaultStudioID,
		FirstName:  "Chiara",
		LastName:   "Esposito",
		BirthDate:  time.Date(1992, 3, 15, 0, 0, 0, 0, time.UTC),
		FiscalCode: ptr("SPSCHR92C55F839T"),
	})
	require.NoError(t, err)

	found, err := store.SearchPatients(ctx, "ESPOSITO")
	require.NoError(t, err)
	require.Len(t, found, 1)

	found, err = store.SearchPatients(ctx, "spschr")
	require.NoError(t, err)
	require.Len(t, found, 1)

	found, err = store.SearchPatients(ctx, "ferrari")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestStore_DeletePatientCascades(t *testing.T) {
	store := New()
	ctx := context.Background()
	patient := newStorePatient(t, store)

	_, err := store.CreateDelivery(ctx, dtos.CreateDeliveryRequest{
		PatientID:    patient.ID,
		StudioID:     entities.DefaultStudioID,
		DeliveryDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		DeliveryType: entities.DeliveryNatural,
	})
	require.NoError(t, err)
	_, err = store.CreateReport(ctx, dtos.CreateReportRequest{
		PatientID:       patient.ID,
		StudioID:        entities.DefaultStudioID,
		ReportDate:      time.Now().UTC(),
		VisitType:       "controllo",
		Examination:     "regolare",
		PatientSnapshot: entities.PatientSnapshot{FirstName: "Maria", LastName: "Rossi"},
	})
	require.NoError(t, err)
	_, err = store.CreateAppointment(ctx, dtos.CreateAppointmentRequest{
		PatientID:       patient.ID,
		StudioID:        entities.DefaultStudioID,
		AppointmentDate: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)

	require.NoError(t, store.DeletePatient(ctx, patient.ID))

	deliveries, err := store.GetDeliveriesByPatient(ctx, patient.ID)
	require.NoError(t, err)
	assert.Empty(t, deliveries)

	reports, err := store.GetReportsByPatient(ctx, patient.ID)
	require.NoError(t, err)
	assert.Empty(t, reports)

	appointments, err := store.GetAppointmentsByPatient(ctx, patient.ID)
	require.NoError(t, err)
	assert.Empty(t, appointments)

	activities, err := store.GetActivitiesByPatient(ctx, patient.ID)
	require.NoError(t, err)
	assert.Empty(t, activities)
}

func TestStore_ReportNumbersSequentialAndReused(t *testing.T) {
	store := New()
	ctx := context.Background()
	patient := newStorePatient(t, store)
	year := time.Now().Year()

	req := dtos.CreateReportRequest{
		PatientID:       patient.ID,
		StudioID:        entities.DefaultStudioID,
		ReportDate:      time.Now().UTC(),
		VisitType:       "controllo",
		Examination:     "nella norma",
		PatientSnapshot: entities.PatientSnapshot{FirstName: "Maria", LastName: "Rossi"},
	}

	first, err := store.CreateReport(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("REF-%d-0001", year), first.ReportNumber)

	second, err := store.CreateReport(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("REF-%d-0002", year), second.ReportNumber)

	// Deleting shrinks the count, so the freed slot is issued again.
	require.NoError(t, store.DeleteReport(ctx, first.ID))
	next, err := store.NextReportNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("REF-%d-0002", year), next)
}

func TestStore_InvoiceNumbersSequential(t *testing.T) {
	store := New()
	ctx := context.Background()
	patient := newStorePatient(t, store)
	year := time.Now().Year()

	for i := 1; i <= 2; i++ {
		invoice, err := store.CreateInvoice(ctx, dtos.CreateInvoiceRequest{
			PatientID:     patient.ID,
			StudioID:      entities.DefaultStudioID,
			InvoiceDate:   time.Now().UTC(),
			Amount:        100,
			TotalAmount:   122,
			PaymentStatus: entities.PaymentPending,
		})
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("INV-%d-%04d", year, i), invoice.InvoiceNumber)
	}
}

func TestStore_CreateAppointmentDefaultsAndActivity(t *testing.T) {
	store := New()
	ctx := context.Background()
	patient := newStorePatient(t, store)

	appointment, err := store.CreateAppointment(ctx, dtos.CreateAppointmentRequest{
		PatientID:       patient.ID,
		StudioID:        entities.DefaultStudioID,
		AppointmentDate: time.Now().Add(24 * time.Hour),
		AppointmentType: ptr("ecografia"),
	})
	require.NoError(t, err)
	assert.Equal(t, entities.DefaultAppointmentDuration, appointment.Duration)
	assert.Equal(t, entities.AppointmentScheduled, appointment.Status)

	activities, err := store.GetActivitiesByPatient(ctx, patient.ID)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "appointment_created", activities[0].ActivityType)
	assert.Equal(t, "Appuntamento programmato: ecografia", activities[0].Description)
	require.NotNil(t, activities[0].ReferenceID)
	assert.Equal(t, appointment.ID, *activities[0].ReferenceID)
}

func TestStore_CountTodayAppointments(t *testing.T) {
	store := New()
	ctx := context.Background()
	patient := newStorePatient(t, store)

	now := time.Now()
	_, err := store.CreateAppointment(ctx, dtos.CreateAppointmentRequest{
		PatientID:       patient.ID,
		StudioID:        entities.DefaultStudioID,
		AppointmentDate: now,
	})
	require.NoError(t, err)
	_, err = store.CreateAppointment(ctx, dtos.CreateAppointmentRequest{
		PatientID:       patient.ID,
		StudioID:        entities.DefaultStudioID,
		AppointmentDate: now.AddDate(0, 0, 1),
	})
	require.NoError(t, err)

	cancelled := entities.AppointmentCancelled
	today, err := store.CreateAppointment(ctx, dtos.CreateAppointmentRequest{
		PatientID:       patient.ID,
		StudioID:        entities.DefaultStudioID,
		AppointmentDate: now,
	})
	require.NoError(t, err)
	_, err = store.UpdateAppointment(ctx, today.ID, dtos.UpdateAppointmentRequest{Status: &cancelled})
	require.NoError(t, err)

	count, err := store.CountTodayAppointments(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestStore_MutateMissingReturnsNotFound(t *testing.T) {
	store := New()
	ctx := context.Background()
	missing := uuid.New()

	_, err := store.UpdatePatient(ctx, missing, dtos.UpdatePatientRequest{FirstName: ptr("Nessuno")})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.ErrorIs(t, store.DeletePatient(ctx, missing), repositories.ErrNotFound)
	assert.ErrorIs(t, store.DeleteReport(ctx, missing), repositories.ErrNotFound)
	assert.ErrorIs(t, store.DeleteInvoice(ctx, missing), repositories.ErrNotFound)
	assert.ErrorIs(t, store.DeleteAppointment(ctx, missing), repositories.ErrNotFound)
	assert.ErrorIs(t, store.DeleteDelivery(ctx, missing), repositories.ErrNotFound)
}

func TestStore_StudioSettingsUnsupported(t *testing.T) {
	store := New()
	ctx := context.Background()

	_, err := store.GetStudioSettings(ctx)
	assert.ErrorIs(t, err, repositories.ErrUnsupported)

	_, err = store.UpdateStudioSettings(ctx, dtos.UpdateStudioRequest{Name: ptr("Studio")})
	assert.ErrorIs(t, err, repositories.ErrUnsupported)
}
