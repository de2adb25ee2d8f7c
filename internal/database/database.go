package database

import (
	"context"

	"github.com/google/uuid"

	"gyneco-record-service/internal/domain/dtos"
	"gyneco-record-service/internal/domain/entities"
	"gyneco-record-service/internal/domain/repositories"
)

// Database implements DatabaseService by composing one repository per
// entity family. It is a composition point only: every method is a plain
// delegation and errors pass through untouched.
type Database struct {
	patients     repositories.PatientRepositoryContract
	deliveries   repositories.DeliveryRepositoryContract
	reports      repositories.ReportRepositoryContract
	invoices     repositories.InvoiceRepositoryContract
	appointments repositories.AppointmentRepositoryContract
	studio       repositories.StudioRepositoryContract
	activities   repositories.ActivityRepositoryContract
}

var _ DatabaseService = (*Database)(nil)

// NewDatabase wires the facade over the given repositories. All of them
// must share the same backing store handle.
func NewDatabase(
	patients repositories.PatientRepositoryContract,
	deliveries repositories.DeliveryRepositoryContract,
	reports repositories.ReportRepositoryContract,
	invoices repositories.InvoiceRepositoryContract,
	appointments repositories.AppointmentRepositoryContract,
	studio repositories.StudioRepositoryContract,
	activities repositories.ActivityRepositoryContract,
) *Database {
	return &Database{
		patients:     patients,
		deliveries:   deliveries,
		reports:      reports,
		invoices:     invoices,
		appointments: appointments,
		studio:       studio,
		activities:   activities,
	}
}

func (d *Database) SearchPatients(ctx context.Context, query string) ([]*entities.Patient, error) {
	return d.patients.Search(ctx, query)
}

func (d *Database) GetPatients(ctx context.Context) ([]*entities.Patient, error) {
	return d.patients.ListAll(ctx)
}

func (d *Database) GetPatientByID(ctx context.Context, id uuid.UUID) (*entities.Patient, error) {
	return d.patients.GetByID(ctx, id)
}

func (d *Database) CreatePatient(ctx context.Context, req dtos.CreatePatientRequest) (*entities.Patient, error) {
	return d.patients.Create(ctx, req)
}

func (d *Database) UpdatePatient(ctx context.Context, id uuid.UUID, req dtos.UpdatePatientRequest) (*entities.Patient, error) {
	return d.patients.Update(ctx, id, req)
}

func (d *Database) DeletePatient(ctx context.Context, id uuid.UUID) error {
	return d.patients.Delete(ctx, id)
}

func (d *Database) GetDeliveriesByPatient(ctx context.Context, patientID uuid.UUID) ([]*entities.Delivery, error) {
	return d.deliveries.ListByPatient(ctx, patientID)
}

func (d *Database) CreateDelivery(ctx context.Context, req dtos.CreateDeliveryRequest) (*entities.Delivery, error) {
	return d.deliveries.Create(ctx, req)
}

func (d *Database) UpdateDelivery(ctx context.Context, id uuid.UUID, req dtos.UpdateDeliveryRequest) (*entities.Delivery, error) {
	return d.deliveries.Update(ctx, id, req)
}

func (d *Database) DeleteDelivery(ctx context.Context, id uuid.UUID) error {
	return d.deliveries.Delete(ctx, id)
}

func (d *Database) GetReportsByPatient(ctx context.Context, patientID uuid.UUID) ([]*entities.Report, error) {
	return d.reports.ListByPatient(ctx, patientID)
}

func (d *Database) GetReportByID(ctx context.Context, id uuid.UUID) (*entities.Report, error) {
	return d.reports.GetByID(ctx, id)
}

func (d *Database) CreateReport(ctx context.Context, req dtos.CreateReportRequest) (*entities.Report, error) {
	return d.reports.Create(ctx, req)
}

func (d *Database) UpdateReport(ctx context.Context, id uuid.UUID, req dtos.UpdateReportRequest) (*entities.Report, error) {
	return d.reports.Update(ctx, id, req)
}

func (d *Database) DeleteReport(ctx context.Context, id uuid.UUID) error {
	return d.reports.Delete(ctx, id)
}

func (d *Database) NextReportNumber(ctx context.Context) (string, error) {
	return d.reports.NextNumber(ctx)
}

func (d *Database) GetInvoicesByPatient(ctx context.Context, patientID uuid.UUID) ([]*entities.Invoice, error) {
	return d.invoices.ListByPatient(ctx, patientID)
}

func (d *Database) GetInvoiceByID(ctx context.Context, id uuid.UUID) (*entities.Invoice, error) {
	return d.invoices.GetByID(ctx, id)
}

func (d *Database) CreateInvoice(ctx context.Context, req dtos.CreateInvoiceRequest) (*entities.Invoice, error) {
	return d.invoices.Create(ctx, req)
}

func (d *Database) UpdateInvoice(ctx context.Context, id uuid.UUID, req dtos.UpdateInvoiceRequest) (*entities.Invoice, error) {
	return d.invoices.Update(ctx, id, req)
}

func (d *Database) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	return d.invoices.Delete(ctx, id)
}

func (d *Database) NextInvoiceNumber(ctx context.Context) (string, error) {
	return d.invoices.NextNumber(ctx)
}

func (d *Database) GetAppointments(ctx context.Context, filters dtos.AppointmentFilters) ([]*entities.Appointment, error) {
	return d.appointments.List(ctx, filters)
}

func (d *Database) GetAppointmentsByPatient(ctx context.Context, patientID uuid.UUID) ([]*entities.Appointment, error) {
	return d.appointments.ListByPatient(ctx, patientID)
}

func (d *Database) GetAppointmentByID(ctx context.Context, id uuid.UUID) (*entities.Appointment, error) {
	return d.appointments.GetByID(ctx, id)
}

func (d *Database) CreateAppointment(ctx context.Context, req dtos.CreateAppointmentRequest) (*entities.Appointment, error) {
	return d.appointments.Create(ctx, req)
}

func (d *Database) UpdateAppointment(ctx context.Context, id uuid.UUID, req dtos.UpdateAppointmentRequest) (*entities.Appointment, error) {
	return d.appointments.Update(ctx, id, req)
}

func (d *Database) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	return d.appointments.Delete(ctx, id)
}

func (d *Database) CountTodayAppointments(ctx context.Context) (int64, error) {
	return d.appointments.CountToday(ctx)
}

func (d *Database) GetStudioSettings(ctx context.Context) (*entities.Studio, error) {
	return d.studio.GetSettings(ctx)
}

func (d *Database) UpdateStudioSettings(ctx context.Context, req dtos.UpdateStudioRequest) (*entities.Studio, error) {
	return d.studio.UpdateSettings(ctx, req)
}

func (d *Database) GetActivitiesByPatient(ctx context.Context, patientID uuid.UUID) ([]*entities.Activity, error) {
	return d.activities.ListByPatient(ctx, patientID)
}

func (d *Database) CreateActivity(ctx context.Context, req dtos.CreateActivityRequest) (*entities.Activity, error) {
	return d.activities.Create(ctx, req)
}
