// Package database exposes the single data-access facade application
// features depend on. Features never talk to a concrete store or repository
// directly; the backend is chosen once at process start.
package database

import (
	"context"

	"github.com/google/uuid"

	"gyneco-record-service/internal/domain/dtos"
	"gyneco-record-service/internal/domain/entities"
)

// DatabaseService aggregates every repository operation behind one
// contract. Implementations only delegate; no business logic lives here.
type DatabaseService interface {
	// Patients
	SearchPatients(ctx context.Context, query string) ([]*entities.Patient, error)
	GetPatients(ctx context.Context) ([]*entities.Patient, error)
	GetPatientByID(ctx context.Context, id uuid.UUID) (*entities.Patient, error)
	CreatePatient(ctx context.Context, req dtos.CreatePatientRequest) (*entities.Patient, error)
	UpdatePatient(ctx context.Context, id uuid.UUID, req dtos.UpdatePatientRequest) (*entities.Patient, error)
	DeletePatient(ctx context.Context, id uuid.UUID) error

	// Deliveries
	GetDeliveriesByPatient(ctx context.Context, patientID uuid.UUID) ([]*entities.Delivery, error)
	CreateDelivery(ctx context.Context, req dtos.CreateDeliveryRequest) (*entities.Delivery, error)
	UpdateDelivery(ctx context.Context, id uuid.UUID, req dtos.UpdateDeliveryRequest) (*entities.Delivery, error)
	DeleteDelivery(ctx context.Context, id uuid.UUID) error

	// Reports
	GetReportsByPatient(ctx context.Context, patientID uuid.UUID) ([]*entities.Report, error)
	GetReportByID(ctx context.Context, id uuid.UUID) (*entities.Report, error)
	CreateReport(ctx context.Context, req dtos.CreateReportRequest) (*entities.Report, error)
	UpdateReport(ctx context.Context, id uuid.UUID, req dtos.UpdateReportRequest) (*entities.Report, error)
	DeleteReport(ctx context.Context, id uuid.UUID) error
	NextReportNumber(ctx context.Context) (string, error)

	// Invoices
	GetInvoicesByPatient(ctx context.Context, patientID uuid.UUID) ([]*entities.Invoice, error)
	GetInvoiceByID(ctx context.Context, id uuid.UUID) (*entities.Invoice, error)
	CreateInvoice(ctx context.Context, req dtos.CreateInvoiceRequest) (*entities.Invoice, error)
	UpdateInvoice(ctx context.Context, id uuid.UUID, req dtos.UpdateInvoiceRequest) (*entities.Invoice, error)
	DeleteInvoice(ctx context.Context, id uuid.UUID) error
	NextInvoiceNumber(ctx context.Context) (string, error)

	// Appointments
	GetAppointments(ctx context.Context, filters dtos.AppointmentFilters) ([]*entities.Appointment, error)
	GetAppointmentsByPatient(ctx context.Context, patientID uuid.UUID) ([]*entities.Appointment, error)
	GetAppointmentByID(ctx context.Context, id uuid.UUID) (*entities.Appointment, error)
	CreateAppointment(ctx context.Context, req dtos.CreateAppointmentRequest) (*entities.Appointment, error)
	UpdateAppointment(ctx context.Context, id uuid.UUID, req dtos.UpdateAppointmentRequest) (*entities.Appointment, error)
	DeleteAppointment(ctx context.Context, id uuid.UUID) error
	CountTodayAppointments(ctx context.Context) (int64, error)

	// Studio settings
	GetStudioSettings(ctx context.Context) (*entities.Studio, error)
	UpdateStudioSettings(ctx context.Context, req dtos.UpdateStudioRequest) (*entities.Studio, error)

	// Activities
	GetActivitiesByPatient(ctx context.Context, patientID uuid.UUID) ([]*entities.Activity, error)
	CreateActivity(ctx context.Context, req dtos.CreateActivityRequest) (*entities.Activity, error)
}
