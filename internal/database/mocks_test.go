package database

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"gyneco-record-service/internal/domain/dtos"
	"gyneco-record-service/internal/domain/entities"
	"gyneco-record-service/internal/domain/repositories"
)

// Function-field mocks for each repository contract. A nil field means the
// test did not expect that call.

var errUnexpectedCall = errors.New("unexpected repository call")

var _ repositories.PatientRepositoryContract = (*MockPatientRepository)(nil)

type MockPatientRepository struct {
	SearchFunc  func(ctx context.Context, query string) ([]*entities.Patient, error)
	ListAllFunc func(ctx context.Context) ([]*entities.Patient, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*entities.Patient, error)
	CreateFunc  func(ctx context.Context, req dtos.CreatePatientRequest) (*entities.Patient, error)
	UpdateFunc  func(ctx context.Context, id uuid.UUID, req dtos.UpdatePatientRequest) (*entities.Patient, error)
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error
}

func (m *MockPatientRepository) Search(ctx context.Context, query string) ([]*entities.Patient, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	return nil, errUnexpectedCall
}

func (m *MockPatientRepository) ListAll(ctx context.Context) ([]*entities.Patient, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, errUnexpectedCall
}

func (m *MockPatientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Patient, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errUnexpectedCall
}

func (m *MockPatientRepository) Create(ctx context.Context, req dtos.CreatePatientRequest) (*entities.Patient, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return nil, errUnexpectedCall
}

func (m *MockPatientRepository) Update(ctx context.Context, id uuid.UUID, req dtos.UpdatePatientRequest) (*entities.Patient, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req)
	}
	return nil, errUnexpectedCall
}

func (m *MockPatientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errUnexpectedCall
}

var _ repositories.DeliveryRepositoryContract = (*MockDeliveryRepository)(nil)

type MockDeliveryRepository struct {
	ListByPatientFunc func(ctx context.Context, patientID uuid.UUID) ([]*entities.Delivery, error)
	CreateFunc        func(ctx context.Context, req dtos.CreateDeliveryRequest) (*entities.Delivery, error)
	UpdateFunc        func(ctx context.Context, id uuid.UUID, req dtos.UpdateDeliveryRequest) (*entities.Delivery, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
}

func (m *MockDeliveryRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entities.Delivery, error) {
	if m.ListByPatientFunc != nil {
		return m.ListByPatientFunc(ctx, patientID)
	}
	return nil, errUnexpectedCall
}

func (m *MockDeliveryRepository) Create(ctx context.Context, req dtos.CreateDeliveryRequest) (*entities.Delivery, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return nil, errUnexpectedCall
}

func (m *MockDeliveryRepository) Update(ctx context.Context, id uuid.UUID, req dtos.UpdateDeliveryRequest) (*entities.Delivery, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req)
	}
	return nil, errUnexpectedCall
}

func (m *MockDeliveryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errUnexpectedCall
}

var _ repositories.ReportRepositoryContract = (*MockReportRepository)(nil)

type MockReportRepository struct {
	ListByPatientFunc func(ctx context.Context, patientID uuid.UUID) ([]*entities.Report, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*entities.Report, error)
	CreateFunc        func(ctx context.Context, req dtos.CreateReportRequest) (*entities.Report, error)
	UpdateFunc        func(ctx context.Context, id uuid.UUID, req dtos.UpdateReportRequest) (*entities.Report, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	NextNumberFunc    func(ctx context.Context) (string, error)
}

func (m *MockReportRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entities.Report, error) {
	if m.ListByPatientFunc != nil {
		return m.ListByPatientFunc(ctx, patientID)
	}
	return nil, errUnexpectedCall
}

func (m *MockReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Report, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errUnexpectedCall
}

func (m *MockReportRepository) Create(ctx context.Context, req dtos.CreateReportRequest) (*entities.Report, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return nil, errUnexpectedCall
}

func (m *MockReportRepository) Update(ctx context.Context, id uuid.UUID, req dtos.UpdateReportRequest) (*entities.Report, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req)
	}
	return nil, errUnexpectedCall
}

func (m *MockReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errUnexpectedCall
}

func (m *MockReportRepository) NextNumber(ctx context.Context) (string, error) {
	if m.NextNumberFunc != nil {
		return m.NextNumberFunc(ctx)
	}
	return "", errUnexpectedCall
}

var _ repositories.InvoiceRepositoryContract = (*MockInvoiceRepository)(nil)

type MockInvoiceRepository struct {
	ListByPatientFunc func(ctx context.Context, patientID uuid.UUID) ([]*entities.Invoice, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*entities.Invoice, error)
	CreateFunc        func(ctx context.Context, req dtos.CreateInvoiceRequest) (*entities.Invoice, error)
	UpdateFunc        func(ctx context.Context, id uuid.UUID, req dtos.UpdateInvoiceRequest) (*entities.Invoice, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	NextNumberFunc    func(ctx context.Context) (string, error)
}

func (m *MockInvoiceRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entities.Invoice, error) {
	if m.ListByPatientFunc != nil {
		return m.ListByPatientFunc(ctx, patientID)
	}
	return nil, errUnexpectedCall
}

func (m *MockInvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Invoice, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errUnexpectedCall
}

func (m *MockInvoiceRepository) Create(ctx context.Context, req dtos.CreateInvoiceRequest) (*entities.Invoice, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return nil, errUnexpectedCall
}

func (m *MockInvoiceRepository) Update(ctx context.Context, id uuid.UUID, req dtos.UpdateInvoiceRequest) (*entities.Invoice, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req)
	}
	return nil, errUnexpectedCall
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errUnexpectedCall
}

func (m *MockInvoiceRepository) NextNumber(ctx context.Context) (string, error) {
	if m.NextNumberFunc != nil {
		return m.NextNumberFunc(ctx)
	}
	return "", errUnexpectedCall
}

var _ repositories.AppointmentRepositoryContract = (*MockAppointmentRepository)(nil)

type MockAppointmentRepository struct {
	ListFunc          func(ctx context.Context, filters dtos.AppointmentFilters) ([]*entities.Appointment, error)
	ListByPatientFunc func(ctx context.Context, patientID uuid.UUID) ([]*entities.Appointment, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*entities.Appointment, error)
	CreateFunc        func(ctx context.Context, req dtos.CreateAppointmentRequest) (*entities.Appointment, error)
	UpdateFunc        func(ctx context.Context, id uuid.UUID, req dtos.UpdateAppointmentRequest) (*entities.Appointment, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	CountTodayFunc    func(ctx context.Context) (int64, error)
}

func (m *MockAppointmentRepository) List(ctx context.Context, filters dtos.AppointmentFilters) ([]*entities.Appointment, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filters)
	}
	return nil, errUnexpectedCall
}

func (m *MockAppointmentRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entities.Appointment, error) {
	if m.ListByPatientFunc != nil {
		return m.ListByPatientFunc(ctx, patientID)
	}
	return nil, errUnexpectedCall
}

func (m *MockAppointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Appointment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errUnexpectedCall
}

func (m *MockAppointmentRepository) Create(ctx context.Context, req dtos.CreateAppointmentRequest) (*entities.Appointment, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return nil, errUnexpectedCall
}

func (m *MockAppointmentRepository) Update(ctx context.Context, id uuid.UUID, req dtos.UpdateAppointmentRequest) (*entities.Appointment, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, req)
	}
	return nil, errUnexpectedCall
}

func (m *MockAppointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errUnexpectedCall
}

func (m *MockAppointmentRepository) CountToday(ctx context.Context) (int64, error) {
	if m.CountTodayFunc != nil {
		return m.CountTodayFunc(ctx)
	}
	return 0, errUnexpectedCall
}

var _ repositories.StudioRepositoryContract = (*MockStudioRepository)(nil)

type MockStudioRepository struct {
	GetSettingsFunc    func(ctx context.Context) (*entities.Studio, error)
	UpdateSettingsFunc func(ctx context.Context, req dtos.UpdateStudioRequest) (*entities.Studio, error)
}

func (m *MockStudioRepository) GetSettings(ctx context.Context) (*entities.Studio, error) {
	if m.GetSettingsFunc != nil {
		return m.GetSettingsFunc(ctx)
	}
	return nil, errUnexpectedCall
}

func (m *MockStudioRepository) UpdateSettings(ctx context.Context, req dtos.UpdateStudioRequest) (*entities.Studio, error) {
	if m.UpdateSettingsFunc != nil {
		return m.UpdateSettingsFunc(ctx, req)
	}
	return nil, errUnexpectedCall
}

var _ repositories.ActivityRepositoryContract = (*MockActivityRepository)(nil)

type MockActivityRepository struct {
	ListByPatientFunc func(ctx context.Context, patientID uuid.UUID) ([]*entities.Activity, error)
	CreateFunc        func(ctx context.Context, req dtos.CreateActivityRequest) (*entities.Activity, error)
}

func (m *MockActivityRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entities.Activity, error) {
	if m.ListByPatientFunc != nil {
		return m.ListByPatientFunc(ctx, patientID)
	}
	return nil, errUnexpectedCall
}

func (m *MockActivityRepository) Create(ctx context.Context, req dtos.CreateActivityRequest) (*entities.Activity, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	return nil, errUnexpectedCall
}
