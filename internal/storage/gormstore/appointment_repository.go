package gormstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gyneco-record-service/internal/domain/dtos"
	"gyneco-record-service/internal/domain/entities"
	"gyneco-record-service/internal/domain/repositories"
)

// AppointmentRepository implements repositories.AppointmentRepositoryContract.
type AppointmentRepository struct {
	store *Store
}

var _ repositories.AppointmentRepositoryContract = (*AppointmentRepository)(nil)

func NewAppointmentRepository(store *Store) *AppointmentRepository {
	return &AppointmentRepository{store: store}
}

func (r *AppointmentRepository) List(ctx context.Context, filters dtos.AppointmentFilters) ([]*entities.Appointment, error) {
	db, err := r.store.ensureReady()
	if err != nil {
		return nil, err
	}
	q := db.WithContext(ctx).Model(&entities.Appointment{})
	if filters.StartDate != nil {
		q = q.Where("appointment_date >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		q = q.Where("appointment_date <= ?", *filters.EndDate)
	}
	if filters.Status != nil {
		q = q.Where("status = ?", *filters.Status)
	}
	if filters.PatientID != nil {
		q = q.Where("patient_id = ?", *filters.PatientID)
	}
	var appointments []*entities.Appointment
	if err := q.Order("appointment_date ASC").Find(&appointments).Error; err != nil {
		return nil, wrap("list appointments", err)
	}
	return appointments, nil
}

func (r *AppointmentRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entities.Appointment, error) {
	db, err := r.store.ensureReady()
	if err != nil {
		return nil, err
	}
	var appointments []*entities.Appointment
	err = db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("appointment_date DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, wrap("list patient appointments", err)
	}
	return appointments, nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Appointment, error) {
	db, err := r.store.ensureReady()
	if err != nil {
		return nil, err
	}
	var appointment entities.Appointment
	err = db.WithContext(ctx).First(&appointment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("get appointment", err)
	}
	return &appointment, nil
}

// Create schedules the visit and appends the matching timeline activity in
// one transaction, so the agenda and the timeline never disagree.
func (r *AppointmentRepository) Create(ctx context.Context, req dtos.CreateAppointmentRequest) (*entities.Appointment, error) {
	db, err := r.store.ensureReady()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	duration := req.Duration
	if duration <= 0 {
		duration = entities.DefaultAppointmentDuration
	}
	status := req.Status
	if status == "" {
		status = entities.AppointmentScheduled
	}
	appointment := entities.Appointment{
		ID:              uuid.New(),
		PatientID:       req.PatientID,
		StudioID:        req.StudioID,
		AppointmentDate: req.AppointmentDate,
		Duration:        duration,
		AppointmentType: req.AppointmentType,
		Status:          status,
		Notes:           req.Notes,
		CreatedBy:       req.CreatedBy,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	description := "Appuntamento programmato"
	if req.AppointmentType != nil {
		description += ": " + *req.AppointmentType
	}
	activity := entities.Activity{
		ID:            uuid.New(),
		PatientID:     req.PatientID,
		ActivityType:  "appointment_created",
		ActivityDate:  req.AppointmentDate,
		Description:   description,
		ReferenceID:   &appointment.ID,
		ReferenceType: ptr("appointment"),
		CreatedAt:     now,
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&appointment).Error; err != nil {
			return err
		}
		return tx.Create(&activity).Error
	})
	if err != nil {
		return nil, wrap("create appointment", err)
	}
	return r.reload(ctx, db, appointment.ID)
}

func (r *AppointmentRepository) Update(ctx context.Context, id uuid.UUID, req dtos.UpdateAppointmentRequest) (*entities.Appointment, error) {
	db, err := r.store.ensureReady()
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.AppointmentDate != nil {
		updates["appointment_date"] = *req.AppointmentDate
	}
	if req.Duration != nil {
		updates["duration"] = *req.Duration
	}
	if req.AppointmentType != nil {
		updates["appointment_type"] = *req.AppointmentType
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.ReminderSent != nil {
		updates["reminder_sent"] = *req.ReminderSent
	}
	updates["updated_at"] = time.Now().UTC()

	res := db.WithContext(ctx).Model(&entities.Appointment{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, wrap("update appointment", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("update appointment %s: %w", id, repositories.ErrNotFound)
	}
	return r.reload(ctx, db, id)
}

func (r *AppointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db, err := r.store.ensureReady()
	if err != nil {
		return err
	}
	res := db.WithContext(ctx).Delete(&entities.Appointment{}, "id = ?", id)
	if res.Error != nil {
		return wrap("delete appointment", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete appointment %s: %w", id, repositories.ErrNotFound)
	}
	return nil
}

// CountToday serves the dashboard badge: visits still expected today.
func (r *AppointmentRepository) CountToday(ctx context.Context) (int64, error) {
	db, err := r.store.ensureReady()
	if err != nil {
		return 0, err
	}
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1)

	var count int64
	err = db.WithContext(ctx).Model(&entities.Appointment{}).
		Where("appointment_date >= ? AND appointment_date < ?", start, end).
		Where("status IN ?", []entities.AppointmentStatus{entities.AppointmentScheduled, entities.AppointmentConfirmed}).
		Count(&count).Error
	if err != nil {
		return 0, wrap("count today appointments", err)
	}
	return count, nil
}

func (r *AppointmentRepository) reload(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entities.Appointment, error) {
	var appointment entities.Appointment
	if err := db.WithContext(ctx).First(&appointment, "id = ?", id).Error; err != nil {
		return nil, wrap("reload appointment", err)
	}
	return &appointment, nil
}
