package memstore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"gyneco-record-service/internal/domain/dtos"
	"gyneco-record-service/internal/domain/entities"
	"gyneco-record-service/internal/domain/repositories"
)

func (s *Store) GetAppointments(ctx context.Context, filters dtos.AppointmentFilters) ([]*entities.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*entities.Appointment
	for _, a := range s.appointments {
		if filters.StartDate != nil && a.AppointmentDate.Before(*filters.StartDate) {
			continue
		}
		if filters.EndDate != nil && a.AppointmentDate.After(*filters.EndDate) {
			continue
		}
		if filters.Status != nil && a.Status != *filters.Status {
			continue
		}
		if filters.PatientID != nil && a.PatientID != *filters.PatientID {
			continue
		}
		out = append(out, cloneAppointment(a))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AppointmentDate.Before(out[j].AppointmentDate)
	})
	return out, nil
}

func (s *Store) GetAppointmentsByPatient(ctx context.Context, patientID uuid.UUID) ([]*entities.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*entities.Appointment
	for _, a := range s.appointments {
		if a.PatientID == patientID {
			out = append(out, cloneAppointment(a))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AppointmentDate.After(out[j].AppointmentDate)
	})
	return out, nil
}

func (s *Store) GetAppointmentByID(ctx context.Context, id uuid.UUID) (*entities.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.appointments[id]
	if !ok {
		return nil, nil
	}
	return cloneAppointment(a), nil
}

func (s *Store) CreateAppointment(ctx context.Context, req dtos.CreateAppointmentRequest) (*entities.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	duration := req.Duration
	if duration <= 0 {
		duration = entities.DefaultAppointmentDuration
	}
	status := req.Status
	if status == "" {
		status = entities.AppointmentScheduled
	}
	appointment := &entities.Appointment{
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
	activity := &entities.Activity{
		ID:            uuid.New(),
		PatientID:     req.PatientID,
		ActivityType:  "appointment_created",
		ActivityDate:  req.AppointmentDate,
		Description:   description,
		ReferenceID:   ptr(appointment.ID),
		ReferenceType: ptr("appointment"),
		CreatedAt:     now,
	}

	s.appointments[appointment.ID] = cloneAppointment(appointment)
	s.activities[activity.ID] = activity
	return appointment, nil
}

func (s *Store) UpdateAppointment(ctx context.Context, id uuid.UUID, req dtos.UpdateAppointmentRequest) (*entities.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.appointments[id]
	if !ok {
		return nil, fmt.Errorf("update appointment %s: %w", id, repositories.ErrNotFound)
	}
	if req.AppointmentDate != nil {
		a.AppointmentDate = *req.AppointmentDate
	}
	if req.Duration != nil {
		a.Duration = *req.Duration
	}
	if req.AppointmentType != nil {
		a.AppointmentType = clonePtr(req.AppointmentType)
	}
	if req.Status != nil {
		a.Status = *req.Status
	}
	if req.Notes != nil {
		a.Notes = clonePtr(req.Notes)
	}
	if req.ReminderSent != nil {
		a.ReminderSent = *req.ReminderSent
	}
	a.UpdatedAt = time.Now().UTC()
	return cloneAppointment(a), nil
}

func (s *Store) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.appointments[id]; !ok {
		return fmt.Errorf("delete appointment %s: %w", id, repositories.ErrNotFound)
	}
	delete(s.appointments, id)
	return nil
}

func (s *Store) CountTodayAppointments(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1)

	var count int64
	for _, a := range s.appointments {
		if a.AppointmentDate.Before(start) || !a.AppointmentDate.Before(end) {
			continue
		}
		if a.Status == entities.AppointmentScheduled || a.Status == entities.AppointmentConfirmed {
			count++
		}
	}
	return count, nil
}
