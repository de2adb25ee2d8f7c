package memstore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"gyneco-record-service/internal/domain/dtos"
	"gyneco-record-service/internal/domain/entities"
	"gyneco-record-service/internal/domain/repositories"
)

func (s *Store) SearchPatients(ctx context.Context, query string) ([]*entities.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term := strings.ToLower(query)
	var out []*entities.Patient
	for _, p := range s.patients {
		if strings.Contains(strings.ToLower(p.FirstName), term) ||
			strings.Contains(strings.ToLower(p.LastName), term) ||
			(p.FiscalCode != nil && strings.Contains(strings.ToLower(*p.FiscalCode), term)) {
			out = append(out, clonePatient(p))
		}
	}
	sortPatients(out)
	return out, nil
}

func (s *Store) GetPatients(ctx context.Context) ([]*entities.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entities.Patient, 0, len(s.patients))
	for _, p := range s.patients {
		out = append(out, clonePatient(p))
	}
	sortPatients(out)
	return out, nil
}

func (s *Store) GetPatientByID(ctx context.Context, id uuid.UUID) (*entities.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.patients[id]
	if !ok {
		return nil, nil
	}
	return clonePatient(p), nil
}

func (s *Store) CreatePatient(ctx context.Context, req dtos.CreatePatientRequest) (*entities.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkFiscalCode(req.FiscalCode, uuid.Nil); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	country := req.Country
	if country == nil {
		country = ptr("Italia")
	}
	patient := &entities.Patient{
		ID:        uuid.New(),
		StudioID:  req.StudioID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		BirthDate: req.BirthDate,

		BirthPlace: req.BirthPlace,
		FiscalCode: req.FiscalCode,
		Phone:      req.Phone,
		Mobile:     req.Mobile,
		Email:      req.Email,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
		Province:   req.Province,
		Country:    country,

		BloodType:            req.BloodType,
		Allergies:            req.Allergies,
		CurrentMedications:   req.CurrentMedications,
		MedicalNotes:         req.MedicalNotes,
		FamilyMedicalHistory: req.FamilyMedicalHistory,

		FirstMenstruationAge: req.FirstMenstruationAge,
		MenstrualCycleDays:   req.MenstrualCycleDays,
		LastMenstruationDate: req.LastMenstruationDate,
		ContraceptionMethod:  req.ContraceptionMethod,
		PapTestLastDate:      req.PapTestLastDate,
		MammographyLastDate:  req.MammographyLastDate,

		PrivacyConsent:   req.PrivacyConsent,
		MarketingConsent: req.MarketingConsent,

		CreatedAt: now,
		UpdatedAt: now,
	}
	s.patients[patient.ID] = clonePatient(patient)
	return patient, nil
}

func (s *Store) UpdatePatient(ctx context.Context, id uuid.UUID, req dtos.UpdatePatientRequest) (*entities.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.patients[id]
	if !ok {
		return nil, fmt.Errorf("update patient %s: %w", id, repositories.ErrNotFound)
	}
	if req.FiscalCode != nil {
		if err := s.checkFiscalCode(req.FiscalCode, id); err != nil {
			return nil, err
		}
	}

	if req.FirstName != nil {
		p.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		p.LastName = *req.LastName
	}
	if req.BirthDate != nil {
		p.BirthDate = *req.BirthDate
	}
	if req.BirthPlace != nil {
		p.BirthPlace = clonePtr(req.BirthPlace)
	}
	if req.FiscalCode != nil {
		p.FiscalCode = clonePtr(req.FiscalCode)
	}
	if req.Phone != nil {
		p.Phone = clonePtr(req.Phone)
	}
	if req.Mobile != nil {
		p.Mobile = clonePtr(req.Mobile)
	}
	if req.Email != nil {
		p.Email = clonePtr(req.Email)
	}
	if req.Address != nil {
		p.Address = clonePtr(req.Address)
	}
	if req.City != nil {
		p.City = clonePtr(req.City)
	}
	if req.PostalCode != nil {
		p.PostalCode = clonePtr(req.PostalCode)
	}
	if req.Province != nil {
		p.Province = clonePtr(req.Province)
	}
	if req.Country != nil {
		p.Country = clonePtr(req.Country)
	}
	if req.BloodType != nil {
		p.BloodType = clonePtr(req.BloodType)
	}
	if req.Allergies != nil {
		p.Allergies = clonePtr(req.Allergies)
	}
	if req.CurrentMedications != nil {
		p.CurrentMedications = clonePtr(req.CurrentMedications)
	}
	if req.MedicalNotes != nil {
		p.MedicalNotes = clonePtr(req.MedicalNotes)
	}
	if req.FamilyMedicalHistory != nil {
		p.FamilyMedicalHistory = clonePtr(req.FamilyMedicalHistory)
	}
	if req.FirstMenstruationAge != nil {
		p.FirstMenstruationAge = clonePtr(req.FirstMenstruationAge)
	}
	if req.MenstrualCycleDays != nil {
		p.MenstrualCycleDays = clonePtr(req.MenstrualCycleDays)
	}
	if req.LastMenstruationDate != nil {
		p.LastMenstruationDate = clonePtr(req.LastMenstruationDate)
	}
	if req.ContraceptionMethod != nil {
		p.ContraceptionMethod = clonePtr(req.ContraceptionMethod)
	}
	if req.PapTestLastDate != nil {
		p.PapTestLastDate = clonePtr(req.PapTestLastDate)
	}
	if req.MammographyLastDate != nil {
		p.MammographyLastDate = clonePtr(req.MammographyLastDate)
	}
	if req.PrivacyConsent != nil {
		p.PrivacyConsent = *req.PrivacyConsent
	}
	if req.MarketingConsent != nil {
		p.MarketingConsent = *req.MarketingConsent
	}
	p.UpdatedAt = time.Now().UTC()
	return clonePatient(p), nil
}

// DeletePatient removes the patient and, like the persistent store's
// foreign keys, every dependent row, all under one lock.
func (s *Store) DeletePatient(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.patients[id]; !ok {
		return fmt.Errorf("delete patient %s: %w", id, repositories.ErrNotFound)
	}
	delete(s.patients, id)
	for k, d := range s.deliveries {
		if d.PatientID == id {
			delete(s.deliveries, k)
		}
	}
	for k, r := range s.reports {
		if r.PatientID == id {
			delete(s.reports, k)
		}
	}
	for k, i := range s.invoices {
		if i.PatientID == id {
			delete(s.invoices, k)
		}
	}
	for k, a := range s.appointments {
		if a.PatientID == id {
			delete(s.appointments, k)
		}
	}
	for k, a := range s.activities {
		if a.PatientID == id {
			delete(s.activities, k)
		}
	}
	return nil
}

// checkFiscalCode enforces the uniqueness the persistent store gets from
// its index. Caller must hold mu.
func (s *Store) checkFiscalCode(code *string, selfID uuid.UUID) error {
	if code == nil {
		return nil
	}
	for _, existing := range s.patients {
		if existing.ID != selfID && existing.FiscalCode != nil && *existing.FiscalCode == *code {
			return fmt.Errorf("fiscal code %q: %w", *code, repositories.ErrDuplicate)
		}
	}
	return nil
}

func sortPatients(out []*entities.Patient) {
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		return out[i].FirstName < out[j].FirstName
	})
}

func ptr[T any](v T) *T { return &v }
