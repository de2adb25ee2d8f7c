package gormstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gyneco-record-service/internal/domain/dtos"
	"gyneco-record-service/internal/domain/entities"
	"gyneco-record-service/internal/domain/repositories"
)

// PatientRepository implements repositories.PatientRepositoryContract.
type PatientRepository struct {
	store *Store
}

var _ repositories.PatientRepositoryContract = (*PatientRepository)(nil)

func NewPatientRepository(store *Store) *PatientRepository {
	return &PatientRepository{store: store}
}

func (r *PatientRepository) Search(ctx context.Context, query string) ([]*entities.Patient, error) {
	db, err := r.store.ensureReady()
	if err != nil {
		return nil, err
	}
	term := "%" + strings.ToLower(query) + "%"
	var patients []*entities.Patient
	err = db.WithContext(ctx).
		Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(fiscal_code) LIKE ?", term, term, term).
		Order("last_name, first_name").
		Find(&patients).Error
	if err != nil {
		return nil, wrap("search patients", err)
	}
	return patients, nil
}

func (r *PatientRepository) ListAll(ctx context.Context) ([]*entities.Patient, error) {
	db, err := r.store.ensureReady()
	if err != nil {
		return nil, err
	}
	var patients []*entities.Patient
	if err := db.WithContext(ctx).Order("last_name, first_name").Find(&patients).Error; err != nil {
		return nil, wrap("list patients", err)
	}
	return patients, nil
}

func (r *PatientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Patient, error) {
	db, err := r.store.ensureReady()
	if err != nil {
		return nil, err
	}
	var patient entities.Patient
	err = db.WithContext(ctx).First(&patient, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("get patient", err)
	}
	return &patient, nil
}

func (r *PatientRepository) Create(ctx context.Context, req dtos.CreatePatientRequest) (*entities.Patient, error) {
	db, err := r.store.ensureReady()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	patient := entities.Patient{
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
		Country:    req.Country,

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
	if err := db.WithContext(ctx).Create(&patient).Error; err != nil {
		return nil, wrap("create patient", err)
	}
	return r.reload(ctx, db, patient.ID)
}

func (r *PatientRepository) Update(ctx context.Context, id uuid.UUID, req dtos.UpdatePatientRequest) (*entities.Patient, error) {
	db, err := r.store.ensureReady()
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.BirthDate != nil {
		updates["birth_date"] = *req.BirthDate
	}
	if req.BirthPlace != nil {
		updates["birth_place"] = *req.BirthPlace
	}
	if req.FiscalCode != nil {
		updates["fiscal_code"] = *req.FiscalCode
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Mobile != nil {
		updates["mobile"] = *req.Mobile
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.PostalCode != nil {
		updates["postal_code"] = *req.PostalCode
	}
	if req.Province != nil {
		updates["province"] = *req.Province
	}
	if req.Country != nil {
		updates["country"] = *req.Country
	}
	if req.BloodType != nil {
		updates["blood_type"] = *req.BloodType
	}
	if req.Allergies != nil {
		updates["allergies"] = *req.Allergies
	}
	if req.CurrentMedications != nil {
		updates["current_medications"] = *req.CurrentMedications
	}
	if req.MedicalNotes != nil {
		updates["medical_notes"] = *req.MedicalNotes
	}
	if req.FamilyMedicalHistory != nil {
		updates["family_medical_history"] = *req.FamilyMedicalHistory
	}
	if req.FirstMenstruationAge != nil {
		updates["first_menstruation_age"] = *req.FirstMenstruationAge
	}
	if req.MenstrualCycleDays != nil {
		updates["menstrual_cycle_days"] = *req.MenstrualCycleDays
	}
	if req.LastMenstruationDate != nil {
		updates["last_menstruation_date"] = *req.LastMenstruationDate
	}
	if req.ContraceptionMethod != nil {
		updates["contraception_method"] = *req.ContraceptionMethod
	}
	if req.PapTestLastDate != nil {
		updates["pap_test_last_date"] = *req.PapTestLastDate
	}
	if req.MammographyLastDate != nil {
		updates["mammography_last_date"] = *req.MammographyLastDate
	}
	if req.PrivacyConsent != nil {
		updates["privacy_consent"] = *req.PrivacyConsent
	}
	if req.MarketingConsent != nil {
		updates["marketing_consent"] = *req.MarketingConsent
	}
	updates["updated_at"] = time.Now().UTC()

	res := db.WithContext(ctx).Model(&entities.Patient{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, wrap("update patient", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("update patient %s: %w", id, repositories.ErrNotFound)
	}
	return r.reload(ctx, db, id)
}

func (r *PatientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db, err := r.store.ensureReady()
	if err != nil {
		return err
	}
	res := db.WithContext(ctx).Delete(&entities.Patient{}, "id = ?", id)
	if res.Error != nil {
		return wrap("delete patient", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete patient %s: %w", id, repositories.ErrNotFound)
	}
	return nil
}

// reload re-reads the row after a write so callers get exactly what the
// store holds, defaults included, rather than an echo of the input.
func (r *PatientRepository) reload(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entities.Patient, error) {
	var patient entities.Patient
	if err := db.WithContext(ctx).First(&patient, "id = ?", id).Error; err != nil {
		return nil, wrap("reload patient", err)
	}
	return &patient, nil
}
