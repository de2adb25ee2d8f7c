package gormstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gyneco-record-service/internal/domain/dtos"
	"gyneco-record-service/internal/domain/entities"
	"gyneco-record-service/internal/domain/repositories"
)

// ReportRepository implements repositories.ReportRepositoryContract.
type ReportRepository struct {
	store *Store
}

var _ repositories.ReportRepositoryContract = (*ReportRepository)(nil)

func NewReportRepository(store *Store) *ReportRepository {
	return &ReportRepository{store: store}
}

func (r *ReportRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*entities.Report, error) {
	db, err := r.store.ensureReady()
	if err != nil {
		return nil, err
	}
	var reports []*entities.Report
	err = db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("report_date DESC").
		Find(&reports).Error
	if err != nil {
		return nil, wrap("list reports", err)
	}
	return reports, nil
}

func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Report, error) {
	db, err := r.store.ensureReady()
	if err != nil {
		return nil, err
	}
	var report entities.Report
	err = db.WithContext(ctx).First(&report, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("get report", err)
	}
	return &report, nil
}

// Create assigns the report number inside the insert transaction, so a
// numbering failure leaves no half-written row and concurrent creates can
// never observe the same count.
func (r *ReportRepository) Create(ctx context.Context, req dtos.CreateReportRequest) (*entities.Report, error) {
	db, err := r.store.ensureReady()
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	report := entities.Report{
		ID:         uuid.New(),
		PatientID:  req.PatientID,
		StudioID:   req.StudioID,
		ReportDate: req.ReportDate,
		VisitType:  req.VisitType,

		PatientSnapshot: datatypes.NewJSONType(req.PatientSnapshot),
		Examination:     req.Examination,

		UltrasoundResult: req.UltrasoundResult,
		Therapy:          req.Therapy,
		Attachments:      datatypes.NewJSONSlice(req.Attachments),
		InternalNotes:    req.InternalNotes,
		DoctorName:       req.DoctorName,
		DoctorTitle:      req.DoctorTitle,
		CreatedBy:        req.CreatedBy,

		CreatedAt: now,
		UpdatedAt: now,
	}
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		year := now.Year()
		if err := r.store.lockSequence(tx, reportNumberPrefix, year); err != nil {
			return err
		}
		number, err := nextSequentialNumber(tx, entities.Report{}.TableName(), "report_number", reportNumberPrefix, year)
		if err != nil {
			return err
		}
		report.ReportNumber = number
		return tx.Create(&report).Error
	})
	if err != nil {
		return nil, wrap("create report", err)
	}
	return r.reload(ctx, db, report.ID)
}

func (r *ReportRepository) Update(ctx context.Context, id uuid.UUID, req dtos.UpdateReportRequest) (*entities.Report, error) {
	db, err := r.store.ensureReady()
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.ReportDate != nil {
		updates["report_date"] = *req.ReportDate
	}
	if req.VisitType != nil {
		updates["visit_type"] = *req.VisitType
	}
	if req.PatientSnapshot != nil {
		updates["patient_snapshot"] = datatypes.NewJSONType(*req.PatientSnapshot)
	}
	if req.Examination != nil {
		updates["examination"] = *req.Examination
	}
	if req.UltrasoundResult != nil {
		updates["ultrasound_result"] = *req.UltrasoundResult
	}
	if req.Therapy != nil {
		updates["therapy"] = *req.Therapy
	}
	if req.Attachments != nil {
		updates["attachments"] = datatypes.NewJSONSlice(req.Attachments)
	}
	if req.InternalNotes != nil {
		updates["internal_notes"] = *req.InternalNotes
	}
	if req.DoctorName != nil {
		updates["doctor_name"] = *req.DoctorName
	}
	if req.DoctorTitle != nil {
		updates["doctor_title"] = *req.DoctorTitle
	}
	if req.Signed != nil {
		updates["signed"] = *req.Signed
	}
	updates["updated_at"] = time.Now().UTC()

	res := db.WithContext(ctx).Model(&entities.Report{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, wrap("update report", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("update report %s: %w", id, repositories.ErrNotFound)
	}
	return r.reload(ctx, db, id)
}

func (r *ReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db, err := r.store.ensureReady()
	if err != nil {
		return err
	}
	res := db.WithContext(ctx).Delete(&entities.Report{}, "id = ?", id)
	if res.Error != nil {
		return wrap("delete report", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete report %s: %w", id, repositories.ErrNotFound)
	}
	return nil
}

func (r *ReportRepository) NextNumber(ctx context.Context) (string, error) {
	db, err := r.store.ensureReady()
	if err != nil {
		return "", err
	}
	number, err := nextSequentialNumber(db.WithContext(ctx), entities.Report{}.TableName(), "report_number", reportNumberPrefix, time.Now().Year())
	if err != nil {
		return "", wrap("next report number", err)
	}
	return number, nil
}

func (r *ReportRepository) reload(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entities.Report, error) {
	var report entities.Report
	if err := db.WithContext(ctx).First(&report, "id = ?", id).Error; err != nil {
		return nil, wrap("reload report", err)
	}
	return &report, nil
}
