package memstore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"gyneco-record-service/internal/domain/dtos"
	"gyneco-record-service/internal/domain/entities"
	"gyneco-record-service/internal/domain/repositories"
)

func (s *Store) GetReportsByPatient(ctx context.Context, patientID uuid.UUID) ([]*entities.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*entities.Report
	for _, r := range s.reports {
		if r.PatientID == patientID {
			out = append(out, cloneReport(r))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ReportDate.After(out[j].ReportDate)
	})
	return out, nil
}

func (s *Store) GetReportByID(ctx context.Context, id uuid.UUID) (*entities.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reports[id]
	if !ok {
		return nil, nil
	}
	return cloneReport(r), nil
}

func (s *Store) CreateReport(ctx context.Context, req dtos.CreateReportRequest) (*entities.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	number := nextSequentialNumber(s.countReportNumbers(now.Year()), reportNumberPrefix, now.Year())

	report := &entities.Report{
		ID:           uuid.New(),
		PatientID:    req.PatientID,
		StudioID:     req.StudioID,
		ReportDate:   req.ReportDate,
		VisitType:    req.VisitType,
		ReportNumber: number,

		PatientSnapshot: datatypes.NewJSONType(cloneSnapshot(req.PatientSnapshot)),
		Examination:     req.Examination,

		UltrasoundResult: req.UltrasoundResult,
		Therapy:          req.Therapy,
		Attachments:      datatypes.NewJSONSlice(cloneSlice(req.Attachments)),
		InternalNotes:    req.InternalNotes,
		DoctorName:       req.DoctorName,
		DoctorTitle:      req.DoctorTitle,
		CreatedBy:        req.CreatedBy,

		CreatedAt: now,
		UpdatedAt: now,
	}
	s.reports[report.ID] = cloneReport(report)
	return report, nil
}

func (s *Store) UpdateReport(ctx context.Context, id uuid.UUID, req dtos.UpdateReportRequest) (*entities.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reports[id]
	if !ok {
		return nil, fmt.Errorf("update report %s: %w", id, repositories.ErrNotFound)
	}
	if req.ReportDate != nil {
		r.ReportDate = *req.ReportDate
	}
	if req.VisitType != nil {
		r.VisitType = *req.VisitType
	}
	if req.PatientSnapshot != nil {
		r.PatientSnapshot = datatypes.NewJSONType(cloneSnapshot(*req.PatientSnapshot))
	}
	if req.Examination != nil {
		r.Examination = *req.Examination
	}
	if req.UltrasoundResult != nil {
		r.UltrasoundResult = clonePtr(req.UltrasoundResult)
	}
	if req.Therapy != nil {
		r.Therapy = clonePtr(req.Therapy)
	}
	if req.Attachments != nil {
		r.Attachments = datatypes.NewJSONSlice(cloneSlice(req.Attachments))
	}
	if req.InternalNotes != nil {
		r.InternalNotes = clonePtr(req.InternalNotes)
	}
	if req.DoctorName != nil {
		r.DoctorName = clonePtr(req.DoctorName)
	}
	if req.DoctorTitle != nil {
		r.DoctorTitle = clonePtr(req.DoctorTitle)
	}
	if req.Signed != nil {
		r.Signed = *req.Signed
	}
	r.UpdatedAt = time.Now().UTC()
	return cloneReport(r), nil
}

func (s *Store) DeleteReport(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reports[id]; !ok {
		return fmt.Errorf("delete report %s: %w", id, repositories.ErrNotFound)
	}
	delete(s.reports, id)
	return nil
}

func (s *Store) NextReportNumber(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	year := time.Now().Year()
	return nextSequentialNumber(s.countReportNumbers(year), reportNumberPrefix, year), nil
}

func (s *Store) countReportNumbers(year int) int {
	prefix := fmt.Sprintf("%s-%d-", reportNumberPrefix, year)
	count := 0
	for _, r := range s.reports {
		if strings.HasPrefix(r.ReportNumber, prefix) {
			count++
		}
	}
	return count
}
