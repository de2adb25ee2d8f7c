package memstore

import (
	"gorm.io/datatypes"

	"gyneco-record-service/internal/domain/entities"
)

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

func clonePatient(p *entities.Patient) *entities.Patient {
	c := *p
	c.BirthPlace = clonePtr(p.BirthPlace)
	c.FiscalCode = clonePtr(p.FiscalCode)
	c.Phone = clonePtr(p.Phone)
	c.Mobile = clonePtr(p.Mobile)
	c.Email = clonePtr(p.Email)
	c.Address = clonePtr(p.Address)
	c.City = clonePtr(p.City)
	c.PostalCode = clonePtr(p.PostalCode)
	c.Province = clonePtr(p.Province)
	c.Country = clonePtr(p.Country)
	c.BloodType = clonePtr(p.BloodType)
	c.Allergies = clonePtr(p.Allergies)
	c.CurrentMedications = clonePtr(p.CurrentMedications)
	c.MedicalNotes = clonePtr(p.MedicalNotes)
	c.FamilyMedicalHistory = clonePtr(p.FamilyMedicalHistory)
	c.FirstMenstruationAge = clonePtr(p.FirstMenstruationAge)
	c.MenstrualCycleDays = clonePtr(p.MenstrualCycleDays)
	c.LastMenstruationDate = clonePtr(p.LastMenstruationDate)
	c.ContraceptionMethod = clonePtr(p.ContraceptionMethod)
	c.PapTestLastDate = clonePtr(p.PapTestLastDate)
	c.MammographyLastDate = clonePtr(p.MammographyLastDate)
	c.Deliveries = nil
	c.Reports = nil
	c.Invoices = nil
	c.Appointments = nil
	c.Activities = nil
	return &c
}

func cloneDelivery(d *entities.Delivery) *entities.Delivery {
	c := *d
	c.PregnancyWeeks = clonePtr(d.PregnancyWeeks)
	c.BabyWeight = clonePtr(d.BabyWeight)
	c.BabyGender = clonePtr(d.BabyGender)
	c.Complications = clonePtr(d.Complications)
	c.Notes = clonePtr(d.Notes)
	return &c
}

func cloneSnapshot(s entities.PatientSnapshot) entities.PatientSnapshot {
	c := s
	c.FiscalCode = clonePtr(s.FiscalCode)
	c.Address = clonePtr(s.Address)
	c.Phone = clonePtr(s.Phone)
	c.BloodType = clonePtr(s.BloodType)
	c.Allergies = clonePtr(s.Allergies)
	c.CurrentMedications = clonePtr(s.CurrentMedications)
	c.LastMenstruationDate = clonePtr(s.LastMenstruationDate)
	c.Deliveries = cloneSlice(s.Deliveries)
	return c
}

func cloneReport(r *entities.Report) *entities.Report {
	c := *r
	c.PatientSnapshot = datatypes.NewJSONType(cloneSnapshot(r.PatientSnapshot.Data()))
	c.UltrasoundResult = clonePtr(r.UltrasoundResult)
	c.Therapy = clonePtr(r.Therapy)
	c.Attachments = cloneSlice(r.Attachments)
	c.InternalNotes = clonePtr(r.InternalNotes)
	c.DoctorName = clonePtr(r.DoctorName)
	c.DoctorTitle = clonePtr(r.DoctorTitle)
	c.CreatedBy = clonePtr(r.CreatedBy)
	return &c
}

func cloneInvoice(i *entities.Invoice) *entities.Invoice {
	c := *i
	c.DueDate = clonePtr(i.DueDate)
	c.VatRate = clonePtr(i.VatRate)
	c.VatAmount = clonePtr(i.VatAmount)
	c.PaymentMethod = clonePtr(i.PaymentMethod)
	c.PaymentDate = clonePtr(i.PaymentDate)
	c.Notes = clonePtr(i.Notes)
	c.Items = cloneSlice(i.Items)
	return &c
}

func cloneAppointment(a *entities.Appointment) *entities.Appointment {
	c := *a
	c.AppointmentType = clonePtr(a.AppointmentType)
	c.Notes = clonePtr(a.Notes)
	c.CreatedBy = clonePtr(a.CreatedBy)
	return &c
}

func cloneActivity(a *entities.Activity) *entities.Activity {
	c := *a
	c.ReferenceID = clonePtr(a.ReferenceID)
	c.ReferenceType = clonePtr(a.ReferenceType)
	c.CreatedBy = clonePtr(a.CreatedBy)
	return &c
}
