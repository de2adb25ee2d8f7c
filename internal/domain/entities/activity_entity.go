package entities

import (
	"time"

	"github.com/google/uuid"
)

// Activity is one entry in a patient's timeline. The log is append-only:
// there is no update operation and no UpdatedAt column.
type Activity struct {
	ID           uuid.UUID `json:"id" gorm:"type:text;primaryKey"`
	PatientID    uuid.UUID `json:"patientId" gorm:"type:text;not null;index:idx_activities_patient,priority:1"`
	ActivityType string    `json:"activityType" gorm:"not null"`
	ActivityDate time.Time `json:"activityDate" gorm:"not null;index:idx_activities_patient,priority:2,sort:desc"`
	Description  string    `json:"description" gorm:"not null"`

	// Optional back-reference to the entity that produced the entry,
	// e.g. ReferenceType "appointment" with the appointment id.
	ReferenceID   *uuid.UUID `json:"referenceId,omitempty" gorm:"type:text"`
	ReferenceType *string    `json:"referenceType,omitempty"`
	CreatedBy     *string    `json:"createdBy,omitempty"`

	CreatedAt time.Time `json:"createdAt" gorm:"not null"`
}

func (Activity) TableName() string { return "activities" }
