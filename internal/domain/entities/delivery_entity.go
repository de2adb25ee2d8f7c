package entities

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryType classifies how a delivery took place.
type DeliveryType string

const (
	DeliveryNatural  DeliveryType = "natural"
	DeliveryCesarean DeliveryType = "cesarean"
	DeliveryAssisted DeliveryType = "assisted"
)

// BabyGender is the recorded sex of the newborn.
type BabyGender string

const (
	BabyMale   BabyGender = "male"
	BabyFemale BabyGender = "female"
)

// Delivery records a birth in the patient's obstetric history.
type Delivery struct {
	ID           uuid.UUID    `json:"id" gorm:"type:text;primaryKey"`
	PatientID    uuid.UUID    `json:"patientId" gorm:"type:text;not null;index:idx_deliveries_patient,priority:1"`
	StudioID     string       `json:"studioId" gorm:"not null"`
	DeliveryDate time.Time    `json:"deliveryDate" gorm:"not null;index:idx_deliveries_patient,priority:2,sort:desc"`
	DeliveryType DeliveryType `json:"deliveryType" gorm:"not null"`

	PregnancyWeeks *int        `json:"pregnancyWeeks,omitempty"`
	BabyWeight     *float64    `json:"babyWeight,omitempty"`
	BabyGender     *BabyGender `json:"babyGender,omitempty"`
	Complications  *string     `json:"complications,omitempty"`
	Notes          *string     `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt" gorm:"not null"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"not null"`
}

func (Delivery) TableName() string { return "deliveries" }
