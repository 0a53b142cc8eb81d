package entity

import (
	"time"

	"github.com/google/uuid"
)

// MedicalReport is a document authored by a doctor for a patient. DoctorID
// is nullable so reports survive an authoring account being detached.
// Visibility is scoped by the doctor-patient appointment relationship.
type MedicalReport struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID      *uuid.UUID `gorm:"type:uuid;index" json:"doctor_id,omitempty"`
	PatientID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	Title         string     `gorm:"type:varchar(255);not null" json:"title"`
	Content       string     `gorm:"type:text" json:"content,omitempty"`
	AttachmentURL string     `gorm:"type:text" json:"attachment_url,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor  *Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient User    `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (MedicalReport) TableName() string {
	return "medical_reports"
}
