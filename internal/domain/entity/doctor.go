package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Doctor holds doctor-specific attributes, keyed by the owning user
type Doctor struct {
	UserID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"user_id"`
	Specialization  string          `gorm:"type:varchar(100);not null;default:'General Practitioner';index" json:"specialization"`
	LicenseNumber   string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	ExperienceYears int             `gorm:"not null;default:0" json:"experience_years"`
	Bio             string          `gorm:"type:text" json:"bio,omitempty"`
	ConsultationFee decimal.Decimal `gorm:"type:decimal(10,2);not null;default:500" json:"consultation_fee"`
	IsAvailable     *bool           `gorm:"not null;default:true;index" json:"is_available"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User              User               `gorm:"foreignKey:UserID" json:"user,omitempty"`
	AvailabilitySlots []AvailabilitySlot `gorm:"foreignKey:DoctorID" json:"availability_slots,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// DoctorFilter is a domain-level filter for the patient-facing doctor listing.
// Used by the repository layer to avoid coupling with delivery DTOs.
type DoctorFilter struct {
	Specialization string // ILIKE match
	Name           string // ILIKE match on first/last name
}
