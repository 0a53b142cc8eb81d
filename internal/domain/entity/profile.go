package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role classifies a user and drives every authorization decision
type Role string

const (
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// IsValid reports whether the role is one of the known classifications
func (r Role) IsValid() bool {
	return r == RoleDoctor || r == RolePatient
}

// Profile holds the role and contact info for a user (exactly one per user).
// Created at signup, or lazily on first login with a patient default.
type Profile struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Role        Role      `gorm:"type:varchar(20);not null;index" json:"role"`
	PhoneNumber string    `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Profile) TableName() string {
	return "profiles"
}
