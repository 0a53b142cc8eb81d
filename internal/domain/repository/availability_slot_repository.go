package repository

import (
	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AvailabilitySlotRepository interface {
	Create(db *gorm.DB, slot *entity.AvailabilitySlot) error
	FindByID(db *gorm.DB, id int) (*entity.AvailabilitySlot, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.AvailabilitySlot, error)
	FindActiveByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.AvailabilitySlot, error)
	Update(db *gorm.DB, slot *entity.AvailabilitySlot) error
	Delete(db *gorm.DB, id int) (int64, error)
}
