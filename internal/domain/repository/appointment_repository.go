package repository

import (
	"time"

	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindScheduledSlot(db *gorm.DB, doctorID uuid.UUID, date time.Time, startTime string) (*entity.Appointment, error)
	CancelAppointment(db *gorm.DB, id uuid.UUID) (int64, error)
	HasAppointmentBetween(db *gorm.DB, doctorID, patientID uuid.UUID) (bool, error)
	DistinctPatientIDs(db *gorm.DB, doctorID uuid.UUID) ([]uuid.UUID, error)
}
