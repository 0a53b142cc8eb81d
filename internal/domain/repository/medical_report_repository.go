package repository

import (
	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicalReportRepository interface {
	Create(db *gorm.DB, report *entity.MedicalReport) error
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.MedicalReport, error)
	FindByPatientIDs(db *gorm.DB, patientIDs []uuid.UUID) ([]entity.MedicalReport, error)
}
