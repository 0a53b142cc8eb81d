package repository

import (
	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/domain/entity"
	domainRepo "github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type medicalReportRepository struct{}

func NewMedicalReportRepository() domainRepo.MedicalReportRepository {
	return &medicalReportRepository{}
}

func (r *medicalReportRepository) Create(db *gorm.DB, report *entity.MedicalReport) error {
	return db.Create(report).Error
}

func (r *medicalReportRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.MedicalReport, error) {
	var reports []entity.MedicalReport
	err := db.Preload("Doctor.User").Preload("Patient").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *medicalReportRepository) FindByPatientIDs(db *gorm.DB, patientIDs []uuid.UUID) ([]entity.MedicalReport, error) {
	if len(patientIDs) == 0 {
		return []entity.MedicalReport{}, nil
	}
	var reports []entity.MedicalReport
	err := db.Preload("Doctor.User").Preload("Patient").
		Where("patient_id IN ?", patientIDs).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}
