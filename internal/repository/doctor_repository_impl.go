package repository

import (
	"errors"

	"github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/domain/entity"
	domainRepo "github.com/omnalage/Mini-Hospital-Management-System-HMS/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Preload("User").Where("user_id = ?", userID).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

// FindAllAvailable returns doctors with is_available = true, optionally
// filtered by specialization or name. This is the patient-facing listing.
func (r *doctorRepository) FindAllAvailable(db *gorm.DB, filter *entity.DoctorFilter) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	query := db.
		Joins("JOIN users ON users.id = doctors.user_id").
		Where("doctors.is_available = ?", true)

	if filter != nil {
		if filter.Specialization != "" {
			query = query.Where("doctors.specialization ILIKE ?", "%"+filter.Specialization+"%")
		}
		if filter.Name != "" {
			query = query.Where("users.first_name ILIKE ? OR users.last_name ILIKE ?",
				"%"+filter.Name+"%", "%"+filter.Name+"%")
		}
	}

	err := query.
		Preload("User").
		Order("users.first_name ASC, users.last_name ASC").
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Omit("User").Save(doctor).Error
}
