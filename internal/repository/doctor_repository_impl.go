package repository

import (
	"errors"

	"vipclinic-api/internal/domain/entity"
	domainRepo "vipclinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

const insertDoctor = `INSERT INTO doctors (license_number, full_name, phone, specialty) VALUES (?, ?, ?, ?) RETURNING id, full_name, phone`

var errNoRowReturned = errors.New("insert returned no row")

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

// Create issues a single INSERT ... RETURNING so the row is either fully
// written or not written at all. City and created_at come from column defaults.
func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	var inserted entity.Doctor
	result := db.Raw(insertDoctor, doctor.LicenseNumber, doctor.FullName, doctor.Phone, doctor.Specialty).Scan(&inserted)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 || inserted.ID == 0 {
		return errNoRowReturned
	}

	doctor.ID = inserted.ID
	doctor.FullName = inserted.FullName
	doctor.Phone = inserted.Phone
	return nil
}
