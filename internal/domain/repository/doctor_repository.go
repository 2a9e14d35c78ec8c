package repository

import (
	"vipclinic-api/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	// Create inserts the doctor and fills in the generated ID.
	Create(db *gorm.DB, doctor *entity.Doctor) error
}
