package converter

import (
	"vipclinic-api/internal/delivery/dto"
	"vipclinic-api/internal/domain/entity"
)

// RegisterRequestToDoctor builds the insert command from a validated request.
func RegisterRequestToDoctor(req *dto.RegisterDoctorRequest) *entity.Doctor {
	specialty := req.Specialty
	if specialty == "" {
		specialty = entity.DefaultSpecialty
	}

	return &entity.Doctor{
		LicenseNumber: req.LicenseNumber,
		FullName:      req.FullName,
		Phone:         req.Phone,
		Specialty:     specialty,
	}
}

// DoctorToSummary exposes only the public fields of a stored doctor.
func DoctorToSummary(doctor *entity.Doctor) *dto.DoctorSummary {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorSummary{
		ID:       doctor.ID,
		FullName: doctor.FullName,
		Phone:    doctor.Phone,
	}
}
