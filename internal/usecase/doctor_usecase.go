package usecase

import (
	"context"
	"errors"

	"vipclinic-api/internal/converter"
	"vipclinic-api/internal/delivery/dto"
	"vipclinic-api/internal/delivery/http/middleware"
	"vipclinic-api/internal/domain/repository"
	"vipclinic-api/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrMissingDoctorFields = errors.New("license number, full name, and phone are required")
	ErrDoctorAlreadyExists = errors.New("doctor with this license or phone already exists")
)

// InfrastructureError wraps a store failure that is neither a validation
// nor a uniqueness problem. Message is the driver's own text.
type InfrastructureError struct {
	Message string
	Err     error
}

func (e *InfrastructureError) Error() string {
	return e.Message
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

type DoctorUsecase interface {
	RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.DoctorSummary, error)
}

type doctorUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
) DoctorUsecase {
	return &doctorUsecase{
		db:         db,
		log:        log,
		doctorRepo: doctorRepo,
	}
}

func (u *doctorUsecase) RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.DoctorSummary, error) {
	if req == nil || req.LicenseNumber == "" || req.FullName == "" || req.Phone == "" {
		return nil, ErrMissingDoctorFields
	}

	requestID, _ := middleware.GetRequestIDFromContext(ctx)
	log := u.log.WithFields(logrus.Fields{
		"request_id":     requestID,
		"license_number": req.LicenseNumber,
	})

	doctor := converter.RegisterRequestToDoctor(req)
	if err := u.doctorRepo.Create(u.db.WithContext(ctx), doctor); err != nil {
		if database.IsUniqueViolation(err) {
			log.Warnf("Failed to register doctor: %+v", err)
			return nil, ErrDoctorAlreadyExists
		}
		log.Errorf("Registration error: %+v", err)
		return nil, &InfrastructureError{Message: database.ErrorMessage(err), Err: err}
	}

	log.WithField("doctor_id", doctor.ID).Info("Doctor registered")

	return converter.DoctorToSummary(doctor), nil
}
