package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"vipclinic-api/internal/delivery/dto"
	"vipclinic-api/internal/usecase"
	"vipclinic-api/pkg/response"
	"vipclinic-api/pkg/validator"
)

const (
	maxRequestBodyBytes = 100 << 10

	msgMissingFields    = "License number, full name, and phone are required"
	msgDoctorExists     = "Doctor with this license or phone already exists"
	msgRegistered       = "Doctor registered successfully"
	msgRegistrationFail = "Registration failed"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) RegisterDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterDoctorRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(w, http.StatusRequestEntityTooLarge, "Request body too large", nil)
			return
		}
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	// An empty body is treated as an empty payload and fails validation below.
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, msgMissingFields, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.RegisterDoctor(r.Context(), &req)
	if err != nil {
		var infraErr *usecase.InfrastructureError
		switch {
		case errors.Is(err, usecase.ErrMissingDoctorFields):
			response.ValidationError(w, msgMissingFields, nil)
		case errors.Is(err, usecase.ErrDoctorAlreadyExists):
			response.Conflict(w, msgDoctorExists)
		case errors.As(err, &infraErr):
			response.InternalServerError(w, msgRegistrationFail, infraErr.Message)
		default:
			response.InternalServerError(w, msgRegistrationFail, err.Error())
		}
		return
	}

	response.JSON(w, http.StatusOK, dto.RegisterDoctorResponse{
		Success: true,
		Message: msgRegistered,
		Doctor:  doctor,
	})
}
