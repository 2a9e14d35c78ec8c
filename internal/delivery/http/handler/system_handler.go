package handler

import (
	"net/http"

	"vipclinic-api/internal/usecase"
	"vipclinic-api/pkg/response"
)

// SystemHandler serves the service status endpoints.
type SystemHandler struct {
	healthUsecase usecase.HealthUsecase
}

func NewSystemHandler(healthUsecase usecase.HealthUsecase) *SystemHandler {
	return &SystemHandler{
		healthUsecase: healthUsecase,
	}
}

func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.healthUsecase.Root(r.Context()))
}

// Health always answers 200; an unreachable database shows up in the body.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.healthUsecase.Check(r.Context()))
}
