package adaptor

import (
	"encoding/json"
	"net/http"

	"vaccination-booking/internal/dto/request"
	"vaccination-booking/internal/usecase"
	"vaccination-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ScheduleHandler struct {
	service usecase.SchedulingService
	log     *zap.Logger
}

func NewScheduleHandler(service usecase.SchedulingService, log *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		service: service,
		log:     log.With(zap.String("handler", "schedule")),
	}
}

// ScheduleVaccination handles POST /api/schedules
func (h *ScheduleHandler) ScheduleVaccination(w http.ResponseWriter, r *http.Request) {
	var req request.ScheduleVaccinationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	schedule, err := h.service.ScheduleVaccination(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "schedule vaccination")
		return
	}

	utils.ResponseCreated(w, "success", schedule)
}

// GetSchedule handles GET /api/schedules/{scheduleCode}
func (h *ScheduleHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	scheduleCode := chi.URLParam(r, "scheduleCode")
	if scheduleCode == "" {
		utils.ResponseBadRequest(w, "Schedule code is required", nil)
		return
	}

	schedule, err := h.service.GetScheduleByCode(r.Context(), scheduleCode)
	if err != nil {
		handleServiceError(w, h.log, err, "get schedule")
		return
	}

	utils.ResponseSuccess(w, "success", schedule)
}

// ConfirmSchedule handles PUT /api/schedules/{scheduleCode}/confirm
func (h *ScheduleHandler) ConfirmSchedule(w http.ResponseWriter, r *http.Request) {
	scheduleCode := chi.URLParam(r, "scheduleCode")
	if scheduleCode == "" {
		utils.ResponseBadRequest(w, "Schedule code is required", nil)
		return
	}

	if err := h.service.ConfirmSchedule(r.Context(), scheduleCode); err != nil {
		handleServiceError(w, h.log, err, "confirm schedule")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// MarkApplied handles PUT /api/schedules/{scheduleCode}/applied
func (h *ScheduleHandler) MarkApplied(w http.ResponseWriter, r *http.Request) {
	scheduleCode := chi.URLParam(r, "scheduleCode")
	if scheduleCode == "" {
		utils.ResponseBadRequest(w, "Schedule code is required", nil)
		return
	}

	if err := h.service.MarkApplied(r.Context(), scheduleCode); err != nil {
		handleServiceError(w, h.log, err, "mark schedule applied")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
