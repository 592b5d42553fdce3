package adaptor

import (
	"net/http"

	"vaccination-booking/internal/usecase"
	"vaccination-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// GetBranches handles GET /api/branches
func (h *CatalogHandler) GetBranches(w http.ResponseWriter, r *http.Request) {
	branches, err := h.service.GetBranches(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get branches")
		return
	}

	utils.ResponseSuccess(w, "success", branches)
}

// GetVaccinesByBranch handles GET /api/branches/{branchCode}/vaccines
func (h *CatalogHandler) GetVaccinesByBranch(w http.ResponseWriter, r *http.Request) {
	branchCode := chi.URLParam(r, "branchCode")
	if branchCode == "" {
		utils.ResponseBadRequest(w, "Branch code is required", nil)
		return
	}

	vaccines, err := h.service.GetVaccinesByBranchCode(r.Context(), branchCode)
	if err != nil {
		handleServiceError(w, h.log, err, "get vaccines by branch")
		return
	}

	utils.ResponseSuccess(w, "success", vaccines)
}

// GetPaymentMethods handles GET /api/payment-methods
func (h *CatalogHandler) GetPaymentMethods(w http.ResponseWriter, r *http.Request) {
	paymentMethods, err := h.service.GetPaymentMethods(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get payment methods")
		return
	}

	utils.ResponseSuccess(w, "success", paymentMethods)
}

// GetAvailableTimeSlots handles GET /api/timeslots/available?branch_code=&date=
func (h *CatalogHandler) GetAvailableTimeSlots(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	branchCode := query.Get("branch_code")
	if branchCode == "" {
		utils.ResponseBadRequest(w, "branch_code is required", nil)
		return
	}

	date, err := utils.ParseDate(query.Get("date"))
	if err != nil {
		utils.ResponseBadRequest(w, "date must be in YYYY-MM-DD format", nil)
		return
	}

	timeSlots, err := h.service.GetAvailableTimeSlots(r.Context(), branchCode, date)
	if err != nil {
		handleServiceError(w, h.log, err, "get available time slots")
		return
	}

	utils.ResponseSuccess(w, "success", timeSlots)
}
