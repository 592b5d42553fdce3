package adaptor

import (
	"net/http"
	"strconv"

	"vaccination-booking/internal/dto/request"
	"vaccination-booking/internal/usecase"
	"vaccination-booking/pkg/utils"

	"go.uber.org/zap"
)

type ReportHandler struct {
	service usecase.ReportService
	log     *zap.Logger
}

func NewReportHandler(service usecase.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log.With(zap.String("handler", "report")),
	}
}

// GetScheduleReport handles GET /api/reports/schedules. All query parameters
// are optional; absent parameters mean no filter on that field.
func (h *ReportHandler) GetScheduleReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.ScheduleReportRequest{
		FromDate:   optionalString(query.Get("from_date")),
		ToDate:     optionalString(query.Get("to_date")),
		BranchCode: optionalString(query.Get("branch_code")),
	}

	var err error
	if req.Applied, err = optionalBool(query.Get("applied")); err != nil {
		utils.ResponseBadRequest(w, "applied must be true or false", nil)
		return
	}
	if req.Confirmed, err = optionalBool(query.Get("confirmed")); err != nil {
		utils.ResponseBadRequest(w, "confirmed must be true or false", nil)
		return
	}

	reportResp, err := h.service.GetScheduleReport(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "build schedule report")
		return
	}

	utils.ResponseSuccess(w, "success", reportResp)
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func optionalBool(value string) (*bool, error) {
	if value == "" {
		return nil, nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
