package wire

import (
	"vaccination-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReport(r chi.Router, reportHandler *adaptor.ReportHandler) {
	// GET /api/reports/schedules - Rendered schedule report, base64-encoded
	r.Get("/api/reports/schedules", reportHandler.GetScheduleReport)
}
