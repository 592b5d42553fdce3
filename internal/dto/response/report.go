package response

// ScheduleReportResponse carries the rendered document as base64 text.
type ScheduleReportResponse struct {
	Report string `json:"report"`
}
