package request

// ScheduleReportRequest filters the report query. Nil fields mean no filter
// on that field. Dates are YYYY-MM-DD strings.
type ScheduleReportRequest struct {
	FromDate   *string `json:"from_date" validate:"omitempty,datetime=2006-01-02"`
	ToDate     *string `json:"to_date" validate:"omitempty,datetime=2006-01-02"`
	BranchCode *string `json:"branch_code"`
	Applied    *bool   `json:"applied"`
	Confirmed  *bool   `json:"confirmed"`
}
