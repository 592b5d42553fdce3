package report

// ScheduleRow is one schedule entry as it appears in the rendered report.
type ScheduleRow struct {
	ScheduleCode string
	ScheduleDate string
	TimeSlot     string
	BranchName   string
	VaccineName  string
	CustomerName string
	Confirmed    bool
	Applied      bool
}

// ScheduleData is the model handed to the renderer. FromDate/ToDate are
// pre-formatted date strings, empty when the bound is absent.
type ScheduleData struct {
	FromDate  string
	ToDate    string
	Schedules []ScheduleRow
}

// Generator is the document-renderer boundary. The returned bytes are opaque
// to the service; it never interprets the document's internal format.
type Generator interface {
	Render(templateID string, data *ScheduleData) ([]byte, error)
}
