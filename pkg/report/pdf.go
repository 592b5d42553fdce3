package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PDFGenerator renders the schedule report as a single-table PDF document.
type PDFGenerator struct{}

func NewPDFGenerator() *PDFGenerator {
	return &PDFGenerator{}
}

func (g *PDFGenerator) Render(templateID string, data *ScheduleData) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(templateID, false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Vaccination Schedule Report")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	if data.FromDate != "" || data.ToDate != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Period: %s - %s", data.FromDate, data.ToDate))
		pdf.Ln(8)
	}

	headers := []string{"Code", "Date", "Time Slot", "Branch", "Vaccine", "Customer", "Confirmed", "Applied"}
	widths := []float64{70, 24, 28, 35, 35, 45, 20, 20}

	pdf.SetFont("Arial", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, row := range data.Schedules {
		cells := []string{
			row.ScheduleCode,
			row.ScheduleDate,
			row.TimeSlot,
			row.BranchName,
			row.VaccineName,
			row.CustomerName,
			yesNo(row.Confirmed),
			yesNo(row.Applied),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render schedule report: %w", err)
	}

	return buf.Bytes(), nil
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
