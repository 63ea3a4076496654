package analytics

import (
	"bytes"
	"fmt"

	"github.com/peopleworks/hrms-backend-go/internal/domain/analytics"
	"github.com/jung-kurt/gofpdf"
)

func renderCompliancePDF(report analytics.ComplianceReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "HR Compliance Report")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Generated %s", report.GeneratedAt.Format("2006-01-02 15:04")))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	for _, line := range []string{
		fmt.Sprintf("Incomplete profiles: %d", report.Totals.IncompleteProfiles),
		fmt.Sprintf("Expired contracts: %d", report.Totals.ExpiredContracts),
		fmt.Sprintf("Missing manager: %d", report.Totals.MissingManager),
		fmt.Sprintf("Missing department: %d", report.Totals.MissingDepartment),
	} {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	renderSection(pdf, "Incomplete Profiles", report.IncompleteProfiles)
	renderSection(pdf, "Expired Contracts", report.ExpiredContracts)
	renderSection(pdf, "Missing Manager", report.MissingManager)
	renderSection(pdf, "Missing Department", report.MissingDepartment)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render compliance report: %w", err)
	}
	return buf.Bytes(), nil
}

func renderSection(pdf *gofpdf.Fpdf, title string, items []analytics.ComplianceItem) {
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	if len(items) == 0 {
		pdf.Cell(0, 6, "None")
		pdf.Ln(10)
		return
	}

	for _, item := range items {
		line := item.EmployeeName
		if item.Detail != nil {
			line += " (" + *item.Detail + ")"
		}
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)
}
