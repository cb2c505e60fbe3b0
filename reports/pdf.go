// Package reports writes the human-facing artifacts of an allocation run.
package reports

import (
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"wmcgroup/payroll-processor/payroll"
	"wmcgroup/payroll-processor/service"
)

// WriteAllocationPDF renders the run summary to a one-page PDF for the
// monthly close binder.
func WriteAllocationPDF(path string, year int, month int, outcome payroll.Outcome) error {
	header := fmt.Sprintf("Payroll Allocation %s\n\n", service.MonthLabel(year, month))

	var body strings.Builder
	body.WriteString(fmt.Sprintf("Journal entry: %s\n", outcome.DocNumber))
	if outcome.EntryURL != "" {
		body.WriteString(fmt.Sprintf("Review at: %s\n", outcome.EntryURL))
	}
	body.WriteString("\n")

	body.WriteString(fmt.Sprintf("Gross earnings: $%s\n", outcome.Summary.TotalGrossEarnings.StringFixed(2)))
	body.WriteString(fmt.Sprintf("Employer taxes: $%s\n", outcome.Summary.TotalEmployerTaxes.StringFixed(2)))
	body.WriteString("\n")

	for _, storeID := range outcome.Summary.StoresProcessed {
		totals := outcome.Summary.ByStore[storeID]
		body.WriteString(fmt.Sprintf("%-8s gross $%12s   taxes $%12s\n",
			storeID, totals.GrossEarnings.StringFixed(2), totals.EmployerTaxes.StringFixed(2)))
	}

	if len(outcome.Warnings) > 0 {
		body.WriteString("\nWarnings\n")
		body.WriteString("-----------------------\n")
		for _, warning := range outcome.Warnings {
			body.WriteString(warning.Message)
			body.WriteString("\n")
		}
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 14)
	pdf.MultiCell(0, 8, header, "", "", false)
	pdf.SetFont("Courier", "", 10)
	pdf.MultiCell(0, 6, body.String(), "", "", false)

	return pdf.OutputFileAndClose(path)
}
