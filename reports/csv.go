package reports

import (
	"os"

	"github.com/gocarina/gocsv"

	"wmcgroup/payroll-processor/payroll"
)

// SummaryRow is one store's slice of the run, as exported to the close
// spreadsheet import.
type SummaryRow struct {
	DocNumber     string `csv:"doc_number"`
	Store         string `csv:"store"`
	GrossEarnings string `csv:"gross_earnings"`
	EmployerTaxes string `csv:"employer_taxes"`
}

type SummaryRows []SummaryRow

func (rows SummaryRows) ToCSV(file *os.File) error {
	return gocsv.MarshalFile(rows, file)
}

// BuildSummaryRows flattens a success outcome to per-store CSV rows in the
// outcome's store order.
func BuildSummaryRows(outcome payroll.Outcome) SummaryRows {
	var rows SummaryRows
	for _, storeID := range outcome.Summary.StoresProcessed {
		totals := outcome.Summary.ByStore[storeID]
		rows = append(rows, SummaryRow{
			DocNumber:     outcome.DocNumber,
			Store:         storeID,
			GrossEarnings: totals.GrossEarnings.StringFixed(2),
			EmployerTaxes: totals.EmployerTaxes.StringFixed(2),
		})
	}

	return rows
}
