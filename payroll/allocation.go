package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"wmcgroup/payroll-processor/ledger"
	"wmcgroup/payroll-processor/models"
	"wmcgroup/payroll-processor/service"
	"wmcgroup/payroll-processor/service/stores"
)

type Status string

const (
	StatusSuccess  Status = "success"
	StatusConflict Status = "conflict"
	StatusNoData   Status = "no_data"
)

const warningReimbursements = "reimbursements_flagged"

// Warning is a non-fatal condition surfaced on a completed run for a human
// to follow up on.
type Warning struct {
	Type    string
	Message string
	Amount  string
}

// StoreTotals is the per-store slice of the run summary.
type StoreTotals struct {
	GrossEarnings decimal.Decimal
	EmployerTaxes decimal.Decimal
}

type Summary struct {
	StoresProcessed    []string
	TotalGrossEarnings decimal.Decimal
	TotalEmployerTaxes decimal.Decimal
	ByStore            map[string]StoreTotals
}

// Outcome is the result of one allocation run. Status distinguishes the
// expected terminal conditions; errors are reserved for ledger I/O failures.
type Outcome struct {
	Status    Status
	DocNumber string
	EntryID   string
	EntryURL  string
	Summary   Summary
	Warnings  []Warning
}

// Allocator runs the monthly payroll allocation against an external ledger
// and store directory. It holds no mutable state across runs; Process calls
// for different months may run concurrently. Two concurrent calls for the
// same month race on the existing-entry lookup, so the caller must serialize
// same-month requests.
type Allocator struct {
	Ledger ledger.Client
	Stores stores.Directory

	// Now stamps the provenance note; overridable in tests.
	Now func() time.Time
}

func NewAllocator(client ledger.Client, directory stores.Directory) *Allocator {
	return &Allocator{
		Ledger: client,
		Stores: directory,
		Now:    time.Now,
	}
}

// DocNumber is the deterministic document number for a target month.
func DocNumber(year int, month int) string {
	return fmt.Sprintf("labor-%d-%02d", year, month)
}

// Process parses the export, checks for an existing entry, builds the
// balanced line set, and saves the journal entry dated to the last day of
// the month. Re-running with allowUpdate and identical input converges on an
// identical line set; existing lines are replaced, never appended to.
func (a *Allocator) Process(year int, month int, content []byte, allowUpdate bool) (Outcome, error) {
	docNumber := DocNumber(year, month)

	log.WithFields(log.Fields{
		"doc_number":   docNumber,
		"allow_update": allowUpdate,
	}).Info("starting payroll allocation")

	rows := ParseLocationExport(content)
	payrollByStore := AggregateByStore(rows, a.Stores.ManagerNames())

	if len(payrollByStore) == 0 {
		log.WithField("doc_number", docNumber).Warn("no payroll data found in export")
		return Outcome{Status: StatusNoData, DocNumber: docNumber}, nil
	}

	existing, err := a.Ledger.FindEntryByDocNumber(docNumber)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to look up journal entry %s: %w", docNumber, err)
	}

	var entry *ledger.JournalEntry
	if existing != nil {
		if !allowUpdate {
			log.WithFields(log.Fields{
				"doc_number": docNumber,
				"entry_id":   existing.ID,
			}).Warn("journal entry already exists")

			return Outcome{
				Status:    StatusConflict,
				DocNumber: docNumber,
				EntryID:   existing.ID,
				EntryURL:  ledger.EntryURL(existing.ID),
			}, nil
		}

		entry = existing
		entry.Lines = nil
		log.WithFields(log.Fields{
			"doc_number": docNumber,
			"entry_id":   existing.ID,
		}).Info("updating existing journal entry")
	} else {
		entry = &ledger.JournalEntry{DocNumber: docNumber}
	}

	entry.TxnDate = service.LastDayOfMonth(year, month)
	entry.PrivateNote = fmt.Sprintf(
		"Generated from Total By Location export on %s",
		a.Now().Format("2006-01-02 15:04:05"),
	)

	storeOrder := a.storeOrder(payrollByStore, entry.TxnDate)
	refs := ledger.NewRefCache(a.Ledger)

	var lines []ledger.Line
	for _, category := range allocationCategories {
		var amounts map[string]decimal.Decimal
		if category.name == "officer_wages" {
			amounts = officerWageAmounts(payrollByStore)
		} else {
			amounts = make(map[string]decimal.Decimal, len(payrollByStore))
			for storeID, data := range payrollByStore {
				amounts[storeID] = category.amount(data)
			}
		}

		opts := lineOptions{skipCredit: category.skipCredit}

		if category.managerAmount != nil {
			// The pooled credit must also cover the manager-account debits
			// emitted for this wage type further down the entry.
			total := decimal.Zero
			for _, amount := range amounts {
				total = total.Add(amount)
			}
			for _, data := range payrollByStore {
				total = total.Add(category.managerAmount(data))
			}
			opts.creditTotal = &total
		}

		lines, err = appendAccountLines(lines, refs, category.account, amounts, storeOrder, opts)
		if err != nil {
			return Outcome{}, err
		}
	}

	entry.Lines = lines

	warnings := flagReimbursements(payrollByStore)

	if err := a.Ledger.Save(entry); err != nil {
		log.WithFields(log.Fields{
			"doc_number": docNumber,
			"year":       year,
			"month":      month,
		}).Errorf("failed to save journal entry: %v", err)
		return Outcome{}, fmt.Errorf("failed to save journal entry %s: %w", docNumber, err)
	}

	log.WithFields(log.Fields{
		"doc_number": docNumber,
		"entry_id":   entry.ID,
		"line_count": len(entry.Lines),
	}).Info("saved journal entry")

	return Outcome{
		Status:    StatusSuccess,
		DocNumber: docNumber,
		EntryID:   entry.ID,
		EntryURL:  ledger.EntryURL(entry.ID),
		Summary:   buildSummary(payrollByStore, storeOrder),
		Warnings:  warnings,
	}, nil
}

// storeOrder returns the debit-line ordering: the union of stores active on
// the entry date and stores that actually have payroll, in canonical order.
// Including both sides keeps every credited amount matched by a debit even
// when a store closed mid-year.
func (a *Allocator) storeOrder(payrollByStore map[string]*models.PayrollData, txnDate time.Time) []string {
	ids := a.Stores.ActiveStores(txnDate)
	for storeID := range payrollByStore {
		ids = append(ids, storeID)
	}
	return models.OrderStores(ids)
}

// officerWageAmounts prefers direct officer-wage figures from the export.
// When no store carries one, it falls back to the central office pool's gross
// earnings less life insurance, emitted only if positive.
func officerWageAmounts(payrollByStore map[string]*models.PayrollData) map[string]decimal.Decimal {
	amounts := make(map[string]decimal.Decimal, len(payrollByStore))
	total := decimal.Zero
	for storeID, data := range payrollByStore {
		amounts[storeID] = data.OfficerWages
		total = total.Add(data.OfficerWages)
	}

	if !total.IsZero() {
		return amounts
	}

	central, found := payrollByStore[models.CentralOffice]
	if !found {
		return amounts
	}

	calculated := central.GrossEarnings.Sub(central.LifeInsurance)
	if calculated.IsPositive() {
		return map[string]decimal.Decimal{models.CentralOffice: calculated}
	}

	return amounts
}

// flagReimbursements records a warning when the export carries reimbursements.
// They require manual account assignment and are never auto-allocated.
func flagReimbursements(payrollByStore map[string]*models.PayrollData) []Warning {
	total := decimal.Zero
	for _, data := range payrollByStore {
		total = total.Add(data.Reimbursements)
	}

	if !total.IsPositive() {
		return nil
	}

	amount := total.StringFixed(2)
	return []Warning{{
		Type: warningReimbursements,
		Message: fmt.Sprintf(
			"Account %s has $%s in reimbursements requiring manual allocation",
			acctTravelReimbursement, amount,
		),
		Amount: amount,
	}}
}

func buildSummary(payrollByStore map[string]*models.PayrollData, storeOrder []string) Summary {
	summary := Summary{
		TotalGrossEarnings: models.Zero(),
		TotalEmployerTaxes: models.Zero(),
		ByStore:            make(map[string]StoreTotals, len(payrollByStore)),
	}

	for _, storeID := range storeOrder {
		data, found := payrollByStore[storeID]
		if !found {
			continue
		}

		summary.StoresProcessed = append(summary.StoresProcessed, storeID)
		summary.TotalGrossEarnings = summary.TotalGrossEarnings.Add(data.GrossEarnings)
		summary.TotalEmployerTaxes = summary.TotalEmployerTaxes.Add(data.EmployerTaxes)
		summary.ByStore[storeID] = StoreTotals{
			GrossEarnings: data.GrossEarnings,
			EmployerTaxes: data.EmployerTaxes,
		}
	}

	return summary
}
