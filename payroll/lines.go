package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"

	"wmcgroup/payroll-processor/ledger"
)

// lineOptions tunes appendAccountLines for the manager split. creditTotal
// overrides the pooled credit amount when the category's credit must also
// cover debits emitted on a separate account; skipCredit suppresses the
// credit line entirely for those separate accounts.
type lineOptions struct {
	skipCredit  bool
	creditTotal *decimal.Decimal
}

// appendAccountLines appends the posting lines for a single account: one
// credit against the NOT SPECIFIED department for the category total, then
// one debit per store in the given order. Stores with a zero amount still get
// a debit line so the entry's shape stays comparable month over month.
// Categories whose total is zero produce no lines at all. Every amount is
// quantized to two places before it reaches a line; the debits always sum to
// the credit (or to the supplied override total).
func appendAccountLines(
	lines []ledger.Line,
	refs *ledger.RefCache,
	accountNum string,
	storeAmounts map[string]decimal.Decimal,
	storeOrder []string,
	opts lineOptions,
) ([]ledger.Line, error) {
	total := decimal.Zero
	if opts.creditTotal != nil {
		total = *opts.creditTotal
	} else {
		for _, amount := range storeAmounts {
			total = total.Add(amount)
		}
	}

	if total.IsZero() {
		return lines, nil
	}

	accountRef, err := refs.AccountRef(accountNum)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve account %s: %w", accountNum, err)
	}

	if !opts.skipCredit {
		lines = append(lines, ledger.Line{
			Amount:        total.Round(2),
			PostingType:   ledger.Credit,
			AccountRef:    accountRef,
			DepartmentRef: nil, // NOT SPECIFIED
		})
	}

	for _, storeID := range storeOrder {
		departmentRef, err := refs.DepartmentRef(storeID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve department %s: %w", storeID, err)
		}

		ref := departmentRef
		lines = append(lines, ledger.Line{
			Amount:        storeAmounts[storeID].Round(2),
			PostingType:   ledger.Debit,
			AccountRef:    accountRef,
			DepartmentRef: &ref,
		})
	}

	return lines, nil
}
