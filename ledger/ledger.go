// Package ledger defines the surface of the external accounting system that
// the allocation pipeline posts journal entries to. The real client lives
// outside this repository; everything here is the contract it must satisfy.
package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type PostingType string

const (
	Debit  PostingType = "Debit"
	Credit PostingType = "Credit"
)

// Ref points at an account or department in the ledger. Value is the
// ledger-internal ID, Name the display name.
type Ref struct {
	Value string
	Name  string
}

// Line is a single posting on a journal entry. A nil DepartmentRef means the
// NOT SPECIFIED department, which holds the pooled labor expense awaiting
// allocation.
type Line struct {
	Amount        decimal.Decimal
	Description   string
	PostingType   PostingType
	AccountRef    Ref
	DepartmentRef *Ref
}

// JournalEntry mirrors the ledger's journal entry object. Lines is ordered
// and fully replaced on update, never appended to.
type JournalEntry struct {
	ID          string
	DocNumber   string
	TxnDate     time.Time
	PrivateNote string
	Lines       []Line
}

// Client is the external ledger connection.
type Client interface {
	// FindEntryByDocNumber returns the entry with the given document number,
	// or nil when none exists.
	FindEntryByDocNumber(docNumber string) (*JournalEntry, error)

	// AccountRef resolves an account number (AcctNum, not internal ID) to a
	// reference usable on a line.
	AccountRef(accountNum string) (Ref, error)

	// DepartmentRef resolves a store ID to its department reference.
	DepartmentRef(storeID string) (Ref, error)

	// Save creates or updates the entry, populating entry.ID on create.
	Save(entry *JournalEntry) error
}

// EntryURL builds the human-followable review link for a saved entry.
func EntryURL(entryID string) string {
	return fmt.Sprintf("https://app.qbo.intuit.com/app/journal?txnId=%s", entryID)
}
