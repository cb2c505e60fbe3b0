package ledger

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// DryRunClient satisfies Client without touching the real ledger. Entries are
// held in memory keyed by document number, so update and conflict paths behave
// like production. The CLI uses it when no ledger connection is configured.
type DryRunClient struct {
	entries map[string]*JournalEntry
	nextID  int
}

func NewDryRunClient() *DryRunClient {
	return &DryRunClient{
		entries: make(map[string]*JournalEntry),
		nextID:  1,
	}
}

func (c *DryRunClient) FindEntryByDocNumber(docNumber string) (*JournalEntry, error) {
	return c.entries[docNumber], nil
}

func (c *DryRunClient) AccountRef(accountNum string) (Ref, error) {
	return Ref{Value: accountNum, Name: fmt.Sprintf("Account %s", accountNum)}, nil
}

func (c *DryRunClient) DepartmentRef(storeID string) (Ref, error) {
	return Ref{Value: storeID, Name: storeID}, nil
}

func (c *DryRunClient) Save(entry *JournalEntry) error {
	if entry.ID == "" {
		entry.ID = fmt.Sprintf("dryrun-%d", c.nextID)
		c.nextID++
	}

	c.entries[entry.DocNumber] = entry

	log.WithFields(log.Fields{
		"doc_number": entry.DocNumber,
		"line_count": len(entry.Lines),
	}).Info("dry run: journal entry not posted to ledger")

	return nil
}
