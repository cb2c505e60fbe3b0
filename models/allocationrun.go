package models

import (
	"time"

	"github.com/google/uuid"
)

// AllocationRun records one attempt at the monthly payroll allocation, so the
// run history survives across invocations and failed months are visible.
type AllocationRun struct {
	ID                 string `gorm:"primaryKey"`
	DocNumber          string `gorm:"index"`
	Year               int
	Month              int
	Status             string
	EntryURL           string
	TotalGrossEarnings string
	TotalEmployerTaxes string
	WarningCount       int
	CreatedAt          time.Time
}

func NewAllocationRun(docNumber string, year int, month int, status string) *AllocationRun {
	return &AllocationRun{
		ID:        uuid.NewString(),
		DocNumber: docNumber,
		Year:      year,
		Month:     month,
		Status:    status,
	}
}
