package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"wmcgroup/payroll-processor/service"
)

func TestLastDayOfMonth(t *testing.T) {
	assert.Equal(t, time.Date(2025, time.July, 31, 0, 0, 0, 0, time.UTC), service.LastDayOfMonth(2025, 7))
	assert.Equal(t, time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), service.LastDayOfMonth(2025, 2))
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), service.LastDayOfMonth(2024, 2))
	assert.Equal(t, time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), service.LastDayOfMonth(2025, 12))
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "2025-07", service.MonthLabel(2025, 7))
	assert.Equal(t, "2025-11", service.MonthLabel(2025, 11))
}
