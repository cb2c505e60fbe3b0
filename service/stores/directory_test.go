package stores_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"wmcgroup/payroll-processor/service/stores"
)

const configJSON = `{
	"WMC":   {"name": "Central Office", "open_date": "2015-01-01", "close_date": null},
	"20358": {"name": "Santa Rosa Ave", "open_date": "2015-01-01", "close_date": null, "manager": "Melissa Martin"},
	"20400": {"name": "Hopper Ave", "open_date": "2024-01-31", "close_date": null},
	"20999": {"name": "Closed Store", "open_date": "2015-01-01", "close_date": "2023-06-30"}
}`

func TestActiveStoresRespectsOpenAndCloseDates(t *testing.T) {
	config := stores.Parse([]byte(configJSON))

	active := config.ActiveStores(time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, []string{"20358", "20400", "WMC"}, active)

	before := config.ActiveStores(time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, []string{"20358", "20999", "WMC"}, before)
}

func TestIsStoreActiveEdges(t *testing.T) {
	config := stores.Parse([]byte(configJSON))

	openDate := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	assert.True(t, config.IsStoreActive("20400", openDate))
	assert.False(t, config.IsStoreActive("20400", openDate.AddDate(0, 0, -1)))

	closeDate := time.Date(2023, time.June, 30, 0, 0, 0, 0, time.UTC)
	assert.True(t, config.IsStoreActive("20999", closeDate))
	assert.False(t, config.IsStoreActive("20999", closeDate.AddDate(0, 0, 1)))

	assert.False(t, config.IsStoreActive("unknown", openDate))
}

func TestManagerNames(t *testing.T) {
	config := stores.Parse([]byte(configJSON))

	names := config.ManagerNames()
	assert.Equal(t, map[string]string{"20358": "Melissa Martin"}, names)
}

func TestParseFallsBackOnBadInput(t *testing.T) {
	config := stores.Parse([]byte("not json"))

	assert.NotEmpty(t, config.AllStores())
	assert.Equal(t, "Central Office", config.StoreName("WMC"))
}

func TestStoreName(t *testing.T) {
	config := stores.Parse([]byte(configJSON))

	assert.Equal(t, "Santa Rosa Ave", config.StoreName("20358"))
	assert.Equal(t, "", config.StoreName("missing"))
}
