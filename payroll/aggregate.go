package payroll

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"wmcgroup/payroll-processor/models"
)

// AggregateByStore resolves each parsed row to a store via its work postal
// code and accumulates category totals per store. Rows whose postal code has
// no mapping are skipped entirely with a warning; dropped data is preferable
// to crediting the wrong store.
//
// When managerNames is non-nil, a row whose employee name matches the store's
// configured manager (case-insensitive) has its regular wages redirected to
// ManagerRegularEarnings and its overtime plus double overtime summed into
// ManagerOvertimeEarnings. All other categories stay on the shared fields.
// Accumulation is order-independent: any row ordering yields the same totals.
func AggregateByStore(rows []EmployeeRow, managerNames map[string]string) map[string]*models.PayrollData {
	result := make(map[string]*models.PayrollData)
	managerSeen := make(map[string]bool)

	for _, row := range rows {
		storeID, found := models.StoreAddressMap[row.PostalCode]
		if !found {
			log.WithFields(log.Fields{
				"zip_code": row.PostalCode,
			}).Warn("unknown work postal code in payroll export, row skipped")
			continue
		}

		if _, exists := result[storeID]; !exists {
			result[storeID] = &models.PayrollData{}
		}

		data := row.Data
		if name, configured := managerNames[storeID]; configured &&
			row.EmployeeName != "" && strings.EqualFold(row.EmployeeName, name) {
			managerSeen[storeID] = true

			data.ManagerRegularEarnings = data.RegularEarnings
			data.ManagerOvertimeEarnings = data.OvertimeEarnings.Add(data.DoubleOvertimeEarnings)
			data.RegularEarnings = models.Zero()
			data.OvertimeEarnings = models.Zero()
			data.DoubleOvertimeEarnings = models.Zero()
		}

		result[storeID].Add(&data)
	}

	if managerNames != nil {
		for storeID := range result {
			name, configured := managerNames[storeID]
			if !configured {
				log.WithFields(log.Fields{
					"store_id": storeID,
				}).Warn("store has payroll rows but no configured manager")
				continue
			}

			if !managerSeen[storeID] {
				log.WithFields(log.Fields{
					"store_id": storeID,
					"manager":  name,
				}).Warn("configured manager not found in payroll export")
			}
		}
	}

	return result
}
