package models

// CentralOffice is the sentinel store ID for the corporate office. Payroll
// that cannot be traced to a restaurant lands here, and the officer-wage
// fallback draws from it.
const CentralOffice = "WMC"

// StoreAddressMap maps a work-location postal code to a store ID. Every
// postal code seen in an export must either resolve here or be skipped with
// a logged warning; rows are never merged into another store's totals.
var StoreAddressMap = map[string]string{
	"94954": "20395",       // Petaluma - 201 S McDowell Blvd
	"95407": "20358",       // Santa Rosa Ave - 2688 Santa Rosa Ave
	"95403": "20400",       // Hopper Ave - 919 Hopper Ave
	"94931": "20407",       // Cotati - 640 E Cotati Ave
	"94928": CentralOffice, // Rohnert Park - corporate office
}

// StoreOrder is the canonical department ordering for journal entry lines.
// Entries must keep this order across months so they diff cleanly.
var StoreOrder = []string{CentralOffice, "20358", "20395", "20400", "20407"}

// OrderStores returns the given store IDs arranged in canonical order.
// IDs outside StoreOrder are dropped.
func OrderStores(storeIDs []string) []string {
	members := make(map[string]struct{}, len(storeIDs))
	for _, id := range storeIDs {
		members[id] = struct{}{}
	}

	var ordered []string
	for _, id := range StoreOrder {
		if _, found := members[id]; found {
			ordered = append(ordered, id)
		}
	}

	return ordered
}
