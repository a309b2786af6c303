package store

import "context"

// Slot names. Each slot is an independent JSON array of records; there
// are no transactions across slots, so callers sequence multi-slot
// updates themselves.
const (
	KindVendors   = "vendors"
	KindPurchases = "purchases"
	KindInvoices  = "invoices"
	KindPayments  = "payments"
)

// Kinds lists every slot the service owns, in creation order.
var Kinds = []string{KindVendors, KindPurchases, KindInvoices, KindPayments}

// Store loads and saves whole slots. Load decodes the slot into out (a
// pointer to a slice of records) and leaves out untouched when the slot
// is absent or unreadable — a corrupt slot is indistinguishable from an
// empty one. Save overwrites the slot with no partial-write visibility.
type Store interface {
	Load(ctx context.Context, kind string, out any) error
	Save(ctx context.Context, kind string, in any) error
}

// Record is anything with an integer primary key.
type Record interface {
	RecordID() int
}

// NextID returns max(existing ids)+1, or 1 for an empty slot. IDs are
// unique and strictly increasing within a slot for as long as records
// are only appended.
func NextID[T Record](records []T) int {
	max := 0
	for _, r := range records {
		if id := r.RecordID(); id > max {
			max = id
		}
	}
	return max + 1
}
