package ledger

import (
	"math"

	"supplier-vendor-api/internal/models"
)

// Score returns the percentage of a vendor's invoices that have at
// least one PAID payment, rounded to two decimals. A vendor with no
// invoices scores 0.
//
// The score is recomputed from the full invoice and payment history on
// every payment event rather than kept incrementally. That keeps it
// consistent with whatever is currently in storage regardless of how it
// got there, at O(invoices x payments) cost per recomputation.
func Score(vendorID int, invoices []models.Invoice, payments []models.Payment) float64 {
	total, paid := 0, 0
	for _, inv := range invoices {
		if inv.VendorID != vendorID {
			continue
		}
		total++
		for _, p := range payments {
			if p.InvoiceID == inv.ID && p.Status == models.StatusPaid {
				paid++
				break
			}
		}
	}
	if total == 0 {
		return 0
	}
	return math.Round(float64(paid)/float64(total)*100*100) / 100
}
