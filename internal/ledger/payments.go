package ledger

import (
	"supplier-vendor-api/internal/models"
	"supplier-vendor-api/internal/store"
)

// recordPayment appends a PAID payment for the invoice and returns the
// grown slice with the new record. Pure append: prior payments are
// never edited or removed. PayInvoice is the sole caller and guards the
// at-most-one-payment-per-invoice invariant via the status transition.
func recordPayment(payments []models.Payment, invoiceID int) ([]models.Payment, models.Payment) {
	p := models.Payment{
		ID:        store.NextID(payments),
		InvoiceID: invoiceID,
		Status:    models.StatusPaid,
	}
	return append(payments, p), p
}
