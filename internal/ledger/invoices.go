package ledger

import (
	"context"
	"fmt"

	"supplier-vendor-api/internal/models"
	"supplier-vendor-api/internal/store"
)

// CreateInvoice appends a PENDING invoice for an existing vendor,
// renders its PDF, and persists the invoice slot. The invoice is not
// saved unless rendering succeeds, so a stored invoice always carries
// its pdf reference.
func (l *Ledger) CreateInvoice(ctx context.Context, vendorID int, amount float64) (models.Invoice, error) {
	if amount <= 0 {
		return models.Invoice{}, validationf("amount must be a positive number")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	vendors, err := l.loadVendors(ctx)
	if err != nil {
		return models.Invoice{}, err
	}
	if !vendorExists(vendors, vendorID) {
		return models.Invoice{}, &NotFoundError{Kind: "vendor", ID: vendorID}
	}

	invoices, err := l.loadInvoices(ctx)
	if err != nil {
		return models.Invoice{}, err
	}
	inv := models.Invoice{
		ID:       store.NextID(invoices),
		VendorID: vendorID,
		Amount:   amount,
		Status:   models.StatusPending,
		Date:     l.now(),
	}

	ref, err := l.pdf.Render(inv)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("render invoice pdf: %w", err)
	}
	inv.PDF = ref

	invoices = append(invoices, inv)
	if err := l.store.Save(ctx, store.KindInvoices, invoices); err != nil {
		return models.Invoice{}, err
	}
	return inv, nil
}

// PayInvoice moves an invoice from PENDING to PAID, appends a payment
// record, recomputes the owning vendor's score from the full history,
// and persists invoices, payments, and vendors, in that order. There is
// no rollback across slots: a failure partway through leaves earlier
// slots committed, and the score self-heals on the next payment event.
//
// Paying an unknown invoice returns NotFoundError and writes nothing.
// Paying a PAID invoice returns ErrAlreadyPaid and writes nothing.
func (l *Ledger) PayInvoice(ctx context.Context, invoiceID int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	invoices, err := l.loadInvoices(ctx)
	if err != nil {
		return err
	}
	idx := -1
	for i := range invoices {
		if invoices[i].ID == invoiceID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return &NotFoundError{Kind: "invoice", ID: invoiceID}
	}
	if invoices[idx].Status == models.StatusPaid {
		return ErrAlreadyPaid
	}
	invoices[idx].Status = models.StatusPaid

	payments, err := l.loadPayments(ctx)
	if err != nil {
		return err
	}
	payments, _ = recordPayment(payments, invoiceID)

	vendors, err := l.loadVendors(ctx)
	if err != nil {
		return err
	}
	vendorID := invoices[idx].VendorID
	if err := updateScore(vendors, vendorID, Score(vendorID, invoices, payments)); err != nil {
		return err
	}

	if err := l.store.Save(ctx, store.KindInvoices, invoices); err != nil {
		return err
	}
	if err := l.store.Save(ctx, store.KindPayments, payments); err != nil {
		return err
	}
	return l.store.Save(ctx, store.KindVendors, vendors)
}
