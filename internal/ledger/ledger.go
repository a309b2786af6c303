// Package ledger holds the record-keeping core: vendor CRUD, the
// invoice PENDING→PAID lifecycle, the append-only payment log, and the
// derived vendor reliability score. All state lives in the slot store;
// the ledger is the only writer.
package ledger

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"supplier-vendor-api/internal/models"
	"supplier-vendor-api/internal/store"
)

// PDFRenderer is the rendering collaborator. Given an invoice it
// produces a document and returns the filename stored as the invoice's
// pdf reference.
type PDFRenderer interface {
	Render(inv models.Invoice) (string, error)
}

// Ledger serializes every operation through a single mutex: the store
// has no locking of its own, so at most one mutating request may touch
// the slots at a time.
type Ledger struct {
	mu    sync.Mutex
	store store.Store
	pdf   PDFRenderer
	now   func() time.Time
}

func New(st store.Store, pdf PDFRenderer) *Ledger {
	return &Ledger{store: st, pdf: pdf, now: time.Now}
}

// CreateVendor appends a new vendor with the next id and a zero score.
// The score is derived and never client-settable.
func (l *Ledger) CreateVendor(ctx context.Context, shopName, owner, contact string) (models.Vendor, error) {
	if strings.TrimSpace(shopName) == "" {
		return models.Vendor{}, validationf("shop_name is required")
	}
	if strings.TrimSpace(owner) == "" {
		return models.Vendor{}, validationf("owner is required")
	}
	if strings.TrimSpace(contact) == "" {
		return models.Vendor{}, validationf("contact is required")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	vendors, err := l.loadVendors(ctx)
	if err != nil {
		return models.Vendor{}, err
	}
	v := models.Vendor{
		ID:       store.NextID(vendors),
		ShopName: strings.TrimSpace(shopName),
		Owner:    strings.TrimSpace(owner),
		Contact:  strings.TrimSpace(contact),
		Score:    0,
	}
	vendors = append(vendors, v)
	if err := l.store.Save(ctx, store.KindVendors, vendors); err != nil {
		return models.Vendor{}, err
	}
	return v, nil
}

// Vendors returns all vendors with their current scores.
func (l *Ledger) Vendors(ctx context.Context) ([]models.Vendor, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadVendors(ctx)
}

// AddPurchase appends an informational purchase record for an existing
// vendor.
func (l *Ledger) AddPurchase(ctx context.Context, vendorID int, item string, amount float64) (models.Purchase, error) {
	if strings.TrimSpace(item) == "" {
		return models.Purchase{}, validationf("item is required")
	}
	if amount <= 0 {
		return models.Purchase{}, validationf("amount must be a positive number")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	vendors, err := l.loadVendors(ctx)
	if err != nil {
		return models.Purchase{}, err
	}
	if !vendorExists(vendors, vendorID) {
		return models.Purchase{}, &NotFoundError{Kind: "vendor", ID: vendorID}
	}

	var purchases []models.Purchase
	if err := l.store.Load(ctx, store.KindPurchases, &purchases); err != nil {
		return models.Purchase{}, err
	}
	p := models.Purchase{
		ID:       store.NextID(purchases),
		VendorID: vendorID,
		Item:     strings.TrimSpace(item),
		Amount:   amount,
	}
	purchases = append(purchases, p)
	if err := l.store.Save(ctx, store.KindPurchases, purchases); err != nil {
		return models.Purchase{}, err
	}
	return p, nil
}

// Snapshot returns a consistent read of the vendor, invoice, and
// payment slots, for reporting.
func (l *Ledger) Snapshot(ctx context.Context) ([]models.Vendor, []models.Invoice, []models.Payment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	vendors, err := l.loadVendors(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	invoices, err := l.loadInvoices(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	payments, err := l.loadPayments(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	return vendors, invoices, payments, nil
}

func (l *Ledger) loadVendors(ctx context.Context) ([]models.Vendor, error) {
	vendors := []models.Vendor{}
	if err := l.store.Load(ctx, store.KindVendors, &vendors); err != nil {
		return nil, fmt.Errorf("load vendors: %w", err)
	}
	return vendors, nil
}

func (l *Ledger) loadInvoices(ctx context.Context) ([]models.Invoice, error) {
	invoices := []models.Invoice{}
	if err := l.store.Load(ctx, store.KindInvoices, &invoices); err != nil {
		return nil, fmt.Errorf("load invoices: %w", err)
	}
	return invoices, nil
}

func (l *Ledger) loadPayments(ctx context.Context) ([]models.Payment, error) {
	payments := []models.Payment{}
	if err := l.store.Load(ctx, store.KindPayments, &payments); err != nil {
		return nil, fmt.Errorf("load payments: %w", err)
	}
	return payments, nil
}

func vendorExists(vendors []models.Vendor, id int) bool {
	for _, v := range vendors {
		if v.ID == id {
			return true
		}
	}
	return false
}

// updateScore overwrites a vendor's score in place. Unknown vendors are
// an error, not a silent no-op.
func updateScore(vendors []models.Vendor, vendorID int, score float64) error {
	for i := range vendors {
		if vendors[i].ID == vendorID {
			vendors[i].Score = score
			return nil
		}
	}
	return &NotFoundError{Kind: "vendor", ID: vendorID}
}
