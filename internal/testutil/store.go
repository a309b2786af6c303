// Package testutil provides ledger and store fixtures for tests.
package testutil

import (
	"errors"
	"fmt"
	"testing"

	"supplier-vendor-api/internal/ledger"
	"supplier-vendor-api/internal/models"
	"supplier-vendor-api/internal/store"
)

// StubRenderer satisfies ledger.PDFRenderer without touching disk.
type StubRenderer struct{}

func (StubRenderer) Render(inv models.Invoice) (string, error) {
	return fmt.Sprintf("invoice_%d.pdf", inv.ID), nil
}

// FailingRenderer always fails, for exercising the render error path.
type FailingRenderer struct{}

func (FailingRenderer) Render(models.Invoice) (string, error) {
	return "", errors.New("render failed")
}

// NewTestLedger returns a ledger over a fresh in-memory store, plus the
// store for direct inspection.
func NewTestLedger(t *testing.T) (*ledger.Ledger, *store.MemStore) {
	t.Helper()
	st := store.NewMemStore()
	return ledger.New(st, StubRenderer{}), st
}
