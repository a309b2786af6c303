package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supplier-vendor-api/internal/models"
)

func TestNextID(t *testing.T) {
	assert.Equal(t, 1, NextID([]models.Vendor{}))

	vendors := []models.Vendor{{ID: 3}, {ID: 1}, {ID: 2}}
	assert.Equal(t, 4, NextID(vendors))
}

func TestNextIDStrictlyIncreasing(t *testing.T) {
	var vendors []models.Vendor
	prev := 0
	for i := 0; i < 5; i++ {
		id := NextID(vendors)
		assert.Greater(t, id, prev)
		vendors = append(vendors, models.Vendor{ID: id})
		prev = id
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	fs := NewFileStore(t.TempDir())
	require.NoError(t, fs.Init())

	in := []models.Vendor{
		{ID: 1, ShopName: "Fresh Farm", Owner: "Amina", Contact: "amina@example.com", Score: 50},
		{ID: 2, ShopName: "Metro Goods", Owner: "Leo", Contact: "leo@example.com"},
	}
	require.NoError(t, fs.Save(ctx, KindVendors, in))

	out := []models.Vendor{}
	require.NoError(t, fs.Load(ctx, KindVendors, &out))
	assert.Equal(t, in, out)
}

func TestFileStoreInitCreatesEmptySlots(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	fs := NewFileStore(dir)
	require.NoError(t, fs.Init())

	for _, kind := range Kinds {
		data, err := os.ReadFile(filepath.Join(dir, kind+".json"))
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	}

	// A second Init must not clobber existing data.
	require.NoError(t, fs.Save(ctx, KindVendors, []models.Vendor{{ID: 1, ShopName: "A", Owner: "B", Contact: "C"}}))
	require.NoError(t, fs.Init())
	out := []models.Vendor{}
	require.NoError(t, fs.Load(ctx, KindVendors, &out))
	assert.Len(t, out, 1)
}

func TestFileStoreMissingSlotLoadsEmpty(t *testing.T) {
	fs := NewFileStore(t.TempDir())

	out := []models.Invoice{}
	require.NoError(t, fs.Load(context.Background(), KindInvoices, &out))
	assert.Empty(t, out)
}

func TestFileStoreCorruptSlotLoadsEmpty(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "payments.json"), []byte("{oops"), 0o644))

	out := []models.Payment{}
	require.NoError(t, fs.Load(context.Background(), KindPayments, &out))
	assert.Empty(t, out)
}

func TestMemStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	ms := NewMemStore()

	in := []models.Payment{{ID: 1, InvoiceID: 7, Status: models.StatusPaid}}
	require.NoError(t, ms.Save(ctx, KindPayments, in))

	out := []models.Payment{}
	require.NoError(t, ms.Load(ctx, KindPayments, &out))
	assert.Equal(t, in, out)
}

func TestMemStoreCorruptSlotLoadsEmpty(t *testing.T) {
	ms := NewMemStore()
	ms.Corrupt(KindVendors)

	out := []models.Vendor{}
	require.NoError(t, ms.Load(context.Background(), KindVendors, &out))
	assert.Empty(t, out)
}
