package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supplier-vendor-api/internal/models"
)

func TestBuildVendorReport(t *testing.T) {
	vendors := []models.Vendor{
		{ID: 1, ShopName: "Fresh Farm", Owner: "Amina", Contact: "amina@example.com", Score: 50},
		{ID: 2, ShopName: "Metro Goods", Owner: "Leo", Contact: "leo@example.com"},
	}
	invoices := []models.Invoice{
		{ID: 1, VendorID: 1, Status: models.StatusPaid},
		{ID: 2, VendorID: 1, Status: models.StatusPending},
	}
	payments := []models.Payment{
		{ID: 1, InvoiceID: 1, Status: models.StatusPaid},
	}

	f, err := BuildVendorReport(vendors, invoices, payments)
	require.NoError(t, err)
	require.Len(t, f.Sheets, 1)

	sheet := f.Sheets[0]
	assert.Equal(t, SheetName, sheet.Name)

	cell, err := sheet.Cell(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "ID", cell.Value)

	cell, err = sheet.Cell(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "Fresh Farm", cell.Value)

	// Vendor 1: two invoices, one paid, score 50.
	cell, err = sheet.Cell(1, 4)
	require.NoError(t, err)
	assert.Equal(t, "2", cell.Value)
	cell, err = sheet.Cell(1, 5)
	require.NoError(t, err)
	assert.Equal(t, "1", cell.Value)
	cell, err = sheet.Cell(1, 6)
	require.NoError(t, err)
	score, err := cell.Float()
	require.NoError(t, err)
	assert.Equal(t, float64(50), score)

	// Vendor 2: no invoices, score 0.
	cell, err = sheet.Cell(2, 6)
	require.NoError(t, err)
	score, err = cell.Float()
	require.NoError(t, err)
	assert.Equal(t, float64(0), score)
}

func TestWriteVendorReport(t *testing.T) {
	var buf bytes.Buffer
	err := WriteVendorReport(&buf, nil, nil, nil)
	require.NoError(t, err)
	assert.True(t, buf.Len() > 0)
}
