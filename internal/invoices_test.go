package internal

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supplier-vendor-api/internal/models"
)

func createVendorForTest(t *testing.T, s *Server) models.Vendor {
	t.Helper()
	w := postForm(t, s, "/vendor/create", url.Values{
		"shop_name": {"Fresh Farm"},
		"owner":     {"Amina"},
		"contact":   {"amina@example.com"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var v models.Vendor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestCreateInvoiceEndpoint(t *testing.T) {
	s := newTestServer(t)
	v := createVendorForTest(t, s)

	w := postForm(t, s, "/invoice/create", url.Values{
		"vendor_id": {"1"},
		"amount":    {"100"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var inv models.Invoice
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inv))
	assert.Equal(t, 1, inv.ID)
	assert.Equal(t, v.ID, inv.VendorID)
	assert.Equal(t, models.StatusPending, inv.Status)
	assert.Equal(t, "invoice_1.pdf", inv.PDF)
	assert.False(t, inv.Date.IsZero())
}

func TestCreateInvoiceBadInput(t *testing.T) {
	s := newTestServer(t)
	createVendorForTest(t, s)

	// Non-integer vendor id.
	w := postForm(t, s, "/invoice/create", url.Values{
		"vendor_id": {"abc"},
		"amount":    {"100"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Non-numeric amount.
	w = postForm(t, s, "/invoice/create", url.Values{
		"vendor_id": {"1"},
		"amount":    {"lots"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Non-positive amount.
	w = postForm(t, s, "/invoice/create", url.Values{
		"vendor_id": {"1"},
		"amount":    {"-10"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateInvoiceUnknownVendor(t *testing.T) {
	s := newTestServer(t)

	w := postForm(t, s, "/invoice/create", url.Values{
		"vendor_id": {"42"},
		"amount":    {"100"},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddPurchaseEndpoint(t *testing.T) {
	s := newTestServer(t)
	v := createVendorForTest(t, s)

	w := postForm(t, s, "/purchase/add", url.Values{
		"vendor_id": {"1"},
		"item":      {"Rice 25kg"},
		"amount":    {"42.5"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var p models.Purchase
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, 1, p.ID)
	assert.Equal(t, v.ID, p.VendorID)
	assert.Equal(t, 42.5, p.Amount)
}
