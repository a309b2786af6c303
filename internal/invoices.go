package internal

import (
	"net/http"
	"strconv"
)

type createInvoiceRequest struct {
	VendorID int
	Amount   float64
}

func parseCreateInvoiceRequest(r *http.Request) (createInvoiceRequest, string) {
	var in createInvoiceRequest
	if err := r.ParseForm(); err != nil {
		return in, "invalid form data"
	}
	vendorID, err := strconv.Atoi(r.PostFormValue("vendor_id"))
	if err != nil {
		return in, "vendor_id must be an integer"
	}
	amount, err := strconv.ParseFloat(r.PostFormValue("amount"), 64)
	if err != nil {
		return in, "amount must be a number"
	}
	in.VendorID = vendorID
	in.Amount = amount
	return in, ""
}

func (s *Server) createInvoice(w http.ResponseWriter, r *http.Request) {
	in, badField := parseCreateInvoiceRequest(r)
	if badField != "" {
		http.Error(w, badField, http.StatusBadRequest)
		return
	}

	inv, err := s.Ledger.CreateInvoice(r.Context(), in.VendorID, in.Amount)
	if err != nil {
		s.writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, inv)
}
