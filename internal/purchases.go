package internal

import (
	"net/http"
	"strconv"
)

type addPurchaseRequest struct {
	VendorID int
	Item     string
	Amount   float64
}

func parseAddPurchaseRequest(r *http.Request) (addPurchaseRequest, string) {
	var in addPurchaseRequest
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
	in.Item = r.PostFormValue("item")
	in.Amount = amount
	return in, ""
}

func (s *Server) addPurchase(w http.ResponseWriter, r *http.Request) {
	in, badField := parseAddPurchaseRequest(r)
	if badField != "" {
		http.Error(w, badField, http.StatusBadRequest)
		return
	}

	p, err := s.Ledger.AddPurchase(r.Context(), in.VendorID, in.Item, in.Amount)
	if err != nil {
		s.writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}
