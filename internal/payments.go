package internal

import (
	"net/http"
	"strconv"
)

func (s *Server) payInvoice(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}
	invoiceID, err := strconv.Atoi(r.PostFormValue("invoice_id"))
	if err != nil {
		http.Error(w, "invoice_id must be an integer", http.StatusBadRequest)
		return
	}

	if err := s.Ledger.PayInvoice(r.Context(), invoiceID); err != nil {
		s.writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Payment successful"})
}
