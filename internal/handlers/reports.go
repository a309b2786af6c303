package handlers

import (
	"net/http"

	"supplier-vendor-api/internal/ledger"
	"supplier-vendor-api/pkg/report"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportsHandler serves spreadsheet exports built from a ledger
// snapshot.
type ReportsHandler struct {
	Ledger *ledger.Ledger
}

func NewReportsHandler(led *ledger.Ledger) *ReportsHandler {
	return &ReportsHandler{Ledger: led}
}

// DownloadVendorReport streams the vendor score workbook as an xlsx
// attachment.
func (h *ReportsHandler) DownloadVendorReport(w http.ResponseWriter, r *http.Request) {
	vendors, invoices, payments, err := h.Ledger.Snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="vendors.xlsx"`)
	// Headers are already written at this point; a failed write just
	// truncates the download.
	_ = report.WriteVendorReport(w, vendors, invoices, payments)
}
