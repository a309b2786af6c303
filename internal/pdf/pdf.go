// Package pdf renders invoice documents. Its only contract with the
// ledger is: given an invoice, write a document and return the filename
// to store as the invoice's pdf reference.
package pdf

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"supplier-vendor-api/internal/models"
)

// Renderer writes invoice PDFs named invoice_<id>.pdf into Dir.
type Renderer struct {
	Dir string
}

func NewRenderer(dir string) *Renderer {
	return &Renderer{Dir: dir}
}

func (r *Renderer) Render(inv models.Invoice) (string, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetFont("Arial", "B", 16)
	doc.Cell(40, 10, "Invoice")
	doc.Ln(14)
	doc.SetFont("Arial", "", 12)
	doc.Cell(40, 8, "Invoice ID: "+strconv.Itoa(inv.ID))
	doc.Ln(8)
	doc.Cell(40, 8, "Vendor ID: "+strconv.Itoa(inv.VendorID))
	doc.Ln(8)
	doc.Cell(40, 8, "Amount: "+strconv.FormatFloat(inv.Amount, 'f', 2, 64))
	doc.Ln(8)
	doc.Cell(40, 8, "Status: "+inv.Status)
	doc.Ln(8)
	doc.Cell(40, 8, "Date: "+inv.Date.Format(time.RFC3339))

	filename := fmt.Sprintf("invoice_%d.pdf", inv.ID)
	if err := doc.OutputFileAndClose(filepath.Join(r.Dir, filename)); err != nil {
		return "", fmt.Errorf("write %s: %w", filename, err)
	}
	return filename, nil
}
