// Package report builds the vendor score workbook: one row per vendor
// with its invoice totals and the reliability score recomputed from the
// same history the ledger scores against.
package report

import (
	"fmt"
	"io"

	"github.com/tealeg/xlsx/v3"

	"supplier-vendor-api/internal/ledger"
	"supplier-vendor-api/internal/models"
)

// SheetName is the single worksheet holding the vendor rows.
const SheetName = "Vendors"

var header = []string{"ID", "Shop Name", "Owner", "Contact", "Invoices", "Paid Invoices", "Score"}

// BuildVendorReport renders vendors with their invoice counts and
// scores into a workbook.
func BuildVendorReport(vendors []models.Vendor, invoices []models.Invoice, payments []models.Payment) (*xlsx.File, error) {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(SheetName)
	if err != nil {
		return nil, fmt.Errorf("add sheet: %w", err)
	}

	row := sheet.AddRow()
	for _, h := range header {
		row.AddCell().SetString(h)
	}

	for _, v := range vendors {
		total, paid := invoiceCounts(v.ID, invoices, payments)
		row := sheet.AddRow()
		row.AddCell().SetInt(v.ID)
		row.AddCell().SetString(v.ShopName)
		row.AddCell().SetString(v.Owner)
		row.AddCell().SetString(v.Contact)
		row.AddCell().SetInt(total)
		row.AddCell().SetInt(paid)
		row.AddCell().SetFloat(ledger.Score(v.ID, invoices, payments))
	}

	return f, nil
}

// WriteVendorReport builds the workbook and streams it to w.
func WriteVendorReport(w io.Writer, vendors []models.Vendor, invoices []models.Invoice, payments []models.Payment) error {
	f, err := BuildVendorReport(vendors, invoices, payments)
	if err != nil {
		return err
	}
	return f.Write(w)
}

func invoiceCounts(vendorID int, invoices []models.Invoice, payments []models.Payment) (total, paid int) {
	for _, inv := range invoices {
		if inv.VendorID != vendorID {
			continue
		}
		total++
		for _, p := range payments {
			if p.InvoiceID == inv.ID && p.Status == models.StatusPaid {
				paid++
				break
			}
		}
	}
	return total, paid
}
