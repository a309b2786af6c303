package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"supplier-vendor-api/internal/models"
	"supplier-vendor-api/internal/store"
	"supplier-vendor-api/pkg/report"
)

func main() {
	dataDir := flag.String("data-dir", "data", "directory holding the slot files")
	out := flag.String("out", "vendors.xlsx", "output workbook path")
	flag.Parse()

	if *dataDir == "" || *out == "" {
		fmt.Println("Usage: export_excel --data-dir=data --out=vendors.xlsx")
		os.Exit(1)
	}

	ctx := context.Background()
	st := store.NewFileStore(*dataDir)

	vendors := []models.Vendor{}
	invoices := []models.Invoice{}
	payments := []models.Payment{}
	if err := st.Load(ctx, store.KindVendors, &vendors); err != nil {
		log.Fatal("Failed to load vendors:", err)
	}
	if err := st.Load(ctx, store.KindInvoices, &invoices); err != nil {
		log.Fatal("Failed to load invoices:", err)
	}
	if err := st.Load(ctx, store.KindPayments, &payments); err != nil {
		log.Fatal("Failed to load payments:", err)
	}

	f, err := report.BuildVendorReport(vendors, invoices, payments)
	if err != nil {
		log.Fatal("Failed to build report:", err)
	}
	if err := f.Save(*out); err != nil {
		log.Fatal("Failed to write workbook:", err)
	}

	fmt.Printf("Wrote %d vendor rows to %s\n", len(vendors), *out)
}
