package models

// Payment is an append-only settlement record. It is never edited or
// removed once written.
type Payment struct {
	ID        int    `json:"id"`
	InvoiceID int    `json:"invoice_id"`
	Status    string `json:"status"`
}

func (p Payment) RecordID() int { return p.ID }
