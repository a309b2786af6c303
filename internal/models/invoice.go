package models

import "time"

// Invoice statuses. An invoice is created PENDING and moves to PAID
// exactly once; there is no reversal or cancellation.
const (
	StatusPending = "PENDING"
	StatusPaid    = "PAID"
)

type Invoice struct {
	ID       int       `json:"id"`
	VendorID int       `json:"vendor_id"`
	Amount   float64   `json:"amount"`
	Status   string    `json:"status"`
	Date     time.Time `json:"date"`
	PDF      string    `json:"pdf"`
}

func (i Invoice) RecordID() int { return i.ID }
