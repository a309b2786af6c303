package models

type Purchase struct {
	ID       int     `json:"id"`
	VendorID int     `json:"vendor_id"`
	Item     string  `json:"item"`
	Amount   float64 `json:"amount"`
}

func (p Purchase) RecordID() int { return p.ID }
