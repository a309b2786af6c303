package models

type Vendor struct {
	ID       int     `json:"id"`
	ShopName string  `json:"shop_name"`
	Owner    string  `json:"owner"`
	Contact  string  `json:"contact"`
	Score    float64 `json:"score"`
}

func (v Vendor) RecordID() int { return v.ID }
