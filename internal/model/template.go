package model

import "time"

// ShopGlobal scopes a Template to every shop.
const ShopGlobal = "*"

// Template is a printable document template (invoice, packing slip).
type Template struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Shop      string    `json:"shop"`
	Content   string    `json:"content"`
	Default   bool      `json:"default"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
