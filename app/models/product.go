package models

// StockStatus is the two-state stock flag shown on the products table.
type StockStatus string

const (
	InStock    StockStatus = "In Stock"
	OutOfStock StockStatus = "Out of Stock"
)

// Product represents a product in the catalogue.
//
// CreatedAt is assigned once by the store and never changes afterwards.
// StockQuantity is optional; when the creation flow supplies it, Stock is
// derived from it (quantity > 0 ⇒ InStock). Partial updates set each field
// independently and never re-derive Stock — see ProductPatch.
type Product struct {
	ID            string      `json:"id"`
	Image         string      `json:"image"`
	Name          string      `json:"name"`
	Category      string      `json:"category"`
	Brand         string      `json:"brand"`
	Price         float64     `json:"price"`
	Stock         StockStatus `json:"stock"`
	CreatedAt     string      `json:"createdAt"`
	Description   string      `json:"description,omitempty"`
	SKU           string      `json:"sku,omitempty"`
	StockQuantity int         `json:"stockQuantity,omitempty"`
}

// ProductPatch is a partial update: nil fields are left untouched.
type ProductPatch struct {
	Image         *string      `json:"image,omitempty"`
	Name          *string      `json:"name,omitempty"`
	Category      *string      `json:"category,omitempty"`
	Brand         *string      `json:"brand,omitempty"`
	Price         *float64     `json:"price,omitempty"`
	Stock         *StockStatus `json:"stock,omitempty"`
	Description   *string      `json:"description,omitempty"`
	SKU           *string      `json:"sku,omitempty"`
	StockQuantity *int         `json:"stockQuantity,omitempty"`
}

// ApplyTo shallow-merges the set fields of the patch into p.
func (patch ProductPatch) ApplyTo(p *Product) {
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Brand != nil {
		p.Brand = *patch.Brand
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.SKU != nil {
		p.SKU = *patch.SKU
	}
	if patch.StockQuantity != nil {
		p.StockQuantity = *patch.StockQuantity
	}
}
