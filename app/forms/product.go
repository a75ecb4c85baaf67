// Package forms holds the request payloads of the admin API and the parsing
// step that turns free-text form input into typed model values.
//
// The dashboard sends price and stock quantity as strings (they come straight
// from text inputs). Parsing happens here, before any store is touched, and
// failures come back as a field→message map suitable for a 422 response.
package forms

import (
	"strconv"
	"strings"

	"github.com/shashiranjanraj/backoffice/app/models"
	"github.com/shashiranjanraj/backoffice/pkg/validate"
)

// ProductCreate is the payload of POST /api/products.
type ProductCreate struct {
	Name          string `json:"name" validate:"required,min=2,max=255"`
	Category      string `json:"category" validate:"required"`
	Brand         string `json:"brand" validate:"required"`
	Price         string `json:"price" validate:"required"`
	StockQuantity string `json:"stockQuantity" validate:"required"`
	Description   string `json:"description" validate:"nullable,max=2000"`
	SKU           string `json:"sku" validate:"nullable,max=64"`
	Image         string `json:"image" validate:"nullable,url"`
}

// Parse validates the payload and converts it into a Product ready for the
// store. Stock is derived from the parsed quantity: quantity > 0 means
// In Stock. On failure the returned map is non-empty and the product is zero.
func (f ProductCreate) Parse() (models.Product, map[string]string) {
	errs := validate.Struct(f)

	price, ok := parsePrice(f.Price)
	if !ok && errs["price"] == "" {
		errs["price"] = "The price must be a number greater than or equal to 0."
	}

	qty, ok := parseQuantity(f.StockQuantity)
	if !ok && errs["stockQuantity"] == "" {
		errs["stockQuantity"] = "The stockQuantity must be a whole number greater than or equal to 0."
	}

	if len(errs) > 0 {
		return models.Product{}, errs
	}

	stock := models.OutOfStock
	if qty > 0 {
		stock = models.InStock
	}

	return models.Product{
		Image:         strings.TrimSpace(f.Image),
		Name:          strings.TrimSpace(f.Name),
		Category:      strings.TrimSpace(f.Category),
		Brand:         strings.TrimSpace(f.Brand),
		Price:         price,
		Stock:         stock,
		Description:   strings.TrimSpace(f.Description),
		SKU:           strings.TrimSpace(f.SKU),
		StockQuantity: qty,
	}, nil
}

// ProductUpdate is the payload of PATCH /api/products/{id}. Absent fields are
// left untouched; numeric fields arrive as strings like on create. Stock is
// applied only when sent explicitly and is never re-derived from quantity.
type ProductUpdate struct {
	Name          *string `json:"name"`
	Category      *string `json:"category"`
	Brand         *string `json:"brand"`
	Price         *string `json:"price"`
	Stock         *string `json:"stock"`
	StockQuantity *string `json:"stockQuantity"`
	Description   *string `json:"description"`
	SKU           *string `json:"sku"`
	Image         *string `json:"image"`
}

// Parse converts the set fields into a ProductPatch, reporting per-field
// parse errors. An empty payload yields an empty patch, which the store
// treats as a no-op merge.
func (f ProductUpdate) Parse() (models.ProductPatch, map[string]string) {
	errs := map[string]string{}
	var patch models.ProductPatch

	if f.Name != nil {
		name := strings.TrimSpace(*f.Name)
		if len(name) < 2 {
			errs["name"] = "The name must be at least 2 characters."
		} else {
			patch.Name = &name
		}
	}
	if f.Category != nil {
		v := strings.TrimSpace(*f.Category)
		if v == "" {
			errs["category"] = "The category field is required."
		} else {
			patch.Category = &v
		}
	}
	if f.Brand != nil {
		v := strings.TrimSpace(*f.Brand)
		if v == "" {
			errs["brand"] = "The brand field is required."
		} else {
			patch.Brand = &v
		}
	}
	if f.Price != nil {
		price, ok := parsePrice(*f.Price)
		if !ok {
			errs["price"] = "The price must be a number greater than or equal to 0."
		} else {
			patch.Price = &price
		}
	}
	if f.Stock != nil {
		status := models.StockStatus(strings.TrimSpace(*f.Stock))
		if status != models.InStock && status != models.OutOfStock {
			errs["stock"] = "The selected stock is invalid."
		} else {
			patch.Stock = &status
		}
	}
	if f.StockQuantity != nil {
		qty, ok := parseQuantity(*f.StockQuantity)
		if !ok {
			errs["stockQuantity"] = "The stockQuantity must be a whole number greater than or equal to 0."
		} else {
			patch.StockQuantity = &qty
		}
	}
	if f.Description != nil {
		v := strings.TrimSpace(*f.Description)
		patch.Description = &v
	}
	if f.SKU != nil {
		v := strings.TrimSpace(*f.SKU)
		patch.SKU = &v
	}
	if f.Image != nil {
		v := strings.TrimSpace(*f.Image)
		patch.Image = &v
	}

	if len(errs) > 0 {
		return models.ProductPatch{}, errs
	}
	return patch, nil
}

// parsePrice accepts decimal input like "49.99". Negative values and
// non-numeric text are rejected.
func parsePrice(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// parseQuantity accepts whole-number input. "12.5", "abc" and "-3" all fail.
func parseQuantity(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}
