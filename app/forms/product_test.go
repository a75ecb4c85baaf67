package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/backoffice/app/models"
)

func validCreate() ProductCreate {
	return ProductCreate{
		Name:          "Nimbus Desk Lamp",
		Category:      "Lighting",
		Brand:         "Nimbus",
		Price:         "49.99",
		StockQuantity: "12",
	}
}

func TestCreateParsesNumericStrings(t *testing.T) {
	p, errs := validCreate().Parse()
	require.Empty(t, errs)
	assert.Equal(t, 49.99, p.Price)
	assert.Equal(t, 12, p.StockQuantity)
	assert.Equal(t, models.InStock, p.Stock)
}

func TestCreateDerivesOutOfStockFromZeroQuantity(t *testing.T) {
	f := validCreate()
	f.StockQuantity = "0"
	p, errs := f.Parse()
	require.Empty(t, errs)
	assert.Equal(t, models.OutOfStock, p.Stock)
}

func TestCreateRejectsBadNumbers(t *testing.T) {
	cases := map[string]ProductCreate{
		"price not a number":    {Name: "ok name", Category: "c", Brand: "b", Price: "abc", StockQuantity: "1"},
		"price negative":        {Name: "ok name", Category: "c", Brand: "b", Price: "-1", StockQuantity: "1"},
		"quantity fractional":   {Name: "ok name", Category: "c", Brand: "b", Price: "1", StockQuantity: "2.5"},
		"quantity negative":     {Name: "ok name", Category: "c", Brand: "b", Price: "1", StockQuantity: "-3"},
		"quantity not a number": {Name: "ok name", Category: "c", Brand: "b", Price: "1", StockQuantity: "lots"},
	}
	for name, f := range cases {
		t.Run(name, func(t *testing.T) {
			_, errs := f.Parse()
			assert.NotEmpty(t, errs)
		})
	}
}

func TestCreateCollectsAllFieldErrors(t *testing.T) {
	_, errs := ProductCreate{Price: "x", StockQuantity: "y"}.Parse()
	require.NotEmpty(t, errs)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "category")
	assert.Contains(t, errs, "brand")
	assert.Contains(t, errs, "price")
	assert.Contains(t, errs, "stockQuantity")
}

func TestUpdateEmptyPayloadIsNoOpPatch(t *testing.T) {
	patch, errs := ProductUpdate{}.Parse()
	require.Empty(t, errs)

	before := models.Product{Name: "same", Price: 10, Stock: models.InStock}
	after := before
	patch.ApplyTo(&after)
	assert.Equal(t, before, after)
}

func TestUpdateParsesSetFieldsOnly(t *testing.T) {
	price := "15.50"
	patch, errs := ProductUpdate{Price: &price}.Parse()
	require.Empty(t, errs)
	require.NotNil(t, patch.Price)
	assert.Equal(t, 15.50, *patch.Price)
	assert.Nil(t, patch.Name)
	assert.Nil(t, patch.Stock)
}

func TestUpdateNeverDerivesStockFromQuantity(t *testing.T) {
	qty := "0"
	patch, errs := ProductUpdate{StockQuantity: &qty}.Parse()
	require.Empty(t, errs)

	p := models.Product{Stock: models.InStock, StockQuantity: 8}
	patch.ApplyTo(&p)
	assert.Equal(t, 0, p.StockQuantity)
	assert.Equal(t, models.InStock, p.Stock, "status only changes when sent explicitly")
}

func TestUpdateRejectsUnknownStockStatus(t *testing.T) {
	stock := "backordered"
	_, errs := ProductUpdate{Stock: &stock}.Parse()
	assert.Contains(t, errs, "stock")
}

func TestCustomerStatusUpdate(t *testing.T) {
	status, errs := CustomerStatusUpdate{Status: "inactive"}.Parse()
	require.Empty(t, errs)
	assert.Equal(t, models.CustomerInactive, status)

	_, errs = CustomerStatusUpdate{Status: "suspended"}.Parse()
	assert.Contains(t, errs, "status")
}

func TestLoginValidation(t *testing.T) {
	assert.Empty(t, Login{Email: "admin@example.com", Password: "admin"}.Validate())
	assert.Contains(t, Login{Email: "not-an-email", Password: "admin"}.Validate(), "email")
	assert.Contains(t, Login{Email: "admin@example.com"}.Validate(), "password")
}
