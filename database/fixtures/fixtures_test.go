package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/backoffice/app/models"
	"github.com/shashiranjanraj/backoffice/database/fixtures"
)

func TestLoadDecodesAllCollections(t *testing.T) {
	set, err := fixtures.Load()
	require.NoError(t, err)

	assert.NotEmpty(t, set.Products)
	assert.NotEmpty(t, set.Customers)
	assert.NotEmpty(t, set.Orders)
}

func TestSeedDataIsInternallyConsistent(t *testing.T) {
	set, err := fixtures.Load()
	require.NoError(t, err)

	customerIDs := make(map[string]bool, len(set.Customers))
	for _, c := range set.Customers {
		require.False(t, customerIDs[c.ID], "duplicate customer id %s", c.ID)
		customerIDs[c.ID] = true
	}

	for _, o := range set.Orders {
		assert.True(t, customerIDs[o.CustomerID], "order %s references unknown customer %s", o.ID, o.CustomerID)
		assert.NotEmpty(t, o.Items, "order %s has no items", o.ID)
		for _, it := range o.Items {
			assert.Greater(t, it.Quantity, 0, "order %s item %q", o.ID, it.ProductName)
		}
	}

	for _, p := range set.Products {
		assert.GreaterOrEqual(t, p.Price, 0.0, "product %s", p.ID)
		if p.StockQuantity > 0 {
			assert.Equal(t, models.InStock, p.Stock, "product %s has quantity but is not in stock", p.ID)
		}
	}
}
