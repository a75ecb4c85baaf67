package views

import (
	"github.com/shashiranjanraj/backoffice/app/models"
	"github.com/shashiranjanraj/backoffice/pkg/collection"
)

// ProductStats backs the stat cards at the top of the products page.
type ProductStats struct {
	TotalProducts  int     `json:"totalProducts"`
	InStock        int     `json:"inStock"`
	OutOfStock     int     `json:"outOfStock"`
	InventoryValue float64 `json:"inventoryValue"`
}

// ProductStatsFrom computes the product stat cards from a store snapshot.
func ProductStatsFrom(products []models.Product) ProductStats {
	return ProductStats{
		TotalProducts:  len(products),
		InStock:        collection.CountBy(products, func(p models.Product) bool { return p.Stock == models.InStock }),
		OutOfStock:     collection.CountBy(products, func(p models.Product) bool { return p.Stock == models.OutOfStock }),
		InventoryValue: collection.Sum(products, func(p models.Product) float64 { return p.Price }),
	}
}

// CustomerStats backs the stat cards at the top of the customers page.
// Revenue and order figures are computed live from the order collection;
// they are deliberately independent of the customers' seeded TotalSpent /
// TotalOrders aggregates.
type CustomerStats struct {
	TotalCustomers  int     `json:"totalCustomers"`
	ActiveCustomers int     `json:"activeCustomers"`
	ActivePercent   float64 `json:"activePercent"`
	TotalOrders     int     `json:"totalOrders"`
	Revenue         float64 `json:"revenue"`
	AvgOrderValue   float64 `json:"avgOrderValue"`
}

// CustomerStatsFrom computes the customer stat cards from store snapshots.
func CustomerStatsFrom(customers []models.Customer, orders []models.Order) CustomerStats {
	stats := CustomerStats{
		TotalCustomers:  len(customers),
		ActiveCustomers: collection.CountBy(customers, func(c models.Customer) bool { return c.Status == models.CustomerActive }),
		TotalOrders:     len(orders),
		Revenue:         collection.Sum(orders, func(o models.Order) float64 { return o.Total }),
	}
	if stats.TotalCustomers > 0 {
		stats.ActivePercent = float64(stats.ActiveCustomers) / float64(stats.TotalCustomers) * 100
	}
	if stats.TotalOrders > 0 {
		stats.AvgOrderValue = stats.Revenue / float64(stats.TotalOrders)
	}
	return stats
}
