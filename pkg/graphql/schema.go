// Package graphql exposes a read-only GraphQL query surface over the stores.
//
// Mutations go through the REST endpoints; this schema only mirrors the
// derived views so dashboard widgets can fetch exactly the fields they need
// in one round trip.
package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/backoffice/app/stores"
	"github.com/shashiranjanraj/backoffice/app/views"
)

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id":            &graphql.Field{Type: graphql.String},
		"image":         &graphql.Field{Type: graphql.String},
		"name":          &graphql.Field{Type: graphql.String},
		"category":      &graphql.Field{Type: graphql.String},
		"brand":         &graphql.Field{Type: graphql.String},
		"price":         &graphql.Field{Type: graphql.Float},
		"stock":         &graphql.Field{Type: graphql.String},
		"createdAt":     &graphql.Field{Type: graphql.String},
		"description":   &graphql.Field{Type: graphql.String},
		"sku":           &graphql.Field{Type: graphql.String},
		"stockQuantity": &graphql.Field{Type: graphql.Int},
	},
})

var customerType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Customer",
	Fields: graphql.Fields{
		"id":            &graphql.Field{Type: graphql.String},
		"name":          &graphql.Field{Type: graphql.String},
		"email":         &graphql.Field{Type: graphql.String},
		"phone":         &graphql.Field{Type: graphql.String},
		"avatar":        &graphql.Field{Type: graphql.String},
		"location":      &graphql.Field{Type: graphql.String},
		"status":        &graphql.Field{Type: graphql.String},
		"joinedDate":    &graphql.Field{Type: graphql.String},
		"totalOrders":   &graphql.Field{Type: graphql.Int},
		"totalSpent":    &graphql.Field{Type: graphql.Float},
		"lastOrderDate": &graphql.Field{Type: graphql.String},
	},
})

var orderItemType = graphql.NewObject(graphql.ObjectConfig{
	Name: "OrderItem",
	Fields: graphql.Fields{
		"productName": &graphql.Field{Type: graphql.String},
		"quantity":    &graphql.Field{Type: graphql.Int},
		"price":       &graphql.Field{Type: graphql.Float},
	},
})

var orderType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Order",
	Fields: graphql.Fields{
		"id":              &graphql.Field{Type: graphql.String},
		"customerId":      &graphql.Field{Type: graphql.String},
		"customerName":    &graphql.Field{Type: graphql.String},
		"orderDate":       &graphql.Field{Type: graphql.String},
		"status":          &graphql.Field{Type: graphql.String},
		"total":           &graphql.Field{Type: graphql.Float},
		"items":           &graphql.Field{Type: graphql.NewList(orderItemType)},
		"shippingAddress": &graphql.Field{Type: graphql.String},
	},
})

var paginationType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Pagination",
	Fields: graphql.Fields{
		"page":       &graphql.Field{Type: graphql.Int},
		"perPage":    &graphql.Field{Type: graphql.Int},
		"totalItems": &graphql.Field{Type: graphql.Int},
		"totalPages": &graphql.Field{Type: graphql.Int},
		"labels":     &graphql.Field{Type: graphql.NewList(graphql.String)},
	},
})

func pageType(name string, item *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: name,
		Fields: graphql.Fields{
			"items":      &graphql.Field{Type: graphql.NewList(item)},
			"pagination": &graphql.Field{Type: paginationType},
		},
	})
}

var productStatsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ProductStats",
	Fields: graphql.Fields{
		"totalProducts":  &graphql.Field{Type: graphql.Int},
		"inStock":        &graphql.Field{Type: graphql.Int},
		"outOfStock":     &graphql.Field{Type: graphql.Int},
		"inventoryValue": &graphql.Field{Type: graphql.Float},
	},
})

var customerStatsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CustomerStats",
	Fields: graphql.Fields{
		"totalCustomers":  &graphql.Field{Type: graphql.Int},
		"activeCustomers": &graphql.Field{Type: graphql.Int},
		"activePercent":   &graphql.Field{Type: graphql.Float},
		"totalOrders":     &graphql.Field{Type: graphql.Int},
		"revenue":         &graphql.Field{Type: graphql.Float},
		"avgOrderValue":   &graphql.Field{Type: graphql.Float},
	},
})

var listArgs = graphql.FieldConfigArgument{
	"search":  &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: ""},
	"status":  &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: views.FilterAll},
	"page":    &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 1},
	"perPage": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 10},
}

func queryFromArgs(p graphql.ResolveParams) views.ListQuery {
	return views.ListQuery{
		Search:  p.Args["search"].(string),
		Status:  p.Args["status"].(string),
		Page:    p.Args["page"].(int),
		PerPage: p.Args["perPage"].(int),
	}
}

// NewSchema builds the root query over the given stores.
func NewSchema(products *stores.ProductStore, customers *stores.CustomerStore) (graphql.Schema, error) {
	rootQuery := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type: pageType("ProductPage", productType),
				Args: listArgs,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return views.Products(products.All(), queryFromArgs(p)), nil
				},
			},
			"product": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					prod, ok := products.Get(p.Args["id"].(string))
					if !ok {
						return nil, nil
					}
					return prod, nil
				},
			},
			"customers": &graphql.Field{
				Type: pageType("CustomerPage", customerType),
				Args: listArgs,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return views.Customers(customers.Customers(), queryFromArgs(p)), nil
				},
			},
			"customer": &graphql.Field{
				Type: customerType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					c, ok := customers.Customer(p.Args["id"].(string))
					if !ok {
						return nil, nil
					}
					return c, nil
				},
			},
			"customerOrders": &graphql.Field{
				Type: graphql.NewList(orderType),
				Args: graphql.FieldConfigArgument{
					"customerId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return customers.OrdersFor(p.Args["customerId"].(string)), nil
				},
			},
			"orders": &graphql.Field{
				Type: pageType("OrderPage", orderType),
				Args: listArgs,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return views.Orders(customers.Orders(), queryFromArgs(p)), nil
				},
			},
			"productStats": &graphql.Field{
				Type: productStatsType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return views.ProductStatsFrom(products.All()), nil
				},
			},
			"customerStats": &graphql.Field{
				Type: customerStatsType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return views.CustomerStatsFrom(customers.Customers(), customers.Orders()), nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: rootQuery})
}
