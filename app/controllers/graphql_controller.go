package controllers

import (
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/backoffice/pkg/response"
)

// GraphQLController executes queries against the read-only schema.
// GET takes the query from ?query=; POST takes {"query": ..., "variables": ...}.
type GraphQLController struct {
	schema graphql.Schema
}

func NewGraphQLController(schema graphql.Schema) *GraphQLController {
	return &GraphQLController{schema: schema}
}

func (c *GraphQLController) Query(w http.ResponseWriter, r *http.Request) {
	var query string
	var variables map[string]interface{}

	switch r.Method {
	case http.MethodGet:
		query = r.URL.Query().Get("query")
	case http.MethodPost:
		var body struct {
			Query     string                 `json:"query"`
			Variables map[string]interface{} `json:"variables"`
		}
		if !decode(w, r, &body) {
			return
		}
		query = body.Query
		variables = body.Variables
	}

	if query == "" {
		response.Error(w, http.StatusBadRequest, "Missing query")
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         c.schema,
		RequestString:  query,
		VariableValues: variables,
		Context:        r.Context(),
	})

	if len(result.Errors) > 0 {
		response.ValidationError(w, map[string]string{"query": result.Errors[0].Message})
		return
	}

	response.Success(w, result.Data)
}
