// Package controllers implements the HTTP handlers of the admin API.
//
// Controllers hold their store dependencies explicitly; nothing reaches for
// package-level state. Handlers are plain func(w, r) so the router can wrap
// them with middleware per route group.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/shashiranjanraj/backoffice/app/views"
	"github.com/shashiranjanraj/backoffice/pkg/bind"
	"github.com/shashiranjanraj/backoffice/pkg/response"
)

// decode reads a JSON body into dest and runs struct-tag validation. On
// malformed input it writes a 400, on validation failure a 422; either way
// it returns false and the caller should return immediately.
func decode(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	errs, err := bind.JSON(r, dest)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Malformed JSON body")
		return false
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return false
	}
	return true
}

// listQuery builds a ListQuery from the request's query string. statusParam
// names the filter parameter ("stock" for products, "status" elsewhere).
func listQuery(r *http.Request, statusParam string, defaultPerPage int) views.ListQuery {
	q := r.URL.Query()

	page := 1
	if v, err := strconv.Atoi(q.Get("page")); err == nil && v > 0 {
		page = v
	}

	perPage := defaultPerPage
	if v, err := strconv.Atoi(q.Get("per_page")); err == nil && v > 0 {
		perPage = v
	}

	status := q.Get(statusParam)
	if status == "" {
		status = views.FilterAll
	}

	return views.ListQuery{
		Search:  q.Get("search"),
		Status:  status,
		Page:    page,
		PerPage: perPage,
	}
}
