package utils

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

func GetPaginationParams(r *http.Request) (int, int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}

	return page, limit
}

var sortableColumns = map[string]bool{
	"date":       true,
	"amount":     true,
	"created_at": true,
}

// AddSorting appends an ORDER BY clause for whitelisted columns only.
func AddSorting(r *http.Request, query string) string {
	sortBy := r.URL.Query().Get("sortBy")
	if !sortableColumns[sortBy] {
		return query
	}

	order := "ASC"
	if strings.EqualFold(r.URL.Query().Get("sortOrder"), "desc") {
		order = "DESC"
	}

	return fmt.Sprintf("%s ORDER BY %s %s", query, sortBy, order)
}
