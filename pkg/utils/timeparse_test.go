package utils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeAcceptsBothLayouts(t *testing.T) {
	fromRFC, err := ParseTime("2026-03-15T12:30:00Z")
	require.NoError(t, err)

	fromLayout, err := ParseTime("2026-03-15 12:30:00")
	require.NoError(t, err)

	assert.True(t, fromRFC.Equal(fromLayout))
}

func TestParseTimeRejectsGarbage(t *testing.T) {
	_, err := ParseTime("15/03/2026")
	assert.Error(t, err)

	_, err = ParseTime("")
	assert.Error(t, err)
}

func TestFormatTimeRoundTrip(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 30, 0, 0, time.UTC)
	formatted := FormatTime(now)
	assert.Equal(t, "2026-03-15 12:30:00", formatted)

	parsed, err := ParseTime(formatted)
	require.NoError(t, err)
	assert.True(t, now.Equal(parsed))
}

func TestGetPaginationParamsDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/transactions", nil)
	page, limit := GetPaginationParams(r)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, limit)

	r = httptest.NewRequest("GET", "/transactions?page=3&limit=50", nil)
	page, limit = GetPaginationParams(r)
	assert.Equal(t, 3, page)
	assert.Equal(t, 50, limit)

	r = httptest.NewRequest("GET", "/transactions?page=-1&limit=1000", nil)
	page, limit = GetPaginationParams(r)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, limit)
}

func TestAddSortingWhitelist(t *testing.T) {
	base := "SELECT * FROM transactions WHERE user_id = ?"

	r := httptest.NewRequest("GET", "/transactions?sortBy=date&sortOrder=desc", nil)
	assert.Equal(t, base+" ORDER BY date DESC", AddSorting(r, base))

	r = httptest.NewRequest("GET", "/transactions?sortBy=amount", nil)
	assert.Equal(t, base+" ORDER BY amount ASC", AddSorting(r, base))

	// unknown columns never reach the query
	r = httptest.NewRequest("GET", "/transactions?sortBy=1;DROP+TABLE+users", nil)
	assert.Equal(t, base, AddSorting(r, base))
}
