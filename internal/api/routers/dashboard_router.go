package routers

import (
	"net/http"

	"financify/internal/api/handlers/dashboard"
)

func dashboardRouter() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /dashboard", dashboard.GetDashboardHandler)
	mux.HandleFunc("GET /dashboard/stats", dashboard.GetStatsHandler)

	return mux
}
