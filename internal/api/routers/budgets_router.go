package routers

import (
	"net/http"

	"financify/internal/api/handlers/budgets"
)

func budgetsRouter() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /budgets", budgets.GetAllBudgetsHandler)
	mux.HandleFunc("POST /budgets", budgets.CreateBudgetHandler)
	mux.HandleFunc("GET /budgets/{id}", budgets.GetBudgetByIDHandler)
	mux.HandleFunc("PUT /budgets/{id}", budgets.UpdateBudgetHandler)
	mux.HandleFunc("DELETE /budgets/{id}", budgets.DeleteBudgetHandler)

	return mux
}
