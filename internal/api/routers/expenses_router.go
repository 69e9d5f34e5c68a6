package routers

import (
	"net/http"

	"financify/internal/api/handlers/expenses"
)

func expensesRouter() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /expenses", expenses.GetAllExpensesHandler)
	mux.HandleFunc("POST /expenses", expenses.CreateExpenseHandler)
	mux.HandleFunc("GET /expenses/{id}", expenses.GetExpenseByIDHandler)
	mux.HandleFunc("PUT /expenses/{id}", expenses.UpdateExpenseHandler)
	mux.HandleFunc("DELETE /expenses/{id}", expenses.DeleteExpenseHandler)

	return mux
}
