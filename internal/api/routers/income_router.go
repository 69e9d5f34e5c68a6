package routers

import (
	"net/http"

	"financify/internal/api/handlers/income"
)

func incomeRouter() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /income", income.GetAllIncomeHandler)
	mux.HandleFunc("POST /income", income.CreateIncomeHandler)
	mux.HandleFunc("GET /income/{id}", income.GetIncomeByIDHandler)
	mux.HandleFunc("PUT /income/{id}", income.UpdateIncomeHandler)
	mux.HandleFunc("DELETE /income/{id}", income.DeleteIncomeHandler)

	return mux
}
