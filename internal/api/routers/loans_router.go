package routers

import (
	"net/http"

	"financify/internal/api/handlers/loans"
)

func loansRouter() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /loans", loans.GetAllLoansHandler)
	mux.HandleFunc("POST /loans", loans.CreateLoanHandler)
	mux.HandleFunc("GET /loans/{id}", loans.GetLoanByIDHandler)
	mux.HandleFunc("PUT /loans/{id}", loans.UpdateLoanHandler)
	mux.HandleFunc("DELETE /loans/{id}", loans.DeleteLoanHandler)

	mux.HandleFunc("GET /loans/{id}/payments", loans.GetLoanPaymentsHandler)
	mux.HandleFunc("POST /loans/{id}/payments", loans.CreateLoanPaymentHandler)

	return mux
}
