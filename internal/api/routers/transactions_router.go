package routers

import (
	"net/http"

	"financify/internal/api/handlers/transactions"
)

func transactionsRouter() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /transactions", transactions.GetAllTransactionsHandler)
	mux.HandleFunc("POST /transactions", transactions.CreateTransactionHandler)
	mux.HandleFunc("GET /transactions/{id}", transactions.GetTransactionByIDHandler)
	mux.HandleFunc("PUT /transactions/{id}", transactions.UpdateTransactionHandler)
	mux.HandleFunc("DELETE /transactions/{id}", transactions.DeleteTransactionHandler)

	return mux
}
