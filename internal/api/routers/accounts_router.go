package routers

import (
	"net/http"

	"financify/internal/api/handlers/accounts"
)

func accountsRouter() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /accounts", accounts.GetAllAccountsHandler)
	mux.HandleFunc("POST /accounts", accounts.CreateAccountHandler)
	mux.HandleFunc("GET /accounts/{id}", accounts.GetAccountByIDHandler)
	mux.HandleFunc("PUT /accounts/{id}", accounts.UpdateAccountHandler)
	mux.HandleFunc("DELETE /accounts/{id}", accounts.DeleteAccountHandler)

	return mux
}
