package routers

import (
	"net/http"

	"financify/internal/api/handlers/creditcards"
)

func creditCardsRouter() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /credit-cards", creditcards.GetAllCreditCardsHandler)
	mux.HandleFunc("POST /credit-cards", creditcards.CreateCreditCardHandler)
	mux.HandleFunc("GET /credit-cards/{id}", creditcards.GetCreditCardByIDHandler)
	mux.HandleFunc("PUT /credit-cards/{id}", creditcards.UpdateCreditCardHandler)
	mux.HandleFunc("DELETE /credit-cards/{id}", creditcards.DeleteCreditCardHandler)

	return mux
}
