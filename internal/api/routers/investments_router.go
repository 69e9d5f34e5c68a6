package routers

import (
	"net/http"

	"financify/internal/api/handlers/investments"
)

func investmentsRouter() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /investments", investments.GetAllInvestmentsHandler)
	mux.HandleFunc("POST /investments", investments.CreateInvestmentHandler)
	mux.HandleFunc("GET /investments/{id}", investments.GetInvestmentByIDHandler)
	mux.HandleFunc("PUT /investments/{id}", investments.UpdateInvestmentHandler)
	mux.HandleFunc("DELETE /investments/{id}", investments.DeleteInvestmentHandler)

	return mux
}
