package routers

import (
	"net/http"

	"financify/pkg/utils"
)

const apiVersion = "1.0.0"

func MainRouter() *http.ServeMux {

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, map[string]interface{}{
			"message": "Welcome to Financify API",
			"version": apiVersion,
		})
	})

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, map[string]interface{}{
			"status": "healthy",
		})
	})

	aRouter := authRouter()
	mux.Handle("/auth/", aRouter)

	acRouter := accountsRouter()
	mux.Handle("/accounts", acRouter)
	mux.Handle("/accounts/", acRouter)

	dRouter := dashboardRouter()
	mux.Handle("/dashboard", dRouter)
	mux.Handle("/dashboard/", dRouter)

	tRouter := transactionsRouter()
	mux.Handle("/transactions", tRouter)
	mux.Handle("/transactions/", tRouter)

	iRouter := incomeRouter()
	mux.Handle("/income", iRouter)
	mux.Handle("/income/", iRouter)

	eRouter := expensesRouter()
	mux.Handle("/expenses", eRouter)
	mux.Handle("/expenses/", eRouter)

	lRouter := loansRouter()
	mux.Handle("/loans", lRouter)
	mux.Handle("/loans/", lRouter)

	invRouter := investmentsRouter()
	mux.Handle("/investments", invRouter)
	mux.Handle("/investments/", invRouter)

	ccRouter := creditCardsRouter()
	mux.Handle("/credit-cards", ccRouter)
	mux.Handle("/credit-cards/", ccRouter)

	bRouter := budgetsRouter()
	mux.Handle("/budgets", bRouter)
	mux.Handle("/budgets/", bRouter)

	return mux
}
