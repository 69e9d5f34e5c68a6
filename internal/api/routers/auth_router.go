package routers

import (
	"net/http"

	"financify/internal/api/handlers/auth"
)

func authRouter() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/register", auth.RegisterHandler)
	mux.HandleFunc("POST /auth/token", auth.TokenHandler)
	mux.HandleFunc("GET /auth/me", auth.MeHandler)

	return mux
}
