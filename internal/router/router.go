package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/centavault/wallet-backend/internal/handlers"
	"github.com/centavault/wallet-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	rh := handlers.NewReceiptHandlers(deps)

	r.Group(func(r chi.Router) {
		if deps.Verifier != nil {
			r.Use(middleware.NewMiddleware(deps.Verifier).BearerAuth)
		}
		r.Mount("/receipts", rh.ReceiptRoutes())
	})

	return r
}
