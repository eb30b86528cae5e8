package delivery

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

func RegisterRoutes(
	r chi.Router,
	hVoice *VoiceBankingHandler,
	hAuth *AuthHandler,
	hUser *UserHandler,
	hTxns *TransactionsHandler,
	hHealth *HealthHandler,
) {
	r.Route("/api", func(api chi.Router) {
		api.Use(
			middleware.Recoverer,
			httprate.LimitByIP(60, time.Minute),
		)

		api.Get("/health", hHealth.Check)
		api.Post("/authenticate", hAuth.Authenticate)
		api.Get("/user/{userID}", hUser.Get)
		api.Get("/transactions/{userID}", hTxns.List)
		api.Post("/voice-banking", hVoice.Handle)
	})
}
