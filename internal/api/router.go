package api

import (
	_ "tradequotes/docs"
	"tradequotes/internal/position/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(positionHandler *handler.Handler, allowedOrigins []string) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/symbols/{symbol}", positionHandler.GetSymbol)
		r.Post("/swaps/estimate", positionHandler.EstimateSwap)

		r.Post("/positions", positionHandler.OpenPosition)
		r.Get("/positions/{id}", positionHandler.GetPosition)
		r.Delete("/positions/{id}", positionHandler.ClosePosition)

		r.Post("/pairs/{base}/{quote}/evaluate", positionHandler.Evaluate)
		r.Get("/pairs/{base}/{quote}/positions", positionHandler.GetSummary)
		r.Put("/pairs/{base}/{quote}/mark", positionHandler.PutMark)
	})
	return router
}
