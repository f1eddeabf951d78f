package routes

import (
	"github.com/go-chi/chi/v5"

	"digiboard/api/internal/api"
	"digiboard/api/internal/middleware"
)

// RegisterAPIRoutes registers all /api routes and handlers.
// This keeps API route registration separate from the main router setup.
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers, deps *api.Dependencies) {
	r.Route("/api", func(apiRoutes chi.Router) {
		// Public
		apiRoutes.Group(func(public chi.Router) {
			public.Use(middleware.RateLimitMiddleware)
			public.Post("/login", handlers.Login())
		})
		apiRoutes.Get("/digital-board", handlers.Board())

		// Everything below requires a valid bearer token.
		apiRoutes.Group(func(protected chi.Router) {
			protected.Use(middleware.AuthMiddleware(deps.Services.Auth))

			protected.Post("/logout", handlers.Logout())
			protected.Get("/user", handlers.Me())

			protected.Get("/dashboard/statistics", handlers.Statistics())
			protected.Get("/dashboard/today-flights", handlers.TodayFlights())

			protected.Route("/airlines", func(res chi.Router) {
				res.Get("/", handlers.ListAirlines())
				res.Post("/", handlers.CreateAirline())
				res.Get("/{id}", handlers.GetAirline())
				res.Put("/{id}", handlers.UpdateAirline())
				res.Delete("/{id}", handlers.DeleteAirline())
			})

			protected.Route("/airports", func(res chi.Router) {
				res.Get("/", handlers.ListAirports())
				res.Post("/", handlers.CreateAirport())
				res.Get("/{id}", handlers.GetAirport())
				res.Put("/{id}", handlers.UpdateAirport())
				res.Delete("/{id}", handlers.DeleteAirport())
			})

			protected.Route("/gates", func(res chi.Router) {
				res.Get("/", handlers.ListGates())
				res.Post("/", handlers.CreateGate())
				res.Get("/{id}", handlers.GetGate())
				res.Put("/{id}", handlers.UpdateGate())
				res.Delete("/{id}", handlers.DeleteGate())
			})

			protected.Route("/flight-statuses", func(res chi.Router) {
				res.Get("/", handlers.ListFlightStatuses())
				res.Post("/", handlers.CreateFlightStatus())
				res.Get("/{id}", handlers.GetFlightStatus())
				res.Put("/{id}", handlers.UpdateFlightStatus())
				res.Delete("/{id}", handlers.DeleteFlightStatus())
			})

			protected.Route("/flights", func(res chi.Router) {
				res.Get("/", handlers.ListFlights())
				res.Post("/", handlers.CreateFlight())
				res.Get("/{id}", handlers.GetFlight())
				res.Put("/{id}", handlers.UpdateFlight())
				res.Delete("/{id}", handlers.DeleteFlight())
			})

			protected.Route("/users", func(res chi.Router) {
				res.Get("/", handlers.ListUsers())
				res.Post("/", handlers.CreateUser())
				res.Get("/{id}", handlers.GetUser())
				res.Put("/{id}", handlers.UpdateUser())
				res.Delete("/{id}", handlers.DeleteUser())
			})
		})
	})
}
