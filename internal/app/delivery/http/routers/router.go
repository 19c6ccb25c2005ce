package routers

import (
	"daily-journal-service/internal/app/config"
	"daily-journal-service/internal/app/delivery/http/controllers"
	"daily-journal-service/internal/app/delivery/http/middlewares"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	entryController *controllers.EntryController,
	quoteController *controllers.QuoteController,
	shareController *controllers.ShareController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.BodyLimit)

	encouragementLimiter := newEncouragementLimiter(internalConfig, middlewares)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, middlewares, userController)
			})

			r.Route("/entries", func(r chi.Router) {
				attachEntryRoutes(r, middlewares, entryController)
			})

			r.Route("/quotes", func(r chi.Router) {
				attachQuoteRoutes(r, quoteController)
			})

			r.Route("/share-link", func(r chi.Router) {
				attachShareLinkRoutes(r, middlewares, shareController)
			})

			r.Route("/encouragements", func(r chi.Router) {
				attachEncouragementRoutes(r, middlewares, shareController)
			})

			r.Route("/public/encourage/{share_token}", func(r chi.Router) {
				attachPublicRoutes(r, encouragementLimiter, shareController)
			})
		})
	})
}

// newEncouragementLimiter throttles anonymous encouragement posts per client IP.
func newEncouragementLimiter(internalConfig *config.InternalConfig, m *middlewares.Middlewares) *middlewares.RateLimiter {
	perMinute := internalConfig.Share.EncouragementRequestsPerMin
	if perMinute <= 0 {
		perMinute = 1
	}
	burst := internalConfig.Share.EncouragementBurst
	if burst <= 0 {
		burst = 1
	}
	return middlewares.NewRateLimiter(
		m.Log,
		burst,
		time.Minute/time.Duration(perMinute),
		time.Duration(internalConfig.Share.EncouragementBlockInMinutes)*time.Minute,
	)
}
