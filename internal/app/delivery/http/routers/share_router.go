package routers

import (
	"daily-journal-service/internal/app/delivery/http/controllers"
	"daily-journal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachShareLinkRoutes(router chi.Router, middlewares *middlewares.Middlewares, shareController *controllers.ShareController) {
	router.With(middlewares.Authenticate).Post("/", shareController.CreateShareLink)
	router.With(middlewares.Authenticate).Delete("/", shareController.RevokeShareLink)
}

func attachEncouragementRoutes(router chi.Router, middlewares *middlewares.Middlewares, shareController *controllers.ShareController) {
	router.With(middlewares.Authenticate).Get("/", shareController.ListEncouragements)
}

func attachPublicRoutes(router chi.Router, limiter *middlewares.RateLimiter, shareController *controllers.ShareController) {
	router.Get("/", shareController.GetPublicPage)
	router.With(limiter.Limit).Post("/messages", shareController.SendEncouragement)
}
