package routers

import (
	"daily-journal-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachQuoteRoutes(router chi.Router, quoteController *controllers.QuoteController) {
	router.Get("/today", quoteController.GetTodayQuote)
	router.Get("/{quote_date}", quoteController.GetQuoteByDate)
}
