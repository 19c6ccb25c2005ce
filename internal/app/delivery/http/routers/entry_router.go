package routers

import (
	"daily-journal-service/internal/app/delivery/http/controllers"
	"daily-journal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachEntryRoutes(router chi.Router, middlewares *middlewares.Middlewares, entryController *controllers.EntryController) {
	router.With(middlewares.Authenticate).Get("/", entryController.FindEntriesByRange)
	router.With(middlewares.Authenticate).Get("/calendar", entryController.GetCalendar)
	router.With(middlewares.Authenticate).Get("/export.ics", entryController.ExportEntries)
	router.With(middlewares.Authenticate).Get("/{entry_date}", entryController.FindEntriesByDate)
	router.With(middlewares.Authenticate).Put("/{entry_date}/{category}", entryController.SaveEntry)
	router.With(middlewares.Authenticate).Delete("/{entry_date}/{category}", entryController.DeleteEntry)
}
