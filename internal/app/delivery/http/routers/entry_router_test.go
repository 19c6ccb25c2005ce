package routers

import (
	"daily-journal-service/internal/app/config"
	"daily-journal-service/internal/app/contracts/mocks"
	"daily-journal-service/internal/app/delivery/http/controllers"
	"daily-journal-service/internal/pkg/dto/requests"
	"daily-journal-service/internal/pkg/dto/responses"
	"daily-journal-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestEntryRouter(t *testing.T) {
	sessionService := new(mocks.SessionService)
	sessionService.On("GetSessionData", mock.Anything, testSessionID).Return(testSessionData, nil)

	entryUsecase := new(mocks.EntryUsecase)
	entryController := controllers.NewEntryController(zap.NewNop(), entryUsecase, &config.InternalConfig{
		App: config.App{Location: time.UTC},
	})

	m := newTestMiddlewares(sessionService)
	router := newTestRouter(m)
	attachEntryRoutes(router, m, entryController)

	t.Run("Save Entry", func(t *testing.T) {
		entryUsecase.On("SaveEntry", mock.Anything, &requests.SaveEntry{
			Content:     "Read two chapters",
			EntryDate:   "2024-01-15",
			Category:    "learning",
			SessionData: testSessionData,
		}).Return(&responses.Entry{EntryID: "e1", EntryDate: "2024-01-15", Category: "learning"}, nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/2024-01-15/Learning", jsonBody(t, map[string]string{
			"content": "  Read two chapters ",
		}))
		req.Header.Set("Authorization", bearerToken(t))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 for a valid entry")
		entryUsecase.AssertExpectations(t)
	})

	t.Run("Save Entry With Unknown Category", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/2024-01-15/cooking", jsonBody(t, map[string]string{
			"content": "Pasta",
		}))
		req.Header.Set("Authorization", bearerToken(t))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Save Entry In The Future", func(t *testing.T) {
		entryUsecase.On("SaveEntry", mock.Anything, mock.MatchedBy(func(r *requests.SaveEntry) bool {
			return r.EntryDate == "2999-01-01"
		})).Return(nil, exceptions.ErrEntryDateInFuture(nil)).Once()

		req := httptest.NewRequest(http.MethodPut, "/2999-01-01/exercise", jsonBody(t, map[string]string{
			"content": "Run",
		}))
		req.Header.Set("Authorization", bearerToken(t))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Find Entries By Malformed Date", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/15-01-2024", nil)
		req.Header.Set("Authorization", bearerToken(t))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Calendar Rejects Month Out Of Range", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/calendar?year=2024&month=13", nil)
		req.Header.Set("Authorization", bearerToken(t))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		entryUsecase.AssertNotCalled(t, "GetCalendar", mock.Anything, mock.Anything)
	})

	t.Run("Export Entries", func(t *testing.T) {
		entryUsecase.On("ExportEntries", mock.Anything, &requests.ExportEntries{
			Year:        2024,
			SessionData: testSessionData,
		}).Return([]byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"), nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/export.ics?year=2024", nil)
		req.Header.Set("Authorization", bearerToken(t))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "text/calendar; charset=utf-8", rr.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="journal-2024.ics"`, rr.Header().Get("Content-Disposition"))
		assert.Contains(t, rr.Body.String(), "BEGIN:VCALENDAR")
	})

	t.Run("Delete Missing Entry", func(t *testing.T) {
		entryUsecase.On("DeleteEntry", mock.Anything, &requests.DeleteEntry{
			EntryDate:   "2024-01-10",
			Category:    "mindfulness",
			SessionData: testSessionData,
		}).Return(exceptions.ErrEntryNotExist(nil)).Once()

		req := httptest.NewRequest(http.MethodDelete, "/2024-01-10/mindfulness", nil)
		req.Header.Set("Authorization", bearerToken(t))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
