package routers

import (
	"daily-journal-service/internal/app/contracts/mocks"
	"daily-journal-service/internal/app/delivery/http/controllers"
	"daily-journal-service/internal/app/delivery/http/middlewares"
	"daily-journal-service/internal/pkg/dto/requests"
	"daily-journal-service/internal/pkg/dto/responses"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testShareToken = "5f1c0f8e-8a4e-4b8e-9f37-2d3c1a7e9b10"

func TestShareRouter(t *testing.T) {
	sessionService := new(mocks.SessionService)
	sessionService.On("GetSessionData", mock.Anything, testSessionID).Return(testSessionData, nil)

	shareUsecase := new(mocks.ShareUsecase)
	shareController := controllers.NewShareController(zap.NewNop(), shareUsecase)

	m := newTestMiddlewares(sessionService)
	router := newTestRouter(m)
	router.Route("/share-link", func(r chi.Router) { attachShareLinkRoutes(r, m, shareController) })
	router.Route("/encouragements", func(r chi.Router) { attachEncouragementRoutes(r, m, shareController) })
	limiter := middlewares.NewRateLimiter(zap.NewNop(), 2, time.Hour, time.Minute)
	router.Route("/public/encourage/{share_token}", func(r chi.Router) { attachPublicRoutes(r, limiter, shareController) })

	t.Run("Create Share Link", func(t *testing.T) {
		shareUsecase.On("CreateShareLink", mock.Anything, &requests.CreateShareLink{SessionData: testSessionData}).
			Return(&responses.ShareLink{Token: testShareToken, URL: "https://journal.example.com/encourage/" + testShareToken}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/share-link/", nil)
		req.Header.Set("Authorization", bearerToken(t))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Public Page With Malformed Token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/public/encourage/not-a-token/", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		shareUsecase.AssertNotCalled(t, "GetPublicPage", mock.Anything, mock.Anything)
	})

	t.Run("List Encouragements Paginates", func(t *testing.T) {
		shareUsecase.On("ListEncouragements", mock.Anything, &requests.ListEncouragements{
			Page:        2,
			PageSize:    5,
			SessionData: testSessionData,
		}).Return([]responses.Encouragement{{EncouragementID: "m6"}}, 11, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/encouragements/?page=2&page_size=5", nil)
		req.Header.Set("Authorization", bearerToken(t))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var body responses.ResponseDTO
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		require.NotNil(t, body.Pagination)
		assert.Equal(t, 11, body.Pagination.Total)
		assert.Equal(t, "/encouragements/?page=3&page_size=5", body.Pagination.NextURL)
		assert.Equal(t, "/encouragements/?page=1&page_size=5", body.Pagination.PrevURL)
	})

	t.Run("Encouragements Are Throttled Per Client", func(t *testing.T) {
		shareUsecase.On("SendEncouragement", mock.Anything, &requests.SendEncouragement{
			Token:   testShareToken,
			Name:    "Budi",
			Message: "You got this",
		}).Return(&responses.Encouragement{EncouragementID: "m1"}, nil).Twice()

		send := func() *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodPost, "/public/encourage/"+testShareToken+"/messages", jsonBody(t, map[string]string{
				"name":    "Budi",
				"message": "You got this",
			}))
			req.RemoteAddr = "203.0.113.7:51000"
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			return rr
		}

		assert.Equal(t, http.StatusCreated, send().Code)
		assert.Equal(t, http.StatusCreated, send().Code)

		blocked := send()
		assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
		assert.Equal(t, "60", blocked.Header().Get("Retry-After"))
		shareUsecase.AssertNumberOfCalls(t, "SendEncouragement", 2)
	})
}
