package utils

import (
	"daily-journal-service/internal/pkg/constvars"
	"daily-journal-service/internal/pkg/exceptions"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type errorBody struct {
	Success    bool                  `json:"success"`
	Message    string                `json:"message"`
	DevMessage string                `json:"dev_message"`
	Locations  []exceptions.Location `json:"locations"`
}

func TestBuildErrorResponse(t *testing.T) {
	t.Run("Custom Error In Development", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		rec := httptest.NewRecorder()

		BuildErrorResponse(zap.NewNop(), rec, exceptions.ErrEntryNotExist(nil))

		assert.Equal(t, constvars.StatusNotFound, rec.Code)
		var body errorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, constvars.ErrClientEntryNotFound, body.Message)
		assert.Equal(t, constvars.ErrDevEntryNotExists, body.DevMessage)
		assert.NotEmpty(t, body.Locations, "locations should be exposed outside production")
	})

	t.Run("Custom Error In Production", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		rec := httptest.NewRecorder()

		BuildErrorResponse(zap.NewNop(), rec, exceptions.ErrEntryNotExist(nil))

		var body errorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Empty(t, body.DevMessage, "dev message should be hidden in production")
		assert.Empty(t, body.Locations, "locations should be hidden in production")
	})

	t.Run("Plain Error", func(t *testing.T) {
		rec := httptest.NewRecorder()

		BuildErrorResponse(zap.NewNop(), rec, errors.New("boom"))

		assert.Equal(t, constvars.StatusInternalServerError, rec.Code)
		assert.Equal(t, constvars.MIMEApplicationJSON, rec.Header().Get(constvars.HeaderContentType))
	})
}

func TestBuildPaginationResponse(t *testing.T) {
	t.Run("First Page", func(t *testing.T) {
		p := BuildPaginationResponse(25, 1, 10, "/api/v1/encouragements")
		assert.Equal(t, "/api/v1/encouragements?page=2&page_size=10", p.NextURL)
		assert.Empty(t, p.PrevURL)
		assert.Equal(t, 3, p.TotalPages)
	})

	t.Run("Last Page", func(t *testing.T) {
		p := BuildPaginationResponse(25, 3, 10, "/api/v1/encouragements")
		assert.Empty(t, p.NextURL)
		assert.Equal(t, "/api/v1/encouragements?page=2&page_size=10", p.PrevURL)
	})

	t.Run("Exact Fit", func(t *testing.T) {
		p := BuildPaginationResponse(20, 2, 10, "/x")
		assert.Empty(t, p.NextURL, "no next page when the last page is full")
		assert.Equal(t, 2, p.TotalPages)
	})
}
