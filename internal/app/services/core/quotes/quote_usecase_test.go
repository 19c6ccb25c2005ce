package quotes

import (
	"context"
	"daily-journal-service/internal/app/config"
	"daily-journal-service/internal/app/models"
	"daily-journal-service/internal/pkg/dto/requests"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func numberedQuotes(n int) []models.Quote {
	quotes := make([]models.Quote, n)
	for i := range quotes {
		quotes[i] = models.Quote{Text: string(rune('A' + i))}
	}
	return quotes
}

func newTestQuoteUsecase(t *testing.T, n int, loc *time.Location, now time.Time) *quoteUsecase {
	t.Helper()
	uc, err := NewQuoteUsecase(numberedQuotes(n), &config.InternalConfig{App: config.App{Location: loc}}, zap.NewNop())
	require.NoError(t, err)
	impl := uc.(*quoteUsecase)
	impl.now = func() time.Time { return now }
	return impl
}

func TestGetTodayQuote(t *testing.T) {
	uc := newTestQuoteUsecase(t, 5, time.UTC, time.Date(2024, time.January, 15, 9, 30, 0, 0, time.UTC))

	quote, err := uc.GetTodayQuote(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", quote.Date)
	assert.Equal(t, "2024-0-15", quote.DateKey)
	assert.Equal(t, 3, quote.Index)
	assert.Equal(t, "D", quote.Text)
}

func TestGetTodayQuoteUsesServiceTimezone(t *testing.T) {
	wib := time.FixedZone("WIB", 7*60*60)
	// 20:00 UTC on the 14th is already the 15th in WIB.
	uc := newTestQuoteUsecase(t, 5, wib, time.Date(2024, time.January, 14, 20, 0, 0, 0, time.UTC))

	quote, err := uc.GetTodayQuote(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "2024-0-15", quote.DateKey)
	assert.Equal(t, 3, quote.Index)
}

func TestGetQuoteByDate(t *testing.T) {
	uc := newTestQuoteUsecase(t, 7, time.UTC, time.Now())

	quote, err := uc.GetQuoteByDate(context.Background(), &requests.GetQuoteByDate{Date: "2024-12-31"})

	require.NoError(t, err)
	assert.Equal(t, "2024-11-31", quote.DateKey)
	assert.Equal(t, 2, quote.Index)
	assert.Equal(t, "C", quote.Text)
}

func TestRefreshReportsDayChange(t *testing.T) {
	uc := newTestQuoteUsecase(t, 5, time.UTC, time.Now())

	first, changed := uc.Refresh(time.Date(2024, time.January, 1, 0, 0, 1, 0, time.UTC))
	assert.True(t, changed)
	assert.Equal(t, 4, first.Index)

	_, changed = uc.Refresh(time.Date(2024, time.January, 1, 23, 59, 59, 0, time.UTC))
	assert.False(t, changed, "same calendar day keeps the memoized quote")

	second, changed := uc.Refresh(time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC))
	assert.True(t, changed)
	assert.Equal(t, 3, second.Index)
}

func TestNewQuoteUsecaseEmptyCandidates(t *testing.T) {
	_, err := NewQuoteUsecase(nil, &config.InternalConfig{}, zap.NewNop())
	assert.Error(t, err)
}

func TestLoadQuotes(t *testing.T) {
	t.Run("Bundled List", func(t *testing.T) {
		quotes, err := LoadQuotes("")
		require.NoError(t, err)
		assert.NotEmpty(t, quotes)
		for _, quote := range quotes {
			assert.NotEmpty(t, quote.Text)
		}
	})

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "quotes.yaml")
		content := "quotes:\n  - text: \"  Keep going.  \"\n    author: Someone\n  - text: Breathe.\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		quotes, err := LoadQuotes(path)
		require.NoError(t, err)
		assert.Equal(t, []models.Quote{
			{Text: "Keep going.", Author: "Someone"},
			{Text: "Breathe."},
		}, quotes)
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := LoadQuotes(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestParseQuotesRejectsBadInput(t *testing.T) {
	tests := map[string]string{
		"Empty List":  "quotes: []\n",
		"Blank Text":  "quotes:\n  - text: \"   \"\n",
		"Broken YAML": "quotes: [\n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseQuotes([]byte(input))
			assert.Error(t, err)
		})
	}
}
