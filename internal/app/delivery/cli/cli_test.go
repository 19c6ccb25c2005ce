package cli

import (
	"bytes"
	"context"
	"daily-journal-service/internal/app/contracts/mocks"
	"daily-journal-service/internal/app/models"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func letterQuotes(n int) []models.Quote {
	quotes := make([]models.Quote, n)
	for i := range quotes {
		quotes[i] = models.Quote{Text: string(rune('A' + i))}
	}
	return quotes
}

func TestQuoteCommand(t *testing.T) {
	t.Run("Date From Quote File", func(t *testing.T) {
		var lines []string
		for _, q := range letterQuotes(7) {
			lines = append(lines, "  - text: "+q.Text)
		}
		path := filepath.Join(t.TempDir(), "quotes.yaml")
		require.NoError(t, os.WriteFile(path, []byte("quotes:\n"+strings.Join(lines, "\n")+"\n"), 0o600))

		var out bytes.Buffer
		cmd := NewRootCommand(&out)
		cmd.SetArgs([]string{"quote", "--date", "2024-12-31", "--file", path})

		require.NoError(t, cmd.Execute())
		assert.Equal(t, "2024-12-31  [2024-11-31 #2]\nC\n", out.String())
	})

	t.Run("Bundled List", func(t *testing.T) {
		var out bytes.Buffer
		cmd := NewRootCommand(&out)
		cmd.SetArgs([]string{"quote", "--date", "2024-12-31"})

		require.NoError(t, cmd.Execute())
		assert.True(t, strings.HasPrefix(out.String(), "2024-12-31  [2024-11-31 #28]\n"), out.String())
	})

	t.Run("Malformed Date", func(t *testing.T) {
		var out bytes.Buffer
		cmd := NewRootCommand(&out)
		cmd.SetArgs([]string{"quote", "--date", "31-12-2024"})

		assert.Error(t, cmd.Execute())
	})
}

func TestSeedCommandRequiresEmail(t *testing.T) {
	var out bytes.Buffer
	cmd := NewRootCommand(&out)
	cmd.SetArgs([]string{"seed"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--email")
}

func newTestSeeder() (*entrySeeder, *mocks.UserRepository, *mocks.EntryRepository) {
	userRepo := new(mocks.UserRepository)
	entryRepo := new(mocks.EntryRepository)
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &entrySeeder{
		users:      userRepo,
		entries:    entryRepo,
		candidates: letterQuotes(5),
		location:   time.UTC,
		log:        log,
		now:        func() time.Time { return time.Date(2024, time.January, 15, 18, 0, 0, 0, time.UTC) },
	}, userRepo, entryRepo
}

func TestEntrySeeder(t *testing.T) {
	ctx := context.Background()

	t.Run("Deterministic Entries", func(t *testing.T) {
		seeder, userRepo, entryRepo := newTestSeeder()
		userRepo.On("FindByEmail", ctx, "rina@example.com").Return(&models.User{ID: "u1"}, nil)

		var saved []*models.Entry
		entryRepo.On("UpsertEntry", ctx, mock.AnythingOfType("*models.Entry")).
			Run(func(args mock.Arguments) { saved = append(saved, args.Get(1).(*models.Entry)) }).
			Return(&models.Entry{}, nil)

		written, err := seeder.Seed(ctx, "rina@example.com", 3)

		require.NoError(t, err)
		assert.Equal(t, 2, written)
		require.Len(t, saved, 2)
		assert.Equal(t, "2024-01-13", saved[0].EntryDate)
		assert.Equal(t, "mindfulness", saved[0].Category)
		assert.Equal(t, "A quiet moment today: D", saved[0].Content)
		assert.Equal(t, "2024-01-14", saved[1].EntryDate)
		assert.Equal(t, "A quiet moment today: B", saved[1].Content)
		for _, entry := range saved {
			assert.Equal(t, "u1", entry.UserID)
		}
	})

	t.Run("Unknown Account", func(t *testing.T) {
		seeder, userRepo, entryRepo := newTestSeeder()
		userRepo.On("FindByEmail", ctx, "nobody@example.com").Return(nil, nil)

		_, err := seeder.Seed(ctx, "nobody@example.com", 3)

		assert.Error(t, err)
		entryRepo.AssertNotCalled(t, "UpsertEntry", mock.Anything, mock.Anything)
	})
}
