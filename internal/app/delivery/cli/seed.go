package cli

import (
	"context"
	"daily-journal-service/internal/app/config"
	"daily-journal-service/internal/app/contracts"
	"daily-journal-service/internal/app/drivers/database"
	"daily-journal-service/internal/app/models"
	"daily-journal-service/internal/app/services/core/entries"
	"daily-journal-service/internal/app/services/core/quotes"
	"daily-journal-service/internal/app/services/core/users"
	"daily-journal-service/internal/pkg/constvars"
	"daily-journal-service/internal/pkg/dailyselect"
	"daily-journal-service/internal/pkg/utils"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type seedOptions struct {
	email string
	days  int
}

var seedPrompts = map[string]string{
	constvars.CategoryLearning:    "Something I learned today",
	constvars.CategoryExercise:    "How I moved today",
	constvars.CategoryMindfulness: "A quiet moment today",
}

// NewSeedCommand fills the journal of an existing account with sample entries.
func NewSeedCommand(root *RootOptions) *cobra.Command {
	opts := &seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert sample entries for an existing user",
		Long: `Populate the journal of an existing account with sample entries ending today.

Content is derived from the bundled quote list keyed by date, so running the
command twice writes the same entries.`,
		Example: `  journalctl seed --email rina@example.com
  journalctl seed --email rina@example.com --days 90`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(opts.email) == "" {
				return errors.New("--email is required")
			}
			if opts.days <= 0 {
				return fmt.Errorf("--days must be positive, got %d", opts.days)
			}

			driverConfig := config.NewDriverConfig()
			internalConfig := config.NewInternalConfig()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			db := database.NewMongoDB(ctx, driverConfig)
			defer db.Client().Disconnect(context.Background())

			candidates, err := quotes.LoadQuotes(internalConfig.Quote.FilePath)
			if err != nil {
				return err
			}

			seeder := &entrySeeder{
				users:      users.NewUserMongoRepository(db),
				entries:    entries.NewEntryMongoRepository(db),
				candidates: candidates,
				location:   internalConfig.App.Location,
				log:        root.logger(),
				now:        time.Now,
			}
			written, err := seeder.Seed(ctx, strings.ToLower(strings.TrimSpace(opts.email)), opts.days)
			if err != nil {
				return err
			}
			fmt.Fprintf(root.Out, "seeded %d entries for %s\n", written, opts.email)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.email, "email", "", "email of the account to seed")
	cmd.Flags().IntVar(&opts.days, "days", 30, "number of days ending today")

	return cmd
}

type entrySeeder struct {
	users      contracts.UserRepository
	entries    contracts.EntryRepository
	candidates []models.Quote
	location   *time.Location
	log        *logrus.Logger
	now        func() time.Time
}

// Seed writes entries for the given number of days ending today. A category is
// skipped on a day when the selector for that day and category lands on a multiple
// of four, which leaves realistic gaps in the calendar.
func (s *entrySeeder) Seed(ctx context.Context, email string, days int) (int, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, fmt.Errorf("no account registered with email %s", email)
	}

	location := s.location
	if location == nil {
		location = time.UTC
	}
	today := utils.StartOfDay(s.now(), location)
	stamp := s.now()

	written := 0
	for offset := days - 1; offset >= 0; offset-- {
		day := today.AddDate(0, 0, -offset)
		dateKey := dailyselect.DateKey(day)

		for _, category := range constvars.EntryCategories {
			quote, index, err := dailyselect.SelectIndexed(dateKey+"/"+category, s.candidates)
			if err != nil {
				return written, err
			}
			if index%4 == 0 {
				continue
			}

			entry := &models.Entry{
				UserID:    user.ID,
				EntryDate: utils.FormatDate(day),
				Category:  category,
				Content:   fmt.Sprintf("%s: %s", seedPrompts[category], quote.Text),
			}
			entry.SetCreatedAtUpdatedAt(stamp)

			if _, err := s.entries.UpsertEntry(ctx, entry); err != nil {
				return written, err
			}
			written++

			s.log.WithFields(logrus.Fields{
				"entry_date": entry.EntryDate,
				"category":   category,
			}).Debug("entry seeded")
		}
	}

	s.log.WithFields(logrus.Fields{
		"user_id": user.ID,
		"days":    days,
		"entries": written,
	}).Info("seed completed")

	return written, nil
}
