package quotes

import (
	"daily-journal-service/internal/app/models"
	"daily-journal-service/internal/pkg/exceptions"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default_quotes.yaml
var defaultQuotesYAML []byte

type quoteFile struct {
	Quotes []models.Quote `yaml:"quotes"`
}

// LoadQuotes reads the candidate list from path, or from the bundled list when path is
// empty. Order is preserved; it determines every day's pick.
func LoadQuotes(path string) ([]models.Quote, error) {
	if path == "" {
		return ParseQuotes(defaultQuotesYAML)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, exceptions.ErrQuoteFileInvalid(err)
	}
	return ParseQuotes(data)
}

func ParseQuotes(data []byte) ([]models.Quote, error) {
	var file quoteFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, exceptions.ErrQuoteFileInvalid(err)
	}

	if len(file.Quotes) == 0 {
		return nil, exceptions.ErrQuoteCandidatesEmpty(nil)
	}

	for i := range file.Quotes {
		file.Quotes[i].Text = strings.TrimSpace(file.Quotes[i].Text)
		file.Quotes[i].Author = strings.TrimSpace(file.Quotes[i].Author)
		if file.Quotes[i].Text == "" {
			return nil, exceptions.ErrQuoteFileInvalid(fmt.Errorf("quote %d has no text", i))
		}
	}
	return file.Quotes, nil
}
