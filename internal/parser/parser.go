package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kpauljoseph/cardprint/pkg/models"
)

const formatErrorMessage = "Invalid card format. Expected terms and definitions separated by a tab and rows to be separated by new line."

// ErrEmptyDelimiter is returned when either export separator is empty.
var ErrEmptyDelimiter = errors.New("export delimiters must not be empty")

// FormatError reports a line that did not split into exactly one term and
// one definition. Line is 1-based.
type FormatError struct {
	Line  int
	Parts int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s (line %d has %d parts)", formatErrorMessage, e.Line, e.Parts)
}

// Parse splits text using the default export settings.
func Parse(text string) ([]models.Card, error) {
	return ParseWith(text, models.DefaultExportSettings())
}

// ParseWith splits text into cards. Any malformed line aborts the whole
// parse and no cards are returned.
func ParseWith(text string, settings models.ExportSettings) ([]models.Card, error) {
	if settings.BetweenCards == "" || settings.BetweenTermAndDefinition == "" {
		return nil, ErrEmptyDelimiter
	}

	lines := strings.Split(text, settings.BetweenCards)
	cards := make([]models.Card, 0, len(lines))
	for i, line := range lines {
		parts := strings.Split(line, settings.BetweenTermAndDefinition)
		if len(parts) != 2 {
			return nil, &FormatError{Line: i + 1, Parts: len(parts)}
		}
		cards = append(cards, models.Card{Front: parts[0], Back: parts[1]})
	}

	return cards, nil
}

// IsBlank reports whether text holds nothing but whitespace, i.e. the user
// has not pasted a set yet.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
