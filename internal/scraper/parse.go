package scraper

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrMissingField is wrapped by CardError when a card lacks a required element
var ErrMissingField = errors.New("element not found")

// Card holds the raw fields read from one projection card
type Card struct {
	Index    int
	Player   string
	StatType string
	Line     float64
}

// CardError describes why a single card was skipped
type CardError struct {
	Index int
	Field string
	Err   error
}

func (e *CardError) Error() string {
	return fmt.Sprintf("card %d: %s: %v", e.Index, e.Field, e.Err)
}

func (e *CardError) Unwrap() error {
	return e.Err
}

// ParseCards reads up to limit cards from a rendered document. Cards that
// cannot be read are returned as CardErrors; they still count toward limit.
// The error return is only set when the document itself can't be parsed.
func ParseCards(r io.Reader, sel Selectors, limit int) ([]Card, []*CardError, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing HTML: %w", err)
	}

	found := doc.Find(sel.Card)
	if limit > 0 && found.Length() > limit {
		found = found.Slice(0, limit)
	}

	cards := make([]Card, 0, found.Length())
	var skipped []*CardError

	found.Each(func(i int, s *goquery.Selection) {
		card, cerr := parseCard(i, s, sel)
		if cerr != nil {
			skipped = append(skipped, cerr)
			return
		}
		cards = append(cards, card)
	})

	return cards, skipped, nil
}

func parseCard(index int, s *goquery.Selection, sel Selectors) (Card, *CardError) {
	player, err := fieldText(s, sel.Player)
	if err != nil {
		return Card{}, &CardError{Index: index, Field: "player-name", Err: err}
	}

	statType, err := fieldText(s, sel.StatType)
	if err != nil {
		return Card{}, &CardError{Index: index, Field: "stat-type", Err: err}
	}

	lineText, err := fieldText(s, sel.Line)
	if err != nil {
		return Card{}, &CardError{Index: index, Field: "line-score", Err: err}
	}

	line, err := parseLine(lineText)
	if err != nil {
		return Card{}, &CardError{Index: index, Field: "line-score", Err: err}
	}

	return Card{
		Index:    index,
		Player:   player,
		StatType: statType,
		Line:     line,
	}, nil
}

// fieldText returns the whitespace-normalized text of the first match
func fieldText(s *goquery.Selection, selector string) (string, error) {
	field := s.Find(selector).First()
	if field.Length() == 0 {
		return "", fmt.Errorf("%w: %s", ErrMissingField, selector)
	}
	return strings.Join(strings.Fields(field.Text()), " "), nil
}

func parseLine(text string) (float64, error) {
	line, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid line %q", text)
	}
	// NaN and Inf can't be written as JSON numbers
	if math.IsNaN(line) || math.IsInf(line, 0) {
		return 0, fmt.Errorf("invalid line %q", text)
	}
	return line, nil
}
