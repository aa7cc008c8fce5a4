package scraper

import (
	"errors"
	"fmt"
	"time"
)

const (
	BoardURL = "https://app.prizepicks.com/"

	DefaultLimit             = 50
	DefaultWaitTimeout       = 15 * time.Second
	DefaultNavigationTimeout = 60 * time.Second
	DefaultPopupPause        = 1 * time.Second
	DefaultSettle            = 3 * time.Second
)

// Selectors locates the elements read from the board
type Selectors struct {
	Popup    string
	Ready    string
	Card     string
	Player   string
	StatType string
	Line     string
}

// DefaultSelectors matches the current board markup
func DefaultSelectors() Selectors {
	return Selectors{
		Popup:    ".close",
		Ready:    "[data-testid='projection-card']",
		Card:     "[data-testid='projection-card']",
		Player:   "[data-testid='player-name']",
		StatType: "[data-testid='stat-type']",
		Line:     "[data-testid='line-score']",
	}
}

// Config controls a scrape run
type Config struct {
	URL       string
	Selectors Selectors
	// Limit caps how many cards are read, applied before malformed cards are skipped
	Limit             int
	WaitTimeout       time.Duration
	NavigationTimeout time.Duration
	PopupPause        time.Duration
	Settle            time.Duration
}

// DefaultConfig returns the configuration used when no flags are given
func DefaultConfig() Config {
	return Config{
		URL:               BoardURL,
		Selectors:         DefaultSelectors(),
		Limit:             DefaultLimit,
		WaitTimeout:       DefaultWaitTimeout,
		NavigationTimeout: DefaultNavigationTimeout,
		PopupPause:        DefaultPopupPause,
		Settle:            DefaultSettle,
	}
}

// Validate reports the first problem with c
func (c Config) Validate() error {
	if c.URL == "" {
		return errors.New("url is required")
	}
	if c.Limit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", c.Limit)
	}
	if c.WaitTimeout <= 0 || c.NavigationTimeout <= 0 {
		return errors.New("timeouts must be positive")
	}
	if c.PopupPause < 0 || c.Settle < 0 {
		return errors.New("pauses must not be negative")
	}

	sel := c.Selectors
	for name, v := range map[string]string{
		"popup":     sel.Popup,
		"ready":     sel.Ready,
		"card":      sel.Card,
		"player":    sel.Player,
		"stat-type": sel.StatType,
		"line":      sel.Line,
	} {
		if v == "" {
			return fmt.Errorf("%s selector is required", name)
		}
	}
	return nil
}
