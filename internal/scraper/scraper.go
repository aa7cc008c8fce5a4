package scraper

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pfrederiksen/picks-scraper/internal/logger"
	"github.com/pfrederiksen/picks-scraper/internal/pick"
)

// Session is the browser surface a run needs. *browser.Session implements it.
type Session interface {
	Navigate(url string, timeout time.Duration) error
	ClickWhenReady(selector string, timeout time.Duration) error
	WaitPresent(selector string, timeout time.Duration) error
	HTML(timeout time.Duration) (string, error)
	Close() error
}

// Launcher starts a new browser session
type Launcher func(ctx context.Context) (Session, error)

// Scraper runs board scrapes
type Scraper struct {
	cfg    Config
	launch Launcher
	log    *logger.Logger
	now    func() time.Time
}

// New creates a Scraper. log may be nil to use the default logger.
func New(cfg Config, launch Launcher, log *logger.Logger) (*Scraper, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if launch == nil {
		return nil, errors.New("launcher is required")
	}
	if log == nil {
		log = logger.Default()
	}

	return &Scraper{
		cfg:    cfg,
		launch: launch,
		log:    log,
		now:    time.Now,
	}, nil
}

// Run performs one scrape and always returns a result document.
// A failure anywhere outside per-card parsing produces an error-shaped result.
func (s *Scraper) Run(ctx context.Context) *pick.Result {
	start := time.Now()
	log := s.log.With(logger.Fields{"run_id": uuid.NewString()})

	logger.IncrCounter("scrape.runs")
	log.Info("Starting scrape", logger.Fields{"url": s.cfg.URL, "limit": s.cfg.Limit})

	picks, err := s.scrape(ctx, log)
	logger.RecordTiming("scrape.duration", time.Since(start))

	if err != nil {
		logger.IncrCounter("scrape.failures")
		log.Error("Scrape failed", logger.Fields{"url": s.cfg.URL}, err)
		return pick.Failure(err, s.now())
	}

	logger.SetGauge("scrape.picks", float64(len(picks)))
	log.Info("Scrape complete", logger.Fields{
		"picks":    len(picks),
		"duration": time.Since(start).String(),
	})
	return pick.Success(picks, s.now())
}

func (s *Scraper) scrape(ctx context.Context, log *logger.Logger) ([]pick.Pick, error) {
	sel := s.cfg.Selectors

	session, err := s.launch(ctx)
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			log.Warn("Closing browser", nil, cerr)
		}
	}()

	if err := session.Navigate(s.cfg.URL, s.cfg.NavigationTimeout); err != nil {
		return nil, fmt.Errorf("navigating to %s: %w", s.cfg.URL, err)
	}

	// The promo popup is optional, so any failure here is fine
	if err := session.ClickWhenReady(sel.Popup, s.cfg.WaitTimeout); err != nil {
		log.Debug("No popup dismissed", logger.Fields{"selector": sel.Popup, "reason": err.Error()})
	} else {
		log.Debug("Dismissed popup", logger.Fields{"selector": sel.Popup})
		if err := sleep(ctx, s.cfg.PopupPause); err != nil {
			return nil, err
		}
	}

	if err := session.WaitPresent(sel.Ready, s.cfg.WaitTimeout); err != nil {
		return nil, fmt.Errorf("waiting for %s: %w", sel.Ready, err)
	}
	if err := sleep(ctx, s.cfg.Settle); err != nil {
		return nil, err
	}

	html, err := session.HTML(s.cfg.WaitTimeout)
	if err != nil {
		return nil, fmt.Errorf("reading page: %w", err)
	}

	cards, skipped, err := ParseCards(strings.NewReader(html), sel, s.cfg.Limit)
	if err != nil {
		return nil, err
	}

	logger.AddCounter("scrape.cards_seen", int64(len(cards)+len(skipped)))
	logger.AddCounter("scrape.cards_skipped", int64(len(skipped)))
	for _, cerr := range skipped {
		log.Warn("Skipping card", logger.Fields{"index": cerr.Index, "field": cerr.Field}, cerr)
	}

	picks := make([]pick.Pick, 0, len(cards))
	for _, card := range cards {
		picks = append(picks, pick.NewPick(card.Player, card.StatType, card.Line, s.now()))
	}
	return picks, nil
}

// sleep pauses for d unless ctx ends first
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("interrupted: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}
