package browser

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/chromedp"
)

const (
	// UserAgent is a desktop Chrome UA; the target page serves a reduced app to headless UAs
	UserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	WindowWidth  = 1920
	WindowHeight = 1080
)

// Options configures the launched browser
type Options struct {
	Headless  bool
	UserAgent string
	Width     int
	Height    int
	// ExecPath overrides Chrome discovery when set
	ExecPath string
}

// DefaultOptions returns the fixed scrape configuration
func DefaultOptions() Options {
	return Options{
		Headless:  true,
		UserAgent: UserAgent,
		Width:     WindowWidth,
		Height:    WindowHeight,
	}
}

func (o Options) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", o.Headless),
		chromedp.NoSandbox,
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.DisableGPU,
		chromedp.WindowSize(o.Width, o.Height),
	)
	if o.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(o.UserAgent))
	}
	if o.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(o.ExecPath))
	}
	return opts
}

// Session is one running browser with a single tab
type Session struct {
	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc

	closeOnce sync.Once
	closeErr  error
}

// Launch starts Chrome and opens a tab. Cancelling ctx tears the browser down.
func Launch(ctx context.Context, opts Options) (*Session, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts.allocatorOptions()...)
	tabCtx, cancel := chromedp.NewContext(allocCtx)

	s := &Session{
		ctx:         tabCtx,
		cancel:      cancel,
		allocCancel: allocCancel,
	}

	// The first Run starts the browser process and ties it to the context it
	// is given, so it must not carry a timeout of its own.
	if err := chromedp.Run(tabCtx); err != nil {
		s.Close()
		return nil, fmt.Errorf("starting chrome: %w", err)
	}

	return s, nil
}

func (s *Session) run(timeout time.Duration, actions ...chromedp.Action) error {
	ctx, cancel := context.WithTimeout(s.ctx, timeout)
	defer cancel()
	return chromedp.Run(ctx, actions...)
}

// Navigate loads url and waits for the document to finish loading
func (s *Session) Navigate(url string, timeout time.Duration) error {
	return s.run(timeout, chromedp.Navigate(url))
}

// ClickWhenReady waits for selector to be visible and enabled, then clicks it
func (s *Session) ClickWhenReady(selector string, timeout time.Duration) error {
	return s.run(timeout,
		chromedp.WaitVisible(selector, chromedp.ByQuery),
		chromedp.WaitEnabled(selector, chromedp.ByQuery),
		chromedp.Click(selector, chromedp.ByQuery, chromedp.NodeVisible),
	)
}

// WaitPresent waits for selector to exist in the DOM
func (s *Session) WaitPresent(selector string, timeout time.Duration) error {
	return s.run(timeout, chromedp.WaitReady(selector, chromedp.ByQuery))
}

// HTML returns the rendered document
func (s *Session) HTML(timeout time.Duration) (string, error) {
	var html string
	if err := s.run(timeout, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", err
	}
	return html, nil
}

// Close shuts the browser down. Only the first call does any work.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = chromedp.Cancel(s.ctx)
		s.cancel()
		s.allocCancel()
	})
	return s.closeErr
}
