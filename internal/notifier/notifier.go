package notifier

import (
	"github.com/pfrederiksen/picks-scraper/internal/pick"
)

// Notifier defines the interface for posting pick announcements
type Notifier interface {
	// Notify posts one announcement per pick
	Notify(picks []pick.Pick) error
}
