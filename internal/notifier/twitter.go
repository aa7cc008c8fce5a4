package notifier

import (
	"fmt"
	"os"
	"time"

	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API
	"github.com/dghubble/oauth1"
	"github.com/pfrederiksen/picks-scraper/internal/pick"
)

// PostInterval spaces out consecutive posts
const PostInterval = 2 * time.Second

// statusUpdater is the part of the Twitter client used for posting
type statusUpdater interface {
	Update(status string, params *twitter.StatusUpdateParams) (*twitter.Tweet, error)
}

// TwitterNotifier posts picks to Twitter
type TwitterNotifier struct {
	statuses statusUpdater
	interval time.Duration
}

// Credentials holds OAuth1 user credentials
type Credentials struct {
	APIKey       string
	APISecret    string
	AccessToken  string
	AccessSecret string
}

// CredentialsFromEnv reads TWITTER_API_KEY, TWITTER_API_SECRET,
// TWITTER_ACCESS_TOKEN and TWITTER_ACCESS_SECRET
func CredentialsFromEnv() Credentials {
	return Credentials{
		APIKey:       os.Getenv("TWITTER_API_KEY"),
		APISecret:    os.Getenv("TWITTER_API_SECRET"),
		AccessToken:  os.Getenv("TWITTER_ACCESS_TOKEN"),
		AccessSecret: os.Getenv("TWITTER_ACCESS_SECRET"),
	}
}

// NewTwitterNotifier creates a notifier authenticated with creds
func NewTwitterNotifier(creds Credentials) (*TwitterNotifier, error) {
	if creds.APIKey == "" || creds.APISecret == "" || creds.AccessToken == "" || creds.AccessSecret == "" {
		return nil, fmt.Errorf("missing required Twitter credentials in environment variables")
	}

	config := oauth1.NewConfig(creds.APIKey, creds.APISecret)
	token := oauth1.NewToken(creds.AccessToken, creds.AccessSecret)
	client := twitter.NewClient(config.Client(oauth1.NoContext, token))

	return &TwitterNotifier{
		statuses: &statusService{client: client},
		interval: PostInterval,
	}, nil
}

// statusService adapts the client's status service to statusUpdater
type statusService struct {
	client *twitter.Client
}

func (s *statusService) Update(status string, params *twitter.StatusUpdateParams) (*twitter.Tweet, error) {
	tweet, _, err := s.client.Statuses.Update(status, params)
	return tweet, err
}

// Notify posts one tweet per pick, stopping at the first failure
func (n *TwitterNotifier) Notify(picks []pick.Pick) error {
	for i, p := range picks {
		if _, err := n.statuses.Update(FormatPost(p), nil); err != nil {
			return fmt.Errorf("posting pick for %s: %w", p.Player, err)
		}

		if i < len(picks)-1 && n.interval > 0 {
			time.Sleep(n.interval)
		}
	}
	return nil
}
