package notifier

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API
	"github.com/pfrederiksen/picks-scraper/internal/pick"
)

func testPick(player string, confidence int) pick.Pick {
	return pick.Pick{
		Player:     player,
		Sport:      "NFL",
		StatType:   "Pass Yards",
		PropLine:   245.5,
		Pick:       pick.Over,
		Confidence: confidence,
		EV:         pick.ExpectedValue(confidence),
	}
}

func TestFormatPost(t *testing.T) {
	tests := []struct {
		name     string
		pick     pick.Pick
		contains []string
	}{
		{
			name: "complete pick",
			pick: testPick("Josh Allen", 88),
			contains: []string{
				"Josh Allen",
				"Pass Yards",
				"OVER",
				"245.5",
				"Confidence: 88%",
				"EV: +30.4",
				"#NFL",
				"🎯",
			},
		},
		{
			name: "whole number line",
			pick: pick.Pick{Player: "Travis Kelce", StatType: "Receptions", PropLine: 6, Pick: pick.Under, Confidence: 75, EV: 20},
			contains: []string{
				"Receptions UNDER 6\n",
				"#PlayerProps",
			},
		},
		{
			name: "very long player name gets truncated",
			pick: testPick(strings.Repeat("Extremely Long Player Name ", 20), 80),
			contains: []string{
				"...",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatPost(tt.pick)

			if n := utf8.RuneCountInString(got); n > MaxPostLength {
				t.Errorf("FormatPost() length = %d, want <= %d", n, MaxPostLength)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("FormatPost() missing %q in post:\n%s", want, got)
				}
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
		{"🎯🎯🎯🎯🎯🎯", 5, "🎯🎯..."},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := truncate(tt.in, tt.max); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestDryRunNotifier(t *testing.T) {
	var buf bytes.Buffer
	notifier := NewDryRunNotifier(&buf)

	picks := []pick.Pick{testPick("Josh Allen", 90), testPick("Joe Burrow", 82)}

	if err := notifier.Notify(picks); err != nil {
		t.Fatalf("DryRunNotifier.Notify() error = %v, want nil", err)
	}

	out := buf.String()
	for _, want := range []string{"--- Post 1/2 ---", "--- Post 2/2 ---", "Josh Allen", "Joe Burrow", "(Length: "} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

type fakeStatuses struct {
	posts  []string
	failAt int // 1-based; 0 never fails
}

func (f *fakeStatuses) Update(status string, params *twitter.StatusUpdateParams) (*twitter.Tweet, error) {
	f.posts = append(f.posts, status)
	if f.failAt > 0 && len(f.posts) == f.failAt {
		return nil, errors.New("rate limited")
	}
	return &twitter.Tweet{Text: status}, nil
}

func TestTwitterNotifier_Notify(t *testing.T) {
	picks := []pick.Pick{testPick("Josh Allen", 90), testPick("Joe Burrow", 82), testPick("Jalen Hurts", 77)}

	t.Run("posts every pick", func(t *testing.T) {
		statuses := &fakeStatuses{}
		n := &TwitterNotifier{statuses: statuses}

		if err := n.Notify(picks); err != nil {
			t.Fatalf("Notify() error = %v", err)
		}
		if len(statuses.posts) != 3 {
			t.Fatalf("posted %d times, want 3", len(statuses.posts))
		}
		if statuses.posts[0] != FormatPost(picks[0]) {
			t.Errorf("first post = %q, want %q", statuses.posts[0], FormatPost(picks[0]))
		}
	})

	t.Run("stops at first failure", func(t *testing.T) {
		statuses := &fakeStatuses{failAt: 2}
		n := &TwitterNotifier{statuses: statuses}

		err := n.Notify(picks)
		if err == nil {
			t.Fatal("Notify() expected error, got nil")
		}
		if !strings.Contains(err.Error(), "Joe Burrow") {
			t.Errorf("error = %q, should name the failed pick", err)
		}
		if len(statuses.posts) != 2 {
			t.Errorf("posted %d times, want 2", len(statuses.posts))
		}
	})
}

func TestNewTwitterNotifier(t *testing.T) {
	if _, err := NewTwitterNotifier(Credentials{APIKey: "k", APISecret: "s"}); err == nil {
		t.Error("NewTwitterNotifier() expected error for partial credentials, got nil")
	}

	n, err := NewTwitterNotifier(Credentials{APIKey: "k", APISecret: "s", AccessToken: "t", AccessSecret: "a"})
	if err != nil {
		t.Fatalf("NewTwitterNotifier() error = %v", err)
	}
	if n.interval != PostInterval {
		t.Errorf("interval = %v, want %v", n.interval, PostInterval)
	}
}

func TestCredentialsFromEnv(t *testing.T) {
	t.Setenv("TWITTER_API_KEY", "key")
	t.Setenv("TWITTER_API_SECRET", "secret")
	t.Setenv("TWITTER_ACCESS_TOKEN", "token")
	t.Setenv("TWITTER_ACCESS_SECRET", "access")

	creds := CredentialsFromEnv()
	want := Credentials{APIKey: "key", APISecret: "secret", AccessToken: "token", AccessSecret: "access"}
	if creds != want {
		t.Errorf("CredentialsFromEnv() = %+v, want %+v", creds, want)
	}
}
