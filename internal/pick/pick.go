package pick

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"sort"
	"time"
)

// Direction is the recommended side of a prop line
type Direction string

const (
	Over  Direction = "OVER"
	Under Direction = "UNDER"
)

const (
	// DefaultSport is assigned to every pick; the page does not expose the sport per card.
	DefaultSport = "NFL"

	// TimestampLayout is ISO-8601 with microseconds and an explicit UTC offset.
	TimestampLayout = "2006-01-02T15:04:05.000000-07:00"

	minConfidence   = 75
	confidenceRange = 20
)

// Sports is the fixed list advertised in every success document
var Sports = []string{"NFL", "NBA", "MLB", "NHL"}

// Pick is one synthesized recommendation
type Pick struct {
	Player      string    `json:"player"`
	Sport       string    `json:"sport"`
	StatType    string    `json:"statType"`
	PropLine    float64   `json:"propLine"`
	Pick        Direction `json:"pick"`
	Confidence  int       `json:"confidence"`
	Reasoning   string    `json:"reasoning"`
	EV          float64   `json:"ev"`
	LastUpdated string    `json:"lastUpdated"`
}

// StableHash returns the first 8 bytes of the SHA1 of s as an unsigned integer.
// Unlike a runtime-seeded hash, the value is identical across processes.
func StableHash(s string) uint64 {
	sum := sha1.Sum([]byte(s))
	return binary.BigEndian.Uint64(sum[:8])
}

// Confidence is a placeholder score in [75, 94] derived from the player and stat type
func Confidence(player, statType string) int {
	return minConfidence + int(StableHash(player+statType)%confidenceRange)
}

// PickDirection is a placeholder side derived from the player name
func PickDirection(player string) Direction {
	if StableHash(player)%2 == 0 {
		return Over
	}
	return Under
}

// ExpectedValue maps a confidence score onto the placeholder EV scale
func ExpectedValue(confidence int) float64 {
	return float64(confidence-50) * 0.8
}

// Reasoning returns the templated explanation attached to each pick
func Reasoning(statType string) string {
	return fmt.Sprintf("Based on recent %s averages and matchup analysis", statType)
}

// FormatTimestamp formats t in UTC using TimestampLayout
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// NewPick builds a Pick from the three scraped fields
func NewPick(player, statType string, propLine float64, now time.Time) Pick {
	confidence := Confidence(player, statType)
	return Pick{
		Player:      player,
		Sport:       DefaultSport,
		StatType:    statType,
		PropLine:    propLine,
		Pick:        PickDirection(player),
		Confidence:  confidence,
		Reasoning:   Reasoning(statType),
		EV:          ExpectedValue(confidence),
		LastUpdated: FormatTimestamp(now),
	}
}

// Top returns up to n picks ordered by confidence, highest first.
// Ties keep their scraped order. The input slice is not modified.
func Top(picks []Pick, n int) []Pick {
	sorted := make([]Pick, len(picks))
	copy(sorted, picks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Confidence > sorted[j].Confidence
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
