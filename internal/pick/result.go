package pick

import (
	"encoding/json"
	"fmt"
	"time"
)

// Status distinguishes the two result shapes
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Result is the document written after each run
type Result struct {
	Timestamp  string
	Status     Status
	TotalPicks int
	Sports     []string
	Picks      []Pick
	Error      string
}

// Success creates a success-shaped result
func Success(picks []Pick, now time.Time) *Result {
	if picks == nil {
		picks = []Pick{}
	}
	sports := make([]string, len(Sports))
	copy(sports, Sports)
	return &Result{
		Timestamp:  FormatTimestamp(now),
		Status:     StatusSuccess,
		TotalPicks: len(picks),
		Sports:     sports,
		Picks:      picks,
	}
}

// Failure creates an error-shaped result carrying err's message
func Failure(err error, now time.Time) *Result {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return &Result{
		Timestamp: FormatTimestamp(now),
		Status:    StatusError,
		Picks:     []Pick{},
		Error:     msg,
	}
}

type successDoc struct {
	Timestamp  string   `json:"timestamp"`
	TotalPicks int      `json:"totalPicks"`
	Sports     []string `json:"sports"`
	Picks      []Pick   `json:"picks"`
	Status     Status   `json:"status"`
}

type errorDoc struct {
	Timestamp string `json:"timestamp"`
	Status    Status `json:"status"`
	Error     string `json:"error"`
	Picks     []Pick `json:"picks"`
}

// MarshalJSON writes the shape that matches r.Status
func (r *Result) MarshalJSON() ([]byte, error) {
	picks := r.Picks
	if picks == nil {
		picks = []Pick{}
	}

	switch r.Status {
	case StatusSuccess:
		return json.Marshal(successDoc{
			Timestamp:  r.Timestamp,
			TotalPicks: len(picks),
			Sports:     r.Sports,
			Picks:      picks,
			Status:     r.Status,
		})
	case StatusError:
		return json.Marshal(errorDoc{
			Timestamp: r.Timestamp,
			Status:    r.Status,
			Error:     r.Error,
			Picks:     []Pick{},
		})
	default:
		return nil, fmt.Errorf("unknown result status: %q", r.Status)
	}
}

// UnmarshalJSON accepts either shape
func (r *Result) UnmarshalJSON(data []byte) error {
	var doc struct {
		Timestamp  string   `json:"timestamp"`
		TotalPicks int      `json:"totalPicks"`
		Sports     []string `json:"sports"`
		Picks      []Pick   `json:"picks"`
		Status     Status   `json:"status"`
		Error      string   `json:"error"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc.Status != StatusSuccess && doc.Status != StatusError {
		return fmt.Errorf("unknown result status: %q", doc.Status)
	}

	*r = Result{
		Timestamp:  doc.Timestamp,
		Status:     doc.Status,
		TotalPicks: doc.TotalPicks,
		Sports:     doc.Sports,
		Picks:      doc.Picks,
		Error:      doc.Error,
	}
	if r.Picks == nil {
		r.Picks = []Pick{}
	}
	return nil
}
