package probe

import (
	"fmt"
	"net/url"
	"time"

	"pingline/internal/latency"
)

// Config drives one probe sequence.
type Config struct {
	URL       string
	Count     int
	TimeoutMs int
	DelayMs   int
}

// Validate fails fast before any request is issued. The CLI/env layer
// normally hands over sane values; this is the contract boundary.
func (c Config) Validate() error {
	u, err := url.Parse(c.URL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("invalid target URL %q", c.URL)
	}
	if c.Count < 1 {
		return fmt.Errorf("request count must be positive, got %d", c.Count)
	}
	if c.TimeoutMs < 1 {
		return fmt.Errorf("timeout must be positive, got %dms", c.TimeoutMs)
	}
	if c.DelayMs < 0 {
		return fmt.Errorf("delay must be non-negative, got %dms", c.DelayMs)
	}
	return nil
}

// Outcome is the record of one timed HTTP attempt. Latency is always
// populated, even on failure (time until the failure was detected).
// Category is set only on success; ErrorMessage only on failure.
type Outcome struct {
	RequestNumber int          `json:"requestNumber"`
	Latency       int64        `json:"latency"`
	Timestamp     time.Time    `json:"timestamp"`
	StatusCode    int          `json:"statusCode"`
	Success       bool         `json:"success"`
	ErrorMessage  string       `json:"errorMessage,omitempty"`
	Category      latency.Tier `json:"category,omitempty"`
}

// Observer receives progress notifications during a sequence. All methods
// are called from the sequence goroutine; a nil observer is valid.
type Observer interface {
	RequestStarted(number, total int)
	RequestFinished(o Outcome)
}
