package storage

import (
	"time"

	"github.com/google/uuid"

	"pingline/internal/latency"
	"pingline/internal/probe"
	"pingline/internal/stats"
)

// RunConfig is the configuration snapshot embedded in a session record.
type RunConfig struct {
	RequestCount int `json:"requestCount"`
	Timeout      int `json:"timeout"`
	DelayMs      int `json:"delayMs"`
}

// SessionRecord is one full sequential run, as persisted to the log
// store. Immutable once constructed.
type SessionRecord struct {
	SessionID          string           `json:"sessionId"`
	Timestamp          time.Time        `json:"timestamp"`
	APIURL             string           `json:"apiUrl"`
	Configuration      RunConfig        `json:"configuration"`
	EvaluationCriteria latency.Criteria `json:"evaluationCriteria"`
	Results            []probe.Outcome  `json:"results"`
	Summary            stats.Summary    `json:"summary"`
}

// NewRecord assembles a session record with a fresh random session ID.
// startedAt is the instant the sequence began.
func NewRecord(apiURL string, startedAt time.Time, cfg RunConfig, results []probe.Outcome, summary stats.Summary) SessionRecord {
	return SessionRecord{
		SessionID:          uuid.NewString(),
		Timestamp:          startedAt,
		APIURL:             apiURL,
		Configuration:      cfg,
		EvaluationCriteria: latency.DefaultCriteria(),
		Results:            results,
		Summary:            summary,
	}
}
