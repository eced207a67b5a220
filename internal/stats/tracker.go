package stats

import "pingline/internal/probe"

// Tracker accumulates live counters and a latency histogram while a
// sequence is running, for the console report. Only successful latencies
// are recorded, matching the summary semantics.
type Tracker struct {
	Requests uint64
	Success  uint64
	Fail     uint64

	Latency *SafeHistogram
}

func NewTracker() *Tracker {
	return &Tracker{Latency: NewSafeHistogram()}
}

func (t *Tracker) Observe(o probe.Outcome) {
	t.Requests++
	if o.Success {
		t.Success++
		t.Latency.RecordValue(o.Latency)
	} else {
		t.Fail++
	}
}

func (t *Tracker) P50Ms() int64 { return t.Latency.ValueAtQuantile(50) }
func (t *Tracker) P90Ms() int64 { return t.Latency.ValueAtQuantile(90) }
func (t *Tracker) P99Ms() int64 { return t.Latency.ValueAtQuantile(99) }
func (t *Tracker) MaxMs() int64 { return t.Latency.Max() }
