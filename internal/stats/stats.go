package stats

import (
	"math"

	"pingline/internal/latency"
	"pingline/internal/probe"
)

// Summary is the aggregate view of one probe sequence. Latency fields are
// computed over successful outcomes only; all zero when nothing
// succeeded.
type Summary struct {
	TotalRequests      int          `json:"totalRequests"`
	SuccessfulRequests int          `json:"successfulRequests"`
	FailedRequests     int          `json:"failedRequests"`
	AverageLatency     int64        `json:"averageLatency"`
	MinLatency         int64        `json:"minLatency"`
	MaxLatency         int64        `json:"maxLatency"`
	SuccessRate        int          `json:"successRate"`
	AverageCategory    latency.Tier `json:"averageCategory"`
}

// Aggregate reduces a sequence of outcomes into a Summary. Pure function.
func Aggregate(outcomes []probe.Outcome) Summary {
	s := Summary{
		TotalRequests:   len(outcomes),
		AverageCategory: latency.TierNotApplicable,
	}

	var sum int64
	for _, o := range outcomes {
		if !o.Success {
			s.FailedRequests++
			continue
		}
		if s.SuccessfulRequests == 0 {
			s.MinLatency = o.Latency
			s.MaxLatency = o.Latency
		} else {
			s.MinLatency = min(s.MinLatency, o.Latency)
			s.MaxLatency = max(s.MaxLatency, o.Latency)
		}
		s.SuccessfulRequests++
		sum += o.Latency
	}

	if s.SuccessfulRequests == 0 {
		return s
	}

	s.AverageLatency = int64(math.Round(float64(sum) / float64(s.SuccessfulRequests)))
	s.SuccessRate = int(math.Round(100 * float64(s.SuccessfulRequests) / float64(s.TotalRequests)))
	s.AverageCategory = latency.Categorize(s.AverageLatency)
	return s
}
