package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"pingline/internal/latency"
)

const userAgent = "pingline/1.0"

// Prober issues timed HTTP GET requests, one at a time.
type Prober struct {
	Client   *http.Client
	Clock    Clock
	Observer Observer
}

func New(observer Observer) *Prober {
	t := http.DefaultTransport.(*http.Transport).Clone()
	// Strictly sequential, so a single kept-alive connection is all we need.
	t.MaxIdleConnsPerHost = 1

	return &Prober{
		Client:   &http.Client{Transport: t},
		Clock:    SystemClock(),
		Observer: observer,
	}
}

// Do executes one timed GET against target. It never returns an error:
// every failure mode (HTTP error status, timeout, connectivity problem)
// is folded into the Outcome. Latency covers start to outcome
// finalization on every branch.
func (p *Prober) Do(ctx context.Context, target string, number int, timeoutMs int) Outcome {
	start := p.Clock.Now()
	out := Outcome{
		RequestNumber: number,
		Timestamp:     start,
	}

	reqCtx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, target, nil)
	if err != nil {
		out.Latency = p.elapsedMs(start)
		out.ErrorMessage = err.Error()
		return out
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.Client.Do(req)
	if err != nil {
		out.Latency = p.elapsedMs(start)
		out.ErrorMessage = describeFailure(err, timeoutMs)
		return out
	}

	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	out.StatusCode = resp.StatusCode
	out.Latency = p.elapsedMs(start)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		out.Success = true
		out.Category = latency.Categorize(out.Latency)
	} else {
		out.ErrorMessage = fmt.Sprintf("HTTP error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	return out
}

// RunSequence executes cfg.Count requests strictly sequentially, waiting
// cfg.DelayMs between consecutive requests (not after the last). Failed
// requests never short-circuit the sequence; every attempt is made. The
// returned error is non-nil only for invalid parameters (no attempts
// made) or a canceled ctx (partial outcomes returned).
func (p *Prober) RunSequence(ctx context.Context, cfg Config) ([]Outcome, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, 0, cfg.Count)
	delay := time.Duration(cfg.DelayMs) * time.Millisecond

	for i := 1; i <= cfg.Count; i++ {
		if p.Observer != nil {
			p.Observer.RequestStarted(i, cfg.Count)
		}

		out := p.Do(ctx, cfg.URL, i, cfg.TimeoutMs)
		outcomes = append(outcomes, out)

		if p.Observer != nil {
			p.Observer.RequestFinished(out)
		}

		if i == cfg.Count {
			break
		}
		if delay > 0 {
			select {
			case <-ctx.Done():
				return outcomes, ctx.Err()
			case <-time.After(delay):
			}
		} else if err := ctx.Err(); err != nil {
			return outcomes, err
		}
	}
	return outcomes, nil
}

func (p *Prober) elapsedMs(start time.Time) int64 {
	return int64(p.Clock.Since(start).Round(time.Millisecond) / time.Millisecond)
}

// describeFailure turns a transport error into the message recorded on
// the outcome: timeouts name the configured deadline, connectivity
// problems carry the underlying diagnostic, anything else falls back to
// the raw error text.
func describeFailure(err error, timeoutMs int) string {
	var urlErr *url.Error
	timedOut := errors.Is(err, context.DeadlineExceeded)
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		timedOut = true
	}
	if timedOut {
		return fmt.Sprintf("request timed out after %dms", timeoutMs)
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return fmt.Sprintf("network connectivity issue: %v", dnsErr)
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return fmt.Sprintf("network connectivity issue: %v", opErr)
	}

	if urlErr != nil {
		return urlErr.Err.Error()
	}
	return err.Error()
}
