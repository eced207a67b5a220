package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"pingline/internal/config"
	"pingline/internal/probe"
	"pingline/internal/stats"
	"pingline/internal/storage"
)

// Start drives one full probe session: header, sequence, summary,
// persistence. Returns true iff every request succeeded. Logging
// failures only warn; they never change the outcome.
func Start(cfg config.Config, log *zap.SugaredLogger) bool {
	printHeader(cfg)

	obs := &consoleObserver{
		tracker: stats.NewTracker(),
		quiet:   cfg.Quiet,
	}
	p := probe.New(obs)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	startedAt := time.Now()
	outcomes, err := p.RunSequence(ctx, probe.Config{
		URL:       cfg.APIURL,
		Count:     cfg.RequestCount,
		TimeoutMs: cfg.TimeoutMs,
		DelayMs:   cfg.DelayMs,
	})
	if err != nil && len(outcomes) == 0 {
		fmt.Println(styleBad.Render("✖ " + err.Error()))
		return false
	}
	if err != nil {
		fmt.Println(styleWarn.Render("\n⚠ interrupted, partial results below"))
	}

	summary := stats.Aggregate(outcomes)
	printSummary(summary, obs.tracker)

	rec := storage.NewRecord(cfg.APIURL, startedAt, storage.RunConfig{
		RequestCount: cfg.RequestCount,
		Timeout:      cfg.TimeoutMs,
		DelayMs:      cfg.DelayMs,
	}, outcomes, summary)

	store := storage.NewStore(cfg.LogPath)
	if perr := store.Append(rec); perr != nil {
		log.Warnw("failed to persist session record", "path", cfg.LogPath, "error", perr)
	} else {
		fmt.Println(styleSubtle.Render(fmt.Sprintf("💾 Session %s logged to %s", rec.SessionID, cfg.LogPath)))
	}

	return err == nil && summary.FailedRequests == 0
}

func printHeader(cfg config.Config) {
	fmt.Println()
	fmt.Println(styleTitle.Render("🚀 PINGLINE LATENCY TEST"))
	fmt.Println(styleSubtle.Render("======================================================================"))
	fmt.Printf("Target URL : %s\n", cfg.APIURL)
	fmt.Printf("Requests   : %d\n", cfg.RequestCount)
	fmt.Printf("Timeout    : %dms\n", cfg.TimeoutMs)
	fmt.Printf("Delay      : %dms\n", cfg.DelayMs)
	fmt.Println(styleSubtle.Render("======================================================================"))
	fmt.Println()
}

func printSummary(s stats.Summary, t *stats.Tracker) {
	fmt.Println()
	fmt.Println(styleTitle.Render("📊 LATENCY TEST RESULTS"))

	overview := fmt.Sprintf(
		"Total Requests : %d\nSuccess        : %d\nFailed         : %d\nSuccess Rate   : %d%%",
		s.TotalRequests, s.SuccessfulRequests, s.FailedRequests, s.SuccessRate,
	)
	fmt.Println(styleBox.Render(overview))

	if s.SuccessfulRequests == 0 {
		fmt.Println(styleBad.Render("❌ No successful requests, latency summary not applicable"))
		return
	}

	fmt.Println(styleTitle.Render("⏱️  RESPONSE TIMES (ms) [Success Only]"))
	times := fmt.Sprintf(
		"Avg : %d (%s)\nMin : %d\nMax : %d\nP50 : %d\nP90 : %d\nP99 : %d",
		s.AverageLatency, tierStyle(s.AverageCategory).Render(string(s.AverageCategory)),
		s.MinLatency, s.MaxLatency,
		t.P50Ms(), t.P90Ms(), t.P99Ms(),
	)
	fmt.Println(styleBox.Render(times))
}

// consoleObserver prints per-request progress and feeds the live
// tracker.
type consoleObserver struct {
	tracker *stats.Tracker
	quiet   bool
}

func (c *consoleObserver) RequestStarted(number, total int) {
	if c.quiet {
		return
	}
	fmt.Printf("→ Request %d/%d ... ", number, total)
}

func (c *consoleObserver) RequestFinished(o probe.Outcome) {
	c.tracker.Observe(o)
	if c.quiet {
		return
	}
	if o.Success {
		fmt.Printf("%s %d | %dms | %s\n",
			styleGood.Render("✅"), o.StatusCode, o.Latency,
			tierStyle(o.Category).Render(string(o.Category)))
		return
	}
	fmt.Printf("%s %dms | %s\n", styleBad.Render("❌"), o.Latency, o.ErrorMessage)
}
