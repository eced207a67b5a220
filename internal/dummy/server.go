package dummy

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"
)

type ServerConfig struct {
	Port int
}

// Start runs a stub server with endpoints pinned to the latency tiers,
// for trying out the probe without a real target.
func Start(cfg ServerConfig) {
	mux := http.NewServeMux()

	// 1. Fast tier (20-120ms)
	mux.HandleFunc("/fast", func(w http.ResponseWriter, r *http.Request) {
		jitter := time.Duration(rand.Intn(100)+20) * time.Millisecond
		time.Sleep(jitter)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"tier":"fast"}`))
	})

	// 2. Medium tier (350-900ms)
	mux.HandleFunc("/medium", func(w http.ResponseWriter, r *http.Request) {
		jitter := time.Duration(rand.Intn(550)+350) * time.Millisecond
		time.Sleep(jitter)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"tier":"medium"}`))
	})

	// 3. Slow tier (1.1s-1.8s)
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		jitter := time.Duration(rand.Intn(700)+1100) * time.Millisecond
		time.Sleep(jitter)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"tier":"slow"}`))
	})

	// 4. Error endpoint (random 500/429)
	mux.HandleFunc("/error", func(w http.ResponseWriter, r *http.Request) {
		rnd := rand.Float32()
		if rnd < 0.5 {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("500 Internal Server Error"))
		} else {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte("429 Too Many Requests"))
		}
	})

	// 5. Always 404
	mux.HandleFunc("/notfound", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("404 Not Found"))
	})

	// 6. Never answers within any sane timeout
	mux.HandleFunc("/hang", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(10 * time.Minute):
		}
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	fmt.Printf("👻 Dummy server running on http://localhost%s\n", addr)
	fmt.Println("   Endpoints: /fast, /medium, /slow, /error, /notfound, /hang")

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("Server failed: %v\n", err)
		}
	}()
}
