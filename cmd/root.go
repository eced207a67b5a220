package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pingline/internal/banner"
	"pingline/internal/cli"
	"pingline/internal/config"
	"pingline/internal/dummy"
	"pingline/internal/logging"
	"pingline/internal/storage"
)

var (
	// CLI flags
	flagURL     string
	flagCount   int
	flagTimeout int
	flagDelay   int
	flagLogPath string
	flagQuiet   bool
	flagVerbose bool
)

// exitCode is set by the root run: 0 when every request succeeded, 1 on
// any failure or configuration error.
var exitCode int

var rootCmd = &cobra.Command{
	Use:   "pingline",
	Short: "pingline - Sequential HTTP latency probe",
	Long: `
pingline measures endpoint latency with strictly sequential HTTP GET
requests, classifies each response as Fast/Medium/Slow, and appends a
session record to a JSON history log.

Configuration comes from flags, or from the environment (API_URL,
REQUEST_COUNT, REQUEST_TIMEOUT, REQUEST_DELAY, LOG_FILE_PATH; .env
supported) when --url is not given.`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logging.New(flagVerbose)

		cfg, err := buildConfig(cmd, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
			exitCode = 1
			return
		}

		if !cli.Start(cfg, log) {
			exitCode = 1
		}
	},
}

func buildConfig(cmd *cobra.Command, log *zap.SugaredLogger) (config.Config, error) {
	if !cmd.Flags().Changed("url") {
		c, err := config.FromEnv(log)
		c.Quiet = flagQuiet
		return c, err
	}

	if err := config.ValidateURL(flagURL); err != nil {
		return config.Config{}, err
	}

	cfg := config.Config{
		APIURL:       flagURL,
		RequestCount: flagCount,
		TimeoutMs:    flagTimeout,
		DelayMs:      flagDelay,
		LogPath:      flagLogPath,
		Quiet:        flagQuiet,
	}
	if cfg.LogPath == "" {
		path, err := storage.DefaultPath()
		if err != nil {
			return config.Config{}, fmt.Errorf("resolving default log path: %w", err)
		}
		cfg.LogPath = path
	}
	return cfg, nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		fmt.Println(banner.GetString())
		cmd.Usage()
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		return 1
	}
	return exitCode
}

func init() {
	rootCmd.AddCommand(dummyCmd)

	rootCmd.Flags().StringVarP(&flagURL, "url", "u", "", "Target URL (overrides environment config)")
	rootCmd.Flags().IntVarP(&flagCount, "count", "n", config.DefaultRequestCount, "Number of sequential requests")
	rootCmd.Flags().IntVarP(&flagTimeout, "timeout", "t", config.DefaultTimeoutMs, "Per-request timeout in milliseconds")
	rootCmd.Flags().IntVarP(&flagDelay, "delay", "d", config.DefaultFlagDelayMs, "Delay between requests in milliseconds")
	rootCmd.Flags().StringVarP(&flagLogPath, "log", "l", "", "Session log path (default $HOME/.pingline/history.json)")
	rootCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress per-request output")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug diagnostics")
}

var dummyCmd = &cobra.Command{
	Use:   "dummy",
	Short: "Run internal dummy server",
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetInt("port")
		dummy.Start(dummy.ServerConfig{Port: port})
		select {}
	},
}

func init() {
	dummyCmd.Flags().IntP("port", "p", 8080, "Port to run dummy server on")
}
