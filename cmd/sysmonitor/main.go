// Command sysmonitor samples host resource metrics on a fixed interval,
// appends them to ./logs/system-monitor.log, raises threshold alerts, and
// writes ./monitor-report.txt on shutdown.
//
// Run with:
//
//	sysmonitor -interval 3000
//
// Stop with Ctrl-C; the summary report is written before exit.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/Rafiki81/sysmonitor/collector"
	"github.com/Rafiki81/sysmonitor/config"
	"github.com/Rafiki81/sysmonitor/logger"
	"github.com/Rafiki81/sysmonitor/monitor"
)

func main() {
	diag := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}).Level(zerolog.InfoLevel).With().Timestamp().Logger()

	configPath := flag.String("config", "", "path to JSON config file (optional)")
	intervalMs := flag.Int("interval", 0, "monitoring interval in milliseconds (overrides config)")
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		cfg = config.Load(*configPath)
	}
	interval := cfg.RefreshInterval.Duration()
	if *intervalMs > 0 {
		interval = time.Duration(*intervalMs) * time.Millisecond
	}

	log, err := logger.New(cfg.LogFile, diag)
	if err != nil {
		diag.Fatal().Err(err).Msg("failed to initialize log file")
	}

	// Console mirror: every log entry echoes to stdout as "[LEVEL] message".
	log.Subscribe(func(e logger.Entry) {
		fmt.Printf("[%s] %s\n", e.Level, e.Message)
	})

	mon := monitor.NewMonitor(log, collector.NewCollector())
	mon.OnAppendFailure(func(err error) {
		diag.Fatal().Err(err).Msg("log append failed, monitoring cannot continue")
	})

	startupLines := []string{
		"System monitor initialized",
		"Runtime: " + runtime.Version(),
		fmt.Sprintf("PID: %d", os.Getpid()),
	}
	for _, line := range startupLines {
		if err := log.Info(line); err != nil {
			diag.Fatal().Err(err).Msg("failed to write startup log entry")
		}
	}

	mon.Start(interval)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	mon.Stop()
	if err := monitor.WriteReport(cfg.LogFile, cfg.ReportFile); err != nil {
		diag.Error().Err(err).Msg("failed to write report")
		os.Exit(1)
	}
	fmt.Printf("Report written to %s\n", cfg.ReportFile)
}
