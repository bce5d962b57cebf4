// cmd/urlmon/main.go
package main

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/bjoerrrn/url-monitoring/internal/checker"
	"github.com/bjoerrrn/url-monitoring/internal/config"
	"github.com/bjoerrrn/url-monitoring/internal/monitor"
	"github.com/bjoerrrn/url-monitoring/internal/notify"
	"github.com/bjoerrrn/url-monitoring/internal/state"
)

const defaultSettingsFile = "urlmon.yaml"

func main() {
	settingsPath := defaultSettingsFile
	if len(os.Args) > 1 {
		settingsPath = os.Args[1]
	}

	// --------------------
	// Load + validate settings
	// --------------------

	cfg, err := config.Load(settingsPath)
	if err != nil {
		log.Fatalf("settings load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("settings validation failed: %v", err)
	}

	config.Normalize(cfg)
	m := cfg.Monitor

	if m.LogFile != "" {
		f, err := os.OpenFile(m.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("logfile open failed: %v", err)
		}
		defer f.Close()
		log.SetOutput(io.MultiWriter(os.Stdout, f))
	}

	// --------------------
	// Load entries + prior state
	// --------------------

	entries, warnings, err := config.LoadEntries(m.CredoFile)
	if err != nil {
		log.Fatalf("credo load failed: %v", err)
	}
	for _, w := range warnings {
		log.Printf("credo: skipped %s", w)
	}

	store := state.NewStore(m.StateFile)
	counts, err := store.Load()
	if err != nil {
		log.Printf("state load failed, starting empty: %v", err)
	}

	// --------------------
	// One monitoring pass
	// --------------------

	chk, err := checker.Build(m)
	if err != nil {
		log.Fatalf("checker build failed: %v", err)
	}

	runner := &monitor.Runner{
		Threshold: m.FailureThreshold,
		Checker:   chk,
		Notifier:  notify.NewDiscord(time.Duration(m.TimeoutMs) * time.Millisecond),
	}

	counts = runner.RunOnce(context.Background(), entries, counts)

	if err := store.Save(counts); err != nil {
		log.Fatalf("state save failed: %v", err)
	}
}
