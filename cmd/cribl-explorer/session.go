package main

import (
	"context"
	"os"

	"golang.org/x/term"

	"github.com/PySecNinja/cribl-cloud-explorer/pkg/cribl"
)

// resolveSettings merges flags over environment over the config file.
// When something is still missing and stdin is a terminal, it falls back to
// an interactive prompt; otherwise the validation error surfaces as-is.
func resolveSettings() (*cribl.Settings, error) {
	settings, err := cribl.LoadSettings()
	if err != nil {
		return nil, err
	}
	if flagBaseURL != "" {
		settings.BaseURL = flagBaseURL
	}
	if flagToken != "" {
		settings.Token = flagToken
	}

	if err := settings.Validate(); err != nil {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, err
		}
		if err := promptSettings(settings); err != nil {
			return nil, err
		}
		if err := settings.Validate(); err != nil {
			return nil, err
		}
	}
	return settings, nil
}

// fetchSnapshot builds a client from the settings and runs one full fetch
// cycle, recording every endpoint outcome in the cycle log. Swallowed
// per-group failures are visible only there.
func fetchSnapshot(ctx context.Context, settings *cribl.Settings) (*cribl.Snapshot, error) {
	logger, _ := NewFetchLogger() // nil logger degrades to no file logging
	defer logger.Close()

	client := cribl.NewClient(settings.BaseURL, settings.Token)
	snap, err := cribl.FetchAll(ctx, client, logger)
	if err != nil {
		logger.Log("cycle aborted: %v", err)
		return nil, err
	}
	logger.Log("cycle complete: %d groups, %d workers", len(snap.Groups), len(snap.Workers))
	return snap, nil
}
