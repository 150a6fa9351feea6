// Command chatpick derives chat picker option lists from local snapshot data.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/qispark/chatpick/internal/adapters/driven/avatars"
	configfile "github.com/qispark/chatpick/internal/adapters/driven/config/file"
	"github.com/qispark/chatpick/internal/adapters/driven/locale"
	snapshotfile "github.com/qispark/chatpick/internal/adapters/driven/storage/file"
	"github.com/qispark/chatpick/internal/adapters/driven/storage/memory"
	"github.com/qispark/chatpick/internal/adapters/driven/storage/sqlite"
	"github.com/qispark/chatpick/internal/adapters/driving/cli"
	"github.com/qispark/chatpick/internal/core/services"
	"github.com/qispark/chatpick/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	sessions, err := configfile.NewSessionStore("")
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}

	service, cleanup, err := buildOptionsService()
	if err != nil {
		return err
	}
	defer cleanup()

	cli.SetServices(service, sessions)
	return cli.Execute()
}

// buildOptionsService wires the pipeline against whichever snapshot source
// is available: a JSON snapshot file (watched for changes) when one exists,
// otherwise the SQLite store.
func buildOptionsService() (*services.OptionsService, func(), error) {
	path := snapshotPath()

	if _, err := os.Stat(path); err == nil {
		reports := memory.NewReportStore()
		actions := memory.NewReportActionStore()
		details := memory.NewPersonalDetailStore()
		policies := memory.NewPolicyStore()
		ious := memory.NewIOUReportStore()

		loader := snapshotfile.NewLoader(path, snapshotfile.Target{
			Reports:  reports,
			Actions:  actions,
			Details:  details,
			Policies: policies,
			IOUs:     ious,
		})

		ctx := context.Background()
		if err := loader.Load(ctx); err != nil {
			return nil, nil, fmt.Errorf("loading snapshot %s: %w", path, err)
		}

		// Keep long-running commands (the picker) fresh when the snapshot
		// file is rewritten.
		go func() {
			if err := loader.Watch(ctx); err != nil {
				logger.Warn("snapshot watch stopped: %v", err)
			}
		}()

		service := services.NewOptionsService(
			reports, actions, details, policies, ious,
			locale.New(), avatars.New(),
		)
		return service, func() {}, nil
	}

	store, err := sqlite.NewStore("")
	if err != nil {
		return nil, nil, fmt.Errorf("opening snapshot database: %w", err)
	}

	service := services.NewOptionsService(
		store.ReportStore(), store.ReportActionStore(), store.PersonalDetailStore(),
		store.PolicyStore(), store.IOUReportStore(),
		locale.New(), avatars.New(),
	)
	return service, func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing snapshot database: %v", err)
		}
	}, nil
}

// snapshotPath resolves the JSON snapshot location, preferring the
// CHATPICK_SNAPSHOT environment variable.
func snapshotPath() string {
	if path := os.Getenv("CHATPICK_SNAPSHOT"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chatpick", "snapshot.json")
}
