package file

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/qispark/chatpick/internal/core/domain"
	"github.com/qispark/chatpick/internal/logger"
)

// Snapshot holds one decoded data snapshot ready for publishing.
type Snapshot struct {
	Reports  []domain.Report
	Actions  []domain.ReportAction
	Details  []domain.PersonalDetail
	Policies []domain.Policy
	IOUs     []domain.IOUReport
}

// ReportSink receives a full report snapshot.
type ReportSink interface {
	Replace(ctx context.Context, reports []domain.Report) error
}

// ActionSink receives a full action snapshot.
type ActionSink interface {
	Replace(ctx context.Context, actions []domain.ReportAction) error
}

// DetailSink receives a full profile snapshot.
type DetailSink interface {
	Replace(ctx context.Context, details []domain.PersonalDetail) error
}

// PolicySink receives a full workspace snapshot.
type PolicySink interface {
	Replace(ctx context.Context, policies []domain.Policy) error
}

// IOUSink receives a full debt aggregate snapshot.
type IOUSink interface {
	Replace(ctx context.Context, ious []domain.IOUReport) error
}

// Target bundles the stores a loader publishes into. The in-memory stores
// satisfy these interfaces through their Replace methods.
type Target struct {
	Reports  ReportSink
	Actions  ActionSink
	Details  DetailSink
	Policies PolicySink
	IOUs     IOUSink
}

// Loader reads a JSON snapshot file and publishes it into a Target,
// optionally watching the file for changes.
type Loader struct {
	path    string
	target  Target
	limiter *rate.Limiter
}

// NewLoader creates a loader for the snapshot file at path.
func NewLoader(path string, target Target) *Loader {
	return &Loader{
		path:   path,
		target: target,
		// One reload per half second absorbs the event bursts editors
		// produce on save.
		limiter: rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
	}
}

// Load reads the file once and publishes its contents.
func (l *Loader) Load(ctx context.Context) error {
	snap, err := ReadSnapshot(l.path)
	if err != nil {
		return err
	}
	return l.publish(ctx, snap)
}

// Watch loads the file, then reloads it whenever it changes, until ctx is
// cancelled. Reload failures are logged and skipped; the previous snapshot
// stays live.
func (l *Loader) Watch(ctx context.Context) error {
	if err := l.Load(ctx); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory rather than the file: atomic saves replace the
	// inode and would silently detach a file-level watch.
	if err := watcher.Add(filepath.Dir(l.path)); err != nil {
		return fmt.Errorf("watching snapshot directory: %w", err)
	}

	logger.Info("Watching %s for changes", l.path)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(l.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !l.limiter.Allow() {
				continue
			}
			logger.Debug("Snapshot file changed (%s), reloading", event.Op)
			if err := l.Load(ctx); err != nil {
				logger.Warn("Reload failed: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

// publish swaps every store to the new snapshot.
func (l *Loader) publish(ctx context.Context, snap *Snapshot) error {
	if err := l.target.Reports.Replace(ctx, snap.Reports); err != nil {
		return fmt.Errorf("publishing reports: %w", err)
	}
	if err := l.target.Actions.Replace(ctx, snap.Actions); err != nil {
		return fmt.Errorf("publishing report actions: %w", err)
	}
	if err := l.target.Details.Replace(ctx, snap.Details); err != nil {
		return fmt.Errorf("publishing personal details: %w", err)
	}
	if err := l.target.Policies.Replace(ctx, snap.Policies); err != nil {
		return fmt.Errorf("publishing policies: %w", err)
	}
	if err := l.target.IOUs.Replace(ctx, snap.IOUs); err != nil {
		return fmt.Errorf("publishing iou reports: %w", err)
	}
	logger.Debug("Published snapshot: %d reports, %d profiles, %d policies",
		len(snap.Reports), len(snap.Details), len(snap.Policies))
	return nil
}
