package censor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Loader rebuilds a Filter's snapshot from its sources.
type Loader struct {
	filter  *Filter
	sources []Source
	log     *slog.Logger
	group   singleflight.Group
}

// NewLoader creates a Loader over the given sources.
func NewLoader(log *slog.Logger, filter *Filter, sources ...Source) *Loader {
	return &Loader{
		filter:  filter,
		sources: sources,
		log:     log.With("component", "censor_loader"),
	}
}

// reloadTimeout bounds a shared reload, which outlives any single caller.
const reloadTimeout = 30 * time.Second

// Reload fetches all sources concurrently and publishes their union. If any
// source fails the current snapshot stays in place. Concurrent calls share
// one fetch; a caller whose ctx ends stops waiting but the fetch continues
// for the others.
func (l *Loader) Reload(ctx context.Context) (int, error) {
	ch := l.group.DoChan("reload", func() (any, error) {
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), reloadTimeout)
		defer cancel()
		return l.reload(rctx)
	})

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return 0, res.Err
		}
		if res.Shared {
			l.log.DebugContext(ctx, "word list reload coalesced")
		}
		return res.Val.(int), nil
	}
}

func (l *Loader) reload(ctx context.Context) (int, error) {
	start := time.Now()
	results := make([][]string, len(l.sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range l.sources {
		g.Go(func() error {
			words, err := src.Words(gctx)
			if err != nil {
				return fmt.Errorf("source %s: %w", src.Name(), err)
			}
			results[i] = words
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		l.log.ErrorContext(ctx, "word list reload failed, keeping current snapshot",
			slog.String("error", err.Error()),
		)
		return 0, fmt.Errorf("reload word list: %w", err)
	}

	var all []string
	for _, words := range results {
		all = append(all, words...)
	}
	wl := l.filter.Reload(all)

	l.log.InfoContext(ctx, "word list reloaded",
		slog.Int("words", wl.Len()),
		slog.Int("sources", len(l.sources)),
		slog.Duration("duration", time.Since(start)),
	)
	return wl.Len(), nil
}

// Run reloads every interval until ctx is cancelled. A zero interval
// returns immediately. Failures are logged and retried on the next tick.
func (l *Loader) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			_, _ = l.Reload(ctx)
		}
	}
}
