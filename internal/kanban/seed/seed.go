// Package seed supplies the initial content of a board.
//
// Providers are tried in order; the first one that returns content wins. When every
// provider fails the built-in sample board is used.
package seed

import (
	"context"
	"errors"
	"time"

	"kanbo/internal/kanban/models"
	"kanbo/internal/logs"
)

// ErrUnavailable means a provider has nothing to offer (not configured, object missing, ...)
var ErrUnavailable = errors.New("seed source unavailable")

// Provider returns board content. Ids and colours of the result are ignored;
// the board assigns its own.
type Provider interface {
	Name() string
	Fetch(ctx context.Context) ([]models.Column, error)
}

// Result is the content chosen by Load and where it came from
type Result struct {
	Columns []models.Column
	Source  string
}

// Load tries each provider in order and falls back to the sample board.
// Failures are logged; a provider returning no columns counts as a failure.
func Load(ctx context.Context, now time.Time, providers ...Provider) Result {
	for _, p := range providers {
		if p == nil {
			continue
		}
		columns, err := p.Fetch(ctx)
		if err != nil {
			if errors.Is(err, ErrUnavailable) {
				logs.Debugf("seed %s: %v", p.Name(), err)
			} else {
				logs.Warnf("seed %s failed: %v", p.Name(), err)
			}
			continue
		}
		if len(columns) == 0 {
			logs.Debugf("seed %s returned an empty board", p.Name())
			continue
		}
		logs.Infof("board seeded from %s", p.Name())
		return Result{Columns: columns, Source: p.Name()}
	}

	fallback := Fallback{Now: func() time.Time { return now }}
	columns, _ := fallback.Fetch(ctx)
	logs.Infof("board seeded from %s", fallback.Name())
	return Result{Columns: columns, Source: fallback.Name()}
}
