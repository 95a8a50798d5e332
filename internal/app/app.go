// Package app wires configuration, storage and the board service together.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kanbo/internal/config"
	kanbanfs "kanbo/internal/kanban/fs"
	"kanbo/internal/kanban/ids"
	"kanbo/internal/kanban/seed"
	"kanbo/internal/kanban/service"
	"kanbo/internal/logs"
	"kanbo/internal/prefs"
)

// ErrNoS3 is returned by Publish when no bucket is configured
var ErrNoS3 = errors.New("no S3 bucket configured")

// App is the composed application: one board service plus its collaborators
type App struct {
	Config     *config.Config
	Service    service.BoardService
	SeedSource string

	s3 *seed.S3Source
}

// New builds the application from cfg. Seed sources that fail are logged and skipped.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("nil config")
	}

	a := &App{Config: cfg}

	var providers []seed.Provider
	if cfg.BoardDir != "" {
		providers = append(providers, seed.DirSource{Dir: cfg.BoardDir})
	}
	if cfg.S3.Seed().Enabled() {
		client, err := seed.NewS3Client(ctx, cfg.S3.Seed())
		if err != nil {
			logs.Warnf("S3 disabled: %v", err)
		} else {
			a.s3 = seed.NewS3Source(client, cfg.S3.Seed())
			providers = append(providers, a.s3)
		}
	}

	result := seed.Load(ctx, time.Now(), providers...)
	a.SeedSource = result.Source

	a.Service = service.NewBoardService(service.Options{
		Content:   result.Columns,
		Generator: ids.UUIDGenerator{},
		Store:     prefs.NewFileStore(cfg.PrefsPath),
	})

	return a, nil
}

// SaveBoard writes the board back to the configured board directory.
// Without a board directory nothing is written.
func (a *App) SaveBoard() error {
	if a.Config.BoardDir == "" {
		return nil
	}
	return a.ExportDir(a.Config.BoardDir)
}

// ExportDir writes the current board as markdown into dir
func (a *App) ExportDir(dir string) error {
	if err := kanbanfs.WriteBoard(dir, a.Config.BoardName, a.Service.Snapshot()); err != nil {
		return fmt.Errorf("export board to %s: %w", dir, err)
	}
	logs.Infof("board written to %s", dir)
	return nil
}

// Publish uploads the current board document to the configured bucket
func (a *App) Publish(ctx context.Context) error {
	if a.s3 == nil {
		return ErrNoS3
	}
	if err := a.s3.Publish(ctx, a.Service.Snapshot()); err != nil {
		return err
	}
	logs.Infof("board published to %s", a.s3.Name())
	return nil
}
