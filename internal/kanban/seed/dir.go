package seed

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	kanbanfs "kanbo/internal/kanban/fs"
	"kanbo/internal/kanban/models"
)

// DirSource reads a markdown board directory (board.md + cards/)
type DirSource struct {
	Dir string
}

func (d DirSource) Name() string { return "dir:" + d.Dir }

func (d DirSource) Fetch(context.Context) ([]models.Column, error) {
	if d.Dir == "" {
		return nil, ErrUnavailable
	}
	_, board, err := kanbanfs.ReadBoard(d.Dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: no %s in %s", ErrUnavailable, kanbanfs.BoardFile, d.Dir)
		}
		return nil, err
	}
	return board.Columns, nil
}
