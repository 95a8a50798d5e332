package service

import (
	"kanbo/internal/kanban/drag"
	"kanbo/internal/kanban/ids"
	"kanbo/internal/kanban/models"
	"kanbo/internal/kanban/operations"
	"kanbo/internal/kanban/palette"
	"kanbo/internal/logs"
	"kanbo/internal/prefs"
)

// BoardService owns one board and its drag tracker.
// It is not safe for concurrent use; see Dispatcher.
type BoardService interface {
	Snapshot() models.Snapshot

	AddColumn(title string) (models.Column, bool)
	RemoveColumn(columnID string) bool
	RenameColumn(columnID, title string) bool
	MoveColumn(fromIndex, toIndex int) bool

	AddCard(columnID, text string) (models.Card, bool)
	UpdateCard(columnID, cardID string, fields models.CardFields) bool
	RemoveCard(columnID, cardID string) bool
	MoveCard(fromCol, fromCard, toCol, toCard int) bool

	ApplyPalette(pal palette.Palette)
	Theme() string
	SelectTheme(name string) bool

	BeginDrag(kind drag.Kind, columnIndex, cardIndex int) bool
	AttemptDrop(kind drag.Kind, columnIndex, cardIndex int) bool
	EndDrag()
	Dispatch(intent drag.Intent) bool
	DragState() drag.State
	DragSession() (drag.Session, bool)

	Preferences() prefs.Preferences
	SetUserName(name string) bool
	SetAvatar(ref string) bool
}

// Options configures a new BoardService
type Options struct {
	// Content seeds the board. Ids and colours in it are replaced.
	Content []models.Column
	// Generator issues card and column ids. Defaults to random UUIDs.
	Generator ids.Generator
	// Store persists preferences. Defaults to an in-memory store.
	Store prefs.Store
}

type boardServiceImpl struct {
	board   models.Board
	tracker drag.Tracker
	gen     ids.Generator
	store   prefs.Store
	prefs   prefs.Preferences
	theme   string
	palette palette.Palette
}

// NewBoardService loads preferences, picks the stored theme when it is valid and
// builds the board from opts.Content.
func NewBoardService(opts Options) BoardService {
	svc := &boardServiceImpl{
		gen:   opts.Generator,
		store: opts.Store,
	}
	if svc.gen == nil {
		svc.gen = ids.UUIDGenerator{}
	}
	if svc.store == nil {
		svc.store = &prefs.MemoryStore{}
	}

	svc.prefs, _ = svc.store.Load()
	svc.theme, svc.palette = palette.Resolve(svc.prefs.Theme)
	svc.prefs.Theme = svc.theme

	svc.board = operations.BuildBoard(opts.Content, svc.gen, svc.palette)

	return svc
}

func (s *boardServiceImpl) Snapshot() models.Snapshot {
	return s.board.Snapshot()
}

func (s *boardServiceImpl) AddColumn(title string) (models.Column, bool) {
	col, ok := operations.AddColumn(&s.board, s.gen, title, s.palette)
	if !ok {
		logs.Debugf("add column ignored: blank title")
	}
	return col, ok
}

func (s *boardServiceImpl) RemoveColumn(columnID string) bool {
	return s.applied(operations.RemoveColumn(&s.board, columnID), "remove column %s", columnID)
}

func (s *boardServiceImpl) RenameColumn(columnID, title string) bool {
	return s.applied(operations.RenameColumn(&s.board, columnID, title), "rename column %s", columnID)
}

func (s *boardServiceImpl) MoveColumn(fromIndex, toIndex int) bool {
	return s.applied(operations.MoveColumn(&s.board, fromIndex, toIndex), "move column %d -> %d", fromIndex, toIndex)
}

func (s *boardServiceImpl) AddCard(columnID, text string) (models.Card, bool) {
	card, ok := operations.AddCard(&s.board, s.gen, columnID, text)
	if !ok {
		logs.Debugf("add card to %s ignored", columnID)
	}
	return card, ok
}

func (s *boardServiceImpl) UpdateCard(columnID, cardID string, fields models.CardFields) bool {
	return s.applied(operations.UpdateCard(&s.board, columnID, cardID, fields), "update card %s/%s", columnID, cardID)
}

func (s *boardServiceImpl) RemoveCard(columnID, cardID string) bool {
	return s.applied(operations.RemoveCard(&s.board, columnID, cardID), "remove card %s/%s", columnID, cardID)
}

func (s *boardServiceImpl) MoveCard(fromCol, fromCard, toCol, toCard int) bool {
	return s.applied(operations.MoveCard(&s.board, fromCol, fromCard, toCol, toCard),
		"move card (%d,%d) -> (%d,%d)", fromCol, fromCard, toCol, toCard)
}

func (s *boardServiceImpl) ApplyPalette(pal palette.Palette) {
	s.palette = pal
	operations.ApplyPalette(&s.board, pal)
}

func (s *boardServiceImpl) Theme() string {
	return s.theme
}

// SelectTheme recolours the board and persists the choice.
// Unknown theme names are ignored.
func (s *boardServiceImpl) SelectTheme(name string) bool {
	pal, ok := palette.Lookup(name)
	if !ok {
		logs.Debugf("select theme ignored: unknown theme %q", name)
		return false
	}
	s.theme = name
	s.ApplyPalette(pal)
	s.prefs.Theme = name
	s.store.Save(s.prefs)
	return true
}

func (s *boardServiceImpl) Preferences() prefs.Preferences {
	return s.prefs
}

func (s *boardServiceImpl) SetUserName(name string) bool {
	normalized, ok := prefs.NormalizeName(name)
	if !ok {
		logs.Debugf("user name ignored: blank")
		return false
	}
	s.prefs.Name = normalized
	s.store.Save(s.prefs)
	return true
}

func (s *boardServiceImpl) SetAvatar(ref string) bool {
	s.prefs.AvatarRef = ref
	s.store.Save(s.prefs)
	return true
}

func (s *boardServiceImpl) applied(ok bool, format string, args ...any) bool {
	if !ok {
		logs.Debugf("no-op: "+format, args...)
	}
	return ok
}
