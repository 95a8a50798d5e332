package service

import (
	"kanbo/internal/kanban/drag"
	"kanbo/internal/kanban/operations"
	"kanbo/internal/logs"
)

// BeginDrag records the dragged item by id. Indices that do not point at an
// existing card (or column) are ignored and leave any current session in place.
func (s *boardServiceImpl) BeginDrag(kind drag.Kind, columnIndex, cardIndex int) bool {
	session := drag.Session{Kind: kind, ColumnIndex: columnIndex, CardIndex: -1}

	switch kind {
	case drag.KindCard:
		if !s.board.ValidCardIndex(columnIndex, cardIndex) {
			logs.Debugf("begin drag ignored: no card at (%d,%d)", columnIndex, cardIndex)
			return false
		}
		session.ColumnID = s.board.Columns[columnIndex].ID
		session.CardID = s.board.Columns[columnIndex].Cards[cardIndex].ID
		session.CardIndex = cardIndex
	case drag.KindColumn:
		if !s.board.ValidColumnIndex(columnIndex) {
			logs.Debugf("begin drag ignored: no column at %d", columnIndex)
			return false
		}
		session.ColumnID = s.board.Columns[columnIndex].ID
	default:
		return false
	}

	if s.tracker.Begin(session) {
		logs.Debugf("drag session replaced by new %s drag", kind)
	}
	return true
}

// AttemptDrop moves the dragged item to the target. The item is looked up by id,
// so it is found even if indices shifted since BeginDrag. Dropping does not end the
// session; EndDrag does.
func (s *boardServiceImpl) AttemptDrop(kind drag.Kind, columnIndex, cardIndex int) bool {
	session, ok := s.tracker.Active()
	if !ok {
		logs.Debugf("drop ignored: no drag in progress")
		return false
	}
	if session.Kind != kind {
		logs.Debugf("drop ignored: dragging a %s, dropped as %s", session.Kind, kind)
		return false
	}

	if kind == drag.KindColumn {
		from := s.board.GetColumnIndex(session.ColumnID)
		if from < 0 {
			logs.Debugf("drop ignored: dragged column %s no longer exists", session.ColumnID)
			return false
		}
		return s.MoveColumn(from, columnIndex)
	}

	fromCol, fromCard := s.board.LocateCard(session.CardID)
	if fromCol < 0 {
		logs.Debugf("drop ignored: dragged card %s no longer exists", session.CardID)
		return false
	}
	if !s.board.ValidColumnIndex(columnIndex) {
		logs.Debugf("drop ignored: no column at %d", columnIndex)
		return false
	}
	if cardIndex == drag.EndOfList {
		cardIndex = len(s.board.Columns[columnIndex].Cards)
	}

	return s.applied(operations.MoveCard(&s.board, fromCol, fromCard, columnIndex, cardIndex),
		"drop card %s at (%d,%d)", session.CardID, columnIndex, cardIndex)
}

func (s *boardServiceImpl) EndDrag() {
	s.tracker.End()
}

// Dispatch routes a drag intent to the matching call
func (s *boardServiceImpl) Dispatch(intent drag.Intent) bool {
	switch in := intent.(type) {
	case drag.BeginDrag:
		return s.BeginDrag(in.Kind, in.ColumnIndex, in.CardIndex)
	case drag.Drop:
		return s.AttemptDrop(in.Kind, in.ColumnIndex, in.CardIndex)
	case drag.EndDrag:
		s.EndDrag()
		return true
	default:
		logs.Warnf("unknown drag intent %T", intent)
		return false
	}
}

func (s *boardServiceImpl) DragState() drag.State {
	return s.tracker.State()
}

func (s *boardServiceImpl) DragSession() (drag.Session, bool) {
	return s.tracker.Active()
}
