// Package drag tracks the single in-flight drag gesture of a board.
package drag

import "fmt"

// Kind says what is being dragged
type Kind int

const (
	KindCard Kind = iota
	KindColumn
)

func (k Kind) String() string {
	switch k {
	case KindCard:
		return "card"
	case KindColumn:
		return "column"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps "card" / "column" to a Kind
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "card":
		return KindCard, true
	case "column":
		return KindColumn, true
	}
	return 0, false
}

// State is the tracker state
type State int

const (
	Idle State = iota
	DraggingCard
	DraggingColumn
)

func (s State) String() string {
	switch s {
	case DraggingCard:
		return "dragging-card"
	case DraggingColumn:
		return "dragging-column"
	default:
		return "idle"
	}
}

// EndOfList as a drop card index means "after the last card of the target column"
const EndOfList = -1

// Session records where a drag started.
// The ids identify the dragged item; the indices are where it was when the drag began.
type Session struct {
	Kind        Kind
	ColumnID    string
	CardID      string // empty for column drags
	ColumnIndex int
	CardIndex   int // -1 for column drags
}

// Tracker holds at most one drag session
type Tracker struct {
	session *Session
}

// Begin starts a session, replacing any session already in flight.
// Returns true when a previous session was replaced.
func (t *Tracker) Begin(s Session) bool {
	replaced := t.session != nil
	t.session = &s
	return replaced
}

// End clears the session. Ending while idle is harmless.
func (t *Tracker) End() {
	t.session = nil
}

// Active returns the current session, if any
func (t *Tracker) Active() (Session, bool) {
	if t.session == nil {
		return Session{}, false
	}
	return *t.session, true
}

// State reports the tracker state derived from the session kind
func (t *Tracker) State() State {
	if t.session == nil {
		return Idle
	}
	if t.session.Kind == KindColumn {
		return DraggingColumn
	}
	return DraggingCard
}
