package drag

// Intent is a drag gesture raised by a front end.
// The set is closed: BeginDrag, Drop and EndDrag.
type Intent interface {
	intent()
}

// BeginDrag starts dragging the card at (ColumnIndex, CardIndex), or the column at
// ColumnIndex when Kind is KindColumn (CardIndex is ignored).
type BeginDrag struct {
	Kind        Kind
	ColumnIndex int
	CardIndex   int
}

// Drop asks to place the dragged item at (ColumnIndex, CardIndex).
// CardIndex may be EndOfList. Column drops ignore CardIndex.
type Drop struct {
	Kind        Kind
	ColumnIndex int
	CardIndex   int
}

// EndDrag finishes the gesture, whether or not a drop happened
type EndDrag struct{}

func (BeginDrag) intent() {}
func (Drop) intent()      {}
func (EndDrag) intent()   {}
