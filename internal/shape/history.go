package shape

// History holds committed shapes and the shapes undone since the last edit.
// The two lists never share an element.
type History struct {
	applied []Shape
	undone  []Shape
}

// Commit appends s to the applied list and drops the redo history.
func (h *History) Commit(s Shape) {
	h.applied = append(h.applied, s)
	clear(h.undone)
	h.undone = h.undone[:0]
}

// Undo moves the most recent shape to the undone list.
func (h *History) Undo() bool {
	n := len(h.applied)
	if n == 0 {
		return false
	}
	s := h.applied[n-1]
	h.applied[n-1] = nil
	h.applied = h.applied[:n-1]
	h.undone = append(h.undone, s)
	return true
}

// Redo moves the most recently undone shape back.
func (h *History) Redo() bool {
	n := len(h.undone)
	if n == 0 {
		return false
	}
	s := h.undone[n-1]
	h.undone[n-1] = nil
	h.undone = h.undone[:n-1]
	h.applied = append(h.applied, s)
	return true
}

// ClearAll undoes every applied shape; Redo restores them in order.
func (h *History) ClearAll() {
	for h.Undo() {
	}
}

// Applied returns a copy of the committed shapes in draw order.
func (h *History) Applied() []Shape {
	return append([]Shape(nil), h.applied...)
}

// Undone returns a copy of the undone shapes in the order they were undone.
// Redo takes from the end.
func (h *History) Undone() []Shape {
	return append([]Shape(nil), h.undone...)
}

// CanUndo reports whether Undo would succeed.
func (h *History) CanUndo() bool { return len(h.applied) > 0 }

// CanRedo reports whether Redo would succeed.
func (h *History) CanRedo() bool { return len(h.undone) > 0 }
