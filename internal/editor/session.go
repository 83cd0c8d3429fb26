// Package editor turns pointer input into shapes and shows them over the
// image in a window.
package editor

import (
	"github.com/example/inkshot/internal/shape"
)

// Session tracks the active tool, the shape being drawn, and the commit
// history. It is not safe for concurrent use; the window loop owns it.
type Session struct {
	tool    shape.Kind
	style   shape.Style
	current shape.Shape
	history shape.History
}

// NewSession returns a session drawing with tool and style.
func NewSession(tool shape.Kind, style shape.Style) *Session {
	return &Session{tool: tool, style: style}
}

func (s *Session) Tool() shape.Kind   { return s.tool }
func (s *Session) Style() shape.Style { return s.style }

// SetTool switches tools. A shape in progress is dropped.
func (s *Session) SetTool(k shape.Kind) {
	s.current = nil
	s.tool = k
}

// SetStyle applies to shapes started afterwards.
func (s *Session) SetStyle(st shape.Style) {
	if st.Thickness <= 0 {
		st.Thickness = s.style.Thickness
	}
	s.style = st
}

// Begin starts a new shape at p. Any shape still in progress is replaced.
func (s *Session) Begin(p shape.Point) {
	s.current = shape.New(s.tool, p, s.style)
}

// Drag extends the shape in progress. It reports whether there was one.
func (s *Session) Drag(p shape.Point) bool {
	if s.current == nil {
		return false
	}
	s.current.Update(p)
	return true
}

// End finishes the shape in progress at p and commits it, which drops the
// redo history. It returns the committed shape or nil.
func (s *Session) End(p shape.Point) shape.Shape {
	if s.current == nil {
		return nil
	}
	c := s.current
	c.Update(p)
	s.current = nil
	s.history.Commit(c)
	return c
}

// Cancel drops the shape in progress and reports whether there was one.
func (s *Session) Cancel() bool {
	had := s.current != nil
	s.current = nil
	return had
}

// Current returns the shape in progress, or nil.
func (s *Session) Current() shape.Shape { return s.current }

// Shapes returns a copy of the committed shapes in draw order.
func (s *Session) Shapes() []shape.Shape { return s.history.Applied() }

// Undo cancels a shape in progress or else undoes the last commit.
func (s *Session) Undo() bool {
	if s.Cancel() {
		return true
	}
	return s.history.Undo()
}

func (s *Session) Redo() bool {
	if !s.CanRedo() {
		return false
	}
	return s.history.Redo()
}

// CanUndo reports whether Undo would change anything.
func (s *Session) CanUndo() bool { return s.current != nil || s.history.CanUndo() }

// CanRedo reports whether Redo would change anything.
func (s *Session) CanRedo() bool { return s.current == nil && s.history.CanRedo() }

// ClearAll removes every shape. Redo brings them back one at a time.
func (s *Session) ClearAll() {
	s.current = nil
	s.history.ClearAll()
}

// Count returns the number of committed shapes.
func (s *Session) Count() int { return len(s.history.Applied()) }
