package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func named(x float64) Shape { return &LineShape{Start: Pt(x, 0), End: Pt(x, 1)} }

func TestUndoRedoOnEmpty(t *testing.T) {
	var h History
	assert.False(t, h.Undo())
	assert.False(t, h.Redo())
	assert.Empty(t, h.Applied())
	assert.Empty(t, h.Undone())
}

func TestCommitAfterUndoDropsRedo(t *testing.T) {
	a, b, c, d := named(1), named(2), named(3), named(4)
	var h History
	h.Commit(a)
	h.Commit(b)
	h.Commit(c)

	assert.True(t, h.Undo())
	assert.True(t, h.Undo())
	assert.Equal(t, []Shape{a}, h.Applied())
	assert.Equal(t, []Shape{c, b}, h.Undone())

	h.Commit(d)
	assert.Equal(t, []Shape{a, d}, h.Applied())
	assert.Empty(t, h.Undone())
	assert.False(t, h.Redo())
}

func TestRedoRestoresOrder(t *testing.T) {
	a, b := named(1), named(2)
	var h History
	h.Commit(a)
	h.Commit(b)
	h.Undo()
	h.Undo()
	assert.True(t, h.Redo())
	assert.Equal(t, []Shape{a}, h.Applied())
	assert.True(t, h.Redo())
	assert.Equal(t, []Shape{a, b}, h.Applied())
	assert.False(t, h.CanRedo())
}

func TestClearAllIsRedoable(t *testing.T) {
	a, b, c := named(1), named(2), named(3)
	var h History
	h.Commit(a)
	h.Commit(b)
	h.Commit(c)
	h.ClearAll()
	assert.Empty(t, h.Applied())
	assert.False(t, h.CanUndo())
	for h.Redo() {
	}
	assert.Equal(t, []Shape{a, b, c}, h.Applied())
}

func TestAppliedIsACopy(t *testing.T) {
	var h History
	h.Commit(named(1))
	got := h.Applied()
	got[0] = nil
	assert.NotNil(t, h.Applied()[0])
}
