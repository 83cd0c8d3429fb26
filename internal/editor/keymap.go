package editor

import (
	"unicode"

	"golang.org/x/mobile/event/key"

	"github.com/example/inkshot/internal/shape"
)

type action int

const (
	actionNone action = iota
	actionTool
	actionColor
	actionUndo
	actionRedo
	actionSave
	actionCopy
	actionClear
	actionFill
	actionThicker
	actionThinner
	actionZoomIn
	actionZoomOut
	actionFit
	actionCancel
	actionQuit
)

// binding is a resolved key press.
type binding struct {
	action action
	tool   shape.Kind
	color  int
}

// toolKeys maps the first letter of each tool name to its kind.
var toolKeys = func() map[rune]shape.Kind {
	m := make(map[rune]shape.Kind)
	for _, k := range shape.Kinds() {
		m[rune(k.String()[0])] = k
	}
	return m
}()

// letter returns the lower-case letter for e, falling back to the key code
// when the driver reports no rune, or a control character, for a chorded key.
func letter(e key.Event) rune {
	if e.Rune >= ' ' {
		return unicode.ToLower(e.Rune)
	}
	if e.Code >= key.CodeA && e.Code <= key.CodeZ {
		return 'a' + rune(e.Code-key.CodeA)
	}
	return -1
}

func bindingFor(e key.Event) binding {
	if e.Direction == key.DirRelease {
		return binding{}
	}
	r := letter(e)
	if e.Modifiers&key.ModControl != 0 {
		switch r {
		case 'z':
			if e.Modifiers&key.ModShift != 0 {
				return binding{action: actionRedo}
			}
			return binding{action: actionUndo}
		case 'y':
			return binding{action: actionRedo}
		case 's':
			return binding{action: actionSave}
		case 'c':
			return binding{action: actionCopy}
		}
		return binding{}
	}
	switch e.Code {
	case key.CodeDeleteForward, key.CodeDeleteBackspace:
		return binding{action: actionClear}
	case key.CodeTab:
		return binding{action: actionFill}
	case key.CodeEscape:
		return binding{action: actionCancel}
	}
	if k, ok := toolKeys[r]; ok {
		return binding{action: actionTool, tool: k}
	}
	switch {
	case r >= '1' && r <= '9':
		return binding{action: actionColor, color: int(r - '1')}
	case r == '+' || r == '=':
		return binding{action: actionZoomIn}
	case r == '-':
		return binding{action: actionZoomOut}
	case r == '0':
		return binding{action: actionFit}
	case r == ']':
		return binding{action: actionThicker}
	case r == '[':
		return binding{action: actionThinner}
	case r == 'q':
		return binding{action: actionQuit}
	}
	return binding{}
}
