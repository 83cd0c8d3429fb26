//go:build linux || freebsd || openbsd || netbsd || dragonfly

package clipboard

import (
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// serveX11 owns the CLIPBOARD selection and answers requests for mime until
// another client claims it.
func serveX11(mime string, data []byte) (<-chan struct{}, error) {
	c := &x11Clipboard{
		mime: mime,
		data: append([]byte(nil), data...),
		done: make(chan struct{}),
	}
	if err := c.initialize(); err != nil {
		return nil, err
	}
	if err := c.setSelectionOwner(); err != nil {
		c.close()
		return nil, err
	}
	go c.eventLoop()
	return c.done, nil
}

type x11Clipboard struct {
	conn   *xgb.Conn
	window xproto.Window
	atoms  atomSet

	mime string
	data []byte

	done     chan struct{}
	doneOnce sync.Once
}

type atomSet struct {
	clipboard xproto.Atom
	targets   xproto.Atom
	target    xproto.Atom
}

func (c *x11Clipboard) initialize() error {
	conn, err := xgb.NewConn()
	if err != nil {
		return err
	}
	setup := xproto.Setup(conn)
	screen := setup.DefaultScreen(conn)
	window, err := xproto.NewWindowId(conn)
	if err != nil {
		conn.Close()
		return err
	}
	const eventMask = xproto.EventMaskPropertyChange | xproto.EventMaskStructureNotify
	if err := xproto.CreateWindowChecked(conn, screen.RootDepth, window, screen.Root, 0, 0, 1, 1, 0, xproto.WindowClassInputOutput, screen.RootVisual, xproto.CwEventMask, []uint32{eventMask}).Check(); err != nil {
		conn.Close()
		return err
	}
	atoms, err := internAtoms(conn, c.mime)
	if err != nil {
		xproto.DestroyWindow(conn, window)
		conn.Close()
		return err
	}
	c.conn = conn
	c.window = window
	c.atoms = atoms
	return nil
}

func internAtoms(conn *xgb.Conn, mime string) (atomSet, error) {
	get := func(name string) (xproto.Atom, error) {
		reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
		if err != nil {
			return 0, err
		}
		return reply.Atom, nil
	}
	var (
		set atomSet
		err error
	)
	if set.clipboard, err = get("CLIPBOARD"); err != nil {
		return atomSet{}, err
	}
	if set.targets, err = get("TARGETS"); err != nil {
		return atomSet{}, err
	}
	if set.target, err = get(mime); err != nil {
		return atomSet{}, err
	}
	return set, nil
}

func (c *x11Clipboard) setSelectionOwner() error {
	return xproto.SetSelectionOwnerChecked(c.conn, c.window, c.atoms.clipboard, xproto.TimeCurrentTime).Check()
}

func (c *x11Clipboard) eventLoop() {
	defer c.close()
	for {
		ev, err := c.conn.WaitForEvent()
		if err != nil || ev == nil {
			return
		}
		switch e := ev.(type) {
		case xproto.SelectionRequestEvent:
			c.handleSelectionRequest(e)
		case xproto.SelectionClearEvent:
			return
		}
	}
}

func (c *x11Clipboard) close() {
	c.doneOnce.Do(func() {
		if c.conn != nil {
			xproto.DestroyWindow(c.conn, c.window)
			c.conn.Close()
		}
		close(c.done)
	})
}

func (c *x11Clipboard) handleSelectionRequest(e xproto.SelectionRequestEvent) {
	property := e.Property
	if property == xproto.AtomNone {
		property = e.Target
	}

	switch e.Target {
	case c.atoms.targets:
		payload := atomsToBytes([]xproto.Atom{c.atoms.targets, c.atoms.target})
		xproto.ChangeProperty(c.conn, xproto.PropModeReplace, e.Requestor, property, xproto.AtomAtom, 32, uint32(len(payload)/4), payload)
	case c.atoms.target:
		xproto.ChangeProperty(c.conn, xproto.PropModeReplace, e.Requestor, property, c.atoms.target, 8, uint32(len(c.data)), c.data)
	default:
		property = xproto.AtomNone
	}

	notify := xproto.SelectionNotifyEvent{
		Time:      e.Time,
		Requestor: e.Requestor,
		Selection: e.Selection,
		Target:    e.Target,
		Property:  property,
	}
	_ = xproto.SendEvent(c.conn, false, e.Requestor, 0, string(notify.Bytes()))
}

func atomsToBytes(atoms []xproto.Atom) []byte {
	buf := make([]byte, len(atoms)*4)
	for i, atom := range atoms {
		xgb.Put32(buf[i*4:], uint32(atom))
	}
	return buf
}
