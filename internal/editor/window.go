package editor

import (
	"errors"
	"fmt"
	"image"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/inkshot/internal/pixbuf"
	"github.com/example/inkshot/internal/shape"
	"github.com/example/inkshot/internal/theme"
)

const (
	maxWindowWidth  = 1600
	maxWindowHeight = 1000
	zoomStep        = 1.25
)

// Options configures Run.
type Options struct {
	Title   string
	Image   *pixbuf.Image
	Session *Session
	Theme   *theme.Theme

	// Save receives the committed shapes on Ctrl+S and once more when the
	// window closes.
	Save func(shapes []shape.Shape) error
	// Copy receives the committed shapes on Ctrl+C.
	Copy func(shapes []shape.Shape) error
	// Close replaces Save for the final flush when set.
	Close func(shapes []shape.Shape) error

	Log *logrus.Entry
}

// Run opens the editor window and blocks until it is closed. The error is
// the result of the final flush.
func Run(opts Options) error {
	if opts.Image == nil || opts.Session == nil {
		return errors.New("editor: image and session are required")
	}
	if err := opts.Image.Validate(); err != nil {
		return err
	}
	if opts.Theme == nil {
		opts.Theme = theme.Default()
	}
	if opts.Log == nil {
		opts.Log = logrus.NewEntry(logrus.StandardLogger())
	}
	var err error
	driver.Main(func(s screen.Screen) {
		err = run(s, opts)
	})
	return err
}

func run(s screen.Screen, opts Options) error {
	img := opts.Image.View()
	sess := opts.Session
	log := opts.Log

	width := min(img.Rect.Dx()+toolbarWidth, maxWindowWidth)
	height := min(img.Rect.Dy()+statusHeight, maxWindowHeight)
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: opts.Title})
	if err != nil {
		return fmt.Errorf("new window: %w", err)
	}
	defer w.Release()

	fit := func() View {
		area := canvasArea(width, height)
		v := FitView(img.Rect.Dx(), img.Rect.Dy(), area.Dx(), area.Dy())
		return v.Translate(shape.Pt(float64(area.Min.X), float64(area.Min.Y)))
	}
	view := fit()
	fitted := true
	dragging := false
	message := ""

	flush := func() error {
		sess.Cancel()
		final := opts.Close
		if final == nil {
			final = opts.Save
		}
		if final == nil {
			return nil
		}
		return final(sess.Shapes())
	}
	act := func(name string, fn func([]shape.Shape) error, done string) {
		if fn == nil {
			return
		}
		if err := fn(sess.Shapes()); err != nil {
			log.WithError(err).Errorf("%s failed", name)
			message = name + " failed"
			return
		}
		message = done
	}
	toModel := func(x, y float32) shape.Point {
		return view.ToModel(shape.Pt(float64(x), float64(y)))
	}

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return flush()
			}

		case size.Event:
			width, height = e.WidthPx, e.HeightPx
			if fitted {
				view = fit()
			}

		case paint.Event:
			b, err := s.NewBuffer(image.Point{X: width, Y: height})
			if err != nil {
				log.WithError(err).Error("new buffer")
				continue
			}
			paintFrame(b.RGBA(), frame{
				theme:   opts.Theme,
				img:     img,
				view:    view,
				shapes:  sess.Shapes(),
				current: sess.Current(),
				tool:    sess.Tool(),
				style:   sess.Style(),
				status:  statusLine(sess, view, message),
			})
			w.Upload(image.Point{}, b, b.Bounds())
			b.Release()
			w.Publish()

		case mouse.Event:
			p := image.Pt(int(e.X), int(e.Y))
			switch {
			case e.Button == mouse.ButtonWheelUp || e.Button == mouse.ButtonWheelDown:
				f := zoomStep
				if e.Button == mouse.ButtonWheelDown {
					f = 1 / zoomStep
				}
				view = view.Zoom(f, shape.Pt(float64(e.X), float64(e.Y)))
				fitted = false
			case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress:
				if p.X < toolbarWidth {
					if k, ok := toolAt(p); ok {
						sess.SetTool(k)
					} else if i, ok := swatchAt(p); ok {
						setColor(sess, i)
					}
					break
				}
				if p.In(canvasArea(width, height)) {
					sess.Begin(toModel(e.X, e.Y))
					dragging = true
					message = ""
				}
			case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirRelease:
				if dragging {
					if c := sess.End(toModel(e.X, e.Y)); c != nil {
						log.Debugf("committed %s", c.Kind())
					}
					dragging = false
				}
			case e.Direction == mouse.DirNone && dragging:
				sess.Drag(toModel(e.X, e.Y))
			default:
				continue
			}
			w.Send(paint.Event{})

		case key.Event:
			bd := bindingFor(e)
			st := sess.Style()
			switch bd.action {
			case actionNone:
				continue
			case actionTool:
				sess.SetTool(bd.tool)
				dragging = false
			case actionColor:
				setColor(sess, bd.color)
			case actionUndo:
				sess.Undo()
				dragging = false
			case actionRedo:
				sess.Redo()
			case actionClear:
				sess.ClearAll()
				dragging = false
			case actionFill:
				st.Filled = !st.Filled
				sess.SetStyle(st)
			case actionThicker:
				st.Thickness++
				sess.SetStyle(st)
			case actionThinner:
				if st.Thickness > 1 {
					st.Thickness--
					sess.SetStyle(st)
				}
			case actionZoomIn, actionZoomOut:
				f := zoomStep
				if bd.action == actionZoomOut {
					f = 1 / zoomStep
				}
				c := canvasArea(width, height)
				mid := shape.Pt(float64(c.Min.X+c.Max.X)/2, float64(c.Min.Y+c.Max.Y)/2)
				view = view.Zoom(f, mid)
				fitted = false
			case actionFit:
				view = fit()
				fitted = true
			case actionSave:
				act("save", opts.Save, "saved")
			case actionCopy:
				act("copy", opts.Copy, "copied to clipboard")
			case actionCancel:
				if sess.Cancel() {
					dragging = false
					break
				}
				return flush()
			case actionQuit:
				return flush()
			}
			w.Send(paint.Event{})
		}
	}
}

func setColor(sess *Session, i int) {
	if i < 0 || i >= len(Palette) {
		return
	}
	st := sess.Style()
	st.Color = shape.FromColor(Palette[i])
	sess.SetStyle(st)
}
