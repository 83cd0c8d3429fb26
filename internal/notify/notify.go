// Package notify raises desktop notifications after exports and captures.
package notify

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/example/inkshot/internal/config"
	"github.com/example/inkshot/internal/pixbuf"
	"github.com/example/inkshot/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventCapture emits a notification when a capture completes.
	EventCapture Event = "capture"
	// EventSave emits a notification when an image is persisted to disk.
	EventSave Event = "save"
	// EventCopy emits a notification when data is copied to the clipboard.
	EventCopy Event = "copy"
)

// Preferences describes notification titles and body templates.
type Preferences struct {
	Title     string
	Templates map[Event]string
}

// DefaultPreferences returns the default notification settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: "inkshot",
		Templates: map[Event]string{
			EventCapture: "Captured %s",
			EventSave:    "Saved %s",
			EventCopy:    "Copied %s to clipboard",
		},
	}
}

// LoadPreferences applies INKSHOT_NOTIFY_* environment overrides to the defaults.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("INKSHOT_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	for event, key := range map[Event]string{
		EventCapture: "INKSHOT_NOTIFY_CAPTURE_TEXT",
		EventSave:    "INKSHOT_NOTIFY_SAVE_TEXT",
		EventCopy:    "INKSHOT_NOTIFY_COPY_TEXT",
	} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			prefs.Templates[event] = v
		}
	}
	return prefs
}

// Sender delivers one notification.
type Sender func(title, body string, opts platform.Options) error

// Notifier sends OS-level notifications for the enabled events.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
	send    Sender
	log     *logrus.Entry
}

// New creates a Notifier with the events enabled in cfg.
func New(prefs Preferences, cfg config.Notify, log *logrus.Entry) *Notifier {
	templates := make(map[Event]string, len(prefs.Templates))
	for k, v := range prefs.Templates {
		templates[k] = v
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Notifier{
		prefs: Preferences{Title: prefs.Title, Templates: templates},
		enabled: map[Event]bool{
			EventCapture: cfg.Capture,
			EventSave:    cfg.Save,
			EventCopy:    cfg.Copy,
		},
		send: platform.Notify,
		log:  log.WithField("component", "notify"),
	}
}

// SetSender replaces the delivery function.
func (n *Notifier) SetSender(s Sender) {
	if n != nil {
		n.send = s
	}
}

// Capture sends a capture notification with a thumbnail of img.
func (n *Notifier) Capture(detail string, img *pixbuf.Image) {
	if !n.enabledFor(EventCapture) {
		return
	}
	opts := platform.Options{}
	if img != nil {
		if path, cleanup, err := createPreview(img); err != nil {
			n.log.WithError(err).Warn("notification preview")
		} else {
			defer cleanup()
			opts.IconPath = path
		}
	}
	n.dispatch(EventCapture, detail, opts)
}

// Save sends a save notification including the written filename.
func (n *Notifier) Save(path string) {
	if !n.enabledFor(EventSave) {
		return
	}
	detail := strings.TrimSpace(path)
	opts := platform.Options{}
	if abs, err := filepath.Abs(path); err == nil {
		detail = abs
		if _, statErr := os.Stat(abs); statErr == nil {
			opts.IconPath = abs
		}
	}
	n.dispatch(EventSave, detail, opts)
}

// Copy sends a clipboard notification.
func (n *Notifier) Copy(detail string) {
	if !n.enabledFor(EventCopy) {
		return
	}
	if strings.TrimSpace(detail) == "" {
		detail = "image"
	}
	n.dispatch(EventCopy, detail, platform.Options{})
}

func (n *Notifier) enabledFor(event Event) bool {
	return n != nil && n.enabled[event]
}

func (n *Notifier) dispatch(event Event, detail string, opts platform.Options) {
	template := strings.TrimSpace(n.prefs.Templates[event])
	if template == "" {
		return
	}
	body := strings.TrimSpace(fmt.Sprintf(template, strings.TrimSpace(detail)))
	if body == "" {
		return
	}
	if err := n.send(n.prefs.Title, body, opts); err != nil {
		n.log.WithError(err).WithField("event", string(event)).Warn("notification failed")
	}
}

func createPreview(img *pixbuf.Image) (string, func(), error) {
	f, err := os.CreateTemp("", "inkshot-preview-*.png")
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	if err := png.Encode(f, img.View()); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", nil, err
	}
	cleanup := func() { _ = os.Remove(path) }
	return path, cleanup, nil
}
