// Package logging builds the process logger.
package logging

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// Options configures New.
type Options struct {
	// Level is a logrus level name; empty means "warning".
	Level string
	// Out defaults to os.Stderr.
	Out io.Writer
}

// New returns a text logger. Colors are forced when Out is a terminal.
func New(opts Options) (*logrus.Logger, error) {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	level := logrus.WarnLevel
	if opts.Level != "" {
		l, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, err
		}
		level = l
	}
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:      isTerminal(out),
		DisableTimestamp: true,
	})
	return log, nil
}

// Component returns an entry tagged with the component name.
func Component(log *logrus.Logger, name string) *logrus.Entry {
	return log.WithField("component", name)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
