package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/example/inkshot/internal/codec"
	"github.com/example/inkshot/internal/compositor"
	"github.com/example/inkshot/internal/format"
	"github.com/example/inkshot/internal/notify"
	"github.com/example/inkshot/internal/pixbuf"
	"github.com/example/inkshot/internal/shape"
)

// copyFunc publishes data on the clipboard. The channel closes once the data
// no longer depends on this process.
type copyFunc func(mime string, data []byte) (<-chan struct{}, error)

// exporter turns the current shape list into encoded output. Every export
// flattens from the unmodified source image, so repeated exports with the same
// shapes produce identical bytes.
type exporter struct {
	registry *codec.Registry
	comp     *compositor.Compositor
	src      *pixbuf.Image
	target   format.Format

	outPath string // file path, or "" for none
	stdout  io.Writer
	copy    copyFunc

	notifier *notify.Notifier
	log      *logrus.Entry

	held []<-chan struct{}
}

func (e *exporter) render(shapes []shape.Shape) ([]byte, error) {
	flat, err := e.comp.Flatten(e.src, shapes)
	if err != nil {
		return nil, fmt.Errorf("flatten: %w", err)
	}
	defer flat.Release()
	e.log.Debugf("flattened %d shapes into %dx%d (%d bytes)", len(shapes), flat.Width, flat.Height, flat.Len())
	data, err := e.registry.EncodeImage(flat, e.target)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", e.target, err)
	}
	return data, nil
}

// Save writes the flattened image to the output file, or to stdout when no
// file was named and stdout is the destination.
func (e *exporter) Save(shapes []shape.Shape) error {
	data, err := e.render(shapes)
	if err != nil {
		return err
	}
	return e.write(data)
}

func (e *exporter) write(data []byte) error {
	switch {
	case e.outPath != "":
		if err := writeFileAtomic(e.outPath, data); err != nil {
			return err
		}
		e.log.Infof("wrote %d bytes to %s", len(data), e.outPath)
		if e.notifier != nil {
			e.notifier.Save(e.outPath)
		}
	case e.stdout != nil:
		if _, err := e.stdout.Write(data); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
	}
	return nil
}

// Copy publishes the flattened image on the clipboard.
func (e *exporter) Copy(shapes []shape.Shape) error {
	data, err := e.render(shapes)
	if err != nil {
		return err
	}
	return e.publish(data)
}

func (e *exporter) publish(data []byte) error {
	if e.copy == nil {
		return fmt.Errorf("clipboard is not available")
	}
	done, err := e.copy(e.target.MIME(), data)
	if err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	e.held = append(e.held, done)
	e.log.Infof("copied %d bytes of %s to the clipboard", len(data), e.target.MIME())
	if e.notifier != nil {
		e.notifier.Copy(e.target.String() + " image")
	}
	return nil
}

// wait blocks until no clipboard selection depends on this process.
func (e *exporter) wait() {
	for _, done := range e.held {
		select {
		case <-done:
			continue
		default:
		}
		e.log.Warn("serving the clipboard until another application takes it over")
		<-done
	}
	e.held = nil
}
