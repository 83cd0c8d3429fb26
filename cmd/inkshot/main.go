package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/example/inkshot/internal/capture"
	"github.com/example/inkshot/internal/clipboard"
	"github.com/example/inkshot/internal/codec"
	"github.com/example/inkshot/internal/compositor"
	"github.com/example/inkshot/internal/config"
	"github.com/example/inkshot/internal/editor"
	"github.com/example/inkshot/internal/format"
	"github.com/example/inkshot/internal/logging"
	"github.com/example/inkshot/internal/notify"
	"github.com/example/inkshot/internal/pixbuf"
	"github.com/example/inkshot/internal/raster"
	"github.com/example/inkshot/internal/shape"
	"github.com/example/inkshot/internal/theme"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// Seams replaced in tests.
var (
	captureFn   = capture.Screenshot
	clipboardFn = clipboard.Copy
	editorFn    = editor.Run
	now         = time.Now
)

type root struct {
	fs      *flag.FlagSet
	program string

	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	terminal func(any) bool

	formatName  string
	configPath  string
	help        bool
	showVersion bool
	printConfig bool
	copy        bool
	capture     bool
	batch       bool
	draws       drawSpecs
	colorSpec   string
	width       float64
	renderer    string
	logLevel    string
	themeName   string
}

func (r *root) Program() string        { return r.program }
func (r *root) FlagSet() *flag.FlagSet { return r.fs }

func newRoot(stdin io.Reader, stdout, stderr io.Writer) *root {
	r := &root{
		fs:       flag.NewFlagSet("inkshot", flag.ContinueOnError),
		program:  "inkshot",
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
		terminal: isTerminal,
	}
	r.fs.SetOutput(io.Discard)
	r.fs.StringVar(&r.formatName, "f", "", "export format: png, jpeg or jxl (default from config, else png)")
	r.fs.StringVar(&r.configPath, "c", "", "configuration file")
	r.fs.BoolVar(&r.help, "h", false, "show this help")
	r.fs.BoolVar(&r.showVersion, "V", false, "print the version and exit")
	r.fs.BoolVar(&r.printConfig, "print-config", false, "print the effective configuration and exit")
	r.fs.BoolVar(&r.copy, "copy", false, "copy the exported image to the clipboard")
	r.fs.BoolVar(&r.capture, "capture", false, "take the input from a desktop screenshot instead of IN_FILE")
	r.fs.BoolVar(&r.batch, "batch", false, "skip the editor and draw the -draw specs")
	r.fs.Var(&r.draws, "draw", "shape to draw, may be repeated (see below)")
	r.fs.StringVar(&r.colorSpec, "color", "", "stroke color name or hex value (default from config)")
	r.fs.Float64Var(&r.width, "width", 0, "stroke width in pixels (default from config)")
	r.fs.StringVar(&r.renderer, "renderer", "", "shape renderer: raster or smooth (default from config)")
	r.fs.StringVar(&r.logLevel, "log-level", "", "log level: error, warn, info or debug")
	r.fs.StringVar(&r.themeName, "theme", "", "editor color theme name or file")
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return &UsageError{of: r, Requested: true}
		}
		return &UsageError{of: r, Reason: err.Error()}
	}
	if r.help {
		return &UsageError{of: r, Requested: true}
	}
	if r.showVersion {
		fmt.Fprintf(r.stdout, "%s version %s\n", r.program, versionString())
		return nil
	}
	if r.fs.NArg() > 2 {
		return &UsageError{of: r, Reason: "too many arguments"}
	}
	if r.capture && r.fs.NArg() > 0 && r.fs.Arg(0) != "-" {
		return &UsageError{of: r, Reason: "-capture replaces IN_FILE; pass \"-\" to name OUT_FILE"}
	}
	if len(r.draws) > 0 && !r.batch {
		return &UsageError{of: r, Reason: "-draw requires -batch"}
	}

	cfg, err := config.NewLoader(version, r.configPath).Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if r.printConfig {
		fmt.Fprint(r.stdout, cfg.String())
		return nil
	}
	level := cfg.LogLevel
	if r.logLevel != "" {
		level = r.logLevel
	}
	log, err := logging.New(logging.Options{Level: level, Out: r.stderr})
	if err != nil {
		return &UsageError{of: r, Reason: err.Error()}
	}

	target, err := r.exportFormat(cfg)
	if err != nil {
		return err
	}
	style, err := r.style(cfg)
	if err != nil {
		return err
	}
	rendererName := cfg.Renderer
	if r.renderer != "" {
		rendererName = r.renderer
	}
	factory, err := raster.Lookup(rendererName)
	if err != nil {
		return &UsageError{of: r, Reason: err.Error()}
	}

	inPath, outPath := r.fs.Arg(0), r.fs.Arg(1)
	if r.capture && outPath == "" && cfg.SaveDir != "" {
		outPath = snapshotPath(cfg.SaveDir, target)
	}
	toStdout := outPath == "-" || (outPath == "" && !r.copy)
	if toStdout && r.terminal(r.stdout) {
		return errTerminalOut
	}

	notifier := notify.New(notify.LoadPreferences(), cfg.Notify, logging.Component(log, "notify"))
	registry := codec.NewRegistry(features(cfg.Codecs), logging.Component(log, "codec"))

	src, err := r.load(registry, inPath, notifier, log)
	if err != nil {
		return err
	}

	exp := &exporter{
		registry: registry,
		comp:     compositor.New(factory, logging.Component(log, "compositor")),
		src:      src,
		target:   target,
		notifier: notifier,
		log:      logging.Component(log, "export"),
		copy:     clipboardFn,
	}
	if !usesStdio(outPath) {
		exp.outPath = outPath
	} else if toStdout {
		exp.stdout = r.stdout
	}

	if r.batch {
		shapes, err := parseDrawSpecs(r.draws, style)
		if err != nil {
			return &UsageError{of: r, Reason: err.Error()}
		}
		if err := r.finish(exp, shapes); err != nil {
			return err
		}
		exp.wait()
		return nil
	}

	th := r.loadTheme(cfg, log)
	sess := editor.NewSession(cfg.Editor.Tool, style)
	err = editorFn(editor.Options{
		Title:   "inkshot",
		Image:   src,
		Session: sess,
		Theme:   th,
		Save: func(shapes []shape.Shape) error {
			if exp.outPath == "" {
				// stdout is written once, when the window closes
				_, err := exp.render(shapes)
				return err
			}
			return exp.Save(shapes)
		},
		Copy:  exp.Copy,
		Close: func(shapes []shape.Shape) error { return r.finish(exp, shapes) },
		Log:   logging.Component(log, "editor"),
	})
	if err != nil {
		return err
	}
	exp.wait()
	return nil
}

// finish performs the final export to every requested destination.
func (r *root) finish(exp *exporter, shapes []shape.Shape) error {
	data, err := exp.render(shapes)
	if err != nil {
		return err
	}
	if err := exp.write(data); err != nil {
		return err
	}
	if r.copy {
		return exp.publish(data)
	}
	return nil
}

func (r *root) load(registry *codec.Registry, inPath string, notifier *notify.Notifier, log *logrus.Logger) (*pixbuf.Image, error) {
	var (
		data []byte
		err  error
	)
	if r.capture {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		data, err = captureFn(ctx, capture.Options{})
		if err != nil {
			return nil, fmt.Errorf("failed to capture screen: %w", err)
		}
	} else {
		data, err = r.readInput(inPath)
		if err != nil {
			return nil, err
		}
	}
	img, err := registry.DecodeImage(data)
	if err != nil {
		return nil, err
	}
	if r.capture {
		notifier.Capture("screen", img)
	}
	log.Debugf("loaded %dx%d %s image", img.Width, img.Height, img.Origin)
	return img, nil
}

func (r *root) exportFormat(cfg *config.Config) (format.Format, error) {
	name := cfg.Format
	if r.formatName != "" {
		name = r.formatName
	}
	f := format.FromString(name)
	for _, e := range format.Encodable() {
		if f == e {
			return f, nil
		}
	}
	return format.Invalid, &UsageError{of: r, Reason: fmt.Sprintf("unknown export format %q", name)}
}

func (r *root) style(cfg *config.Config) (shape.Style, error) {
	st := cfg.Editor.Style()
	if r.colorSpec != "" {
		c, err := parseColor(r.colorSpec)
		if err != nil {
			return st, &UsageError{of: r, Reason: err.Error()}
		}
		st.Color = c
	}
	if r.width < 0 {
		return st, &UsageError{of: r, Reason: "-width must be positive"}
	}
	if r.width > 0 {
		st.Thickness = r.width
	}
	return st, nil
}

func (r *root) loadTheme(cfg *config.Config, log *logrus.Logger) *theme.Theme {
	name := r.themeName
	if name == "" {
		name = os.Getenv("INKSHOT_THEME")
	}
	if name == "" {
		name = cfg.Theme
	}
	t, err := theme.NewLoader(cfg.Themes).Load(name)
	if err != nil {
		log.WithError(err).Warnf("failed to load theme %q, using default", name)
		return theme.Default()
	}
	return t
}

// snapshotPath names a capture saved under dir.
func snapshotPath(dir string, f format.Format) string {
	return filepath.Join(dir, "inkshot-"+now().Format("20060102-150405")+f.Extension())
}

func features(c config.Codecs) codec.Features {
	return codec.Features{PNG: c.PNG, JPEG: c.JPEG, JXL: c.JXL}
}

func versionString() string {
	parts := []string{version}
	if commit != "" {
		parts = append(parts, commit)
	}
	if date != "" {
		parts = append(parts, date)
	}
	return strings.Join(parts, " ")
}

func main() {
	r := newRoot(os.Stdin, os.Stdout, os.Stderr)
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) && uerr.Requested {
			fmt.Fprint(os.Stdout, uerr.Error())
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
