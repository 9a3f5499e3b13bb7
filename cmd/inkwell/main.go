// Package main is the entry point for the inkwell editor.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/dshills/inkwell/internal/app"
	"github.com/dshills/inkwell/internal/config"
	"github.com/dshills/inkwell/internal/document"
	"github.com/dshills/inkwell/internal/input"
	"github.com/dshills/inkwell/internal/logging"
	"github.com/dshills/inkwell/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath  string
	seedPath    string
	render      string
	logLevel    string
	exec        string
	output      string
	watch       bool
	interactive string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.render != "" {
		cfg.Render.Mode = opts.render
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger := logging.New(logging.ParseLevel(cfg.Log.Level))

	var editorOpts []app.Option
	editorOpts = append(editorOpts, app.WithLogger(logger))
	if opts.seedPath != "" {
		doc, err := app.LoadDocument(opts.seedPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: seed %s: %v\n", opts.seedPath, err)
			return 1
		}
		editorOpts = append(editorOpts, app.WithDocument(doc))
	}

	editor, err := app.New(cfg, editorOpts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer editor.Close()
	defer func() {
		editor.Logger().Debug("session finished", "document", documentSummary(editor.Document()))
	}()

	for _, cmd := range parseExec(opts.exec) {
		if err := editor.Execute(cmd); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	if !interactive(opts.interactive) {
		if err := writeOutput(os.Stdout, editor, opts.output); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	if opts.watch && opts.configPath != "" {
		w, err := config.NewWatcher(opts.configPath, func(c config.Config, err error) {
			if err != nil {
				editor.Logger().Warn("config reload failed", "err", err)
				return
			}
			if err := editor.Reconfigure(c); err != nil {
				editor.Logger().Warn("config reload rejected", "err", err)
			}
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: watch %s: %v\n", opts.configPath, err)
			return 1
		}
		defer w.Close()
	}

	screen, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	screen.SetAltAsMeta(cfg.Keymap.AltAsMeta)
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = editor.Run(ctx, screen)
	screen.Shutdown()
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := writeOutput(os.Stdout, editor, opts.output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file (.toml, .yaml)")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.seedPath, "seed", "", "Seed document (.json, .yaml, or legacy value JSON)")
	flag.StringVar(&opts.seedPath, "s", "", "Seed document (shorthand)")
	flag.StringVar(&opts.render, "render", "", "View mode (markup, term)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.exec, "exec", "", "Commands to apply before output, e.g. \"toggle_mark:bold,toggle_block:code\"")
	flag.StringVar(&opts.output, "output", "view", "Output on exit (view, json, yaml, legacy)")
	flag.StringVar(&opts.interactive, "interactive", "auto", "Run the terminal editor (auto, always, never)")
	flag.BoolVar(&opts.watch, "watch", true, "Reload shortcuts when the config file changes")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "inkwell - rich-text editor core\n\n")
		fmt.Fprintf(os.Stderr, "Usage: inkwell [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+B bold, Ctrl+I italic, Alt+M code block\n")
		fmt.Fprintf(os.Stderr, "  Up/Down select a block, Home select all, Ctrl+Q quit\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  inkwell                                  Edit the sample document\n")
		fmt.Fprintf(os.Stderr, "  inkwell -seed doc.yaml -render term      Edit a document\n")
		fmt.Fprintf(os.Stderr, "  inkwell -exec toggle_bold_mark -interactive never\n")
		fmt.Fprintf(os.Stderr, "\nEnvironment: %s\n", strings.Join(config.EnvNames(), " "))
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("inkwell %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch opts.output {
	case "view", app.FormatJSON, app.FormatYAML, app.FormatLegacy:
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid output %q (must be view, json, yaml, or legacy)\n", opts.output)
		os.Exit(1)
	}
	switch opts.interactive {
	case "auto", "always", "never":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid interactive mode %q (must be auto, always, or never)\n", opts.interactive)
		os.Exit(1)
	}

	return opts
}

// interactive decides whether to open the terminal editor.
func interactive(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	}
}

// parseExec turns "name[:arg],..." into API commands. The argument is
// offered as both mark and block type; each handler reads the one it needs.
func parseExec(spec string) []input.Command {
	var cmds []input.Command
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, arg, _ := strings.Cut(part, ":")
		payload := input.Payload{}
		if arg != "" {
			payload[input.PayloadMark] = arg
			payload[input.PayloadType] = arg
		}
		cmds = append(cmds, input.NewCommand(name, payload).WithSource(input.SourceAPI))
	}
	return cmds
}

func writeOutput(w io.Writer, editor *app.Editor, format string) error {
	if format == "view" {
		_, err := fmt.Fprintln(w, editor.View())
		return err
	}
	return app.WriteDocument(w, editor.Document(), format)
}

// documentSummary describes doc for the exit log record.
func documentSummary(doc document.Document) string {
	chars := 0
	for _, b := range doc.Blocks() {
		chars += len([]rune(document.PlainText(b)))
	}
	return fmt.Sprintf("%d blocks, %d chars", doc.Len(), chars)
}
