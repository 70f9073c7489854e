// Command quill opens a markdown file in the live-styling terminal editor.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iw2rmb/quill"
	"github.com/iw2rmb/quill/config"
	"github.com/iw2rmb/quill/internal/filewatch"
	"github.com/iw2rmb/quill/internal/logging"
)

type options struct {
	path       string
	configPath string
	readOnly   bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts, ok := parseFlags()
	if !ok {
		return 0
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()
	ctx := logging.NewContext(context.Background(), log)

	text, err := readDocument(opts.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	var watcher *filewatch.Watcher
	if w, err := filewatch.Watch(ctx, opts.path, filewatch.DefaultDelay); err != nil {
		log.Warn("external changes will not be picked up", zap.Error(err))
	} else {
		watcher = w
		defer func() { _ = w.Close() }()
	}

	m := newApp(ctx, cfg, opts, text, watcher)
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Editor.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(m, progOpts...).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// parseFlags reports false when the process should exit without opening
// the editor.
func parseFlags() (options, bool) {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file (.toml, .yaml)")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.BoolVar(&opts.readOnly, "readonly", false, "Open the file without editing")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: quill [flags] FILE\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Println(quill.Banner())
		return opts, false
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	opts.path = flag.Arg(0)
	return opts, true
}

// readDocument returns the file contents, or an empty document for a file
// that does not exist yet.
func readDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
