package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/spanfind"
	"github.com/iw2rmb/spanfind/editor"
	"github.com/iw2rmb/spanfind/highlight"
)

type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }
func (systemClipboard) WriteText(s string) error  { return clipboard.WriteAll(s) }

type model struct {
	path   string
	editor editor.Model
	saved  uint64
}

func newModel(path, text string, cfg editor.Config) model {
	cfg.Text = text
	ed := editor.New(cfg)
	return model{path: path, editor: ed, saved: ed.Buffer().TextVersion()}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+q":
			return m, tea.Quit
		case "ctrl+s":
			if err := m.save(); err != nil {
				log.Printf("save %s: %v", m.path, err)
			} else {
				log.Printf("saved %s", m.path)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }

func (m *model) save() error {
	b := m.editor.Buffer()
	if b.TextVersion() == m.saved {
		return nil
	}
	if err := os.WriteFile(m.path, []byte(b.Text()), 0o644); err != nil {
		return err
	}
	m.saved = b.TextVersion()
	return nil
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func main() {
	var (
		logPath  = flag.String("log", "", "write debug log to `file`")
		lineNums = flag.Bool("lines", true, "show line numbers")
		readOnly = flag.Bool("readonly", false, "open the file read-only")
		history  = flag.Int("history", 0, "undo history limit (0 keeps the default)")
		version  = flag.Bool("version", false, "print version and exit")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <file>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		fmt.Println(spanfind.VersionTag())
		return
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "spanfind")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	text, err := readFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg := editor.Config{
		ShowLineNums:   *lineNums,
		ShowStatusLine: true,
		Style:          editor.DefaultStyle(),
		Highlighter:    highlight.ForFile(path),
		Theme:          highlight.DefaultTheme(),
		ReadOnly:       *readOnly,
		Clipboard:      systemClipboard{},
		HistoryLimit:   *history,
		OnChange: func(ev editor.ChangeEvent) {
			if ev.HasChange {
				log.Printf("change v%d: %d edit(s)", ev.TextVersion, len(ev.Change.AppliedEdits))
			}
		},
	}

	p := tea.NewProgram(newModel(path, text, cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
