package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/iw2rmb/piecevi"
	"github.com/iw2rmb/piecevi/editor"
	"github.com/iw2rmb/piecevi/internal/file"
)

type model struct {
	editor editor.Model
}

func (m model) Init() tea.Cmd { return m.editor.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }

type options struct {
	path         string
	showLineNums bool
	logPath      string
}

func main() {
	var opts options
	flag.BoolVar(&opts.showLineNums, "n", false, "show line numbers")
	flag.StringVar(&opts.logPath, "log", os.Getenv("PIECEVI_LOG"), "append debug log to `file` (default $PIECEVI_LOG)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-n] [-log file] <path>\n", piecevi.Name)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(piecevi.Banner())
		return
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	opts.path = flag.Arg(0)

	if err := run(opts); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func run(opts options) error {
	if opts.logPath != "" {
		f, err := tea.LogToFile(opts.logPath, piecevi.Name)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(piecevi.Name + ": not a terminal")
	}

	text, err := file.Load(opts.path)
	if err != nil {
		return err
	}
	log.Printf("%s: opened %s (%d bytes)", piecevi.Banner(), opts.path, len(text))

	m := model{editor: editor.New(editor.Config{
		Text:         text,
		Path:         opts.path,
		Store:        file.Disk{},
		ShowLineNums: opts.showLineNums,
		Style:        editor.DefaultStyle(),
	})}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	log.Printf("exit")
	return nil
}
