// Command promptline is an interactive line editor that echoes every line it
// reads until "exit" is submitted or ctrl+d is pressed.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/promptline"
	"github.com/iw2rmb/promptline/editor"
	"github.com/iw2rmb/promptline/terminal"
)

func main() {
	cfg := editor.DefaultConfig()

	prompt := flag.String("prompt", cfg.Prompt, "prompt glyph")
	promptColor := flag.String("prompt-color", cfg.PromptColor, "prompt color (ANSI index or #rrggbb)")
	historyLimit := flag.Int("history", cfg.HistoryLimit, "number of submitted lines to keep")
	ignoreDups := flag.Bool("ignore-dups", false, "do not store a line equal to the previous one")
	labelColor := flag.String("label-color", "", "color of the echo label")
	logPath := flag.String("log", "", "append debug log to this file")
	debug := flag.Bool("debug", false, "log buffer and history changes")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Usage = usage(cfg.KeyMap)
	flag.Parse()

	if *showVersion {
		fmt.Println(promptline.Banner())
		return
	}

	logger, closeLog, err := openLog(*logPath)
	if err != nil {
		log.Fatalf("promptline: %v", err)
	}
	defer closeLog()

	cfg.Prompt = *prompt
	cfg.PromptColor = *promptColor
	cfg.HistoryLimit = *historyLimit
	cfg.IgnoreDups = *ignoreDups
	cfg.Logger = logger
	cfg.Debug = *debug
	if *labelColor != "" {
		cfg.Style.Label = cfg.Style.Label.Foreground(lipgloss.Color(*labelColor))
	}

	term := terminal.New(os.Stdin, os.Stdout)
	logger.Printf("promptline %s starting (tty=%v profile=%v)", promptline.VersionTag(), term.IsTerminal(), term.Profile())

	if err := editor.New(term, cfg).Run(); err != nil {
		closeLog()
		log.Fatalf("promptline: %v", err)
	}
}

func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return log.New(f, "promptline: ", log.LstdFlags|log.Lmicroseconds), func() { _ = f.Close() }, nil
}

func usage(km editor.KeyMap) func() {
	return func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Usage: %s [flags]\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintln(out, "\nKeys:")
		for _, b := range km.Bindings() {
			h := b.Help()
			fmt.Fprintf(out, "  %-12s %-14s %s\n", h.Key, h.Desc, strings.Join(b.Keys(), ", "))
		}
	}
}
