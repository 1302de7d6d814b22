package editor

import (
	"errors"
	"fmt"
	"io"

	"github.com/iw2rmb/promptline/buffer"
	"github.com/iw2rmb/promptline/history"
	"github.com/iw2rmb/promptline/terminal"
)

// ErrExit is returned by ReadLine when the user ends the session, either by
// submitting the exit keyword, pressing an exit key, or closing the input.
var ErrExit = errors.New("editor: exit")

// Session is one interactive line editing session on a terminal surface.
//
// The session owns its buffer and history. It is driven from a single
// goroutine: each event is read, applied, and repainted before the next read.
type Session struct {
	cfg     Config
	surface terminal.Surface
	buf     *buffer.Buffer
	hist    *history.Store

	promptOffset int
}

func New(surface terminal.Surface, cfg Config) *Session {
	cfg = normalizeConfig(cfg)
	return &Session{
		cfg:     cfg,
		surface: surface,
		buf:     buffer.New(""),
		hist: history.NewWithOptions(cfg.HistoryLimit, history.Options{
			IgnoreDups: cfg.IgnoreDups,
		}),
	}
}

func (s *Session) Buffer() *buffer.Buffer { return s.buf }

func (s *Session) History() *history.Store { return s.hist }

// PromptOffset is the column where editable text starts on the current line.
func (s *Session) PromptOffset() int { return s.promptOffset }

// ReadLine draws the prompt and edits one line until it is submitted. It
// returns ErrExit when the session should end and a wrapped terminal error
// when the surface fails.
func (s *Session) ReadLine() (string, error) {
	if err := s.drawPrompt(); err != nil {
		return "", err
	}

	for {
		msg, err := s.surface.ReadEvent()
		if errors.Is(err, io.EOF) {
			s.debugf("input closed")
			if err := s.apply(messageOps(s.cfg.ExitKeyword)); err != nil {
				return "", err
			}
			return "", ErrExit
		}
		if err != nil {
			return "", fmt.Errorf("editor: read event: %w", err)
		}

		out := s.Update(msg)
		switch {
		case out.Exit:
			ops := newlineOps()
			// The typed keyword is already on screen; an exit key is not.
			if out.Intent.Kind == IntentExit {
				ops = messageOps(s.cfg.ExitKeyword)
			}
			if err := s.apply(ops); err != nil {
				return "", err
			}
			return "", ErrExit
		case out.Submitted:
			return out.Line, nil
		case out.Repaint:
			if err := s.repaint(); err != nil {
				return "", err
			}
		}
	}
}

// Run is the read-eval-print loop: every submitted line is echoed with the
// configured label until the session exits.
func (s *Session) Run() (err error) {
	if err := s.surface.EnterRaw(); err != nil {
		return fmt.Errorf("editor: %w", err)
	}
	defer func() {
		if lerr := s.surface.LeaveRaw(); lerr != nil && err == nil {
			err = fmt.Errorf("editor: %w", lerr)
		}
	}()

	for {
		line, err := s.ReadLine()
		if errors.Is(err, ErrExit) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := s.apply(messageOps(s.echoLine(line))); err != nil {
			return err
		}
	}
}

func (s *Session) drawPrompt() error {
	if err := s.surface.SetForeground(s.cfg.PromptColor); err != nil {
		return fmt.Errorf("editor: draw prompt: %w", err)
	}
	if err := s.surface.Write(s.cfg.Prompt); err != nil {
		return fmt.Errorf("editor: draw prompt: %w", err)
	}
	if err := s.surface.ResetColor(); err != nil {
		return fmt.Errorf("editor: draw prompt: %w", err)
	}
	if err := s.surface.Flush(); err != nil {
		return fmt.Errorf("editor: draw prompt: %w", err)
	}

	col, err := s.surface.CursorColumn()
	if err != nil {
		return fmt.Errorf("editor: query prompt column: %w", err)
	}
	s.promptOffset = col
	s.debugf("prompt offset=%d", col)
	return nil
}

func (s *Session) repaint() error {
	return s.apply(repaintOps(s.buf.Text(), s.buf.InsertionPoint(), s.promptOffset))
}

func (s *Session) apply(ops []terminal.Op) error {
	if err := terminal.Apply(s.surface, ops); err != nil {
		return fmt.Errorf("editor: repaint: %w", err)
	}
	return nil
}

func (s *Session) debugf(format string, args ...any) {
	if !s.cfg.Debug {
		return
	}
	s.cfg.Logger.Printf(format, args...)
}
