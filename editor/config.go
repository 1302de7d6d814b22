package editor

import (
	"io"
	"log"

	"github.com/iw2rmb/promptline/history"
)

// Config configures a Session. Start from DefaultConfig and override fields.
type Config struct {
	// Prompt is drawn in PromptColor at the start of every line.
	Prompt      string
	PromptColor string

	// Submitting ExitKeyword ends the session. Empty disables it.
	ExitKeyword string
	// EchoLabel prefixes every echoed line.
	EchoLabel string

	// Forwarded to history.Options.
	HistoryLimit int
	IgnoreDups   bool

	KeyMap KeyMap
	Style  Style

	// Logger receives debug output when Debug is set. Nil discards.
	Logger *log.Logger
	Debug  bool

	// OnChange is called after every effective buffer change.
	OnChange func(ChangeEvent)
}

func DefaultConfig() Config {
	return Config{
		Prompt:       ">",
		PromptColor:  "4",
		ExitKeyword:  "exit",
		EchoLabel:    "Our buffer: ",
		HistoryLimit: history.DefaultCapacity,
		KeyMap:       DefaultKeyMap(),
		Style:        DefaultStyle(),
	}
}

func normalizeConfig(cfg Config) Config {
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = history.DefaultCapacity
	}
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}
	return cfg
}
