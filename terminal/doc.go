// Package terminal provides the surface the line editor draws on and reads
// keystrokes from.
//
// Surface is the capability interface the editor depends on. Terminal is
// the ANSI implementation for a real terminal: raw mode comes from
// golang.org/x/term, escape sequences and color profiles from
// github.com/muesli/termenv, and raw input bytes are decoded into
// bubbletea key messages so the editor can resolve them through
// bubbles/key bindings.
package terminal
