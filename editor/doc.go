// Package editor implements an interactive single-line editing session on a
// terminal surface.
//
// A Session resolves bubbletea key messages through a bubbles/key KeyMap into
// intents, applies them to a buffer.Buffer and a history.Store, and repaints
// the prompt line after every effective change. Update is the pure dispatch
// step; ReadLine and Run add the terminal I/O around it.
package editor
