// Package history stores submitted lines most-recent-first with a fixed
// capacity and a browse cursor for shell-style up/down recall.
//
// Store is a pure data structure. It performs no I/O and is not safe for
// concurrent use.
package history
