// Package tui is a full-screen front-end built on bubbletea. Key presses are
// translated into key events and delivered to an in-memory field, so the
// field on screen behaves exactly like a formatted input element: masks fill
// as you type, amounts regroup and blur runs on Enter.
//
// Keys: Enter or Tab commits the value, Esc finishes, Ctrl+C aborts.
// Ctrl+A selects everything, Ctrl+X cuts and Ctrl+V pastes the cut text.
// Bracketed paste from the terminal is delivered as a paste.
package tui
