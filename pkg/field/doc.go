// Package field abstracts the text field a formatter is attached to.
//
// Adapter is the minimal surface the edit logic needs: read and replace the
// text, read and move the selection. Host adds event binding, notifications
// and a cooperative task loop for deferred work. Memory is a complete
// in-process Host used by the CLI, the terminal UI and tests; it performs
// native editing for every event a formatter leaves unconsumed.
package field
