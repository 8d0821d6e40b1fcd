// Package engine holds the calculator's keypad state machine, its binary
// evaluation and number text conversions, and the history list.
//
// Nothing in this package is safe for concurrent use; callers serialise
// access (see package calculator).
package engine
