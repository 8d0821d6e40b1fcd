// Package tui is a terminal view over a calculator.Calculator built with
// bubbletea and lipgloss.
package tui
