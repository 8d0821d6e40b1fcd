// Package presentation holds the view-facing state of the calculator: the
// light/dark theme and the history drawer with its timed exit transition.
package presentation
