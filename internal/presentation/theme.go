package presentation

import (
	"errors"
	"fmt"
)

// ErrUnknownTheme is returned by ParseTheme for anything but "dark" or "light".
var ErrUnknownTheme = errors.New("unknown theme")

// Theme is the colour scheme the view renders with.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) String() string {
	return string(t)
}

// ParseTheme validates a configured theme name.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeDark, ThemeLight:
		return Theme(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}
