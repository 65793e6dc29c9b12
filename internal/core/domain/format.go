package domain

import (
	"fmt"
	"unicode/utf8"
)

// DefaultFill is the padding character used when none is configured.
const DefaultFill = " "

// FormatSettings holds the default field width and fill character applied
// when the caller does not supply them explicitly. A width of 0 means no
// padding: content is written verbatim.
type FormatSettings struct {
	// Width is the default field width in characters.
	Width int

	// Fill is the padding character, stored as a one-rune string so it
	// round-trips cleanly through TOML.
	Fill string
}

// DefaultFormatSettings returns the out-of-the-box formatting defaults.
func DefaultFormatSettings() FormatSettings {
	return FormatSettings{
		Width: 0,
		Fill:  DefaultFill,
	}
}

// Validate checks the settings for internal consistency.
func (s FormatSettings) Validate() error {
	if s.Width < 0 {
		return fmt.Errorf("%w: width must not be negative, got %d", ErrInvalidInput, s.Width)
	}
	if utf8.RuneCountInString(s.Fill) != 1 {
		return fmt.Errorf("%w: fill must be exactly one character, got %q", ErrInvalidInput, s.Fill)
	}
	return nil
}

// FillRune returns the fill character as a rune, falling back to a space
// when the stored value is empty or malformed.
func (s FormatSettings) FillRune() rune {
	r, size := utf8.DecodeRuneInString(s.Fill)
	if size == 0 || r == utf8.RuneError {
		return ' '
	}
	return r
}
