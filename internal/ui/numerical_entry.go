package ui

import (
	"strings"

	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// NumericalEntry is an Entry that only accepts digits, plus a single decimal
// point when AllowDecimal is set.
type NumericalEntry struct {
	widget.Entry

	AllowDecimal bool
}

// NewNumericalEntry creates an entry for whole numbers such as a port.
func NewNumericalEntry() *NumericalEntry {
	entry := &NumericalEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

// NewDecimalEntry creates an entry for decimal numbers such as a radius.
func NewDecimalEntry() *NumericalEntry {
	entry := NewNumericalEntry()
	entry.AllowDecimal = true
	return entry
}

// TypedRune drops every keystroke that cannot be part of a number.
// Pasted text bypasses this filter; the Validator catches it.
func (e *NumericalEntry) TypedRune(r rune) {
	switch {
	case r >= '0' && r <= '9':
		e.Entry.TypedRune(r)
	case r == '.' && e.AllowDecimal && !strings.ContainsRune(e.Text, '.'):
		e.Entry.TypedRune(r)
	}
}

// Keyboard requests a numeric keypad on mobile devices.
func (e *NumericalEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}
