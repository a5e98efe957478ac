// package ui styles terminal output for the CLI
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var styles = NewPalette("#7D56F4", "#04B575", "#FF0000", "#FFA500", "#626262")

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
	warn  lipgloss.Style
	help  lipgloss.Style
}

func NewPalette(t, s, e, w, h string) *Palette {
	return &Palette{
		title: NewBold(t).MarginBottom(1),
		ok:    NewBold(s),
		err:   NewBold(e),
		warn:  NewStyle(w),
		help:  NewEm(h),
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}

// Title renders text in the bold title style.
func Title(text string) string { return styles.title.Render(text) }

// OK renders text in the success style.
func OK(text string) string { return styles.ok.Render(text) }

// Err renders text in the error style.
func Err(text string) string { return styles.err.Render(text) }

// Warn renders text in the warning style.
func Warn(text string) string { return styles.warn.Render(text) }

// Help renders text in the muted help style.
func Help(text string) string { return styles.help.Render(text) }
