// Package tui renders dashboard snapshots as static terminal reports.
package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Palette.
//
//nolint:gochecknoglobals // Shared color palette.
var (
	ColorHeader = lipgloss.Color("42")
	ColorLabel  = lipgloss.Color("245")
	ColorValue  = lipgloss.Color("255")
	ColorMuted  = lipgloss.Color("241")
	ColorBorder = lipgloss.Color("36")
)

// Theme is the set of styles a report is drawn with.
type Theme struct {
	Header lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Subtle lipgloss.Style
	Box    lipgloss.Style
	Table  table.Styles
}

// ColorTheme is used on terminals.
func ColorTheme() Theme {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		BorderBottom(true).
		Foreground(ColorHeader).
		Bold(true)
	// Reports are static, so no row is highlighted.
	s.Selected = lipgloss.NewStyle()

	return Theme{
		Header: lipgloss.NewStyle().Foreground(ColorHeader).Bold(true),
		Label:  lipgloss.NewStyle().Foreground(ColorLabel),
		Value:  lipgloss.NewStyle().Foreground(ColorValue).Bold(true),
		Subtle: lipgloss.NewStyle().Foreground(ColorMuted).Italic(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1),
		Table: s,
	}
}

// PlainTheme draws no colors or borders, for pipes and files.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Header: plain,
		Label:  plain,
		Value:  plain,
		Subtle: plain,
		Box:    plain,
		Table: table.Styles{
			Header:   plain.Padding(0, 1),
			Cell:     plain.Padding(0, 1),
			Selected: plain,
		},
	}
}
