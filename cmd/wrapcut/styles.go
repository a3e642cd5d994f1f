package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/piwi3910/WrapCut/internal/accounting"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8a94a6"))

	goodStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A")).Bold(true)
	acceptableStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107")).Bold(true)
	lowStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935")).Bold(true)
)

// dpiStyle picks the colour for a resolution tier.
func dpiStyle(status accounting.DPIStatus) lipgloss.Style {
	switch status {
	case accounting.DPIGood:
		return goodStyle
	case accounting.DPIAcceptable:
		return acceptableStyle
	default:
		return lowStyle
	}
}
