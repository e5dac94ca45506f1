package cli

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary actions
	colorGreen = lipgloss.Color("35")  // Green - success
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleTitle      = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleSelected   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleNormal     = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim        = lipgloss.NewStyle().Foreground(colorDim)
	styleSuccess    = lipgloss.NewStyle().Foreground(colorGreen)
	styleError      = lipgloss.NewStyle().Foreground(colorRed)
	styleComplexity = lipgloss.NewStyle().Italic(true).Foreground(colorDim)
)
