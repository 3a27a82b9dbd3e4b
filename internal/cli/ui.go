package cli

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - individuals
	colorGray  = lipgloss.Color("245") // Gray - tree branches
	colorDim   = lipgloss.Color("240") // Dim gray - virtual root
	colorWhite = lipgloss.Color("255") // Bright white - counts
)

// =============================================================================
// Styles
// =============================================================================

var (
	// styleIndividual for real people in the tree.
	styleIndividual = lipgloss.NewStyle().Foreground(colorCyan)

	// styleVirtualRoot for the synthesized multi-root container.
	styleVirtualRoot = lipgloss.NewStyle().Foreground(colorDim).Italic(true)

	// styleBranch for tree enumerator lines.
	styleBranch = lipgloss.NewStyle().Foreground(colorGray)

	// styleCount for summary numbers.
	styleCount = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
)
