package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cracked/internal/ui/theme"
)

const bannerArt = `
  ██████╗██████╗  █████╗  ██████╗██╗  ██╗███████╗██████╗
 ██╔════╝██╔══██╗██╔══██╗██╔════╝██║ ██╔╝██╔════╝██╔══██╗
 ██║     ██████╔╝███████║██║     █████╔╝ █████╗  ██║  ██║
 ██║     ██╔══██╗██╔══██║██║     ██╔═██╗ ██╔══╝  ██║  ██║
 ╚██████╗██║  ██║██║  ██║╚██████╗██║  ██╗███████╗██████╔╝
  ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝╚══════╝╚═════╝`

const bannerCompact = "C R A C K E D"

// RenderBanner returns the CRACKED banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 60 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 60 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
