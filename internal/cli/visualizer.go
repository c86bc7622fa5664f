package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubesolver"
)

// Styles shared by the CLI commands.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))
)

// stickerStyles maps the color codes from Cube.Facelets to terminal colors:
// white, yellow, green, blue, red, orange.
var stickerStyles = [6]lipgloss.Style{
	lipgloss.NewStyle().Background(lipgloss.Color("15")).Foreground(lipgloss.Color("0")),
	lipgloss.NewStyle().Background(lipgloss.Color("11")).Foreground(lipgloss.Color("0")),
	lipgloss.NewStyle().Background(lipgloss.Color("2")).Foreground(lipgloss.Color("0")),
	lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("15")),
	lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("15")),
	lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("0")),
}

func sticker(code byte) string {
	if int(code) >= len(stickerStyles) {
		return "??"
	}
	return stickerStyles[code].Render("  ")
}

// renderCube draws the cube as a colored unfolded net:
// U on top, then L F R B side by side, then D.
func renderCube(c *cubesolver.Cube) string {
	grid := c.Facelets()
	var b strings.Builder

	const faceU, faceD, faceF, faceB, faceR, faceL = 0, 1, 2, 3, 4, 5
	indent := strings.Repeat(" ", 6)

	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		for col := 0; col < 3; col++ {
			b.WriteString(sticker(grid[faceU][row*3+col]))
		}
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		for _, face := range []int{faceL, faceF, faceR, faceB} {
			for col := 0; col < 3; col++ {
				b.WriteString(sticker(grid[face][row*3+col]))
			}
		}
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		for col := 0; col < 3; col++ {
			b.WriteString(sticker(grid[faceD][row*3+col]))
		}
		b.WriteString("\n")
	}

	return b.String()
}
