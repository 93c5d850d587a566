package status

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	colorGreen = lipgloss.Color("#22c55e")
	colorBlue  = lipgloss.Color("#3b82f6")
	colorDim   = lipgloss.Color("#6b7280")
	colorWhite = lipgloss.Color("#f9fafb")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	defaultStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGreen)
)

// IsTerminal reports whether stdout is an interactive terminal.
func IsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func renderStyled(s Summary) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("  routerctl: %s mode", s.Mode)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + s.Mode.Description()))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("  Models"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("─", 35)))
	b.WriteString("\n")
	for _, m := range s.Models {
		if m.Default {
			b.WriteString("  * " + defaultStyle.Render(m.Name) + dimStyle.Render("  (default)"))
		} else {
			b.WriteString("  - " + m.Name)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("  Endpoints"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("─", 35)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s  %s%s\n", dimStyle.Render(fmt.Sprintf("%-10s", "upstream")), s.Upstream, defaultedNote(s.UpstreamDefaulted))
	for _, u := range s.URLs {
		fmt.Fprintf(&b, "  %s  %s\n", dimStyle.Render(fmt.Sprintf("%-10s", u.Name)), u.URL)
	}
	b.WriteString("\n")

	return b.String()
}
