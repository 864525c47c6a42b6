package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/autobrr/go-dvdauthor/internal/dvdauthor"
)

var (
	styleHeader = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00225c", Dark: "#52aeff"}).Bold(true)
	styleLabel  = lipgloss.NewStyle().Bold(true)
	styleValue  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#1b523d", Dark: "#78ffd6"})
)

func renderAttrs(w io.Writer, t dvdauthor.GroupType, vg *dvdauthor.VobGroup) {
	d := vg.Video()
	fmt.Fprintln(w, styleHeader.Render(t.String()+" attributes"))
	line := func(label, value string) {
		fmt.Fprintf(w, "%s %s\n", styleLabel.Render(fmt.Sprintf("%-16s", label)), styleValue.Render(value))
	}
	line("MPEG version:", d.MPEG.String())
	line("TV standard:", d.TVFormat.String())
	line("Aspect ratio:", d.Aspect.String())
	if d.Widescreen != dvdauthor.WidescreenNone {
		line("Widescreen:", d.Widescreen.String())
	}
	line("Resolution:", fmt.Sprintf("%dx%d", d.Width(), d.Height()))
	if d.Caption != 0 {
		line("Captions:", fmt.Sprintf("field mask %d", d.Caption))
	}
	for i, a := range vg.Audio() {
		line(fmt.Sprintf("Audio %d:", i), a.Summary())
	}
	for i, s := range vg.Subpictures() {
		lang := s.LangPresence.String()
		if s.Lang != "" {
			lang = s.Lang
		}
		line(fmt.Sprintf("Subpicture %d:", i), lang)
	}
}
