package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LdDl/roadnet"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(22)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconArrow   = "→"
)

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+styleWarning.Render(fmt.Sprintf(format, args...)))
}

func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+styleDim.Render(iconArrow)+" "+styleValue.Render(path))
}

func printKeyValue(w io.Writer, key string, value int) {
	fmt.Fprintln(w, "  "+styleKey.Render(key)+" "+styleNumber.Render(fmt.Sprint(value)))
}

// printStats prints build counters
func printStats(w io.Writer, stats roadnet.Stats) {
	fmt.Fprintln(w, styleTitle.Render("Segments"))
	printKeyValue(w, "straight", stats.Straights)
	printKeyValue(w, "curve", stats.Curves)
	printKeyValue(w, "crossing", stats.Crossings)
	printKeyValue(w, "end cap", stats.EndCaps)
	printKeyValue(w, "total", stats.Segments())
	if stats.UnresolvedJunctions > 0 {
		printWarning(w, "%d junctions with 5 or more roads left unresolved", stats.UnresolvedJunctions)
	}
}

// printNetworks prints one line per network: ID, template and kinds of segments
func printNetworks(w io.Writer, networks []*roadnet.Network) {
	fmt.Fprintln(w, styleTitle.Render("Networks"))
	for _, net := range networks {
		parts := []string{
			fmt.Sprintf("%d segments", net.Len()),
			fmt.Sprintf("%d curves", net.CountKind(roadnet.SEGMENT_CURVE)),
			fmt.Sprintf("%d crossings", net.CountKind(roadnet.SEGMENT_CROSSING)),
			fmt.Sprintf("%d end caps", net.CountKind(roadnet.SEGMENT_END_CAP)),
		}
		fmt.Fprintln(w, "  "+styleValue.Render(net.ID.String())+" "+styleNumber.Render(net.Template.Name))
		fmt.Fprintln(w, "    "+styleDim.Render(strings.Join(parts, " · ")))
	}
}
