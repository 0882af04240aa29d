package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyBoldGradient renders bold text with a horizontal color gradient.
// Colors must be "#rrggbb" hex values; anything else renders gray.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	// Split into grapheme clusters for proper unicode handling
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	if len(clusters) == 1 {
		return lipgloss.NewStyle().Bold(true).Foreground(from).Render(text)
	}

	colors := blendColors(len(clusters), from, to)

	var b strings.Builder
	for i, cluster := range clusters {
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colors[i].Hex()))
		b.WriteString(style.Render(cluster))
	}
	return b.String()
}

// blendColors blends in HCL space for perceptually even steps.
func blendColors(size int, from, to lipgloss.Color) []colorful.Color {
	c1 := toColorful(from)
	c2 := toColorful(to)

	colors := make([]colorful.Color, size)
	for i := range size {
		t := 0.0
		if size > 1 {
			t = float64(i) / float64(size-1)
		}
		colors[i] = c1.BlendHcl(c2, t).Clamped()
	}
	return colors
}

func toColorful(c lipgloss.Color) colorful.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	gray, _ := colorful.MakeColor(color.RGBA{R: 128, G: 128, B: 128, A: 255})
	return gray
}
