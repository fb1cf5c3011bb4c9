package export

import (
	"fmt"
	"strings"
)

// CountersToSVG renders the comparison and swap counter curves of one run
// as an SVG line chart, comparisons in cyan and swaps in orange on a dark
// background.
func CountersToSVG(comparisons, swaps []int, width, height int) string {
	if len(comparisons) < 2 || len(comparisons) != len(swaps) {
		return ""
	}

	maxY := 1
	for i := range comparisons {
		if comparisons[i] > maxY {
			maxY = comparisons[i]
		}
		if swaps[i] > maxY {
			maxY = swaps[i]
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	writePath(&sb, comparisons, maxY, width, height, "#00ccff")
	writePath(&sb, swaps, maxY, width, height, "#ffaa00")

	sb.WriteString("</svg>")
	return sb.String()
}

func writePath(sb *strings.Builder, values []int, maxY, width, height int, strokeColor string) {
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColor))
	last := len(values) - 1
	for i, v := range values {
		x := float64(i) / float64(last) * float64(width)
		y := float64(height) - float64(v)/float64(maxY)*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString("\"/>\n")
}
