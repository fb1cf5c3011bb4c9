package viz

import (
	"strings"

	"github.com/san-kum/sortlab/internal/player"
)

// Eighth blocks from empty to full, for sub-row bar resolution.
var blocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderStrip draws the array as a strip of vertical bars, one column per
// element, tinted per the frame's highlights. Swap highlights win over
// compare highlights when both land on the same position. When the strip
// is wider than the viewport the columns are sampled.
func RenderStrip(order []int, highlights []player.Highlight, width, height int) string {
	n := len(order)
	if n == 0 || width < 1 || height < 1 {
		return ""
	}

	tint := make(map[int]player.Kind, 8)
	for _, h := range highlights {
		for _, idx := range h.Indexes {
			if h.Kind == player.KindSwap {
				tint[idx] = player.KindSwap
			} else if _, ok := tint[idx]; !ok {
				tint[idx] = player.KindCompare
			}
		}
	}

	cols := n
	if cols > width {
		cols = width
	}

	// bar height in eighth-rows per column
	units := make([]int, cols)
	styles := make([]int, cols) // 0 plain, 1 compare, 2 swap
	for c := 0; c < cols; c++ {
		idx := c * n / cols
		v := order[idx]
		units[c] = (v + 1) * height * 8 / n
		if units[c] < 1 {
			units[c] = 1
		}
		if k, ok := tint[idx]; ok {
			if k == player.KindSwap {
				styles[c] = 2
			} else {
				styles[c] = 1
			}
		}
	}

	var sb strings.Builder
	for row := height - 1; row >= 0; row-- {
		for c := 0; c < cols; c++ {
			rem := units[c] - row*8
			var r rune
			switch {
			case rem >= 8:
				r = blocks[8]
			case rem > 0:
				r = blocks[rem]
			default:
				r = blocks[0]
			}
			cell := string(r)
			switch styles[c] {
			case 1:
				cell = compareStyle.Render(cell)
			case 2:
				cell = swapStyle.Render(cell)
			default:
				if r != ' ' {
					cell = barStyle.Render(cell)
				}
			}
			sb.WriteString(cell)
		}
		if row > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
