package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/sortlab/internal/player"
)

const (
	plainWidth  = 80
	plainHeight = 20
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// StripRenderer redraws the strip in place on a plain terminal, without
// the bubbletea event loop. Useful when stdout is the whole UI.
type StripRenderer struct {
	algorithm   string
	phase       string
	comparisons int
	swaps       int
}

func NewStripRenderer() *StripRenderer {
	return &StripRenderer{}
}

func (r *StripRenderer) Start() { fmt.Print(hideCursor) }
func (r *StripRenderer) Stop()  { fmt.Print(showCursor) }

func (r *StripRenderer) SetPhase(algorithm, phase string) {
	r.algorithm = algorithm
	r.phase = phase
}

func (r *StripRenderer) Stats(comparisons, swaps int) {
	r.comparisons = comparisons
	r.swaps = swaps
}

func (r *StripRenderer) Draw(order []int, highlights []player.Highlight) error {
	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  %s  %s  comparisons=%d swaps=%d\n",
		r.algorithm, r.phase, r.comparisons, r.swaps))
	b.WriteString("  " + strings.Repeat("-", plainWidth) + "\n")
	for _, row := range strings.Split(RenderStrip(order, highlights, plainWidth, plainHeight), "\n") {
		b.WriteString("  ")
		b.WriteString(row)
		b.WriteString("\n")
	}
	b.WriteString("  " + strings.Repeat("-", plainWidth) + "\n")
	fmt.Print(b.String())
	return nil
}
