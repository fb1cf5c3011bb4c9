package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/sortlab/internal/algo"
	"github.com/san-kum/sortlab/internal/player"
)

func TestRenderStripDimensions(t *testing.T) {
	out := RenderStrip(algo.Sequence(8), nil, 80, 12)

	lines := strings.Split(out, "\n")
	if len(lines) != 12 {
		t.Fatalf("expected 12 rows, got %d", len(lines))
	}
}

func TestRenderStripBarHeights(t *testing.T) {
	out := RenderStrip(algo.Sequence(8), nil, 80, 8)
	lines := strings.Split(out, "\n")

	bottom := lines[len(lines)-1]
	if strings.ContainsRune(bottom, ' ') {
		t.Errorf("bottom row should be fully filled, got %q", bottom)
	}
	top := lines[0]
	if !strings.ContainsRune(top, ' ') {
		t.Errorf("top row should be mostly empty, got %q", top)
	}
	// only the tallest bar reaches the top row
	if !strings.ContainsRune(top, '█') {
		t.Errorf("tallest bar should reach the top row, got %q", top)
	}
}

func TestRenderStripSamplesWideArrays(t *testing.T) {
	out := RenderStrip(algo.Sequence(200), nil, 40, 4)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(lines))
	}
}

func TestRenderStripDegenerateInput(t *testing.T) {
	if out := RenderStrip(nil, nil, 80, 10); out != "" {
		t.Errorf("expected empty strip for empty array, got %q", out)
	}
	if out := RenderStrip([]int{0}, nil, 0, 10); out != "" {
		t.Errorf("expected empty strip for zero width, got %q", out)
	}
}

func TestRenderStripAcceptsHighlights(t *testing.T) {
	highlights := []player.Highlight{
		{Indexes: []int{0, 3}, Kind: player.KindCompare},
		{Indexes: []int{0}, Kind: player.KindSwap},
	}
	out := RenderStrip([]int{3, 0, 1, 2}, highlights, 4, 4)
	if len(strings.Split(out, "\n")) != 4 {
		t.Error("highlighted render should keep its shape")
	}
}
