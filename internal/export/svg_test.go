package export

import (
	"strings"
	"testing"
)

func TestCountersToSVG(t *testing.T) {
	svg := CountersToSVG([]int{0, 2, 5, 9}, []int{0, 1, 1, 3}, 640, 360)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("expected xml declaration")
	}
	if !strings.Contains(svg, `width="640" height="360"`) {
		t.Error("expected requested dimensions")
	}
	if strings.Count(svg, "<path") != 2 {
		t.Errorf("expected two curves, got %d paths", strings.Count(svg, "<path"))
	}
	if !strings.Contains(svg, "#00ccff") || !strings.Contains(svg, "#ffaa00") {
		t.Error("expected both stroke colors present")
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("expected closing tag")
	}
}

func TestCountersToSVGRejectsDegenerateSeries(t *testing.T) {
	if svg := CountersToSVG([]int{1}, []int{1}, 100, 100); svg != "" {
		t.Error("expected empty output for a single point")
	}
	if svg := CountersToSVG([]int{1, 2}, []int{1}, 100, 100); svg != "" {
		t.Error("expected empty output for mismatched series")
	}
}
