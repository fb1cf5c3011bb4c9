package player

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/san-kum/sortlab/internal/algo"
)

// MaxSteps is the hard cap on steps drained from one driver invocation. It
// is a safety valve against runaway generators, not a correctness bound:
// playback silently truncates at this count and still settles on the
// last-known array.
const MaxSteps = 80000

type Kind int

const (
	KindCompare Kind = iota
	KindSwap
)

// Highlight tags one step's index list with the tint it should be drawn
// in. A frame keeps one Highlight per non-empty index list of every folded
// step; duplicates and both kinds may coexist.
type Highlight struct {
	Indexes []int
	Kind    Kind
}

// Frame is the batch of steps presented in one tick.
type Frame struct {
	Order      []int
	Highlights []Highlight
	Sound      []int

	Comparisons int
	Swaps       int
}

// Renderer redraws the strip for one frame.
type Renderer interface {
	Draw(order []int, highlights []Highlight) error
}

// StatsSink is an optional Renderer extension; implementations are fed the
// running counters of every presented frame.
type StatsSink interface {
	Stats(comparisons, swaps int)
}

// Tone maps the given indexes onto the audible band and sounds them for
// roughly one frame, displacing whatever was still ringing.
type Tone interface {
	Play(indexes []int, elementCount int, d time.Duration)
}

type Options struct {
	// Interval is the pacing interval between steps; the frame delay is
	// max(FrameBudget, Interval).
	Interval time.Duration
	// FrameBudget is how much step time one frame may coalesce.
	FrameBudget time.Duration
}

// StepsPerFrame is how many steps one frame folds: ceil(budget/interval),
// never less than one.
func (o Options) StepsPerFrame() int {
	if o.Interval <= 0 {
		return 1
	}
	k := int((o.FrameBudget + o.Interval - 1) / o.Interval)
	if k < 1 {
		k = 1
	}
	return k
}

func (o Options) frameDelay() time.Duration {
	if o.FrameBudget > o.Interval {
		return o.FrameBudget
	}
	return o.Interval
}

// Player replays step sequences against a renderer and a tone source, one
// frame at a time. Presentation is strictly sequential: the next frame is
// built only after the previous frame's pacing delay elapsed.
type Player struct {
	renderer Renderer
	tone     Tone
}

func New(renderer Renderer, tone Tone) *Player {
	return &Player{renderer: renderer, tone: tone}
}

// Play fully drains steps into a queue (capped at MaxSteps), then presents
// it frame by frame. After the queue empties, one unconditional settle
// frame of the last-known array with no highlights is presented, so the
// terminal visual state is always the resolved array even when the cap cut
// the sequence short. The settled array snapshot is returned for chaining
// into the next phase.
func (p *Player) Play(ctx context.Context, steps iter.Seq[algo.Step], opts Options) ([]int, error) {
	if opts.Interval <= 0 {
		return nil, fmt.Errorf("interval must be positive, got %v", opts.Interval)
	}

	queue := drain(steps)
	if len(queue) == 0 {
		return nil, nil
	}
	perFrame := opts.StepsPerFrame()
	delay := opts.frameDelay()

	last := queue[len(queue)-1]
	for len(queue) > 0 {
		n := perFrame
		if n > len(queue) {
			n = len(queue)
		}
		frame := buildFrame(queue[:n])
		queue = queue[n:]

		if err := p.present(frame, delay); err != nil {
			return frame.Order, err
		}
		select {
		case <-ctx.Done():
			return frame.Order, ctx.Err()
		case <-time.After(delay):
		}
	}

	settled := Frame{Order: last.Array, Comparisons: last.Comparisons, Swaps: last.Swaps}
	if err := p.present(settled, delay); err != nil {
		return last.Array, err
	}
	return last.Array, nil
}

func (p *Player) present(f Frame, d time.Duration) error {
	if sink, ok := p.renderer.(StatsSink); ok {
		sink.Stats(f.Comparisons, f.Swaps)
	}
	if err := p.renderer.Draw(f.Order, f.Highlights); err != nil {
		return err
	}
	if len(f.Sound) > 0 {
		p.tone.Play(f.Sound, len(f.Order), d)
	}
	return nil
}

// drain eagerly consumes the step sequence, stopping at MaxSteps.
func drain(steps iter.Seq[algo.Step]) []algo.Step {
	queue := make([]algo.Step, 0, 1024)
	for s := range steps {
		queue = append(queue, s)
		if len(queue) >= MaxSteps {
			break
		}
	}
	return queue
}

// buildFrame folds a batch of consecutive steps into one frame: the last
// step's array wins, every step's highlight lists are concatenated in
// order, and the sound indexes come from the first step only (its Compare
// list when non-empty, else its Swapped list) so a dense frame does not
// flood the tone player.
func buildFrame(batch []algo.Step) Frame {
	last := batch[len(batch)-1]
	f := Frame{
		Order:       last.Array,
		Comparisons: last.Comparisons,
		Swaps:       last.Swaps,
	}
	for _, s := range batch {
		if len(s.Compare) > 0 {
			f.Highlights = append(f.Highlights, Highlight{Indexes: s.Compare, Kind: KindCompare})
		}
		if len(s.Swapped) > 0 {
			f.Highlights = append(f.Highlights, Highlight{Indexes: s.Swapped, Kind: KindSwap})
		}
	}
	first := batch[0]
	if len(first.Compare) > 0 {
		f.Sound = first.Compare
	} else {
		f.Sound = first.Swapped
	}
	return f
}
