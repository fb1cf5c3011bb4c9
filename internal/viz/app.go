package viz

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/sortlab/internal/config"
	"github.com/san-kum/sortlab/internal/player"
	"github.com/san-kum/sortlab/internal/show"
	"github.com/san-kum/sortlab/internal/tone"
)

type frameMsg struct {
	order      []int
	highlights []player.Highlight
}

type statsMsg struct {
	comparisons int
	swaps       int
}

type phaseMsg struct {
	algorithm string
	phase     string
}

type doneMsg struct {
	err error
}

// programRenderer feeds player frames into the running bubbletea program.
type programRenderer struct {
	prog *tea.Program
}

func (r *programRenderer) Draw(order []int, highlights []player.Highlight) error {
	r.prog.Send(frameMsg{order: order, highlights: highlights})
	return nil
}

func (r *programRenderer) Stats(comparisons, swaps int) {
	r.prog.Send(statsMsg{comparisons: comparisons, swaps: swaps})
}

type model struct {
	width  int
	height int

	order      []int
	highlights []player.Highlight

	comparisons int
	swaps       int
	algorithm   string
	phase       string
	done        bool
	err         error
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case frameMsg:
		m.order = msg.order
		m.highlights = msg.highlights
	case statsMsg:
		m.comparisons = msg.comparisons
		m.swaps = msg.swaps
	case phaseMsg:
		m.algorithm = msg.algorithm
		m.phase = msg.phase
		m.comparisons = 0
		m.swaps = 0
	case doneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	header := headerStyle.Render("sortlab")
	status := fmt.Sprintf("%s %s  %s %s  %s %d  %s %d  %s %d",
		labelStyle.Render("algorithm"), valueStyle.Render(m.algorithm),
		labelStyle.Render("phase"), valueStyle.Render(m.phase),
		labelStyle.Render("n"), len(m.order),
		labelStyle.Render("comparisons"), m.comparisons,
		labelStyle.Render("swaps"), m.swaps,
	)

	stripHeight := m.height - 6
	if stripHeight < 4 {
		stripHeight = 4
	}
	strip := RenderStrip(m.order, m.highlights, m.width, stripHeight)

	return header + "\n" + status + "\n\n" + strip + "\n" + helpStyle.Render("q: quit")
}

// Run plays the configured show in a full-screen bubbletea session. The
// playback runs in its own goroutine and streams frames into the program;
// quitting cancels the show.
func Run(cfg *config.Config, algorithms []string) error {
	prog := tea.NewProgram(model{width: 80, height: 24}, tea.WithAltScreen())

	var t player.Tone = tone.Null{}
	if cfg.Sound {
		wave, err := tone.ParseWave(cfg.Wave)
		if err != nil {
			return err
		}
		tp := tone.NewPlayer(wave)
		// Missing audio hardware downgrades to a silent show.
		if err := tp.Start(); err == nil {
			t = tp
			defer tp.Stop()
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sess := show.New(cfg, player.New(&programRenderer{prog: prog}, t))
	sess.OnPhase = func(algorithm, phase string) {
		prog.Send(phaseMsg{algorithm: algorithm, phase: phase})
	}

	go func() {
		err := sess.Run(ctx, algorithms)
		prog.Send(doneMsg{err: err})
	}()

	final, err := prog.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(model); ok && m.done {
		return m.err
	}
	return nil
}
