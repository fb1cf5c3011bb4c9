package show

import (
	"context"
	"math/rand"
	"time"

	"github.com/san-kum/sortlab/internal/algo"
	"github.com/san-kum/sortlab/internal/config"
	"github.com/san-kum/sortlab/internal/player"
)

// Pauses between the phases of one algorithm's act.
const (
	afterShufflePause = 1 * time.Second
	afterSortPause    = 2 * time.Second
)

// Session sequences a show: for each algorithm, shuffle, then sort with
// comparisons highlighted, then the accent sweep, each phase consuming the
// exact array the previous phase settled on.
type Session struct {
	cfg      *config.Config
	player   *player.Player
	registry *algo.Registry
	rng      *rand.Rand

	// OnPhase, when set, is told whenever a new phase begins.
	OnPhase func(algorithm, phase string)
}

func New(cfg *config.Config, p *player.Player) *Session {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Session{
		cfg:      cfg,
		player:   p,
		registry: algo.NewRegistry(),
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Run plays every named algorithm in turn. An empty list plays the whole
// registry in name order.
func (s *Session) Run(ctx context.Context, algorithms []string) error {
	if len(algorithms) == 0 {
		algorithms = s.cfg.Algorithms
	}
	if len(algorithms) == 0 {
		algorithms = s.registry.List()
	}
	for _, name := range algorithms {
		if err := s.playAct(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) playAct(ctx context.Context, name string) error {
	alg, err := s.registry.Get(name)
	if err != nil {
		return err
	}
	n, opts := s.profile(alg.Class)
	arr := algo.Sequence(n)

	s.announce(name, "shuffle")
	shuffled, err := s.player.Play(ctx, algo.Shuffle(s.rng)(arr, false), opts)
	if err != nil {
		return err
	}
	if err := pause(ctx, afterShufflePause); err != nil {
		return err
	}

	s.announce(name, "sort")
	sorted, err := s.player.Play(ctx, alg.Drive(shuffled, true), opts)
	if err != nil {
		return err
	}
	if err := pause(ctx, afterSortPause); err != nil {
		return err
	}

	s.announce(name, "sweep")
	_, err = s.player.Play(ctx, algo.Accent(sorted, true), opts)
	return err
}

// profile picks element count and pacing for the algorithm's class.
func (s *Session) profile(class algo.Class) (int, player.Options) {
	interval := s.cfg.FastInterval
	n := s.cfg.FastN
	if class == algo.ClassSlow {
		interval = s.cfg.SlowInterval
		n = s.cfg.SlowN
	}
	opts := player.Options{
		Interval:    time.Duration(interval) * time.Millisecond,
		FrameBudget: time.Duration(s.cfg.FrameDuration) * time.Millisecond,
	}
	return n, opts
}

func (s *Session) announce(algorithm, phase string) {
	if s.OnPhase != nil {
		s.OnPhase(algorithm, phase)
	}
}

func pause(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
