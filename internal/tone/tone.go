package tone

import (
	"fmt"
	"sync"
	"time"

	"github.com/gordonklaus/portaudio"
)

const (
	SampleRate = 44100
	BufferSize = 512

	// Audible band the element indexes are mapped onto.
	MinFreq = 20.0
	MaxFreq = 6000.0
)

// voice is one sounding oscillator. remaining counts samples left in its
// linear decay envelope.
type voice struct {
	freq      float64
	phase     float64
	remaining int
	total     int
}

// Player synthesizes short tones for highlighted array positions. One
// Player owns one output stream; each Play call displaces whatever voices
// are still ringing.
type Player struct {
	stream *portaudio.Stream
	wave   Wave
	volume float64

	mu     sync.Mutex
	voices []voice
}

func NewPlayer(wave Wave) *Player {
	return &Player{wave: wave, volume: 0.2}
}

func (p *Player) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}
	// Output only; duplex streams are flaky when in/out devices differ.
	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, p.process)
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("open stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("start stream: %w", err)
	}
	p.stream = stream
	return nil
}

func (p *Player) Stop() {
	if p.stream != nil {
		p.stream.Stop()
		p.stream.Close()
		p.stream = nil
	}
	portaudio.Terminate()
}

// Play sounds every given index simultaneously for d, truncating any
// still-sounding voices from the previous call. The mapping onto the
// audible band is linear in the index:
//
//	freq = MinFreq + (MaxFreq-MinFreq) * index/elementCount
func (p *Player) Play(indexes []int, elementCount int, d time.Duration) {
	if elementCount <= 0 || len(indexes) == 0 {
		return
	}
	samples := int(d.Seconds() * SampleRate)
	if samples < 1 {
		samples = 1
	}
	voices := make([]voice, 0, len(indexes))
	for _, idx := range indexes {
		voices = append(voices, voice{
			freq:      Frequency(idx, elementCount),
			remaining: samples,
			total:     samples,
		})
	}
	p.mu.Lock()
	p.voices = voices
	p.mu.Unlock()
}

// Frequency maps an element index onto the audible band.
func Frequency(index, elementCount int) float64 {
	return MinFreq + (MaxFreq-MinFreq)*float64(index)/float64(elementCount)
}

func (p *Player) process(out [][]float32) {
	p.mu.Lock()
	defer p.mu.Unlock()

	dt := 1.0 / float64(SampleRate)
	for i := range out[0] {
		sample := 0.0
		live := 0
		for v := range p.voices {
			if p.voices[v].remaining <= 0 {
				continue
			}
			live++
			env := float64(p.voices[v].remaining) / float64(p.voices[v].total)
			sample += p.wave.Sample(p.voices[v].phase) * env
			p.voices[v].phase += p.voices[v].freq * dt
			if p.voices[v].phase >= 1 {
				p.voices[v].phase -= 1
			}
			p.voices[v].remaining--
		}
		if live > 0 {
			sample = sample / float64(live) * p.volume
		}
		out[0][i] = float32(sample)
		out[1][i] = float32(sample)
	}
}
