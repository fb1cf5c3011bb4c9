package tone

import (
	"fmt"
	"math"
)

// Wave selects the oscillator shape.
type Wave int

const (
	Sine Wave = iota
	Square
	Triangle
	Sawtooth
)

func ParseWave(name string) (Wave, error) {
	switch name {
	case "sine":
		return Sine, nil
	case "square":
		return Square, nil
	case "triangle":
		return Triangle, nil
	case "sawtooth", "saw":
		return Sawtooth, nil
	}
	return Sine, fmt.Errorf("unknown wave: %s", name)
}

func (w Wave) String() string {
	switch w {
	case Square:
		return "square"
	case Triangle:
		return "triangle"
	case Sawtooth:
		return "sawtooth"
	default:
		return "sine"
	}
}

// Sample evaluates one period of the waveform at phase in [0,1).
func (w Wave) Sample(phase float64) float64 {
	p := phase - math.Floor(phase)
	switch w {
	case Square:
		if p < 0.5 {
			return 1
		}
		return -1
	case Triangle:
		return 4.0*math.Abs(p-0.5) - 1.0
	case Sawtooth:
		return 2.0*p - 1.0
	default:
		return math.Sin(2 * math.Pi * p)
	}
}
