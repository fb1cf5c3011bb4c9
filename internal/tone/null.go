package tone

import "time"

// Null is a tone source that stays silent. Used for --no-sound and in
// tests.
type Null struct{}

func (Null) Play(indexes []int, elementCount int, d time.Duration) {}
