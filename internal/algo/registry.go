package algo

import (
	"fmt"
	"sort"
)

// Class buckets algorithms by pacing: merge-like algorithms take few steps
// and play against the fast profile, quadratic ones take many and play
// against the slow profile.
type Class int

const (
	ClassFast Class = iota
	ClassSlow
)

func (c Class) String() string {
	if c == ClassFast {
		return "fast"
	}
	return "slow"
}

type Algorithm struct {
	Name  string
	Class Class
	Drive Driver
}

type Registry struct {
	algorithms map[string]Algorithm
}

func NewRegistry() *Registry {
	r := &Registry{algorithms: make(map[string]Algorithm)}

	r.register("merge", ClassFast, Merge)
	r.register("quick", ClassFast, Quick)
	r.register("heap", ClassFast, Heap)
	r.register("shell", ClassFast, Shell)
	r.register("comb", ClassFast, Comb)
	r.register("bitonic", ClassFast, Bitonic)
	r.register("radix", ClassFast, Radix)

	r.register("bubble", ClassSlow, Bubble)
	r.register("cocktail", ClassSlow, Cocktail)
	r.register("gnome", ClassSlow, Gnome)
	r.register("odd-even", ClassSlow, OddEven)
	r.register("selection", ClassSlow, Selection)
	r.register("insertion", ClassSlow, Insertion)
	r.register("binary-insertion", ClassSlow, BinaryInsertion)
	r.register("cycle", ClassSlow, Cycle)

	return r
}

func (r *Registry) register(name string, class Class, drive Driver) {
	r.algorithms[name] = Algorithm{Name: name, Class: class, Drive: drive}
}

func (r *Registry) Get(name string) (Algorithm, error) {
	alg, ok := r.algorithms[name]
	if !ok {
		return Algorithm{}, fmt.Errorf("unknown algorithm: %s", name)
	}
	return alg, nil
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.algorithms))
	for name := range r.algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
