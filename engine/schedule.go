package engine

import (
	"errors"
	"fmt"
)

// System is one step run by a Schedule each frame.
type System interface {
	Update(app *App)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(app *App)

// Update calls f(app).
func (f SystemFunc) Update(app *App) { f(app) }

// Phase names an ordered group of systems.
type Phase string

// Default phases created by NewApp, in run order.
const (
	First      Phase = "First"
	PreUpdate  Phase = "PreUpdate"
	Update     Phase = "Update"
	PostUpdate Phase = "PostUpdate"
	Last       Phase = "Last"
)

var (
	ErrUnknownPhase   = errors.New("engine: unknown phase")
	ErrDuplicatePhase = errors.New("engine: phase already exists")
)

type phaseEntry struct {
	name    Phase
	systems []System
}

// Schedule runs phases in order and the systems of each phase in the order
// they were added. Nothing runs concurrently.
type Schedule struct {
	phases []*phaseEntry
}

// NewSchedule creates a schedule with the given phases in order.
func NewSchedule(phases ...Phase) *Schedule {
	s := &Schedule{}
	for _, p := range phases {
		if err := s.Append(p); err != nil {
			panic(err)
		}
	}
	return s
}

func (s *Schedule) index(p Phase) int {
	for i, e := range s.phases {
		if e.name == p {
			return i
		}
	}
	return -1
}

// Has reports whether p is part of the schedule.
func (s *Schedule) Has(p Phase) bool {
	return s.index(p) >= 0
}

// Append adds p as the last phase.
func (s *Schedule) Append(p Phase) error {
	if s.Has(p) {
		return fmt.Errorf("append %q: %w", p, ErrDuplicatePhase)
	}
	s.phases = append(s.phases, &phaseEntry{name: p})
	return nil
}

// InsertAfter places p immediately after anchor.
func (s *Schedule) InsertAfter(anchor, p Phase) error {
	return s.insert(anchor, p, 1)
}

// InsertBefore places p immediately before anchor.
func (s *Schedule) InsertBefore(anchor, p Phase) error {
	return s.insert(anchor, p, 0)
}

func (s *Schedule) insert(anchor, p Phase, shift int) error {
	i := s.index(anchor)
	if i < 0 {
		return fmt.Errorf("insert %q next to %q: %w", p, anchor, ErrUnknownPhase)
	}
	if s.Has(p) {
		return fmt.Errorf("insert %q: %w", p, ErrDuplicatePhase)
	}
	at := i + shift
	s.phases = append(s.phases, nil)
	copy(s.phases[at+1:], s.phases[at:])
	s.phases[at] = &phaseEntry{name: p}
	Logger().Debug("phase inserted", "phase", string(p), "anchor", string(anchor), "index", at)
	return nil
}

// AddSystems appends systems to phase p. Nil systems are ignored.
func (s *Schedule) AddSystems(p Phase, systems ...System) error {
	i := s.index(p)
	if i < 0 {
		return fmt.Errorf("add systems to %q: %w", p, ErrUnknownPhase)
	}
	for _, sys := range systems {
		if sys != nil {
			s.phases[i].systems = append(s.phases[i].systems, sys)
		}
	}
	return nil
}

// Phases returns the phase names in run order.
func (s *Schedule) Phases() []Phase {
	out := make([]Phase, len(s.phases))
	for i, e := range s.phases {
		out[i] = e.name
	}
	return out
}

// Systems returns a copy of the systems registered in p.
func (s *Schedule) Systems(p Phase) []System {
	i := s.index(p)
	if i < 0 {
		return nil
	}
	return append([]System(nil), s.phases[i].systems...)
}

// Run executes every phase once.
func (s *Schedule) Run(app *App) {
	for _, e := range s.phases {
		for _, sys := range e.systems {
			sys.Update(app)
		}
	}
}
