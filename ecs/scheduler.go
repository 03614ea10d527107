package ecs

// System updates a world once per tick.
type System interface {
	Update(w *World)
}

type namedSystem struct {
	name   string
	system System
}

// Scheduler runs systems in the exact order they were added. There is no
// implicit ordering; callers declare the per-tick order by construction.
type Scheduler struct {
	systems []namedSystem
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add appends a system under name. Nil systems are ignored.
func (s *Scheduler) Add(name string, system System) *Scheduler {
	if system == nil {
		return s
	}
	s.systems = append(s.systems, namedSystem{name: name, system: system})
	return s
}

func (s *Scheduler) Update(w *World) {
	for _, ns := range s.systems {
		ns.system.Update(w)
	}
}

// Names lists the systems in run order.
func (s *Scheduler) Names() []string {
	names := make([]string, 0, len(s.systems))
	for _, ns := range s.systems {
		names = append(names, ns.name)
	}
	return names
}

// Lookup returns the system registered under name.
func (s *Scheduler) Lookup(name string) (System, bool) {
	for _, ns := range s.systems {
		if ns.name == name {
			return ns.system, true
		}
	}
	return nil, false
}
