package session

import (
	"errors"
	"fmt"
)

var ErrAlreadyInMode = errors.New("session: already in mode")

// Mode is the top-level game mode.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	// ModeFinish is declared for a results screen; nothing transitions to it.
	ModeFinish
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeFinish:
		return "finish"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Hook runs on a mode boundary.
type Hook func() error

// Machine is the mode state machine. Changing mode runs the exit hooks of
// the current mode, then the enter hooks of the next one, in registration
// order.
type Machine struct {
	current Mode
	started bool
	enter   map[Mode][]Hook
	exit    map[Mode][]Hook
}

// NewMachine creates a machine that will start in initial.
func NewMachine(initial Mode) *Machine {
	return &Machine{
		current: initial,
		enter:   make(map[Mode][]Hook),
		exit:    make(map[Mode][]Hook),
	}
}

func (m *Machine) OnEnter(mode Mode, h Hook) {
	if h == nil {
		return
	}
	m.enter[mode] = append(m.enter[mode], h)
}

func (m *Machine) OnExit(mode Mode, h Hook) {
	if h == nil {
		return
	}
	m.exit[mode] = append(m.exit[mode], h)
}

// Start runs the enter hooks of the initial mode once.
func (m *Machine) Start() error {
	if m.started {
		return nil
	}
	m.started = true
	return run(m.enter[m.current], m.current, "enter")
}

// Current returns the active mode.
func (m *Machine) Current() Mode {
	return m.current
}

// Set moves to next. Setting the active mode again is an error and runs no
// hooks.
func (m *Machine) Set(next Mode) error {
	if next == m.current {
		return fmt.Errorf("%w: %s", ErrAlreadyInMode, next)
	}
	prev := m.current
	if err := run(m.exit[prev], prev, "exit"); err != nil {
		return err
	}
	m.current = next
	return run(m.enter[next], next, "enter")
}

func run(hooks []Hook, mode Mode, phase string) error {
	for _, h := range hooks {
		if err := h(); err != nil {
			return fmt.Errorf("session: %s %s: %w", phase, mode, err)
		}
	}
	return nil
}
