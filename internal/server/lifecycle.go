package server

import (
	"fmt"
	"sync/atomic"
)

// State is a point in the server lifecycle.
type State int32

const (
	StateStarting State = iota
	StateListening
	StateDraining
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateListening:
		return "listening"
	case StateDraining:
		return "draining"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// lifecycle enforces Starting -> Listening -> Draining -> Stopped. The
// only shortcut is Starting -> Stopped, for a listener that failed to bind.
type lifecycle struct {
	state atomic.Int32
}

func (l *lifecycle) current() State {
	return State(l.state.Load())
}

// transition moves from one state to the next, failing if the lifecycle
// is not currently in from.
func (l *lifecycle) transition(from, to State) error {
	if !validTransition(from, to) {
		return fmt.Errorf("invalid lifecycle transition %s -> %s", from, to)
	}
	if !l.state.CompareAndSwap(int32(from), int32(to)) {
		return fmt.Errorf("cannot move to %s: server is %s, not %s", to, l.current(), from)
	}
	return nil
}

func validTransition(from, to State) bool {
	switch from {
	case StateStarting:
		return to == StateListening || to == StateStopped
	case StateListening:
		return to == StateDraining
	case StateDraining:
		return to == StateStopped
	default:
		return false
	}
}
