package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycle_HappyPath(t *testing.T) {
	var l lifecycle
	assert.Equal(t, StateStarting, l.current())

	require.NoError(t, l.transition(StateStarting, StateListening))
	require.NoError(t, l.transition(StateListening, StateDraining))
	require.NoError(t, l.transition(StateDraining, StateStopped))
	assert.Equal(t, StateStopped, l.current())
}

func TestLifecycle_BindFailure(t *testing.T) {
	var l lifecycle
	require.NoError(t, l.transition(StateStarting, StateStopped))
	assert.Error(t, l.transition(StateStarting, StateListening))
}

func TestLifecycle_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name     string
		from, to State
	}{
		{"skip listening", StateStarting, StateDraining},
		{"drain back to listening", StateDraining, StateListening},
		{"listening straight to stopped", StateListening, StateStopped},
		{"restart after stop", StateStopped, StateStarting},
		{"self loop", StateListening, StateListening},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, validTransition(tt.from, tt.to))
		})
	}
}

func TestLifecycle_WrongCurrentState(t *testing.T) {
	var l lifecycle
	err := l.transition(StateListening, StateDraining)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server is starting")
	assert.Equal(t, StateStarting, l.current())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "starting", StateStarting.String())
	assert.Equal(t, "listening", StateListening.String())
	assert.Equal(t, "draining", StateDraining.String())
	assert.Equal(t, "stopped", StateStopped.String())
	assert.Equal(t, "state(9)", State(9).String())
}
