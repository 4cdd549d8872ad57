package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type traceState struct {
	name string
	log  *[]string
}

func (s *traceState) Enter()  { *s.log = append(*s.log, s.name+".enter") }
func (s *traceState) Update() { *s.log = append(*s.log, s.name+".update") }
func (s *traceState) Exit()   { *s.log = append(*s.log, s.name+".exit") }

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	a := &traceState{name: "a", log: &log}
	b := &traceState{name: "b", log: &log}
	sm := NewStateMachine()

	sm.Update()
	sm.SetState(a)
	sm.Update()
	sm.SetState(b)
	sm.Update()

	assert.Equal(t, []string{"a.enter", "a.update", "a.exit", "b.enter", "b.update"}, log)
	assert.Same(t, b, sm.Current())
}

func TestStateMachineNilState(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	sm.SetState(&traceState{name: "a", log: &log})

	sm.SetState(nil)
	sm.Update()

	assert.Equal(t, []string{"a.enter", "a.exit"}, log)
	assert.Nil(t, sm.Current())
}

type finalState struct {
	traceState
}

func (s *finalState) Terminal() bool { return true }

func TestStateMachineTerminalStateIsFinal(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	assert.True(t, sm.SetState(&traceState{name: "a", log: &log}))
	end := &finalState{traceState{name: "end", log: &log}}
	assert.True(t, sm.SetState(end))

	assert.True(t, sm.IsTerminal())
	assert.False(t, sm.SetState(&traceState{name: "b", log: &log}))
	assert.Same(t, end, sm.Current())
	assert.Equal(t, []string{"a.enter", "a.exit", "end.enter"}, log)
}
