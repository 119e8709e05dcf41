// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

import "testing"

func newTestDFA() *DFA {
	start := NewBasicBlockStartState()
	return NewDFA(start, 0)
}

func TestDFAAddStateDeduplicates(t *testing.T) {
	d := newTestDFA()
	basic := NewBasicState()

	s1 := NewDFAState(-1, NewATNConfigSet(false))
	s1.configs.Add(NewBaseATNConfig6(basic, 1, BasePredictionContextEMPTY), nil)

	s2 := NewDFAState(-1, NewATNConfigSet(false))
	s2.configs.Add(NewBaseATNConfig6(basic, 1, BasePredictionContextEMPTY), nil)

	canonical1 := d.addState(s1)
	canonical2 := d.addState(s2)

	if canonical1 != canonical2 {
		t.Fatalf("expected two structurally-equal states to dedup to the same instance")
	}
	if d.numStates() != 1 {
		t.Fatalf("expected 1 stored state, got %d", d.numStates())
	}
}

func TestDFAAddStateDistinctConfigs(t *testing.T) {
	d := newTestDFA()
	basic := NewBasicState()

	s1 := NewDFAState(-1, NewATNConfigSet(false))
	s1.configs.Add(NewBaseATNConfig6(basic, 1, BasePredictionContextEMPTY), nil)

	s2 := NewDFAState(-1, NewATNConfigSet(false))
	s2.configs.Add(NewBaseATNConfig6(basic, 2, BasePredictionContextEMPTY), nil)

	d.addState(s1)
	d.addState(s2)

	if d.numStates() != 2 {
		t.Fatalf("expected 2 distinct stored states, got %d", d.numStates())
	}
}

func TestDFAPrecedenceStartStates(t *testing.T) {
	d := newTestDFA()
	if got := d.getPrecedenceStartState(0); got != nil {
		t.Fatalf("expected nil precedence start state before promotion, got %v", got)
	}

	d.setPrecedenceDfa(true)
	if d.s0 == nil {
		t.Fatalf("expected promotion to precedence mode to allocate a sentinel s0")
	}

	start3 := NewDFAState(-1, NewATNConfigSet(false))
	d.setPrecedenceStartState(3, start3)
	if got := d.getPrecedenceStartState(3); got != start3 {
		t.Fatalf("expected precedence 3's start state to round-trip, got %v", got)
	}
	if got := d.getPrecedenceStartState(1); got != nil {
		t.Fatalf("expected unset precedence 1 to report nil, got %v", got)
	}
}

func TestDFASortedStatesOrdersByStateNumber(t *testing.T) {
	d := newTestDFA()
	basic := NewBasicState()

	for alt := 3; alt >= 1; alt-- {
		s := NewDFAState(-1, NewATNConfigSet(false))
		s.configs.Add(NewBaseATNConfig6(basic, alt, BasePredictionContextEMPTY), nil)
		d.addState(s)
	}

	sorted := d.sortedStates()
	if len(sorted) != 3 {
		t.Fatalf("expected 3 states, got %d", len(sorted))
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].stateNumber > sorted[i].stateNumber {
			t.Fatalf("expected states sorted ascending by stateNumber, got %v", sorted)
		}
	}
}
