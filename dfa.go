// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

import "sync"

// DFA is the lazily-extended state cache for one decision (spec.md §3,
// §4.G): a deduplicating table of DFAStates plus a start state. A
// precedence DFA (left-recursive rule decisions) instead parameterizes its
// start state by the parser's current precedence level.
type DFA struct {
	// states maps a DFAState's Hash() to every state sharing that hash, so
	// insertion can probe for a structurally-equal (by configs) existing
	// state and return the canonical instance (spec.md §4.G, §5 ordering
	// guarantee: an edge for (state, symbol) is set at most once).
	states *JStore[*DFAState, Comparator[*DFAState]]

	s0 *DFAState

	decision int

	// atnStartState is the ATN decision state this DFA was built for.
	atnStartState DecisionState

	// precedenceDfa marks s0 as the sentinel whose precedenceStartStates
	// are indexed directly by precedence rather than by configs.
	precedenceDfa bool

	precedenceStartStates []*DFAState

	mu sync.RWMutex
}

// NewDFA builds an empty DFA for the given decision; precedence promotion
// happens lazily the first time the parser simulator recognizes the
// decision's ATN start state as a precedence decision.
func NewDFA(atnStartState DecisionState, decision int) *DFA {
	return &DFA{
		atnStartState: atnStartState,
		decision:      decision,
		states:        NewJStore[*DFAState, Comparator[*DFAState]](DFAStateComparator{}),
	}
}

// getPrecedenceStartState returns the start state cached for precedence, or
// nil if this decision has not yet been asked to predict at that
// precedence level (spec.md §8 property 7: independently computed,
// idempotent once computed).
func (d *DFA) getPrecedenceStartState(precedence int) *DFAState {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if !d.precedenceDfa {
		return nil
	}
	if precedence < 0 || precedence >= len(d.precedenceStartStates) {
		return nil
	}
	return d.precedenceStartStates[precedence]
}

func (d *DFA) setPrecedenceStartState(precedence int, startState *DFAState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.precedenceDfa {
		return
	}
	if precedence < 0 {
		return
	}
	if precedence >= len(d.precedenceStartStates) {
		fresh := make([]*DFAState, precedence+1)
		copy(fresh, d.precedenceStartStates)
		d.precedenceStartStates = fresh
	}
	d.precedenceStartStates[precedence] = startState
}

// setPrecedenceDfa promotes (or demotes) this decision's DFA to precedence
// mode, discarding any existing s0 — once a decision's ATN start state is
// recognized as a precedence decision, it must always be approached this
// way (spec.md §4.I step 1).
func (d *DFA) setPrecedenceDfa(precedenceDfa bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.precedenceDfa == precedenceDfa {
		return
	}
	d.states = NewJStore[*DFAState, Comparator[*DFAState]](DFAStateComparator{})
	if precedenceDfa {
		d.s0 = NewDFAState(-1, NewATNConfigSet(false))
		d.s0.isAcceptState = false
		d.s0.requiresFullContext = false
	} else {
		d.s0 = nil
	}
	d.precedenceStartStates = nil
	d.precedenceDfa = precedenceDfa
}

// addState deduplicates state against any structurally-equal (by configs)
// state already in the table and returns the canonical instance.
func (d *DFA) addState(state *DFAState) *DFAState {
	d.mu.Lock()
	defer d.mu.Unlock()
	canonical, present := d.states.Put(state)
	if !present {
		state.stateNumber = d.states.Len() - 1
	}
	return canonical
}

func (d *DFA) getState(s *DFAState) (*DFAState, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.states.Get(s)
}

func (d *DFA) numStates() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.states.Len()
}

// sortedStates returns every reachable DFAState ordered by stateNumber, for
// deterministic inspection/printing (tests, cmd/allstarcheck).
func (d *DFA) sortedStates() []*DFAState {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.states.SortedSlice(func(a, b *DFAState) bool {
		return a.stateNumber < b.stateNumber
	})
}
