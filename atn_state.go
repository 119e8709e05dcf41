// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

// ATNState is one node of the ATN graph (spec.md §3). Concrete variants are
// closed sum-type-style structs sharing BaseATNState; dynamic dispatch on
// state kind goes through the type switches in the deserializer and the
// simulators rather than through virtual methods per spec.md §9.
type ATNState interface {
	GetEpsilonOnlyTransitions() bool

	GetRuleIndex() int
	SetRuleIndex(int)

	GetNextTokenWithinRule() *IntervalSet
	SetNextTokenWithinRule(*IntervalSet)

	GetATN() *ATN
	SetATN(*ATN)

	GetStateType() int

	GetStateNumber() int
	SetStateNumber(int)

	GetTransitions() []Transition
	SetTransitions([]Transition)
	AddTransition(Transition, int)

	String() string
	Hash() int
	Equals(interface{}) bool
}

// BaseATNState is embedded by every concrete state variant.
type BaseATNState struct {
	stateNumber         int
	stateType           int
	ruleIndex           int
	epsilonOnlyTransitions bool
	transitions         []Transition
	nextTokenWithinRule *IntervalSet
	atn                 *ATN
}

func NewATNState() *BaseATNState {
	return &BaseATNState{stateNumber: ATNStateInvalidStateNumber, stateType: ATNStateInvalidType}
}

func (a *BaseATNState) GetRuleIndex() int      { return a.ruleIndex }
func (a *BaseATNState) SetRuleIndex(v int)     { a.ruleIndex = v }
func (a *BaseATNState) GetEpsilonOnlyTransitions() bool { return a.epsilonOnlyTransitions }
func (a *BaseATNState) GetATN() *ATN           { return a.atn }
func (a *BaseATNState) SetATN(at *ATN)         { a.atn = at }
func (a *BaseATNState) GetStateType() int      { return a.stateType }
func (a *BaseATNState) GetStateNumber() int    { return a.stateNumber }
func (a *BaseATNState) SetStateNumber(v int)   { a.stateNumber = v }
func (a *BaseATNState) GetTransitions() []Transition { return a.transitions }
func (a *BaseATNState) SetTransitions(t []Transition) { a.transitions = t }

func (a *BaseATNState) GetNextTokenWithinRule() *IntervalSet { return a.nextTokenWithinRule }
func (a *BaseATNState) SetNextTokenWithinRule(s *IntervalSet) { a.nextTokenWithinRule = s }

// AddTransition appends t to the state's outgoing edges (or inserts at
// index if index >= 0) and updates the epsilonOnly flag, which must stay
// correct whenever a transition is appended (spec.md §3).
func (a *BaseATNState) AddTransition(t Transition, index int) {
	if len(a.transitions) == 0 {
		a.epsilonOnlyTransitions = t.getIsEpsilon()
	} else if a.epsilonOnlyTransitions != t.getIsEpsilon() {
		a.epsilonOnlyTransitions = false
	}
	if index == -1 {
		a.transitions = append(a.transitions, t)
	} else {
		a.transitions = append(a.transitions, nil)
		copy(a.transitions[index+1:], a.transitions[index:])
		a.transitions[index] = t
	}
}

func (a *BaseATNState) Hash() int {
	return a.stateNumber
}

func (a *BaseATNState) Equals(other interface{}) bool {
	o, ok := other.(ATNState)
	if !ok {
		return false
	}
	return a.stateNumber == o.GetStateNumber()
}

func (a *BaseATNState) String() string {
	return intToString(a.stateNumber)
}

func intToString(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// DecisionState is implemented by every ATNState that represents a
// nondeterministic choice point: it has a decision number and a greedy
// flag (non-greedy loops are the only false case).
type DecisionState interface {
	ATNState

	getDecision() int
	setDecision(int)

	getNonGreedy() bool
	setNonGreedy(bool)
}

type BaseDecisionState struct {
	*BaseATNState

	decision  int
	nonGreedy bool
}

func NewBaseDecisionState() *BaseDecisionState {
	return &BaseDecisionState{BaseATNState: NewATNState(), decision: -1}
}

func (d *BaseDecisionState) getDecision() int        { return d.decision }
func (d *BaseDecisionState) setDecision(D int)       { d.decision = D }
func (d *BaseDecisionState) getNonGreedy() bool       { return d.nonGreedy }
func (d *BaseDecisionState) setNonGreedy(b bool)      { d.nonGreedy = b }

// RuleStartState is the entry state of a rule's sub-ATN.
type RuleStartState struct {
	*BaseATNState

	stopState        *RuleStopState
	isLeftRecursive  bool
}

func NewRuleStartState() *RuleStartState {
	s := &RuleStartState{BaseATNState: NewATNState()}
	s.stateType = ATNStateRuleStart
	return s
}

// RuleStopState is the (unique per rule) exit state reached when a rule's
// sub-ATN has been fully matched.
type RuleStopState struct {
	*BaseDecisionState
}

func NewRuleStopState() *RuleStopState {
	s := &RuleStopState{BaseDecisionState: NewBaseDecisionState()}
	s.stateType = ATNStateRuleStop
	return s
}

// BasicState is a plain intermediate state with no special role.
type BasicState struct {
	*BaseATNState
}

func NewBasicState() *BasicState {
	s := &BasicState{BaseATNState: NewATNState()}
	s.stateType = ATNStateBasic
	return s
}

// BlockStartState is implemented by the three "start of a (..)" block
// variants: plain, ()* and ()+.
type BlockStartState interface {
	DecisionState

	getEndState() *BlockEndState
	setEndState(*BlockEndState)
}

type BaseBlockStartState struct {
	*BaseDecisionState

	endState *BlockEndState
}

func NewBlockStartState() *BaseBlockStartState {
	return &BaseBlockStartState{BaseDecisionState: NewBaseDecisionState()}
}

func (b *BaseBlockStartState) getEndState() *BlockEndState  { return b.endState }
func (b *BaseBlockStartState) setEndState(e *BlockEndState) { b.endState = e }

// BasicBlockStartState is a plain (a|b|c) block.
type BasicBlockStartState struct {
	*BaseBlockStartState
}

func NewBasicBlockStartState() *BasicBlockStartState {
	s := &BasicBlockStartState{BaseBlockStartState: NewBlockStartState()}
	s.stateType = ATNStateBlockStart
	return s
}

// PlusBlockStartState is the start of a ()+ loop block.
type PlusBlockStartState struct {
	*BaseBlockStartState

	loopBackState *PlusLoopbackState
}

func NewPlusBlockStartState() *PlusBlockStartState {
	s := &PlusBlockStartState{BaseBlockStartState: NewBlockStartState()}
	s.stateType = ATNStatePlusBlockStart
	return s
}

// StarBlockStartState is the start of a ()* loop block.
type StarBlockStartState struct {
	*BaseBlockStartState
}

func NewStarBlockStartState() *StarBlockStartState {
	s := &StarBlockStartState{BaseBlockStartState: NewBlockStartState()}
	s.stateType = ATNStateStarBlockStart
	return s
}

// BlockEndState is the exit state of any block, linked back to its
// BlockStartState.
type BlockEndState struct {
	*BaseATNState

	startState BlockStartState
}

func NewBlockEndState() *BlockEndState {
	s := &BlockEndState{BaseATNState: NewATNState()}
	s.stateType = ATNStateBlockEnd
	return s
}

// TokensStartState is the start state of a lexer's TOKENS rule, one per
// mode.
type TokensStartState struct {
	*BaseDecisionState
}

func NewTokensStartState() *TokensStartState {
	s := &TokensStartState{BaseDecisionState: NewBaseDecisionState()}
	s.stateType = ATNStateTokenStart
	return s
}

// PlusLoopbackState is the decision at the back edge of a ()+ loop: take
// the loop again, or fall through to LoopEnd.
type PlusLoopbackState struct {
	*BaseDecisionState
}

func NewPlusLoopbackState() *PlusLoopbackState {
	s := &PlusLoopbackState{BaseDecisionState: NewBaseDecisionState()}
	s.stateType = ATNStatePlusLoopBack
	return s
}

// StarLoopbackState is the back edge of a ()* loop, always epsilon-only,
// targeting the loop's StarLoopEntryState.
type StarLoopbackState struct {
	*BaseATNState
}

func NewStarLoopbackState() *StarLoopbackState {
	s := &StarLoopbackState{BaseATNState: NewATNState()}
	s.stateType = ATNStateStarLoopBack
	return s
}

// StarLoopEntryState is the decision entered before a ()* loop: iterate, or
// go straight to LoopEnd. precedenceRuleDecision is set during
// deserialization when this entry guards a left-recursive rule's
// precedence climb (spec.md §3, §4.C).
type StarLoopEntryState struct {
	*BaseDecisionState

	loopBackState             *StarLoopbackState
	precedenceRuleDecision    bool
}

func NewStarLoopEntryState() *StarLoopEntryState {
	s := &StarLoopEntryState{BaseDecisionState: NewBaseDecisionState()}
	s.stateType = ATNStateStarLoopEntry
	return s
}

// LoopEndState is the exit of a ()+ or ()* loop, linked back to the
// decision that guards the loop.
type LoopEndState struct {
	*BaseATNState

	loopBackState ATNState
}

func NewLoopEndState() *LoopEndState {
	s := &LoopEndState{BaseATNState: NewATNState()}
	s.stateType = ATNStateLoopEnd
	return s
}
