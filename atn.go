// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

import "sync"

// ATNInvalidAltNumber represents an alt number that has yet to be
// calculated or that is invalid for a particular struct (e.g. a fresh
// BaseRuleContext that was never assigned an alternative).
var ATNInvalidAltNumber int

// ATN is the deserialized state graph a grammar compiles to (spec.md §1,
// §3): the network of states and transitions that the lexer and parser
// simulators walk at runtime to predict alternatives and recognize tokens.
// An ATN is immutable once deserialization finishes; multiple recognizer
// instances for the same grammar may share one (spec.md §5).
type ATN struct {

	// DecisionToState holds every decision point in the grammar — rules,
	// sub-rules, optional blocks, ()+, ()* — in decision-number order, so a
	// decision's DFA can be looked up by index.
	DecisionToState []DecisionState

	// grammarType distinguishes a lexer ATN from a parser ATN; it changes
	// which simulator and which serialized sections apply.
	grammarType int

	// lexerActions holds every LexerAction referenced by ActionTransitions
	// in a lexer ATN.
	lexerActions []LexerAction

	// maxTokenType is the largest token type any transition in this ATN
	// can match.
	maxTokenType int

	modeNameToStartState map[string]*TokensStartState

	modeToStartState []*TokensStartState

	// ruleToStartState maps rule index to that rule's entry state.
	ruleToStartState []*RuleStartState

	// ruleToStopState maps rule index to that rule's unique exit state.
	ruleToStopState []*RuleStopState

	// ruleToTokenType maps rule index to the resulting token type for a
	// lexer ATN, or to the synthesized bypass token type for a parser ATN
	// whose rule-bypass transitions were generated (spec.md §4.C).
	ruleToTokenType []int

	// states holds every ATNState, ordered by state number.
	states []ATNState

	mu      sync.Mutex
	stateMu sync.RWMutex
	edgeMu  sync.RWMutex
}

// NewATN allocates an empty ATN of the given grammarType (ATNTypeLexer or
// ATNTypeParser); it is populated exclusively by the deserializer.
func NewATN(grammarType int, maxTokenType int) *ATN {
	return &ATN{
		grammarType:          grammarType,
		maxTokenType:         maxTokenType,
		modeNameToStartState: make(map[string]*TokensStartState),
	}
}

// NextTokensInContext computes the set of valid tokens that can occur
// starting in state s, including what can follow the rule surrounding s
// when ctx is non-nil (delegating to the LL(1) analyzer, spec.md §4.J).
func (a *ATN) NextTokensInContext(s ATNState, ctx RuleContext) *IntervalSet {
	return NewLL1Analyzer(a).Look(s, nil, ctx)
}

// NextTokensNoContext computes the set of valid tokens starting in state s
// and staying within the same rule; TokenEpsilon is in the set if the rule
// can end there. The result is cached on s and frozen read-only
// (spec.md §4.B).
func (a *ATN) NextTokensNoContext(s ATNState) *IntervalSet {
	a.mu.Lock()
	defer a.mu.Unlock()
	iset := s.GetNextTokenWithinRule()
	if iset == nil {
		iset = a.NextTokensInContext(s, nil)
		iset.readOnly = true
		s.SetNextTokenWithinRule(iset)
	}
	return iset
}

// NextTokens computes the set of valid tokens starting in state s, using
// NextTokensNoContext when ctx is nil and NextTokensInContext otherwise.
func (a *ATN) NextTokens(s ATNState, ctx RuleContext) *IntervalSet {
	if ctx == nil {
		return a.NextTokensNoContext(s)
	}
	return a.NextTokensInContext(s, ctx)
}

func (a *ATN) addState(state ATNState) {
	if state != nil {
		state.SetATN(a)
		state.SetStateNumber(len(a.states))
	}
	a.states = append(a.states, state)
}

func (a *ATN) removeState(state ATNState) {
	a.states[state.GetStateNumber()] = nil // free the memory, states keep their numbering
}

func (a *ATN) defineDecisionState(s DecisionState) int {
	a.DecisionToState = append(a.DecisionToState, s)
	s.setDecision(len(a.DecisionToState) - 1)
	return s.getDecision()
}

func (a *ATN) getDecisionState(decision int) DecisionState {
	if len(a.DecisionToState) == 0 {
		return nil
	}
	return a.DecisionToState[decision]
}

// getExpectedTokens computes the set of input symbols that could follow
// state stateNumber in the full parse context ctx (spec.md §4.B): it walks
// the invokingState chain, replacing TokenEpsilon with TokenEOF once the
// outermost context is exhausted without matching a symbol.
//
// A nil ctx defaults to the empty context.
func (a *ATN) getExpectedTokens(stateNumber int, ctx RuleContext) *IntervalSet {
	if stateNumber < 0 || stateNumber >= len(a.states) {
		panic("invalid state number")
	}

	s := a.states[stateNumber]
	following := a.NextTokens(s, nil)
	if !following.Contains(TokenEpsilon) {
		return following
	}

	expected := NewIntervalSet()
	expected.addSet(following)
	expected.removeOne(TokenEpsilon)

	for ctx != nil && ctx.GetInvokingState() >= 0 && following.Contains(TokenEpsilon) {
		invokingState := a.states[ctx.GetInvokingState()]
		rt := invokingState.GetTransitions()[0]
		following = a.NextTokens(rt.(*RuleTransition).followState, nil)
		expected.addSet(following)
		expected.removeOne(TokenEpsilon)
		ctx = ctx.GetParent().(RuleContext)
	}

	if following.Contains(TokenEpsilon) {
		expected.AddOne(TokenEOF)
	}

	return expected
}

func (a *ATN) GetRuleToStartState(index int) *RuleStartState {
	return a.ruleToStartState[index]
}

func (a *ATN) GetRuleToStopState(index int) *RuleStopState {
	return a.ruleToStopState[index]
}

func (a *ATN) GetMaxTokenType() int {
	return a.maxTokenType
}

func (a *ATN) GetLexerActions() []LexerAction {
	return a.lexerActions
}

func (a *ATN) GetGrammarType() int {
	return a.grammarType
}

func (a *ATN) GetState(stateNumber int) ATNState {
	return a.states[stateNumber]
}

func (a *ATN) GetNumberOfStates() int {
	return len(a.states)
}

func (a *ATN) GetModeToStartState() []*TokensStartState {
	return a.modeToStartState
}
