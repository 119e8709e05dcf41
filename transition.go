// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

// Transition serialization type codes (spec.md §6, §9): these are exactly
// the tags the deserializer's edge records carry, 1..10.
const (
	TransitionEPSILON    = 1
	TransitionRANGE      = 2
	TransitionRULE       = 3
	TransitionPREDICATE  = 4
	TransitionATOM       = 5
	TransitionACTION     = 6
	TransitionSET        = 7
	TransitionNOTSET     = 8
	TransitionWILDCARD   = 9
	TransitionPRECEDENCE = 10
)

var transitionNames = []string{
	"", "EPSILON", "RANGE", "RULE", "PREDICATE", "ATOM", "ACTION", "SET", "NOT_SET", "WILDCARD", "PRECEDENCE",
}

// Transition is a closed sum type (spec.md §3): every variant exposes
// isEpsilon, an optional label, and matches.
type Transition interface {
	getTarget() ATNState
	setTarget(ATNState)
	getIsEpsilon() bool
	getLabel() *IntervalSet
	getSerializationType() int
	Matches(symbol, minVocabSymbol, maxVocabSymbol int) bool
}

type BaseTransition struct {
	target         ATNState
	isEpsilon      bool
	label          int
	intervalSet    *IntervalSet
	serializationType int
}

func NewBaseTransition(target ATNState) *BaseTransition {
	if target == nil {
		panic("target cannot be nil")
	}
	return &BaseTransition{target: target, label: TokenInvalidType}
}

func (t *BaseTransition) getTarget() ATNState    { return t.target }
func (t *BaseTransition) setTarget(s ATNState)   { t.target = s }
func (t *BaseTransition) getIsEpsilon() bool     { return t.isEpsilon }
func (t *BaseTransition) getLabel() *IntervalSet { return t.intervalSet }
func (t *BaseTransition) getSerializationType() int { return t.serializationType }

func (t *BaseTransition) Matches(int, int, int) bool { return false }

// AtomTransition matches a single symbol exactly.
type AtomTransition struct {
	*BaseTransition
}

func NewAtomTransition(target ATNState, label int) *AtomTransition {
	t := &AtomTransition{BaseTransition: NewBaseTransition(target)}
	t.label = label
	t.intervalSet = t.makeLabel()
	t.serializationType = TransitionATOM
	return t
}

func (t *AtomTransition) makeLabel() *IntervalSet {
	s := NewIntervalSet()
	s.AddOne(t.label)
	return s
}

func (t *AtomTransition) Matches(symbol, _, _ int) bool {
	return t.label == symbol
}

func (t *AtomTransition) String() string {
	return intToString(t.label)
}

// RuleTransition represents invoking a rule: it carries the precedence the
// callee should be parsed at (for left-recursive rules) and the state to
// resume at once the callee's RuleStopState is reached.
type RuleTransition struct {
	*BaseTransition

	followState ATNState
	ruleIndex   int
	precedence  int
}

func NewRuleTransition(ruleStart *RuleStartState, ruleIndex, precedence int, followState ATNState) *RuleTransition {
	t := &RuleTransition{BaseTransition: NewBaseTransition(ruleStart)}
	t.ruleIndex = ruleIndex
	t.precedence = precedence
	t.followState = followState
	t.serializationType = TransitionRULE
	t.isEpsilon = true
	return t
}

func (t *RuleTransition) Matches(int, int, int) bool { return false }

// EpsilonTransition is a plain, unconditional edge; outermostPrecedenceReturn
// marks the special epsilon created during rule-bypass/precedence handling
// that returns from the outermost recursive invocation of a rule.
type EpsilonTransition struct {
	*BaseTransition

	outermostPrecedenceReturn int
}

func NewEpsilonTransition(target ATNState, outermostPrecedenceReturn int) *EpsilonTransition {
	t := &EpsilonTransition{BaseTransition: NewBaseTransition(target), outermostPrecedenceReturn: outermostPrecedenceReturn}
	t.isEpsilon = true
	t.serializationType = TransitionEPSILON
	return t
}

func (t *EpsilonTransition) Matches(int, int, int) bool { return false }
func (t *EpsilonTransition) String() string             { return "epsilon" }

// RangeTransition matches any symbol in the closed interval [Start, Stop].
type RangeTransition struct {
	*BaseTransition

	Start, Stop int
}

func NewRangeTransition(target ATNState, start, stop int) *RangeTransition {
	t := &RangeTransition{BaseTransition: NewBaseTransition(target), Start: start, Stop: stop}
	t.serializationType = TransitionRANGE
	t.intervalSet = t.makeLabel()
	return t
}

func (t *RangeTransition) makeLabel() *IntervalSet {
	s := NewIntervalSet()
	s.AddRange(t.Start, t.Stop)
	return s
}

func (t *RangeTransition) Matches(symbol, _, _ int) bool {
	return symbol >= t.Start && symbol <= t.Stop
}

// AbstractPredicateTransition is the marker base for the two predicate-like
// transitions (semantic and precedence), so the simulators can type-switch
// on "is this any predicate transition" without enumerating both.
type AbstractPredicateTransition interface {
	Transition
	iAPTStub()
}

// PredicateTransition carries a user semantic predicate; ctxDependent marks
// predicates whose expression refers to rule arguments/locals (so caching
// its value across contexts would be unsound).
type PredicateTransition struct {
	*BaseTransition

	RuleIndex, PredIndex int
	IsCtxDependent       bool
}

func NewPredicateTransition(target ATNState, ruleIndex, predIndex int, isCtxDependent bool) *PredicateTransition {
	t := &PredicateTransition{BaseTransition: NewBaseTransition(target), RuleIndex: ruleIndex, PredIndex: predIndex, IsCtxDependent: isCtxDependent}
	t.serializationType = TransitionPREDICATE
	t.isEpsilon = true
	return t
}

func (t *PredicateTransition) Matches(int, int, int) bool { return false }
func (t *PredicateTransition) iAPTStub()                  {}

func (t *PredicateTransition) getPredicate() *Predicate {
	return NewPredicate(t.RuleIndex, t.PredIndex, t.IsCtxDependent)
}

// ActionTransition carries a side-effecting user action (parser) or a
// position-dependent lexer action reference (legacy lexer ATNs).
type ActionTransition struct {
	*BaseTransition

	RuleIndex, ActionIndex int
	IsCtxDependent         bool
}

func NewActionTransition(target ATNState, ruleIndex, actionIndex int, isCtxDependent bool) *ActionTransition {
	t := &ActionTransition{BaseTransition: NewBaseTransition(target), RuleIndex: ruleIndex, ActionIndex: actionIndex, IsCtxDependent: isCtxDependent}
	t.serializationType = TransitionACTION
	t.isEpsilon = true
	return t
}

func (t *ActionTransition) Matches(int, int, int) bool { return false }
func (t *ActionTransition) String() string             { return "action_" + intToString(t.RuleIndex) + ":" + intToString(t.ActionIndex) }

// SetTransition matches any symbol in an arbitrary (non-contiguous) set.
type SetTransition struct {
	*BaseTransition
}

func NewSetTransition(target ATNState, set *IntervalSet) *SetTransition {
	t := &SetTransition{BaseTransition: NewBaseTransition(target)}
	t.serializationType = TransitionSET
	if set != nil {
		t.intervalSet = set
	} else {
		s := NewIntervalSet()
		s.AddOne(TokenInvalidType)
		t.intervalSet = s
	}
	return t
}

func (t *SetTransition) Matches(symbol, _, _ int) bool {
	return t.intervalSet.Contains(symbol)
}

// NotSetTransition matches any symbol NOT in the set (but within the
// recognizer's vocabulary).
type NotSetTransition struct {
	*SetTransition
}

func NewNotSetTransition(target ATNState, set *IntervalSet) *NotSetTransition {
	inner := NewSetTransition(target, set)
	inner.serializationType = TransitionNOTSET
	return &NotSetTransition{SetTransition: inner}
}

func (t *NotSetTransition) Matches(symbol, minVocabSymbol, maxVocabSymbol int) bool {
	return symbol >= minVocabSymbol && symbol <= maxVocabSymbol && !t.intervalSet.Contains(symbol)
}

// WildcardTransition matches any symbol within the recognizer's vocabulary.
type WildcardTransition struct {
	*BaseTransition
}

func NewWildcardTransition(target ATNState) *WildcardTransition {
	t := &WildcardTransition{BaseTransition: NewBaseTransition(target)}
	t.serializationType = TransitionWILDCARD
	return t
}

func (t *WildcardTransition) Matches(symbol, minVocabSymbol, maxVocabSymbol int) bool {
	return symbol >= minVocabSymbol && symbol <= maxVocabSymbol
}

// PrecedencePredicateTransition tests the current left-recursive
// precedence against a fixed level.
type PrecedencePredicateTransition struct {
	*BaseTransition

	Precedence int
}

func NewPrecedencePredicateTransition(target ATNState, precedence int) *PrecedencePredicateTransition {
	t := &PrecedencePredicateTransition{BaseTransition: NewBaseTransition(target), Precedence: precedence}
	t.serializationType = TransitionPRECEDENCE
	t.isEpsilon = true
	return t
}

func (t *PrecedencePredicateTransition) Matches(int, int, int) bool { return false }
func (t *PrecedencePredicateTransition) iAPTStub()                  {}

func (t *PrecedencePredicateTransition) getPredicate() *PrecedencePredicate {
	return NewPrecedencePredicate(t.Precedence)
}

func (t *PrecedencePredicateTransition) String() string {
	return intToString(t.Precedence) + " >= _p"
}
