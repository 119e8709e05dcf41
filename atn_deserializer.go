// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

import "fmt"

// atnDeserializerUUID is a 128-bit value identifying a serialized ATN
// format revision (spec.md §6). The deserializer accepts a small lineage
// of UUIDs so that ATNs serialized by slightly older grammar compilers can
// still be loaded; each later UUID in the lineage additionally carries the
// features the earlier ones lack (precedence predicates, then lexer
// actions).
type atnDeserializerUUID [8]uint16

func (u atnDeserializerUUID) Equals(o atnDeserializerUUID) bool {
	return u == o
}

var (
	// baseSerializedUUID identifies the original format: states, rules,
	// modes, sets, edges, decisions — no precedence predicates, no lexer
	// action table.
	baseSerializedUUID = atnDeserializerUUID{0x1DA0, 0xC33D, 0x5C8A, 0x49B8, 0x8B81, 0x4F3F, 0x2EF9, 0x4B86}

	// addedPrecedenceTransitionsUUID additionally carries precedence
	// (left-recursive rule) predicate transitions.
	addedPrecedenceTransitionsUUID = atnDeserializerUUID{0x0F07, 0xBA9A, 0xE1F3, 0x4567, 0xA93D, 0x5DB2, 0x8C7B, 0x60C5}

	// addedLexerActionsUUID is the current format: also carries the
	// explicit lexer action table rather than synthesizing legacy
	// per-transition action indices.
	addedLexerActionsUUID = atnDeserializerUUID{0xAADB, 0x8D7E, 0xAEEF, 0x415F, 0xAD2B, 0x8204, 0xD6CF, 0x042E}

	// supportedUUIDs lists every recognized UUID oldest-first; an ATN
	// serialized under any of them can be deserialized, with older ones
	// triggering the legacy-format compatibility shims noted against each
	// feature below.
	supportedUUIDs = []atnDeserializerUUID{baseSerializedUUID, addedPrecedenceTransitionsUUID, addedLexerActionsUUID}
)

const serializedVersion = 3

// UnsupportedAtnVersionError is fatal: the stream's version field does not
// match what this deserializer understands.
type UnsupportedAtnVersionError struct{ version int }

func (e *UnsupportedAtnVersionError) Error() string {
	return fmt.Sprintf("could not deserialize ATN with version %d (expected %d)", e.version, serializedVersion)
}

// UnsupportedAtnUUIDError is fatal: the stream's UUID is not in the
// recognized lineage.
type UnsupportedAtnUUIDError struct{ uuid atnDeserializerUUID }

func (e *UnsupportedAtnUUIDError) Error() string {
	return "could not deserialize ATN with unsupported UUID"
}

// CorruptedAtnError is fatal: the graph failed one of the post-deserialize
// structural invariant checks (spec.md §8 invariant 1).
type CorruptedAtnError struct{ reason string }

func (e *CorruptedAtnError) Error() string {
	return "corrupted ATN: " + e.reason
}

// ATNDeserializer turns the legacy, UUID-tagged, run-length-shifted integer
// stream (spec.md §6) into a live *ATN. It is the only code path that ever
// constructs ATN states, transitions and rule linkage; everything else in
// the runtime treats an ATN as read-only once this returns.
type ATNDeserializer struct {
	data []int
	pos  int

	uuid atnDeserializerUUID
}

func NewATNDeserializer() *ATNDeserializer {
	return &ATNDeserializer{}
}

// Deserialize parses data (already expressed as 16-bit code units, each one
// codeUnit-2 below the transmitted value — spec.md §6) and returns the
// resulting ATN.
func (d *ATNDeserializer) Deserialize(data []uint16) *ATN {
	d.data = make([]int, len(data))
	for i, v := range data {
		d.data[i] = int(v) - 2
	}
	d.pos = 0

	d.checkVersion()
	d.checkUUID()

	atn := d.readATN()

	d.readStates(atn)
	d.readRules(atn)
	d.readModes(atn)

	sets := d.readSets(atn)
	d.readEdges(atn, sets)
	d.readDecisions(atn)

	if d.supportsLexerActions(atn) {
		atn.lexerActions = d.readLexerActions()
	} else {
		atn.lexerActions = d.synthesizeLexerActions(atn)
	}

	d.markPrecedenceDecisions(atn)

	if atn.grammarType == ATNTypeParser {
		d.generateRuleBypassTransitions(atn)
	}

	d.verifyATN(atn)

	return atn
}

func (d *ATNDeserializer) next() int {
	v := d.data[d.pos]
	d.pos++
	return v
}

func (d *ATNDeserializer) checkVersion() {
	version := d.next()
	if version != serializedVersion {
		panic(&UnsupportedAtnVersionError{version: version})
	}
}

func (d *ATNDeserializer) checkUUID() {
	var u atnDeserializerUUID
	for i := range u {
		u[i] = uint16(d.next())
	}
	for _, supported := range supportedUUIDs {
		if u.Equals(supported) {
			d.uuid = u
			return
		}
	}
	panic(&UnsupportedAtnUUIDError{uuid: u})
}

func (d *ATNDeserializer) isFeatureSupported(introducedBy atnDeserializerUUID) bool {
	for i, u := range supportedUUIDs {
		if u.Equals(introducedBy) {
			for j, cur := range supportedUUIDs {
				if cur.Equals(d.uuid) {
					return j >= i
				}
			}
		}
	}
	return false
}

func (d *ATNDeserializer) supportsPrecedencePredicates() bool {
	return d.isFeatureSupported(addedPrecedenceTransitionsUUID)
}

func (d *ATNDeserializer) supportsLexerActions(atn *ATN) bool {
	return atn.grammarType == ATNTypeLexer && d.isFeatureSupported(addedLexerActionsUUID)
}

func (d *ATNDeserializer) readATN() *ATN {
	grammarType := d.next()
	maxTokenType := d.next()
	return NewATN(grammarType, maxTokenType)
}

func (d *ATNDeserializer) readStates(atn *ATN) {
	var loopBackStateNumbers [][2]int // (decision-state index, loopback target)
	var endStateNumbers [][2]int      // (blockStart index, end target)

	nstates := d.next()

	for i := 0; i < nstates; i++ {
		stype := d.next()
		if stype == ATNStateInvalidType {
			atn.addState(nil)
			continue
		}

		ruleIndex := d.next()

		var s ATNState
		switch stype {
		case ATNStateBasic:
			s = NewBasicState()
		case ATNStateRuleStart:
			s = NewRuleStartState()
		case ATNStateBlockStart:
			bs := NewBasicBlockStartState()
			s = bs
			endStateNumbers = append(endStateNumbers, [2]int{i, d.next()})
		case ATNStatePlusBlockStart:
			bs := NewPlusBlockStartState()
			s = bs
			endStateNumbers = append(endStateNumbers, [2]int{i, d.next()})
		case ATNStateStarBlockStart:
			bs := NewStarBlockStartState()
			s = bs
			endStateNumbers = append(endStateNumbers, [2]int{i, d.next()})
		case ATNStateTokenStart:
			s = NewTokensStartState()
		case ATNStateRuleStop:
			s = NewRuleStopState()
		case ATNStateBlockEnd:
			s = NewBlockEndState()
		case ATNStateStarLoopBack:
			s = NewStarLoopbackState()
		case ATNStateStarLoopEntry:
			s = NewStarLoopEntryState()
		case ATNStatePlusLoopBack:
			s = NewPlusLoopbackState()
		case ATNStateLoopEnd:
			le := NewLoopEndState()
			s = le
			loopBackStateNumbers = append(loopBackStateNumbers, [2]int{i, d.next()})
		default:
			panic(&CorruptedAtnError{reason: fmt.Sprintf("unknown state type %d", stype)})
		}

		s.SetRuleIndex(ruleIndex)
		atn.addState(s)
	}

	for _, pair := range loopBackStateNumbers {
		le := atn.states[pair[0]].(*LoopEndState)
		le.loopBackState = atn.states[pair[1]]
	}
	for _, pair := range endStateNumbers {
		bs := atn.states[pair[0]].(BlockStartState)
		bs.setEndState(atn.states[pair[1]].(*BlockEndState))
		atn.states[pair[1]].(*BlockEndState).startState = bs
	}

	numNonGreedyStates := d.next()
	for i := 0; i < numNonGreedyStates; i++ {
		stateNumber := d.next()
		atn.states[stateNumber].(DecisionState).setNonGreedy(true)
	}

	if d.supportsPrecedencePredicates() {
		numPrecedenceStates := d.next()
		for i := 0; i < numPrecedenceStates; i++ {
			stateNumber := d.next()
			atn.states[stateNumber].(*RuleStartState).isLeftRecursive = true
		}
	}
}

func (d *ATNDeserializer) readRules(atn *ATN) {
	nrules := d.next()

	if atn.grammarType == ATNTypeLexer {
		atn.ruleToTokenType = make([]int, nrules)
	}
	atn.ruleToStartState = make([]*RuleStartState, nrules)

	for i := 0; i < nrules; i++ {
		s := d.next()
		startState := atn.states[s].(*RuleStartState)
		atn.ruleToStartState[i] = startState

		if atn.grammarType == ATNTypeLexer {
			tokenType := d.next()
			atn.ruleToTokenType[i] = tokenType
			if !d.supportsLexerActions(atn) {
				// legacy format: a per-rule action index used to be
				// stored here; it is read and discarded. The legacy
				// actions are rebuilt from the ActionTransitions in the
				// edge list by synthesizeLexerActions.
				_ = d.next()
			}
		}
	}

	atn.ruleToStopState = make([]*RuleStopState, nrules)
	for _, s := range atn.states {
		stop, ok := s.(*RuleStopState)
		if !ok {
			continue
		}
		atn.ruleToStopState[stop.GetRuleIndex()] = stop
		atn.ruleToStartState[stop.GetRuleIndex()].stopState = stop
	}
}

func (d *ATNDeserializer) readModes(atn *ATN) {
	nmodes := d.next()
	for i := 0; i < nmodes; i++ {
		s := d.next()
		ts := atn.states[s].(*TokensStartState)
		atn.modeToStartState = append(atn.modeToStartState, ts)
	}
}

func (d *ATNDeserializer) readSets(atn *ATN) []*IntervalSet {
	nsets := d.next()
	sets := make([]*IntervalSet, 0, nsets)
	for i := 0; i < nsets; i++ {
		nintervals := d.next()
		iset := NewIntervalSet()
		containsEOF := d.next()
		if containsEOF != 0 {
			iset.AddOne(TokenEOF)
		}
		for j := 0; j < nintervals; j++ {
			a := d.next()
			b := d.next()
			iset.AddRange(a, b)
		}
		sets = append(sets, iset)
	}
	return sets
}

func (d *ATNDeserializer) readEdges(atn *ATN, sets []*IntervalSet) {
	nedges := d.next()
	for i := 0; i < nedges; i++ {
		src := d.next()
		trg := d.next()
		ttype := d.next()
		arg1 := d.next()
		arg2 := d.next()
		arg3 := d.next()

		srcState := atn.states[src]
		trans := d.edgeFactory(atn, ttype, src, trg, arg1, arg2, arg3, sets)
		srcState.AddTransition(trans, -1)
	}

	// Every RuleTransition gets an implicit epsilon edge back to its
	// followState once the rule returns, via the rule's unique stop state.
	for _, s := range atn.states {
		if s == nil {
			continue
		}
		for _, t := range s.GetTransitions() {
			rt, ok := t.(*RuleTransition)
			if !ok {
				continue
			}
			outermostPrecedenceReturn := -1
			if rt.getTarget() != nil {
				if rss, ok2 := rt.getTarget().(*RuleStartState); ok2 && rss.isLeftRecursive {
					outermostPrecedenceReturn = rss.GetRuleIndex()
				}
			}
			epsilon := NewEpsilonTransition(rt.followState, outermostPrecedenceReturn)
			atn.ruleToStopState[rt.ruleIndex].AddTransition(epsilon, -1)
		}
	}

	for _, s := range atn.states {
		switch ls := s.(type) {
		case *PlusLoopbackState:
			for _, t := range ls.GetTransitions() {
				if pbs, ok := t.getTarget().(*PlusBlockStartState); ok {
					pbs.loopBackState = ls
				}
			}
		case *StarLoopbackState:
			for _, t := range ls.GetTransitions() {
				if sle, ok := t.getTarget().(*StarLoopEntryState); ok {
					sle.loopBackState = ls
				}
			}
		}
	}
}

func (d *ATNDeserializer) edgeFactory(atn *ATN, ttype, src, trg, arg1, arg2, arg3 int, sets []*IntervalSet) Transition {
	target := atn.states[trg]
	switch ttype {
	case TransitionEPSILON:
		return NewEpsilonTransition(target, -1)
	case TransitionRANGE:
		if arg3 != 0 {
			return NewRangeTransition(target, TokenEOF, arg2)
		}
		return NewRangeTransition(target, arg1, arg2)
	case TransitionRULE:
		return NewRuleTransition(atn.states[arg1].(*RuleStartState), arg2, arg3, target)
	case TransitionPREDICATE:
		return NewPredicateTransition(target, arg1, arg2, arg3 != 0)
	case TransitionPRECEDENCE:
		return NewPrecedencePredicateTransition(target, arg1)
	case TransitionATOM:
		if arg3 != 0 {
			return NewAtomTransition(target, TokenEOF)
		}
		return NewAtomTransition(target, arg1)
	case TransitionACTION:
		return NewActionTransition(target, arg1, arg2, arg3 != 0)
	case TransitionSET:
		return NewSetTransition(target, sets[arg1])
	case TransitionNOTSET:
		return NewNotSetTransition(target, sets[arg1])
	case TransitionWILDCARD:
		return NewWildcardTransition(target)
	default:
		panic(&CorruptedAtnError{reason: fmt.Sprintf("unknown transition type %d", ttype)})
	}
}

func (d *ATNDeserializer) readDecisions(atn *ATN) {
	ndecisions := d.next()
	for i := 0; i < ndecisions; i++ {
		s := d.next()
		decState := atn.states[s].(DecisionState)
		atn.DecisionToState = append(atn.DecisionToState, decState)
		decState.setDecision(i)
	}
}

func (d *ATNDeserializer) readLexerActions() []LexerAction {
	count := d.next()
	actions := make([]LexerAction, count)
	for i := 0; i < count; i++ {
		actionType := d.next()
		data1 := d.next()
		data2 := d.next()
		actions[i] = d.lexerActionFactory(actionType, data1, data2)
	}
	return actions
}

func (d *ATNDeserializer) lexerActionFactory(actionType, data1, data2 int) LexerAction {
	switch actionType {
	case LexerActionTypeChannel:
		return NewLexerChannelAction(data1)
	case LexerActionTypeCustom:
		return NewLexerCustomAction(data1, data2)
	case LexerActionTypeMode:
		return NewLexerModeAction(data1)
	case LexerActionTypeMore:
		return NewLexerMoreAction()
	case LexerActionTypePopMode:
		return NewLexerPopModeAction()
	case LexerActionTypePushMode:
		return NewLexerPushModeAction(data1)
	case LexerActionTypeSkip:
		return NewLexerSkipAction()
	case LexerActionTypeType:
		return NewLexerTypeAction(data1)
	default:
		panic(&CorruptedAtnError{reason: fmt.Sprintf("unknown lexer action type %d", actionType)})
	}
}

// synthesizeLexerActions rebuilds the modern LexerAction table from the
// legacy representation, where a lexer rule's action was encoded as an
// ActionTransition whose actionIndex pointed at a rule-local action rather
// than into a flat, deserializer-owned table (spec.md §4.C). Each such
// transition yields a position-dependent LexerCustomAction(ruleIndex,
// actionIndex) and is replaced by an ActionTransition that indexes the new
// table and keeps the original isCtxDependent flag.
func (d *ATNDeserializer) synthesizeLexerActions(atn *ATN) []LexerAction {
	if atn.grammarType != ATNTypeLexer {
		return nil
	}

	var actions []LexerAction
	for _, s := range atn.states {
		if s == nil {
			continue
		}
		for i, t := range s.GetTransitions() {
			at, ok := t.(*ActionTransition)
			if !ok {
				continue
			}
			actions = append(actions, NewLexerCustomAction(at.RuleIndex, at.ActionIndex))
			s.GetTransitions()[i] = NewActionTransition(at.getTarget(), at.RuleIndex, len(actions)-1, at.IsCtxDependent)
		}
	}
	return actions
}

// markPrecedenceDecisions flags each StarLoopEntryState that guards a
// left-recursive rule's precedence climb (spec.md §4.C): its last
// transition targets a LoopEnd whose sole epsilon-only transition leads
// straight to the rule's RuleStopState.
func (d *ATNDeserializer) markPrecedenceDecisions(atn *ATN) {
	for _, s := range atn.states {
		entry, ok := s.(*StarLoopEntryState)
		if !ok {
			continue
		}
		if !atn.ruleToStartState[entry.GetRuleIndex()].isLeftRecursive {
			continue
		}

		maybeLoopEndState := entry.GetTransitions()[len(entry.GetTransitions())-1].getTarget()
		loopEnd, ok := maybeLoopEndState.(*LoopEndState)
		if !ok {
			continue
		}
		if len(loopEnd.GetTransitions()) != 1 || !loopEnd.GetTransitions()[0].getIsEpsilon() {
			continue
		}
		if _, ok := loopEnd.GetTransitions()[0].getTarget().(*RuleStopState); ok {
			entry.precedenceRuleDecision = true
		}
	}
}

// generateRuleBypassTransitions synthesizes, for every parser rule, a way
// to match the rule as a single atomic token (ruleTokenType = maxTokenType
// + 1 + ruleIndex): a new BasicBlockStart/BlockEnd pair wraps the rule's
// body, every transition that used to target the rule's stop state is
// redirected to the new BlockEnd (the precedence rule's excluded
// loop-back transition is left alone, since rewriting it would change the
// rule's recursive shape), and a single Atom transition on the bypass
// token connects rule start to rule stop (spec.md §4.C).
func (d *ATNDeserializer) generateRuleBypassTransitions(atn *ATN) {
	n := len(atn.ruleToStartState)
	if n == 0 {
		return
	}

	ruleToTokenType := make([]int, n)
	for i := 0; i < n; i++ {
		ruleToTokenType[i] = atn.maxTokenType + 1 + i
	}
	atn.ruleToTokenType = ruleToTokenType

	for ruleIndex := 0; ruleIndex < n; ruleIndex++ {
		bypassStart := NewBasicBlockStartState()
		bypassStart.SetRuleIndex(ruleIndex)
		atn.addState(bypassStart)

		bypassStop := NewBlockEndState()
		bypassStop.SetRuleIndex(ruleIndex)
		atn.addState(bypassStop)

		bypassStart.endState = bypassStop
		atn.defineDecisionState(bypassStart)

		bypassStop.startState = bypassStart

		var excludeTransition Transition
		var endState ATNState

		startState := atn.ruleToStartState[ruleIndex]
		if startState.isLeftRecursive {
			for _, s := range atn.states {
				if s == nil || s.GetRuleIndex() != ruleIndex {
					continue
				}
				entry, ok := s.(*StarLoopEntryState)
				if !ok || !entry.precedenceRuleDecision {
					continue
				}
				endState = entry.GetTransitions()[len(entry.GetTransitions())-1].getTarget()
				excludeTransition = entry.loopBackState.GetTransitions()[0]
				break
			}
		} else {
			endState = atn.ruleToStopState[ruleIndex]
		}

		for _, state := range atn.states {
			if state == nil || state.GetRuleIndex() != ruleIndex {
				continue
			}
			for i, transition := range state.GetTransitions() {
				if transition == excludeTransition && excludeTransition != nil {
					continue
				}
				if transition.getTarget() == endState {
					rewired := rewireTransitionTarget(transition, bypassStop)
					state.GetTransitions()[i] = rewired
				}
			}
		}

		for _, transition := range atn.ruleToStartState[ruleIndex].GetTransitions() {
			bypassStart.AddTransition(transition, -1)
		}

		ruleToStartState := atn.ruleToStartState[ruleIndex]
		ruleToStartState.SetTransitions(nil)
		ruleToStartState.AddTransition(NewEpsilonTransition(bypassStart, -1), -1)
		bypassStop.AddTransition(NewEpsilonTransition(endState, -1), -1)

		matchState := NewBasicState()
		matchState.SetRuleIndex(ruleIndex)
		atn.addState(matchState)
		matchState.AddTransition(NewAtomTransition(bypassStop, ruleToTokenType[ruleIndex]), -1)
		bypassStart.AddTransition(NewEpsilonTransition(matchState, -1), -1)
	}

	if d.supportsLexerActions(atn) {
		// rule bypass only applies to parser ATNs; unreachable, kept for
		// symmetry with the spec's conditional ordering.
		return
	}
}

// rewireTransitionTarget returns a transition identical to t but pointing
// at newTarget, since Transition has no settable target field exposed
// across variants uniformly.
func rewireTransitionTarget(t Transition, newTarget ATNState) Transition {
	switch tt := t.(type) {
	case *EpsilonTransition:
		return NewEpsilonTransition(newTarget, tt.outermostPrecedenceReturn)
	case *AtomTransition:
		return NewAtomTransition(newTarget, tt.label)
	case *RangeTransition:
		return NewRangeTransition(newTarget, tt.Start, tt.Stop)
	case *NotSetTransition:
		return NewNotSetTransition(newTarget, tt.intervalSet)
	case *SetTransition:
		return NewSetTransition(newTarget, tt.intervalSet)
	case *WildcardTransition:
		return NewWildcardTransition(newTarget)
	case *ActionTransition:
		return NewActionTransition(newTarget, tt.RuleIndex, tt.ActionIndex, tt.IsCtxDependent)
	case *PredicateTransition:
		return NewPredicateTransition(newTarget, tt.RuleIndex, tt.PredIndex, tt.IsCtxDependent)
	case *PrecedencePredicateTransition:
		return NewPrecedencePredicateTransition(newTarget, tt.Precedence)
	case *RuleTransition:
		return NewRuleTransition(tt.target.(*RuleStartState), tt.ruleIndex, tt.precedence, newTarget)
	default:
		panic(&CorruptedAtnError{reason: "cannot rewire unknown transition type"})
	}
}

// verifyATN checks the structural invariants every deserialized graph must
// satisfy (spec.md §4.C, §8 invariant 1): a state with more than one
// outgoing transition is either a DecisionState with a valid decision
// number or a RuleStopState (which fans out via its context-pop logic
// instead of genuine alternatives), and every BlockStart/BlockEnd pair
// references each other.
func (d *ATNDeserializer) verifyATN(atn *ATN) {
	for _, s := range atn.states {
		if s == nil {
			continue
		}

		d.checkCondition(s.GetEpsilonOnlyTransitions() || len(s.GetTransitions()) <= 1, "a state with more than one transition must have only epsilon transitions")
		d.checkCondition(len(s.GetTransitions()) <= 1 || isDecisionOrRuleStop(s), "state has more than one transition but is not a decision state")

		switch st := s.(type) {
		case *PlusBlockStartState:
			d.checkCondition(st.loopBackState != nil, "plus block start missing loopback")
		case *StarLoopEntryState:
			d.checkCondition(st.loopBackState != nil, "star loop entry missing loopback")
		case *RuleStartState:
			d.checkCondition(st.stopState != nil, "rule start missing its rule's stop state")
		case BlockStartState:
			d.checkCondition(st.getEndState() != nil, "block start missing end state")
		case *BlockEndState:
			d.checkCondition(st.startState != nil, "block end missing start state")
		}
	}
}

func isDecisionOrRuleStop(s ATNState) bool {
	if _, ok := s.(*RuleStopState); ok {
		return true
	}
	ds, ok := s.(DecisionState)
	return ok && ds.getDecision() >= 0
}

func (d *ATNDeserializer) checkCondition(condition bool, message string) {
	if !condition {
		panic(&CorruptedAtnError{reason: message})
	}
}
