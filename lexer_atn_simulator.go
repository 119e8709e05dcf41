// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

// lexerSimState snapshots the input position/line/column and the DFA/ATN
// state of the most recent accept seen during a match, so the simulator
// can roll the input stream back to it once a longer match fails to
// materialize (spec.md §4.H: priority-ordered longest match).
type lexerSimState struct {
	index    int
	line     int
	charPos  int
	dfaState *DFAState
}

func newLexerSimState() *lexerSimState {
	return &lexerSimState{index: -1}
}

func (s *lexerSimState) reset() {
	s.index = -1
	s.line = 0
	s.charPos = -1
	s.dfaState = nil
}

// LexerATNSimulator performs priority-ordered, longest-match tokenization
// over a lexer ATN (spec.md §4.H): for the current mode it runs the
// adaptive closure/reach loop exactly like the parser simulator's SLL mode,
// but conflicts are resolved by transition priority rather than voting,
// and a decision terminates only once no transition can consume another
// character (longest match), at which point the highest-priority
// alternative among the surviving configs wins and its lexer actions run.
type LexerATNSimulator struct {
	*BaseATNSimulator

	recog Lexer

	startIndex int

	// Line/CharPositionInLine track the recognizer's notion of current line
	// and column; the parser analog has no equivalent since parsers only
	// consume tokens, not characters.
	Line               int
	CharPositionInLine int

	mode int

	prevAccept *lexerSimState

	decisionToDFA []*DFA
}

const LexerATNSimulatorMinDFAEdge = 0
const LexerATNSimulatorMaxDFAEdge = 127

func NewLexerATNSimulator(recog Lexer, atn *ATN, decisionToDFA []*DFA, sharedContextCache *PredictionContextCache) *LexerATNSimulator {
	return &LexerATNSimulator{
		BaseATNSimulator: NewBaseATNSimulator(atn, sharedContextCache),
		recog:            recog,
		decisionToDFA:    decisionToDFA,
		mode:             LexerDefaultMode,
		prevAccept:       newLexerSimState(),
		Line:             1,
	}
}

// Match runs the longest-match algorithm for the given mode starting at
// input's current position and returns the resulting token type, or
// LexerSkip/LexerMore if the matched rule requested those, leaving input
// positioned just past the match (or at the match start, for More).
func (l *LexerATNSimulator) Match(input CharStream, mode int) int {
	l.mode = mode
	mark := input.Mark()
	defer input.Release(mark)

	l.startIndex = input.Index()
	l.prevAccept.reset()

	dfa := l.decisionToDFA[mode]

	var s0 *DFAState
	if dfa != nil {
		s0 = dfa.s0
	}

	if s0 == nil {
		return l.matchATN(input)
	}
	return l.execATN(input, s0)
}

func (l *LexerATNSimulator) Reset() {
	l.prevAccept.reset()
	l.startIndex = -1
	l.Line = 1
	l.CharPositionInLine = 0
	l.mode = LexerDefaultMode
}

func (l *LexerATNSimulator) matchATN(input CharStream) int {
	startState := l.atn.modeToStartState[l.mode]

	s0Closure := l.computeStartState(input, startState)
	suppressEdge := s0Closure.hasSemanticContext
	s0Closure.hasSemanticContext = false

	next := l.addDFAState(s0Closure)
	if !suppressEdge {
		dfa := l.decisionToDFA[l.mode]
		dfa.mu.Lock()
		dfa.s0 = next
		dfa.mu.Unlock()
	}

	return l.execATN(input, next)
}

func (l *LexerATNSimulator) execATN(input CharStream, ds0 *DFAState) int {
	if ds0.isAcceptState {
		l.captureSimState(l.prevAccept, input, ds0)
	}

	t := input.LA(1)
	s := ds0

	for {
		target := l.getExistingTargetState(s, t)
		if target == nil {
			target = l.computeTargetState(input, s, t)
		}

		if target == ATNSimulatorErrorState {
			break
		}

		if t != TokenEOF {
			l.consume(input)
		}

		if target.isAcceptState {
			l.captureSimState(l.prevAccept, input, target)
			if t == TokenEOF {
				break
			}
		}

		t = input.LA(1)
		s = target
	}

	return l.failOrAccept(l.prevAccept, input, s.configs, t)
}

// ATNSimulatorErrorState is the well-known sentinel DFAState used internally
// to mean "no transition on this symbol" without allocating a fresh nil
// check everywhere; it is never inserted into a DFA's state table.
var ATNSimulatorErrorState = NewDFAState(-1, NewATNConfigSet(false))

func (l *LexerATNSimulator) getExistingTargetState(s *DFAState, t int) *DFAState {
	if s.edges == nil {
		return nil
	}
	target := s.getEdge(t)
	if target == nil {
		return nil
	}
	return target
}

func (l *LexerATNSimulator) computeTargetState(input CharStream, s *DFAState, t int) *DFAState {
	reach := NewATNConfigSet(false)
	l.getReachableConfigSet(input, s.configs, reach, t)

	if reach.Length() == 0 {
		if !reach.hasSemanticContext {
			l.addDFAEdge(s, t, ATNSimulatorErrorState)
		}
		return ATNSimulatorErrorState
	}

	return l.addDFAEdgeFromReach(s, t, reach)
}

func (l *LexerATNSimulator) addDFAEdgeFromReach(from *DFAState, t int, reach *ATNConfigSet) *DFAState {
	to := l.addDFAState(reach)
	l.addDFAEdge(from, t, to)
	return to
}

func (l *LexerATNSimulator) failOrAccept(prevAccept *lexerSimState, input CharStream, reach *ATNConfigSet, t int) int {
	if prevAccept.dfaState != nil {
		lexerActionExecutor := prevAccept.dfaState.lexerActionExecutor
		l.accept(input, lexerActionExecutor, l.startIndex, prevAccept.index, prevAccept.line, prevAccept.charPos)
		return prevAccept.dfaState.prediction
	}

	if t == TokenEOF && input.Index() == l.startIndex {
		return TokenEOF
	}

	panic(NewLexerNoViableAltException(l.recog, input, l.startIndex, reach))
}

// getReachableConfigSet advances every config in closure across an edge
// labeled t, writing survivors (after another closure pass) into reach.
func (l *LexerATNSimulator) getReachableConfigSet(input CharStream, closure *ATNConfigSet, reach *ATNConfigSet, t int) {
	skipAlt := ATNInvalidAltNumber
	for _, cfg := range closure.GetItems() {
		currentAltReachedAcceptState := cfg.GetAlt() == skipAlt
		if currentAltReachedAcceptState && cfg.getPassedThroughNonGreedyDecision() {
			continue
		}

		for _, trans := range cfg.GetState().GetTransitions() {
			target := l.getReachableTarget(trans, t)
			if target == nil {
				continue
			}
			lexerActionExecutor := cfg.getLexerActionExecutor()
			if lexerActionExecutor != nil {
				offset := input.Index() - l.startIndex
				lexerActionExecutor = LexerActionExecutorFixOffsetBeforeMatch(lexerActionExecutor, offset)
			}
			treatEOFAsEpsilon := t == TokenEOF
			newCfg := &ATNConfig{}
			*newCfg = *cfg
			newCfg.state = target
			newCfg.lexerActionExecutor = lexerActionExecutor
			if l.closure(input, newCfg, reach, currentAltReachedAcceptState, true, treatEOFAsEpsilon) {
				skipAlt = cfg.GetAlt()
			}
		}
	}
}

func (l *LexerATNSimulator) getReachableTarget(trans Transition, t int) ATNState {
	if trans.Matches(t, LexerMinCharValue, LexerMaxCharValue) {
		return trans.getTarget()
	}
	return nil
}

func (l *LexerATNSimulator) computeStartState(input CharStream, p ATNState) *ATNConfigSet {
	configs := NewATNConfigSet(false)
	for i, t := range p.GetTransitions() {
		cfg := NewBaseATNConfig6(t.getTarget(), i+1, BasePredictionContextEMPTY)
		l.closure(input, cfg, configs, false, false, false)
	}
	return configs
}

// closure performs epsilon-closure from config, honoring non-greedy
// decisions (a non-greedy block stops exploring further alts once it has
// reached an accept state for a higher-priority alt) and priority ordering
// (spec.md §4.H: the simulator commits to the first, i.e. lowest alt
// number, accept state reached at a given input length).
func (l *LexerATNSimulator) closure(input CharStream, config *ATNConfig, configs *ATNConfigSet, currentAltReachedAcceptState, speculative, treatEOFAsEpsilon bool) bool {
	if _, ok := config.GetState().(*RuleStopState); ok {
		if config.GetContext() == nil || config.GetContext().hasEmptyPath() {
			if config.GetContext() == nil || config.GetContext().isEmpty() {
				configs.Add(config, nil)
				return true
			}
			configs.Add(NewBaseATNConfigDup(config, config.GetState(), BasePredictionContextEMPTY, nil), nil)
			currentAltReachedAcceptState = true
		}
		if config.GetContext() != nil && !config.GetContext().isEmpty() {
			for i := 0; i < config.GetContext().length(); i++ {
				if config.GetContext().getReturnState(i) != BasePredictionContextEmptyReturnState {
					newContext := config.GetContext().getParent(i)
					returnState := l.atn.states[config.GetContext().getReturnState(i)]
					cfg := NewBaseATNConfigDup(config, returnState, newContext, nil)
					currentAltReachedAcceptState = l.closure(input, cfg, configs, currentAltReachedAcceptState, speculative, treatEOFAsEpsilon)
				}
			}
		}
		return currentAltReachedAcceptState
	}

	if !config.GetState().GetEpsilonOnlyTransitions() {
		if !currentAltReachedAcceptState || !config.getPassedThroughNonGreedyDecision() {
			configs.Add(config, nil)
		}
	}

	for _, t := range config.GetState().GetTransitions() {
		cfg := l.getEpsilonTarget(input, config, t, configs, speculative, treatEOFAsEpsilon)
		if cfg != nil {
			currentAltReachedAcceptState = l.closure(input, cfg, configs, currentAltReachedAcceptState, speculative, treatEOFAsEpsilon)
		}
	}

	return currentAltReachedAcceptState
}

func (l *LexerATNSimulator) getEpsilonTarget(input CharStream, config *ATNConfig, t Transition, configs *ATNConfigSet, speculative, treatEOFAsEpsilon bool) *ATNConfig {
	var cfg *ATNConfig

	switch tt := t.(type) {
	case *RuleTransition:
		newContext := NewSingletonPredictionContext(config.GetContext(), tt.followState.GetStateNumber())
		cfg = NewBaseATNConfigDup(config, t.getTarget(), newContext, nil)
	case *PredicateTransition:
		if l.evaluatePredicate(input, tt.RuleIndex, tt.PredIndex, speculative) {
			cfg = NewBaseATNConfigDup(config, t.getTarget(), nil, nil)
		}
	case *ActionTransition:
		if config.GetContext() == nil || config.GetContext().hasEmptyPath() {
			executor := LexerActionExecutorAppend(config.getLexerActionExecutor(), l.atn.lexerActions[tt.ActionIndex])
			cfg = NewBaseATNConfigDup(config, t.getTarget(), nil, nil)
			cfg.lexerActionExecutor = executor
		} else {
			cfg = NewBaseATNConfigDup(config, t.getTarget(), nil, nil)
		}
	case *EpsilonTransition:
		cfg = NewBaseATNConfigDup(config, t.getTarget(), nil, nil)
	default:
		if t.getIsEpsilon() {
			if t.getSerializationType() == TransitionATOM || t.getSerializationType() == TransitionRANGE || t.getSerializationType() == TransitionSET {
				if treatEOFAsEpsilon && t.Matches(TokenEOF, LexerMinCharValue, LexerMaxCharValue) {
					cfg = NewBaseATNConfigDup(config, t.getTarget(), nil, nil)
				}
			} else {
				cfg = NewBaseATNConfigDup(config, t.getTarget(), nil, nil)
			}
		}
	}

	if cfg != nil {
		cfg.passedThroughNonGreedyDecision = cfg.passedThroughNonGreedyDecision || l.isNonGreedyDecisionState(t.getTarget())
	}

	return cfg
}

func (l *LexerATNSimulator) isNonGreedyDecisionState(s ATNState) bool {
	ds, ok := s.(DecisionState)
	return ok && ds.getNonGreedy()
}

func (l *LexerATNSimulator) evaluatePredicate(input CharStream, ruleIndex, predIndex int, speculative bool) bool {
	if !speculative {
		return l.recog.Sempred(nil, ruleIndex, predIndex)
	}

	savedCharPositionInLine := l.CharPositionInLine
	savedLine := l.Line
	index := input.Index()
	marker := input.Mark()
	defer func() {
		l.CharPositionInLine = savedCharPositionInLine
		l.Line = savedLine
		input.Seek(index)
		input.Release(marker)
	}()

	l.consume(input)
	return l.recog.Sempred(nil, ruleIndex, predIndex)
}

func (l *LexerATNSimulator) captureSimState(settings *lexerSimState, input CharStream, dfaState *DFAState) {
	settings.index = input.Index()
	settings.line = l.Line
	settings.charPos = l.CharPositionInLine
	settings.dfaState = dfaState
}

func (l *LexerATNSimulator) addDFAEdge(from *DFAState, tk int, to *DFAState) {
	if tk < LexerATNSimulatorMinDFAEdge || tk > LexerATNSimulatorMaxDFAEdge {
		return
	}
	from.setEdge(tk, to)
}

func (l *LexerATNSimulator) addDFAState(configs *ATNConfigSet) *DFAState {
	proposed := NewDFAState(-1, configs)
	var firstConfigWithRuleStopState *ATNConfig
	for _, cfg := range configs.GetItems() {
		if _, ok := cfg.GetState().(*RuleStopState); ok {
			firstConfigWithRuleStopState = cfg
			break
		}
	}

	if firstConfigWithRuleStopState != nil {
		proposed.isAcceptState = true
		proposed.lexerActionExecutor = firstConfigWithRuleStopState.getLexerActionExecutor()
		proposed.setPrediction(l.atn.ruleToTokenType[firstConfigWithRuleStopState.GetState().GetRuleIndex()])
	}

	configs.SetReadOnly(true)
	dfa := l.decisionToDFA[l.mode]
	return dfa.addState(proposed)
}

func (l *LexerATNSimulator) consume(input CharStream) {
	curChar := input.LA(1)
	if curChar == int('\n') {
		l.Line++
		l.CharPositionInLine = 0
	} else {
		l.CharPositionInLine++
	}
	input.Consume()
}

func (l *LexerATNSimulator) GetCharPositionInLine() int { return l.CharPositionInLine }
func (l *LexerATNSimulator) GetLine() int               { return l.Line }

func (l *LexerATNSimulator) accept(input CharStream, lexerActionExecutor *LexerActionExecutor, startIndex, index, line, charPos int) {
	input.Seek(index)
	l.Line = line
	l.CharPositionInLine = charPos

	if lexerActionExecutor != nil && l.recog != nil {
		lexerActionExecutor.execute(l.recog, input, startIndex)
	}
}
