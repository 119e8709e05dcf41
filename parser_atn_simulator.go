// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

// ParserATNSimulator implements adaptive LL(*) prediction (spec.md §4.I):
// for a decision point it first tries SLL (a context that collapses at
// rule-stop boundaries via a wildcard merge) and synthesizes/extends a DFA
// for the decision as it goes. SLL either resolves outright, resolves
// after a predicate check, or reports a conflict that can only be settled
// by re-running the closure/reach loop in full LL context starting from
// the point SLL lost information. The DFA built along the way is shared
// across every parse using the same ATN (spec.md §5).
type ParserATNSimulator struct {
	*BaseATNSimulator

	parser Parser

	decisionToDFA []*DFA

	predictionMode int

	mergeCache *JPCMap
}

func NewParserATNSimulator(parser Parser, atn *ATN, decisionToDFA []*DFA, sharedContextCache *PredictionContextCache) *ParserATNSimulator {
	return &ParserATNSimulator{
		BaseATNSimulator: NewBaseATNSimulator(atn, sharedContextCache),
		parser:           parser,
		decisionToDFA:    decisionToDFA,
		predictionMode:   PredictionModeLLExactAmbigDetection,
	}
}

// AdaptivePredict is the entry point a generated rule method calls at a
// decision: it returns the winning alt number (1-based) for decision,
// given the parser's current input position and outerContext (spec.md §4.I
// step 1).
func (p *ParserATNSimulator) AdaptivePredict(input TokenStream, decision int, outerContext *ParserRuleContext) int {
	dfa := p.decisionToDFA[decision]

	m := input.Mark()
	defer input.Release(m)

	index := input.Index()
	defer func() { input.Seek(index) }()

	p.mergeCache = NewJPCMap()
	defer func() { p.mergeCache = nil }()

	if outerContext == nil {
		outerContext = NewParserRuleContext(nil, ATNStateInvalidStateNumber)
	}

	var s0 *DFAState
	if dfa.precedenceDfa {
		s0 = dfa.getPrecedenceStartState(p.parser.GetPrecedence())
	} else {
		dfa.mu.RLock()
		s0 = dfa.s0
		dfa.mu.RUnlock()
	}

	if s0 == nil {
		if entry, ok := dfa.atnStartState.(*StarLoopEntryState); ok && entry.precedenceRuleDecision && !dfa.precedenceDfa {
			dfa.setPrecedenceDfa(true)
		}

		fullCtx := false
		s0Closure := p.computeStartState(dfa.atnStartState, &BaseRuleContext{}, fullCtx)

		if dfa.precedenceDfa {
			dfa.s0.configs = s0Closure
			s0Closure = p.applyPrecedenceFilter(s0Closure)
			s0 = p.addDFAState(dfa, NewDFAState(-1, s0Closure))
			dfa.setPrecedenceStartState(p.parser.GetPrecedence(), s0)
		} else {
			s0 = p.addDFAState(dfa, NewDFAState(-1, s0Closure))
			dfa.mu.Lock()
			dfa.s0 = s0
			dfa.mu.Unlock()
		}
	}

	alt := p.execATN(dfa, s0, input, index, outerContext)
	return alt
}

// execATN runs the SLL decision loop starting at s0, falling back to
// exact-context prediction (execATNWithFullContext) when a reach set
// reports a conflict it cannot resolve on its own (spec.md §4.I steps
// 2-5).
func (p *ParserATNSimulator) execATN(dfa *DFA, s0 *DFAState, input TokenStream, startIndex int, outerContext *ParserRuleContext) int {
	previousD := s0

	t := input.LA(1)

	for {
		d := p.getExistingTargetState(previousD, t)
		if d == nil {
			d = p.computeTargetState(dfa, previousD, t)
		}

		if d == ATNSimulatorErrorState {
			panic(p.noViableAlt(input, outerContext, previousD.configs, startIndex))
		}

		if d.requiresFullContext && p.predictionMode != PredictionModeSLL {
			conflictingAlts := d.configs.conflictingAlts
			if d.predicates != nil {
				conflictIndex := input.Index()
				if conflictIndex != startIndex {
					input.Seek(startIndex)
				}
				conflictingAlts = p.evalSemanticContext(d.predicates, outerContext, true)
				if conflictingAlts.length() == 1 {
					return conflictingAlts.minValue()
				}
				if conflictIndex != input.Index() {
					input.Seek(conflictIndex)
				}
			}

			return p.execATNWithFullContext(dfa, previousD, input, startIndex, outerContext)
		}

		if d.isAcceptState {
			if d.predicates == nil {
				return d.prediction
			}
			stopIndex := input.Index()
			input.Seek(startIndex)
			alts := p.evalSemanticContext(d.predicates, outerContext, true)
			switch alts.length() {
			case 0:
				panic(p.noViableAlt(input, outerContext, d.configs, startIndex))
			case 1:
				return alts.minValue()
			default:
				input.Seek(stopIndex)
				return alts.minValue()
			}
		}

		previousD = d
		if t != TokenEOF {
			input.Consume()
			t = input.LA(1)
		}
	}
}

func (p *ParserATNSimulator) getExistingTargetState(previousD *DFAState, t int) *DFAState {
	return previousD.getEdge(t)
}

func (p *ParserATNSimulator) computeTargetState(dfa *DFA, previousD *DFAState, t int) *DFAState {
	reach := p.computeReachSet(previousD.configs, t, false)
	if reach == nil {
		p.addDFAEdge(dfa, previousD, t, ATNSimulatorErrorState)
		return ATNSimulatorErrorState
	}

	d := NewDFAState(-1, reach)
	predictedAlt := p.getUniqueAlt(reach)

	switch {
	case predictedAlt != ATNInvalidAltNumber:
		d.isAcceptState = true
		d.configs.uniqueAlt = predictedAlt
		d.setPrediction(predictedAlt)
	case hasSLLConflictTerminatingPrediction(p.predictionMode, reach):
		altSubsets := getConflictingAltSubsets(reach.GetItems())
		d.configs.conflictingAlts = getAlts(altSubsets)
		d.requiresFullContext = true
		d.isAcceptState = true
		d.setPrediction(d.configs.conflictingAlts.minValue())
	}

	if d.isAcceptState && reach.hasSemanticContext {
		p.predicateDFAState(d, p.atn.getDecisionState(dfa.decision))
		if d.predicates != nil {
			d.setPrediction(ATNInvalidAltNumber)
		}
	}

	d = p.addDFAEdge(dfa, previousD, t, d)
	return d
}

func (p *ParserATNSimulator) predicateDFAState(dfaState *DFAState, decisionState DecisionState) {
	nAlts := 0
	if decisionState != nil {
		nAlts = len(decisionState.GetTransitions())
	}
	altsToCollectPredsFrom := p.getConflictingAltsOrUniqueAlt(dfaState.configs)
	altToPred := p.getPredsForAmbigAlts(altsToCollectPredsFrom, dfaState.configs, nAlts)
	if altToPred != nil {
		dfaState.predicates = p.getPredicatePredictions(altsToCollectPredsFrom, altToPred)
		dfaState.setPrediction(ATNInvalidAltNumber)
	} else {
		dfaState.setPrediction(altsToCollectPredsFrom.minValue())
	}
}

func (p *ParserATNSimulator) getConflictingAltsOrUniqueAlt(configs *ATNConfigSet) *BitSet {
	if configs.uniqueAlt != ATNInvalidAltNumber {
		s := NewBitSet()
		s.add(configs.uniqueAlt)
		return s
	}
	return configs.conflictingAlts
}

func (p *ParserATNSimulator) getPredsForAmbigAlts(ambigAlts *BitSet, configs *ATNConfigSet, nalts int) []SemanticContext {
	altToPred := make([]SemanticContext, nalts+1)
	for _, c := range configs.GetItems() {
		if ambigAlts.contains(c.GetAlt()) {
			altToPred[c.GetAlt()] = semanticContextOr(altToPred[c.GetAlt()], c.GetSemanticContext())
		}
	}
	nPredicates := 0
	for i := 1; i <= nalts; i++ {
		if altToPred[i] == nil {
			altToPred[i] = SemanticContextNONE
		} else if altToPred[i] != SemanticContextNONE {
			nPredicates++
		}
	}
	if nPredicates == 0 {
		return nil
	}
	return altToPred
}

func (p *ParserATNSimulator) getPredicatePredictions(ambigAlts *BitSet, altToPred []SemanticContext) []*PredPrediction {
	var pairs []*PredPrediction
	containsPredicate := false
	for i := 1; i < len(altToPred); i++ {
		pred := altToPred[i]
		if pred == nil {
			continue
		}
		if ambigAlts != nil && ambigAlts.contains(i) {
			pairs = append(pairs, NewPredPrediction(pred, i))
		}
		if pred != SemanticContextNONE {
			containsPredicate = true
		}
	}
	if !containsPredicate {
		return nil
	}
	return pairs
}

// execATNWithFullContext re-derives the reach set from scratch in full
// (non-wildcard) context (spec.md §4.I step 5), walking from the ATN
// decision state again rather than resuming from the SLL DFA, since SLL's
// merged contexts have already discarded the information full context
// needs.
func (p *ParserATNSimulator) execATNWithFullContext(dfa *DFA, d *DFAState, input TokenStream, startIndex int, outerContext *ParserRuleContext) int {
	fullCtx := true
	foundExactAmbig := false

	s0Closure := p.computeStartState(dfa.atnStartState, outerContext, fullCtx)
	p.reportAttemptingFullContext(dfa, nil, s0Closure, startIndex, input.Index())

	input.Seek(startIndex)
	t := input.LA(1)
	reach := s0Closure

	for {
		next := p.computeReachSet(reach, t, fullCtx)
		if next == nil {
			panic(p.noViableAlt(input, outerContext, reach, startIndex))
		}
		reach = next

		altSubsets := getConflictingAltSubsets(reach.GetItems())
		reach.uniqueAlt = p.getUniqueAlt(reach)
		if reach.uniqueAlt != ATNInvalidAltNumber {
			break
		}
		if p.predictionMode != PredictionModeLL {
			foundExactAmbig = allSubsetsConflict(altSubsets)
			for _, s := range altSubsets {
				foundExactAmbig = foundExactAmbig && s.equals(altSubsets[0])
			}
			if foundExactAmbig {
				break
			}
		}

		if t != TokenEOF {
			input.Consume()
			t = input.LA(1)
		} else {
			break
		}
	}

	if reach.uniqueAlt != ATNInvalidAltNumber {
		p.reportContextSensitivity(dfa, reach.uniqueAlt, reach, startIndex, input.Index())
		return reach.uniqueAlt
	}

	altSubsets := getConflictingAltSubsets(reach.GetItems())
	predictedAlt := resolvesToJustOneViableAlt(altSubsets)
	if predictedAlt != ATNInvalidAltNumber {
		p.reportAmbiguity(dfa, d, startIndex, input.Index(), foundExactAmbig, getAlts(altSubsets), reach)
		return predictedAlt
	}

	predictedAlt = getAlts(altSubsets).minValue()
	p.reportAmbiguity(dfa, d, startIndex, input.Index(), foundExactAmbig, getAlts(altSubsets), reach)
	return predictedAlt
}

func (p *ParserATNSimulator) getUniqueAlt(configs *ATNConfigSet) int {
	alt := ATNInvalidAltNumber
	for _, c := range configs.GetItems() {
		if alt == ATNInvalidAltNumber {
			alt = c.GetAlt()
		} else if c.GetAlt() != alt {
			return ATNInvalidAltNumber
		}
	}
	return alt
}

func (p *ParserATNSimulator) removeAllConfigsNotInRuleStopState(configs *ATNConfigSet, lookToEndOfRule bool) *ATNConfigSet {
	if allConfigsInRuleStopStates(configs) {
		return configs
	}
	result := NewATNConfigSet(configs.fullCtx)
	for _, c := range configs.GetItems() {
		if _, ok := c.GetState().(*RuleStopState); ok {
			result.Add(c, p.mergeCache)
			continue
		}
		if lookToEndOfRule && c.GetState().GetEpsilonOnlyTransitions() {
			nextTokens := p.atn.NextTokens(c.GetState(), nil)
			if nextTokens.Contains(TokenEpsilon) {
				result.Add(c, p.mergeCache)
			}
		}
	}
	return result
}

// computeStartState builds the closure of every alternative at decisionState
// (spec.md §4.I step 1), seeding each with its own alt number and either
// the wildcard empty context (SLL) or a context derived from ctx (full).
func (p *ParserATNSimulator) computeStartState(decisionState ATNState, ctx RuleContext, fullCtx bool) *ATNConfigSet {
	initialContext := predictionContextFromRuleContext(p.atn, ctx)
	configs := NewATNConfigSet(fullCtx)

	for i, t := range decisionState.GetTransitions() {
		target := t.getTarget()
		cfg := NewBaseATNConfig6(target, i+1, initialContext)
		closureBusy := NewJStore[*ATNConfig, Comparator[*ATNConfig]](ATNConfigComparator{})
		p.closure(cfg, configs, closureBusy, true, fullCtx, false)
	}

	return configs
}

// applyPrecedenceFilter restricts a precedence DFA's start closure
// (spec.md §4.I step 1, left-recursive rules): alt-1 configs are kept only
// if their semantic context still permits the current precedence level,
// with the evalPrecedence result folded back into the config; configs of
// other alts are dropped when a kept alt-1 config has the same state and
// an equal context, and kept otherwise.
func (p *ParserATNSimulator) applyPrecedenceFilter(configs *ATNConfigSet) *ATNConfigSet {
	statesFromAlt1 := make(map[int]*PredictionContext)
	configSet := NewATNConfigSet(configs.fullCtx)

	for _, c := range configs.GetItems() {
		if c.GetAlt() != 1 {
			continue
		}
		pred := c.GetSemanticContext().evalPrecedence(p.parser, nil)
		if pred != nil {
			statesFromAlt1[c.GetState().GetStateNumber()] = c.GetContext()
		}
	}

	for _, c := range configs.GetItems() {
		if c.GetAlt() == 1 {
			pred := c.GetSemanticContext().evalPrecedence(p.parser, nil)
			if pred != nil {
				configSet.Add(NewBaseATNConfigDup(c, nil, nil, pred), p.mergeCache)
			}
			continue
		}

		if ctx, ok := statesFromAlt1[c.GetState().GetStateNumber()]; ok && ctx.Equals(c.GetContext()) {
			continue
		}
		configSet.Add(c, p.mergeCache)
	}

	return configSet
}

// computeReachSet advances every config in closure across an edge labeled
// t (spec.md §4.I step 2): rule-stop configs are not advanced; those that
// can end the decision (an empty context when fullCtx or t is EOF, or a
// context with an empty path) are set aside and added back to the reach
// set after closure, and the rest are dropped. Every other config tries
// each transition and recurses into closure again for the survivors.
func (p *ParserATNSimulator) computeReachSet(closureCfgs *ATNConfigSet, t int, fullCtx bool) *ATNConfigSet {
	intermediate := NewATNConfigSet(fullCtx)

	var skippedStopStates []*ATNConfig

	for _, c := range closureCfgs.GetItems() {
		if _, ok := c.GetState().(*RuleStopState); ok {
			if c.GetContext() == nil || c.GetContext().isEmpty() {
				if fullCtx || t == TokenEOF {
					skippedStopStates = append(skippedStopStates, c)
				}
				continue
			}
			if c.GetContext() != nil && c.GetContext().hasEmptyPath() {
				skippedStopStates = append(skippedStopStates, c)
			}
			continue
		}

		for _, trans := range c.GetState().GetTransitions() {
			target := p.getReachableTarget(trans, t)
			if target != nil {
				cfg := NewBaseATNConfigDup(c, target, nil, nil)
				intermediate.Add(cfg, p.mergeCache)
			}
		}
	}

	var reach *ATNConfigSet
	if len(skippedStopStates) == 0 && t != TokenEOF {
		if intermediate.Length() == 1 {
			reach = intermediate
		}
	}

	if reach == nil {
		reach = NewATNConfigSet(fullCtx)
		closureBusy := NewJStore[*ATNConfig, Comparator[*ATNConfig]](ATNConfigComparator{})
		for _, c := range intermediate.GetItems() {
			p.closure(c, reach, closureBusy, false, fullCtx, false)
		}
	}

	if t == TokenEOF {
		reach = p.removeAllConfigsNotInRuleStopState(reach, true)
	}

	for _, c := range skippedStopStates {
		reach.Add(c, p.mergeCache)
	}

	if reach.Length() == 0 {
		return nil
	}
	return reach
}

func (p *ParserATNSimulator) getReachableTarget(trans Transition, ttype int) ATNState {
	if trans.Matches(ttype, 0, p.atn.maxTokenType) {
		return trans.getTarget()
	}
	return nil
}

// closure is the epsilon-closure over the ATN (spec.md §4.D/§4.I): it
// follows rule transitions by pushing a return state onto the prediction
// context, folds each predicate it passes into the config's semantic
// context when collectPredicates is true and passes through it otherwise
// (no predicate is evaluated during closure, in full-context mode
// either), and stops at rule-stop states by popping the context instead of
// terminating outright, so prediction can see past the current rule.
func (p *ParserATNSimulator) closure(config *ATNConfig, configs *ATNConfigSet, closureBusy *JStore[*ATNConfig, Comparator[*ATNConfig]], collectPredicates, fullCtx, treatEOFAsEpsilon bool) {
	initialDepth := 0
	p.closureCheckingStopState(config, configs, closureBusy, collectPredicates, fullCtx, initialDepth, treatEOFAsEpsilon)
}

func (p *ParserATNSimulator) closureCheckingStopState(config *ATNConfig, configs *ATNConfigSet, closureBusy *JStore[*ATNConfig, Comparator[*ATNConfig]], collectPredicates, fullCtx bool, depth int, treatEOFAsEpsilon bool) {
	if _, ok := config.GetState().(*RuleStopState); ok {
		if config.GetContext() != nil && !config.GetContext().isEmpty() {
			for i := 0; i < config.GetContext().length(); i++ {
				if config.GetContext().getReturnState(i) == BasePredictionContextEmptyReturnState {
					if fullCtx {
						configs.Add(NewBaseATNConfigDup(config, config.GetState(), BasePredictionContextEMPTY, nil), p.mergeCache)
						continue
					}
					p.closure_(config, config.GetState(), configs, closureBusy, collectPredicates, fullCtx, depth, treatEOFAsEpsilon)
					continue
				}
				returnState := p.atn.states[config.GetContext().getReturnState(i)]
				newContext := config.GetContext().getParent(i)
				c := NewBaseATNConfigDup(config, returnState, newContext, nil)
				p.closureCheckingStopState(c, configs, closureBusy, collectPredicates, fullCtx, depth-1, treatEOFAsEpsilon)
			}
			return
		}
		if fullCtx {
			configs.Add(config, p.mergeCache)
			return
		}
	}
	p.closure_(config, config.GetState(), configs, closureBusy, collectPredicates, fullCtx, depth, treatEOFAsEpsilon)
}

func (p *ParserATNSimulator) closure_(config *ATNConfig, state ATNState, configs *ATNConfigSet, closureBusy *JStore[*ATNConfig, Comparator[*ATNConfig]], collectPredicates, fullCtx bool, depth int, treatEOFAsEpsilon bool) {
	if _, ok := state.(*RuleStopState); !ok {
		if _, present := closureBusy.Put(config); present {
			return
		}
	}

	if _, ok := state.(*RuleStopState); !ok || !config.getPassedThroughNonGreedyDecision() {
		configs.Add(config, p.mergeCache)
	}

	for _, t := range state.GetTransitions() {
		c := p.getEpsilonTarget(config, t, collectPredicates, depth == 0, fullCtx, treatEOFAsEpsilon)
		if c != nil {
			newDepth := depth
			switch t.(type) {
			case *RuleTransition:
				newDepth++
			}
			p.closureCheckingStopState(c, configs, closureBusy, collectPredicates, fullCtx, newDepth, treatEOFAsEpsilon)
		}
	}
}

func (p *ParserATNSimulator) getEpsilonTarget(config *ATNConfig, t Transition, collectPredicates, inContext, fullCtx, treatEOFAsEpsilon bool) *ATNConfig {
	switch tt := t.(type) {
	case *EpsilonTransition:
		return NewBaseATNConfigDup(config, t.getTarget(), nil, nil)
	case *RuleTransition:
		return p.ruleTransition(config, tt)
	case *PredicateTransition:
		return p.predTransition(config, tt, collectPredicates, inContext, fullCtx)
	case *PrecedencePredicateTransition:
		return p.precedenceTransition(config, tt, collectPredicates, inContext, fullCtx)
	case *ActionTransition:
		return NewBaseATNConfigDup(config, t.getTarget(), nil, nil)
	default:
		if t.getIsEpsilon() {
			return NewBaseATNConfigDup(config, t.getTarget(), nil, nil)
		}
		if treatEOFAsEpsilon && t.Matches(TokenEOF, 0, 1) {
			return NewBaseATNConfigDup(config, t.getTarget(), nil, nil)
		}
		return nil
	}
}

func (p *ParserATNSimulator) predTransition(config *ATNConfig, pt *PredicateTransition, collectPredicates, inContext, fullCtx bool) *ATNConfig {
	if !collectPredicates {
		return NewBaseATNConfigDup(config, pt.getTarget(), nil, nil)
	}
	if inContext || !pt.IsCtxDependent {
		pred := NewPredicate(pt.RuleIndex, pt.PredIndex, pt.IsCtxDependent)
		newSemCtx := semanticContextAnd(config.GetSemanticContext(), pred)
		return NewBaseATNConfigDup(config, pt.getTarget(), nil, newSemCtx)
	}
	return NewBaseATNConfigDup(config, pt.getTarget(), nil, nil)
}

// precedenceTransition folds the left-recursive precedence test into the
// config's semantic context at closure time (spec.md §4.E, §4.I): it is
// evaluated the same as any other predicate, but PrecedencePredicate's
// special Equals/compareTo (by precedence level only) lets the And/Or
// normalization in semantic_context.go keep only the tightest bound.
func (p *ParserATNSimulator) precedenceTransition(config *ATNConfig, pt *PrecedencePredicateTransition, collectPredicates, inContext, fullCtx bool) *ATNConfig {
	if !collectPredicates {
		return NewBaseATNConfigDup(config, pt.getTarget(), nil, nil)
	}
	pred := NewPrecedencePredicate(pt.Precedence)
	newSemCtx := semanticContextAnd(config.GetSemanticContext(), pred)
	return NewBaseATNConfigDup(config, pt.getTarget(), nil, newSemCtx)
}

func (p *ParserATNSimulator) ruleTransition(config *ATNConfig, t *RuleTransition) *ATNConfig {
	newContext := NewSingletonPredictionContext(config.GetContext(), t.followState.GetStateNumber())
	return NewBaseATNConfigDup(config, t.getTarget(), newContext, nil)
}

func (p *ParserATNSimulator) noViableAlt(input TokenStream, outerContext *ParserRuleContext, configs *ATNConfigSet, startIndex int) *NoViableAltException {
	input.Seek(startIndex)
	startToken := input.LT(1)
	return NewNoViableAltException(p.parser, input, startToken, input.LT(1), configs, outerContext)
}

func (p *ParserATNSimulator) evalSemanticContext(predPredictions []*PredPrediction, outerContext RuleContext, complete bool) *BitSet {
	predictions := NewBitSet()
	for _, pair := range predPredictions {
		if pair.pred == SemanticContextNONE {
			predictions.add(pair.alt)
			if !complete {
				break
			}
			continue
		}
		fullCtx := false
		predicateEvaluationResult := p.evalSemanticContextImpl(pair.pred, outerContext, pair.alt, fullCtx)
		if predicateEvaluationResult {
			predictions.add(pair.alt)
			if !complete {
				break
			}
		}
	}
	return predictions
}

func (p *ParserATNSimulator) evalSemanticContextImpl(pred SemanticContext, outerContext RuleContext, alt int, fullCtx bool) bool {
	return pred.evaluate(p.parser, outerContext)
}

func (p *ParserATNSimulator) addDFAEdge(dfa *DFA, from *DFAState, t int, to *DFAState) *DFAState {
	if to == ATNSimulatorErrorState {
		to = p.addDFAState(dfa, to)
		from.setEdge(t, to)
		return to
	}
	to = p.addDFAState(dfa, to)
	if t < TokenEOF || t > p.atn.maxTokenType {
		return to
	}
	from.setEdge(t, to)
	return to
}

func (p *ParserATNSimulator) addDFAState(dfa *DFA, d *DFAState) *DFAState {
	if d == ATNSimulatorErrorState {
		return d
	}
	existing, present := dfa.getState(d)
	if present {
		return existing
	}
	d.configs.OptimizeConfigs(p.sharedContextCache)
	return dfa.addState(d)
}

func (p *ParserATNSimulator) reportAttemptingFullContext(dfa *DFA, conflictingAlts *BitSet, configs *ATNConfigSet, startIndex, stopIndex int) {
	listener := p.parser.GetErrorListenerDispatch()
	listener.ReportAttemptingFullContext(p.parser, dfa, startIndex, stopIndex, conflictingAlts, configs)
}

func (p *ParserATNSimulator) reportContextSensitivity(dfa *DFA, prediction int, configs *ATNConfigSet, startIndex, stopIndex int) {
	listener := p.parser.GetErrorListenerDispatch()
	listener.ReportContextSensitivity(p.parser, dfa, startIndex, stopIndex, prediction, configs)
}

func (p *ParserATNSimulator) reportAmbiguity(dfa *DFA, d *DFAState, startIndex, stopIndex int, exact bool, ambigAlts *BitSet, configs *ATNConfigSet) {
	listener := p.parser.GetErrorListenerDispatch()
	listener.ReportAmbiguity(p.parser, dfa, startIndex, stopIndex, exact, ambigAlts, configs)
}
