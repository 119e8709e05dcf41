// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

// LL1AnalyzerHitPred is returned (as a member of a FIRST/FOLLOW set) when a
// predicate transition is encountered on a path and the analyzer is told
// not to see through it; it seeds Atn.NextTokens* and the precedence-filter
// heuristic (spec.md §4.J).
const LL1AnalyzerHitPred = TokenInvalidType

// LL1Analyzer computes FIRST/FOLLOW-like lookahead sets by depth-first
// search over the ATN, threading a prediction-context stack and a
// called-rule guard so left recursion terminates (spec.md §4.J).
type LL1Analyzer struct {
	atn *ATN
}

func NewLL1Analyzer(atn *ATN) *LL1Analyzer {
	return &LL1Analyzer{atn: atn}
}

// GetDecisionLookahead computes, for a DecisionState s, the FIRST set of
// each of its alternatives (index 0 unused, alts are 1-based); nil if s is
// nil.
func (la *LL1Analyzer) GetDecisionLookahead(s ATNState) []*IntervalSet {
	if s == nil {
		return nil
	}
	look := make([]*IntervalSet, len(s.GetTransitions())+1)
	for alt, t := range s.GetTransitions() {
		look[alt+1] = NewIntervalSet()
		seenStates := NewJStore[ATNState, Comparator[ATNState]](ObjEqATNStateComparator{})
		la.look(t.getTarget(), nil, BasePredictionContextEMPTY, look[alt+1], seenStates, NewBitSet(), false, false)
		// An alternative whose set is empty, or that ran into a predicate
		// (LL1AnalyzerHitPred is a member), gets a nil entry.
		if look[alt+1].Len() == 0 || look[alt+1].Contains(LL1AnalyzerHitPred) {
			look[alt+1] = nil
		}
	}
	return look
}

// Look computes the set of tokens that can follow s in the given ctx; a nil
// ctx means "stay inside s's own rule".
func (la *LL1Analyzer) Look(s, stopState ATNState, ctx RuleContext) *IntervalSet {
	r := NewIntervalSet()
	seeThruPreds := true
	var lookContext *PredictionContext
	if ctx != nil {
		lookContext = predictionContextFromRuleContext(s.GetATN(), ctx)
	}
	la.look(s, stopState, lookContext, r, NewJStore[ATNState, Comparator[ATNState]](ObjEqATNStateComparator{}), NewBitSet(), seeThruPreds, true)
	return r
}

// look is the recursive epsilon-closure walk. calledRuleStack guards
// against infinite recursion through left-recursive or mutually recursive
// rules; ctx is the prediction-context stack threaded through rule
// invocations/returns so that FOLLOW sets respect the actual call
// structure, not just local rule boundaries.
func (la *LL1Analyzer) look(s, stopState ATNState, ctx *PredictionContext, look *IntervalSet, lookBusy *JStore[ATNState, Comparator[ATNState]], calledRuleStack *BitSet, seeThruPreds, addEOF bool) {
	if _, present := lookBusy.Get(s); present {
		return
	}
	lookBusy.Put(s)

	if s == stopState {
		if ctx == nil {
			look.AddOne(TokenEpsilon)
			return
		} else if ctx.isEmpty() && addEOF {
			look.AddOne(TokenEOF)
			return
		}
	}

	if _, ok := s.(*RuleStopState); ok {
		if ctx == nil {
			look.AddOne(TokenEpsilon)
			return
		} else if ctx.isEmpty() && addEOF {
			look.AddOne(TokenEOF)
			return
		}

		if ctx != BasePredictionContextEMPTY {
			removed := calledRuleStack.contains(s.GetRuleIndex())
			defer func() {
				if removed {
					calledRuleStack.add(s.GetRuleIndex())
				}
			}()
			calledRuleStack.remove(s.GetRuleIndex())
			for i := 0; i < ctx.length(); i++ {
				returnState := la.atn.states[ctx.getReturnState(i)]
				la.look(returnState, stopState, ctx.getParent(i), look, lookBusy, calledRuleStack, seeThruPreds, addEOF)
			}
			return
		}
	}

	for _, t := range s.GetTransitions() {
		switch tt := t.(type) {
		case *RuleTransition:
			if calledRuleStack.contains(tt.target.GetRuleIndex()) {
				continue
			}
			newContext := SingletonBasePredictionContextCreate(ctx, tt.followState.GetStateNumber())
			calledRuleStack.add(tt.target.GetRuleIndex())
			la.look(tt.target, stopState, newContext, look, lookBusy, calledRuleStack, seeThruPreds, addEOF)
			calledRuleStack.remove(tt.target.GetRuleIndex())
		case AbstractPredicateTransition:
			if seeThruPreds {
				la.look(t.getTarget(), stopState, ctx, look, lookBusy, calledRuleStack, seeThruPreds, addEOF)
			} else {
				look.AddOne(LL1AnalyzerHitPred)
			}
		case *WildcardTransition:
			look.addSet(NewIntervalSet().complement(TokenMinUserTokenType, la.atn.maxTokenType))
		default:
			if t.getIsEpsilon() {
				la.look(t.getTarget(), stopState, ctx, look, lookBusy, calledRuleStack, seeThruPreds, addEOF)
				continue
			}
			set := t.getLabel()
			if set != nil {
				if _, ok := t.(*NotSetTransition); ok {
					set = set.complement(TokenMinUserTokenType, la.atn.maxTokenType)
				}
				look.addSet(set)
			}
		}
	}
}

// ObjEqATNStateComparator compares ATNState values via Hash/Equals on the
// concrete state, used for the lookBusy visited-set.
type ObjEqATNStateComparator struct{}

func (ObjEqATNStateComparator) Hash1(s ATNState) int { return s.Hash() }
func (ObjEqATNStateComparator) Equals2(a, b ATNState) bool {
	return a.Equals(b)
}
