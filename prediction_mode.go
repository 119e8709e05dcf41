// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

// Prediction modes the parser ATN simulator can be asked to run in
// (spec.md §4.I): SLL is the fast default; LL is the exhaustive fallback
// used once SLL reports ambiguity between contexts it cannot see past;
// the LLExactAmbigDetection variant additionally keeps computing reach
// until every (state, context) group conflicts over the same alts, so the
// ambiguity it reports is exact.
const (
	PredictionModeSLL = 0
	PredictionModeLL  = 1
	PredictionModeLLExactAmbigDetection = 2
)

// atnConfKey groups ATNConfigs that share (state, context) but differ in
// alt — the grouping getConflictingAltSubsets builds and
// hasConflictingAltSet operates on. semHash is left zero there, so the
// semantic context plays no part in the grouping.
type atnConfKey struct {
	stateNumber int
	stackHash   int
	semHash     int
}

// getConflictingAltSubsets groups configs' alt numbers by (state, context),
// ignoring semantic context (spec.md §4.I): two configs conflict when they
// share a state and stack but predict different alts, regardless of what
// predicate gates either one — a predicate can still disambiguate them
// later, at accept time.
func getConflictingAltSubsets(configs []*ATNConfig) []*BitSet {
	type entry struct {
		key  atnConfKey
		alts *BitSet
	}
	var order []*entry
	index := make(map[atnConfKey]*entry)
	for _, c := range configs {
		k := atnConfKey{stateNumber: c.GetState().GetStateNumber(), stackHash: hashPC(c.GetContext())}
		e, ok := index[k]
		if !ok {
			e = &entry{key: k, alts: NewBitSet()}
			index[k] = e
			order = append(order, e)
		}
		e.alts.add(c.GetAlt())
	}
	out := make([]*BitSet, 0, len(order))
	for _, e := range order {
		out = append(out, e.alts)
	}
	return out
}

// getStateToAltMap groups alts by state alone (ignoring stack/semantic
// context), used to decide whether a reach set is still ambiguous when
// restricted to full context.
func getStateToAltMap(configs []*ATNConfig) map[int]*BitSet {
	m := make(map[int]*BitSet)
	for _, c := range configs {
		sn := c.GetState().GetStateNumber()
		s, ok := m[sn]
		if !ok {
			s = NewBitSet()
			m[sn] = s
		}
		s.add(c.GetAlt())
	}
	return m
}

// hasSLLConflictTerminatingPrediction reports whether SLL prediction stops
// at this reach set because of a conflict (spec.md §4.I step 4); the
// caller then marks the DFA state as requiring full context. It is true
// when every config is in a rule stop state, when in SLL mode the set
// already records conflicting alts, or when some (state, context) group
// spans more than one alt and no group holds a single alt.
func hasSLLConflictTerminatingPrediction(mode int, configs *ATNConfigSet) bool {
	if allConfigsInRuleStopStates(configs) {
		return true
	}

	if mode == PredictionModeSLL {
		if configs.conflictingAlts != nil {
			return true
		}
	}

	altsets := getConflictingAltSubsets(configs.GetItems())
	heuristic := hasConflictingAltSet(altsets) && !hasStateAssociatedWithOneAlt(altsets)
	return heuristic
}

func hasConfigInRuleStopState(configs []*ATNConfig) bool {
	for _, c := range configs {
		if _, ok := c.GetState().(*RuleStopState); ok {
			return true
		}
	}
	return false
}

func allConfigsInRuleStopStates(configs *ATNConfigSet) bool {
	for _, c := range configs.GetItems() {
		if _, ok := c.GetState().(*RuleStopState); !ok {
			return false
		}
	}
	return true
}

func hasConflictingAltSet(altsets []*BitSet) bool {
	for _, s := range altsets {
		if s.length() > 1 {
			return true
		}
	}
	return false
}

func hasStateAssociatedWithOneAlt(altsets []*BitSet) bool {
	for _, s := range altsets {
		if s.length() == 1 {
			return true
		}
	}
	return false
}

// resolvesToJustOneViableAlt takes the minimum alt of each (state, context)
// group (spec.md §4.I step 3's "first alt wins ties" rule) and returns it
// when every group has the same minimum, or ATNInvalidAltNumber when the
// minimums differ.
func resolvesToJustOneViableAlt(altsets []*BitSet) int {
	return getSingleViableAlt(altsets)
}

func getSingleViableAlt(altsets []*BitSet) int {
	viableAlts := NewBitSet()
	for _, s := range altsets {
		minAlt := s.minValue()
		viableAlts.add(minAlt)
		if viableAlts.length() > 1 {
			return ATNInvalidAltNumber
		}
	}
	return viableAlts.minValue()
}

// allSubsetsConflict reports whether every (state, context) group spans
// more than one alt — i.e. there is no group any remaining ambiguity could
// hide behind, so the conflict is total.
func allSubsetsConflict(altsets []*BitSet) bool {
	return !hasNonConflictingAltSet(altsets)
}

func hasNonConflictingAltSet(altsets []*BitSet) bool {
	for _, s := range altsets {
		if s.length() == 1 {
			return true
		}
	}
	return false
}

// getAlts flattens a slice of alt subsets into the single set of every alt
// appearing in any of them.
func getAlts(altsets []*BitSet) *BitSet {
	all := NewBitSet()
	for _, s := range altsets {
		all.or(s)
	}
	return all
}

// predictionModeResolvesToJustOneViableAlt is resolvesToJustOneViableAlt
// under its prefixed name.
func predictionModeResolvesToJustOneViableAlt(altsets []*BitSet) int {
	return resolvesToJustOneViableAlt(altsets)
}

// predictionModeAllSubsetsConflict reports whether the reach set is wholly
// ambiguous, with no single-alt group to fall back on.
func predictionModeAllSubsetsConflict(altsets []*BitSet) bool {
	return allSubsetsConflict(altsets)
}

// predictionModeHasConfigInRuleStopState is hasConfigInRuleStopState under
// its prefixed name: it reports whether a reach set includes any rule-exit
// config.
func predictionModeHasConfigInRuleStopState(configs []*ATNConfig) bool {
	return hasConfigInRuleStopState(configs)
}
