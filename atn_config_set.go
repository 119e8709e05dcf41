// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

// ATNConfigSet is an insertion-ordered, hash-consed set of ATNConfigs
// (spec.md §3, §4.F). Inserting a config whose key (state, alt, context,
// semContext) already has a member merges the two configs' stack contexts
// via the merge algebra (§4.D) in place, rather than adding a duplicate.
type ATNConfigSet struct {
	cachedHash int

	configLookup *JMap[*ATNConfig, *ATNConfig]
	configs      []*ATNConfig

	fullCtx              bool
	readOnly              bool
	hasSemanticContext    bool
	dipsIntoOuterContext  bool
	uniqueAlt             int
	conflictingAlts       *BitSet
}

func NewATNConfigSet(fullCtx bool) *ATNConfigSet {
	return &ATNConfigSet{
		configLookup: NewJMap[*ATNConfig, *ATNConfig](ATNConfigComparator{}),
		fullCtx:      fullCtx,
		uniqueAlt:    ATNInvalidAltNumber,
	}
}

func (a *ATNConfigSet) mustBeWritable() {
	if a.readOnly {
		panic("cannot alter a readonly ATNConfigSet")
	}
}

// Add inserts config, merging stack contexts with an existing
// structurally-equal member via mergeCache when one is present. It reports
// whether the set changed: true when config was added or when merging
// replaced an existing member's context, false otherwise.
func (a *ATNConfigSet) Add(config *ATNConfig, mergeCache *JPCMap) bool {
	a.mustBeWritable()

	if config.semanticContext != SemanticContextNONE {
		a.hasSemanticContext = true
	}
	if config.getReachesIntoOuterContext() > 0 {
		a.dipsIntoOuterContext = true
	}

	existing, present := a.configLookup.Get(config)
	if !present {
		a.cachedHash = 0
		a.configLookup.Put(config, config)
		a.configs = append(a.configs, config)
		return true
	}

	rootIsWildcard := !a.fullCtx
	merged := mergePredictionContexts(existing.GetContext(), config.GetContext(), rootIsWildcard, mergeCache)

	if existing.GetContext() == merged {
		return false
	}

	existing.SetContext(merged)
	return true
}

func (a *ATNConfigSet) GetStates() []ATNState {
	out := make([]ATNState, 0, len(a.configs))
	seen := NewJStore[ATNState, Comparator[ATNState]](ObjEqATNStateComparator{})
	for _, c := range a.configs {
		if _, ok := seen.Get(c.GetState()); !ok {
			seen.Put(c.GetState())
			out = append(out, c.GetState())
		}
	}
	return out
}

// GetPredicates collects the semantic contexts of every config in a, in
// order, skipping SemanticContextNONE entries.
func (a *ATNConfigSet) GetPredicates() []SemanticContext {
	var out []SemanticContext
	for _, c := range a.configs {
		if c.semanticContext != SemanticContextNONE {
			out = append(out, c.semanticContext)
		}
	}
	return out
}

func (a *ATNConfigSet) GetItems() []*ATNConfig { return a.configs }

func (a *ATNConfigSet) Length() int { return len(a.configs) }

func (a *ATNConfigSet) IsEmpty() bool { return len(a.configs) == 0 }

func (a *ATNConfigSet) Contains(config *ATNConfig) bool {
	_, ok := a.configLookup.Get(config)
	return ok
}

// OptimizeConfigs rewrites every config's context for its interned
// counterpart from cache; called once, when the set is about to be frozen
// and published as a DFA state's configs (spec.md §3 lifecycle).
func (a *ATNConfigSet) OptimizeConfigs(cache *PredictionContextCache) {
	a.mustBeWritable()
	if a.configLookup.Len() == 0 {
		return
	}
	for _, c := range a.configs {
		c.SetContext(cache.GetCachedContext(c.GetContext()))
	}
}

// SetReadOnly freezes the set: after this, Add panics. Freezing is
// one-way (spec.md §3 lifecycle, §9 "Config set that mutates on insert").
func (a *ATNConfigSet) SetReadOnly(readOnly bool) {
	a.readOnly = readOnly
	if readOnly {
		a.configLookup = nil // no longer needed once frozen
	}
}

func (a *ATNConfigSet) Equals(other interface{}) bool {
	o, ok := other.(*ATNConfigSet)
	if !ok {
		return false
	}
	if len(a.configs) != len(o.configs) {
		return false
	}
	if a.fullCtx != o.fullCtx || a.uniqueAlt != o.uniqueAlt {
		return false
	}
	for i, c := range a.configs {
		if !c.Equals(o.configs[i]) {
			return false
		}
	}
	return true
}

func (a *ATNConfigSet) Hash() int {
	if a.readOnly {
		if a.cachedHash == 0 {
			a.cachedHash = a.hashConfigs()
		}
		return a.cachedHash
	}
	return a.hashConfigs()
}

func (a *ATNConfigSet) hashConfigs() int {
	h := murmurInit(1)
	for _, c := range a.configs {
		h = murmurUpdate(h, c.Hash())
	}
	return murmurFinish(h, len(a.configs))
}

// Alts returns the set of distinct alt numbers represented in a.
func (a *ATNConfigSet) Alts() *BitSet {
	s := NewBitSet()
	for _, c := range a.configs {
		s.add(c.GetAlt())
	}
	return s
}

func (a *ATNConfigSet) String() string {
	s := "["
	for i, c := range a.configs {
		if i > 0 {
			s += ", "
		}
		s += c.String()
	}
	s += "]"
	return s
}
