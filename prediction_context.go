// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

import "golang.org/x/exp/slices"

// BasePredictionContextEmptyReturnState is the sentinel return-state value
// marking "no caller" on a path through a PredictionContext — the payload
// that, if present, always sorts last within a List context (spec.md §3).
const BasePredictionContextEmptyReturnState = 0x7FFFFFFF

type predictionContextKind int

const (
	pcKindEmpty predictionContextKind = iota
	pcKindSingleton
	pcKindArray
)

// PredictionContext is the graph-structured-stack node described in
// spec.md §3/§4.D: an immutable DAG representing one or more return-state
// stacks, with exactly three shapes (Empty/Singleton/List, here
// Empty/Singleton/Array). Construction goes through the package
// constructors, so the length-1-list-collapses-to-singleton invariant
// (spec.md §3 invariant iv) is enforced in one place; the only literal is
// asArray's temporary length-1 view, used inside a merge and never stored.
type PredictionContext struct {
	cachedHash int
	kind       predictionContextKind

	// singleton
	parent      *PredictionContext
	returnState int

	// array
	parents      []*PredictionContext
	returnStates []int
}

// BasePredictionContextEMPTY is the unique "$" sentinel: every empty
// context compares equal only to itself (spec.md §3 invariant iii).
var BasePredictionContextEMPTY = &PredictionContext{
	kind:        pcKindEmpty,
	returnState: BasePredictionContextEmptyReturnState,
	cachedHash:  calculateEmptyHash(),
}

func calculateEmptyHash() int {
	h := murmurInit(1)
	return murmurFinish(h, 0)
}

// NewSingletonPredictionContext builds a one-parent, one-return-state
// context, or returns BasePredictionContextEMPTY when both parent and
// returnState describe the empty path.
func NewSingletonPredictionContext(parent *PredictionContext, returnState int) *PredictionContext {
	if returnState == BasePredictionContextEmptyReturnState && parent == nil {
		return BasePredictionContextEMPTY
	}
	p := &PredictionContext{kind: pcKindSingleton, parent: parent, returnState: returnState}
	p.cachedHash = p.calculateHash()
	return p
}

// SingletonBasePredictionContextCreate is the constructor used when pushing
// a new return state onto an existing context during rule invocation.
func SingletonBasePredictionContextCreate(parent *PredictionContext, returnState int) *PredictionContext {
	if returnState == BasePredictionContextEmptyReturnState && parent == nil {
		return BasePredictionContextEMPTY
	}
	return NewSingletonPredictionContext(parent, returnState)
}

// NewArrayPredictionContext builds a List context; callers must pass
// parents/returnStates already sorted ascending by returnState with
// BasePredictionContextEmptyReturnState last. A length-1 input collapses
// to NewSingletonPredictionContext's result.
func NewArrayPredictionContext(parents []*PredictionContext, returnStates []int) *PredictionContext {
	if len(parents) == 1 {
		return NewSingletonPredictionContext(parents[0], returnStates[0])
	}
	p := &PredictionContext{kind: pcKindArray, parents: parents, returnStates: returnStates}
	p.cachedHash = p.calculateHash()
	return p
}

func (p *PredictionContext) isEmpty() bool {
	return p.kind == pcKindEmpty
}

func (p *PredictionContext) length() int {
	switch p.kind {
	case pcKindArray:
		return len(p.returnStates)
	default:
		return 1
	}
}

func (p *PredictionContext) getParent(index int) *PredictionContext {
	if p.kind == pcKindArray {
		return p.parents[index]
	}
	return p.parent
}

func (p *PredictionContext) getReturnState(index int) int {
	if p.kind == pcKindArray {
		return p.returnStates[index]
	}
	return p.returnState
}

func (p *PredictionContext) hasEmptyPath() bool {
	return p.getReturnState(p.length()-1) == BasePredictionContextEmptyReturnState
}

func (p *PredictionContext) calculateHash() int {
	h := murmurInit(1)
	if p.kind == pcKindArray {
		for i, parent := range p.parents {
			h = murmurUpdate(h, hashPC(parent))
			h = murmurUpdate(h, p.returnStates[i])
		}
		return murmurFinish(h, 2*len(p.parents))
	}
	h = murmurUpdate(h, hashPC(p.parent))
	h = murmurUpdate(h, p.returnState)
	return murmurFinish(h, 2)
}

func hashPC(p *PredictionContext) int {
	if p == nil {
		return 0
	}
	return p.Hash()
}

func (p *PredictionContext) Hash() int {
	return p.cachedHash
}

// Equals is structural, never pointer identity (beyond the EMPTY
// fast-path), matching spec.md §3 invariant (ii).
func (p *PredictionContext) Equals(other interface{}) bool {
	o, ok := other.(*PredictionContext)
	if !ok || o == nil {
		return false
	}
	if p == o {
		return true
	}
	if p.cachedHash != o.cachedHash {
		return false
	}
	if p.kind != o.kind {
		return false
	}
	switch p.kind {
	case pcKindEmpty:
		return true
	case pcKindSingleton:
		if p.returnState != o.returnState {
			return false
		}
		if p.parent == nil {
			return o.parent == nil
		}
		return p.parent.Equals(o.parent)
	default:
		if !slices.Equal(p.returnStates, o.returnStates) {
			return false
		}
		if len(p.parents) != len(o.parents) {
			return false
		}
		for i := range p.parents {
			if !p.parents[i].Equals(o.parents[i]) {
				return false
			}
		}
		return true
	}
}

// predictionContextFromRuleContext walks a RuleContext chain (outermost
// caller last) and builds the equivalent PredictionContext, used to seed
// Look() and full-context execution with the real outer call stack.
func predictionContextFromRuleContext(atn *ATN, outerContext RuleContext) *PredictionContext {
	if outerContext == nil || outerContext.GetParent() == nil || outerContext.GetInvokingState() == -1 {
		return BasePredictionContextEMPTY
	}

	parent := predictionContextFromRuleContext(atn, outerContext.GetParent())
	state := atn.states[outerContext.GetInvokingState()]
	transition := state.GetTransitions()[0]
	return SingletonBasePredictionContextCreate(parent, transition.(*RuleTransition).followState.GetStateNumber())
}

// --- merge algebra (spec.md §4.D) ---

// mergePredictionContexts merges a and b, memoized in mergeCache when one
// is given; lookups probe both orderings since merge is commutative.
func mergePredictionContexts(a, b *PredictionContext, rootIsWildcard bool, mergeCache *JPCMap) *PredictionContext {
	if a == b {
		return a
	}

	if mergeCache != nil {
		if previous, ok := mergeCache.Get(a, b); ok {
			return previous
		}
		if previous, ok := mergeCache.Get(b, a); ok {
			return previous
		}
	}

	var rootMerge *PredictionContext
	if a.kind != pcKindArray && b.kind != pcKindArray {
		rootMerge = mergeSingletons(a, b, rootIsWildcard, mergeCache)
	} else if rootIsWildcard {
		if a.isEmpty() {
			rootMerge = a
		} else if b.isEmpty() {
			rootMerge = b
		}
	}
	if rootMerge != nil {
		if mergeCache != nil {
			mergeCache.Put(a, b, rootMerge)
		}
		return rootMerge
	}

	aArr := asArray(a)
	bArr := asArray(b)
	merged := mergeArrays(aArr, bArr, rootIsWildcard, mergeCache)
	if mergeCache != nil {
		mergeCache.Put(a, b, merged)
	}
	return merged
}

func asArray(p *PredictionContext) *PredictionContext {
	if p.kind == pcKindArray {
		return p
	}
	return &PredictionContext{
		kind:         pcKindArray,
		parents:      []*PredictionContext{p.parent},
		returnStates: []int{p.returnState},
		cachedHash:   p.cachedHash,
	}
}

// mergeSingletons implements spec.md §4.D's mergeSingletons.
func mergeSingletons(a, b *PredictionContext, rootIsWildcard bool, mergeCache *JPCMap) *PredictionContext {
	if mergeCache != nil {
		if previous, ok := mergeCache.Get(a, b); ok {
			return previous
		}
		if previous, ok := mergeCache.Get(b, a); ok {
			return previous
		}
	}

	rootMerge := mergeRoot(a, b, rootIsWildcard)
	if rootMerge != nil {
		if mergeCache != nil {
			mergeCache.Put(a, b, rootMerge)
		}
		return rootMerge
	}

	var merged *PredictionContext
	if a.returnState == b.returnState {
		parent := mergePredictionContexts(a.parent, b.parent, rootIsWildcard, mergeCache)
		if parent == a.parent {
			merged = a
		} else if parent == b.parent {
			merged = b
		} else {
			merged = NewSingletonPredictionContext(parent, a.returnState)
		}
	} else {
		var parent *PredictionContext
		if a.parent != nil && a.parent.Equals(b.parent) {
			parent = a.parent
		}
		if a.returnState < b.returnState {
			merged = NewArrayPredictionContext([]*PredictionContext{parent, parent}, []int{a.returnState, b.returnState})
			if parent == nil {
				merged = NewArrayPredictionContext([]*PredictionContext{a.parent, b.parent}, []int{a.returnState, b.returnState})
			}
		} else {
			merged = NewArrayPredictionContext([]*PredictionContext{parent, parent}, []int{b.returnState, a.returnState})
			if parent == nil {
				merged = NewArrayPredictionContext([]*PredictionContext{b.parent, a.parent}, []int{b.returnState, a.returnState})
			}
		}
	}

	if mergeCache != nil {
		mergeCache.Put(a, b, merged)
	}
	return merged
}

// mergeRoot handles the Empty-involved cases of mergeSingletons.
func mergeRoot(a, b *PredictionContext, rootIsWildcard bool) *PredictionContext {
	if rootIsWildcard {
		if a == BasePredictionContextEMPTY {
			return BasePredictionContextEMPTY
		}
		if b == BasePredictionContextEMPTY {
			return BasePredictionContextEMPTY
		}
		return nil
	}
	if a == BasePredictionContextEMPTY && b == BasePredictionContextEMPTY {
		return BasePredictionContextEMPTY
	}
	if a == BasePredictionContextEMPTY {
		return NewArrayPredictionContext([]*PredictionContext{b.parent, nil}, []int{b.returnState, BasePredictionContextEmptyReturnState})
	}
	if b == BasePredictionContextEMPTY {
		return NewArrayPredictionContext([]*PredictionContext{a.parent, nil}, []int{a.returnState, BasePredictionContextEmptyReturnState})
	}
	return nil
}

// mergeArrays implements spec.md §4.D's mergeLists: a sorted-merge walk
// over returnStates, recursing into parents on a tie and copying the
// smaller side otherwise, followed by a pass that combines structurally
// identical parent entries (_combineCommonParents).
func mergeArrays(a, b *PredictionContext, rootIsWildcard bool, mergeCache *JPCMap) *PredictionContext {
	i, j := 0, 0
	k := 0

	mergedReturnStates := make([]int, 0, len(a.returnStates)+len(b.returnStates))
	mergedParents := make([]*PredictionContext, 0, len(a.returnStates)+len(b.returnStates))

	for i < len(a.returnStates) && j < len(b.returnStates) {
		aParent := a.parents[i]
		bParent := b.parents[j]

		if a.returnStates[i] == b.returnStates[j] {
			payload := a.returnStates[i]
			bothDollars := payload == BasePredictionContextEmptyReturnState && aParent == nil && bParent == nil
			axAx := aParent != nil && bParent != nil && aParent.Equals(bParent)
			if bothDollars || axAx {
				mergedParents = append(mergedParents, aParent)
				mergedReturnStates = append(mergedReturnStates, payload)
			} else {
				mergedParent := mergePredictionContexts(aParent, bParent, rootIsWildcard, mergeCache)
				mergedParents = append(mergedParents, mergedParent)
				mergedReturnStates = append(mergedReturnStates, payload)
			}
			i++
			j++
		} else if a.returnStates[i] < b.returnStates[j] {
			mergedParents = append(mergedParents, aParent)
			mergedReturnStates = append(mergedReturnStates, a.returnStates[i])
			i++
		} else {
			mergedParents = append(mergedParents, bParent)
			mergedReturnStates = append(mergedReturnStates, b.returnStates[j])
			j++
		}
		k++
	}
	for ; i < len(a.returnStates); i++ {
		mergedParents = append(mergedParents, a.parents[i])
		mergedReturnStates = append(mergedReturnStates, a.returnStates[i])
		k++
	}
	for ; j < len(b.returnStates); j++ {
		mergedParents = append(mergedParents, b.parents[j])
		mergedReturnStates = append(mergedReturnStates, b.returnStates[j])
		k++
	}

	if k == 1 {
		return NewSingletonPredictionContext(mergedParents[0], mergedReturnStates[0])
	}

	combineCommonParents(&mergedParents)

	m := NewArrayPredictionContext(mergedParents, mergedReturnStates)
	if m.Equals(a) {
		return a
	}
	if m.Equals(b) {
		return b
	}
	return m
}

// combineCommonParents aliases structurally-equal parent pointers to a
// single shared instance, preserving DAG sharing after a merge
// (spec.md §4.D). It does not expose the interning map to callers.
func combineCommonParents(parents *[]*PredictionContext) {
	uniq := NewJMap[*PredictionContext, *PredictionContext](pcCmp{})
	for i, p := range *parents {
		if p == nil {
			continue
		}
		if existing, ok := uniq.Get(p); ok {
			(*parents)[i] = existing
		} else {
			uniq.Put(p, p)
		}
	}
}

// getCachedContext rewrites a context tree so every node references
// interned nodes from cache, called exactly when a new DFA state is added
// (spec.md §4.D) — never during closure, which creates many throwaway
// contexts that are not worth interning.
func getCachedContext(context *PredictionContext, contextCache *PredictionContextCache, visited *JMap[*PredictionContext, *PredictionContext]) *PredictionContext {
	if context.isEmpty() {
		return context
	}
	if existing, ok := visited.Get(context); ok {
		return existing
	}
	if cached, ok := contextCache.Get(context); ok {
		visited.Put(context, cached)
		return cached
	}

	changed := false
	parents := make([]*PredictionContext, context.length())
	for i := 0; i < len(parents); i++ {
		parent := getCachedContext(context.getParent(i), contextCache, visited)
		if changed || parent != context.getParent(i) {
			if !changed {
				parents = make([]*PredictionContext, context.length())
				for j := 0; j < i; j++ {
					parents[j] = context.getParent(j)
				}
				changed = true
			}
			parents[i] = parent
		}
	}

	if !changed {
		contextCache.add(context)
		visited.Put(context, context)
		return context
	}

	var updated *PredictionContext
	if len(parents) == 0 {
		updated = BasePredictionContextEMPTY
	} else if len(parents) == 1 {
		updated = SingletonBasePredictionContextCreate(parents[0], context.getReturnState(0))
	} else {
		returnStates := make([]int, context.length())
		for i := 0; i < len(returnStates); i++ {
			returnStates[i] = context.getReturnState(i)
		}
		updated = NewArrayPredictionContext(parents, returnStates)
	}

	contextCache.add(updated)
	visited.Put(updated, updated)
	visited.Put(context, updated)

	return updated
}

// PredictionContextCache interns non-empty contexts by structural equality
// (spec.md §3 invariant v, §4.D): insertions are monotonic, never evicted,
// and shared alongside a grammar's DFA array across recognizer instances
// (spec.md §5).
type PredictionContextCache struct {
	cache *JMap[*PredictionContext, *PredictionContext]
}

func NewPredictionContextCache() *PredictionContextCache {
	return &PredictionContextCache{cache: NewJMap[*PredictionContext, *PredictionContext](pcCmp{})}
}

func (p *PredictionContextCache) add(ctx *PredictionContext) *PredictionContext {
	if ctx == BasePredictionContextEMPTY {
		return BasePredictionContextEMPTY
	}
	if existing, ok := p.cache.Get(ctx); ok {
		return existing
	}
	p.cache.Put(ctx, ctx)
	return ctx
}

func (p *PredictionContextCache) Get(ctx *PredictionContext) (*PredictionContext, bool) {
	return p.cache.Get(ctx)
}

func (p *PredictionContextCache) GetCachedContext(ctx *PredictionContext) *PredictionContext {
	if ctx.isEmpty() {
		return ctx
	}
	visited := NewJMap[*PredictionContext, *PredictionContext](pcCmp{})
	return getCachedContext(ctx, p, visited)
}
