// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

import "testing"

func TestPredictionContextEmptySentinel(t *testing.T) {
	if !BasePredictionContextEMPTY.isEmpty() {
		t.Fatalf("expected BasePredictionContextEMPTY.isEmpty()")
	}
	if BasePredictionContextEMPTY.length() != 1 {
		t.Fatalf("expected empty context to report length 1, got %d", BasePredictionContextEMPTY.length())
	}
	if got := NewSingletonPredictionContext(nil, BasePredictionContextEmptyReturnState); got != BasePredictionContextEMPTY {
		t.Fatalf("expected nil-parent+empty-return to collapse to the shared EMPTY sentinel")
	}
}

func TestPredictionContextArrayCollapsesToSingleton(t *testing.T) {
	parent := NewSingletonPredictionContext(nil, 5)
	ctx := NewArrayPredictionContext([]*PredictionContext{parent}, []int{10})
	if ctx.kind != pcKindSingleton {
		t.Fatalf("expected a length-1 array to collapse to a singleton, got kind %d", ctx.kind)
	}
	if ctx.length() != 1 || ctx.getReturnState(0) != 10 {
		t.Fatalf("expected single return state 10, got %v", ctx)
	}
}

func TestMergeSingletonsSameParentDifferentReturnState(t *testing.T) {
	parent := NewSingletonPredictionContext(nil, 1)
	a := NewSingletonPredictionContext(parent, 10)
	b := NewSingletonPredictionContext(parent, 20)

	merged := mergePredictionContexts(a, b, false, nil)
	if merged.kind != pcKindArray {
		t.Fatalf("expected merge of two distinct return states sharing a parent to produce an array context, got kind %d", merged.kind)
	}
	if merged.length() != 2 {
		t.Fatalf("expected length 2, got %d", merged.length())
	}
}

func TestMergeSingletonsIdenticalIsIdempotent(t *testing.T) {
	parent := NewSingletonPredictionContext(nil, 1)
	a := NewSingletonPredictionContext(parent, 10)
	b := NewSingletonPredictionContext(parent, 10)

	merged := mergePredictionContexts(a, b, false, nil)
	if !merged.Equals(a) {
		t.Fatalf("expected merging two equal contexts to return an equal context")
	}
}

func TestMergeRootWildcardAbsorbsOtherRoot(t *testing.T) {
	a := BasePredictionContextEMPTY
	b := NewSingletonPredictionContext(nil, 5)

	merged := mergePredictionContexts(a, b, true, nil)
	if !merged.isEmpty() {
		t.Fatalf("expected a wildcard merge against EMPTY to collapse to EMPTY, got %v", merged)
	}
}

func TestMergeArraysUnionsReturnStates(t *testing.T) {
	a := NewArrayPredictionContext(
		[]*PredictionContext{BasePredictionContextEMPTY, BasePredictionContextEMPTY},
		[]int{1, 3},
	)
	b := NewArrayPredictionContext(
		[]*PredictionContext{BasePredictionContextEMPTY, BasePredictionContextEMPTY},
		[]int{2, 4},
	)

	merged := mergePredictionContexts(a, b, false, nil)
	if merged.length() != 4 {
		t.Fatalf("expected 4 distinct return states in the union, got %d", merged.length())
	}
	seen := map[int]bool{}
	for i := 0; i < merged.length(); i++ {
		seen[merged.getReturnState(i)] = true
	}
	for _, rs := range []int{1, 2, 3, 4} {
		if !seen[rs] {
			t.Fatalf("expected return state %d in merged set %v", rs, seen)
		}
	}
}

func TestPredictionContextHashConsistentAcrossEqualGraphs(t *testing.T) {
	parent := NewSingletonPredictionContext(nil, 7)
	a := NewSingletonPredictionContext(parent, 42)
	b := NewSingletonPredictionContext(NewSingletonPredictionContext(nil, 7), 42)

	if a.Hash() != b.Hash() {
		t.Fatalf("expected structurally identical contexts to hash the same, got %d vs %d", a.Hash(), b.Hash())
	}
	if !a.Equals(b) {
		t.Fatalf("expected structurally identical contexts to compare equal")
	}
}
