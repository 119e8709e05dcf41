// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

import "testing"

func cfg(state ATNState, alt int, parent *PredictionContext) *ATNConfig {
	return NewBaseATNConfig6(state, alt, parent)
}

func TestGetConflictingAltSubsetsGroupsByStateAndContext(t *testing.T) {
	s0 := NewBasicState()
	s0.SetStateNumber(0)
	s1 := NewBasicState()
	s1.SetStateNumber(1)

	configs := []*ATNConfig{
		cfg(s0, 1, BasePredictionContextEMPTY),
		cfg(s0, 2, BasePredictionContextEMPTY),
		cfg(s1, 3, BasePredictionContextEMPTY),
	}

	altsets := getConflictingAltSubsets(configs)
	if len(altsets) != 2 {
		t.Fatalf("expected 2 groups (one per state), got %d", len(altsets))
	}

	var sawConflict, sawSingle bool
	for _, s := range altsets {
		switch s.length() {
		case 2:
			sawConflict = true
		case 1:
			sawSingle = true
		}
	}
	if !sawConflict || !sawSingle {
		t.Fatalf("expected one 2-alt group and one 1-alt group, got %v", altsets)
	}
}

func TestHasConflictingAltSet(t *testing.T) {
	conflicting := []*BitSet{NewBitSet(1, 2)}
	if !hasConflictingAltSet(conflicting) {
		t.Fatalf("expected a 2-alt group to be reported as conflicting")
	}

	clean := []*BitSet{NewBitSet(1), NewBitSet(2)}
	if hasConflictingAltSet(clean) {
		t.Fatalf("did not expect single-alt groups to be reported as conflicting")
	}
}

func TestHasStateAssociatedWithOneAlt(t *testing.T) {
	sets := []*BitSet{NewBitSet(1, 2), NewBitSet(3)}
	if !hasStateAssociatedWithOneAlt(sets) {
		t.Fatalf("expected a single-alt group to be found")
	}
	sets = []*BitSet{NewBitSet(1, 2), NewBitSet(3, 4)}
	if hasStateAssociatedWithOneAlt(sets) {
		t.Fatalf("did not expect a single-alt group to be found")
	}
}

func TestGetSingleViableAlt(t *testing.T) {
	sets := []*BitSet{NewBitSet(1, 2), NewBitSet(1, 3)}
	if got := getSingleViableAlt(sets); got != 1 {
		t.Fatalf("expected lowest-numbered alt 1 to be the sole viable alt, got %d", got)
	}

	sets = []*BitSet{NewBitSet(1), NewBitSet(2)}
	if got := getSingleViableAlt(sets); got != ATNInvalidAltNumber {
		t.Fatalf("expected two disjoint single-alt groups to resolve to nothing, got %d", got)
	}
}

func TestAllSubsetsConflict(t *testing.T) {
	if !allSubsetsConflict([]*BitSet{NewBitSet(1, 2), NewBitSet(3, 4)}) {
		t.Fatalf("expected every-group-conflicts to report true")
	}
	if allSubsetsConflict([]*BitSet{NewBitSet(1, 2), NewBitSet(3)}) {
		t.Fatalf("expected a single-alt group to break total conflict")
	}
}

func TestGetAltsUnionsEverySubset(t *testing.T) {
	all := getAlts([]*BitSet{NewBitSet(1, 2), NewBitSet(2, 3)})
	for _, v := range []int{1, 2, 3} {
		if !all.contains(v) {
			t.Fatalf("expected %d in union, got %v", v, all)
		}
	}
}

func TestAllConfigsInRuleStopStates(t *testing.T) {
	stop := NewRuleStopState()
	stop.SetStateNumber(0)
	basic := NewBasicState()
	basic.SetStateNumber(1)

	configs := NewATNConfigSet(false)
	configs.Add(cfg(stop, 1, BasePredictionContextEMPTY), nil)
	if !allConfigsInRuleStopStates(configs) {
		t.Fatalf("expected all-stop config set to report true")
	}

	configs.Add(cfg(basic, 2, BasePredictionContextEMPTY), nil)
	if allConfigsInRuleStopStates(configs) {
		t.Fatalf("expected a mixed config set to report false")
	}
}
