// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

import "testing"

func TestIntervalSetAddOneMerges(t *testing.T) {
	s := NewIntervalSet()
	s.AddOne(1)
	s.AddOne(2)
	s.AddOne(3)
	if got, want := len(s.Intervals()), 1; got != want {
		t.Fatalf("expected adjacent singles to coalesce into 1 interval, got %d: %v", got, s.Intervals())
	}
	if !s.Contains(2) || s.Contains(4) {
		t.Fatalf("unexpected membership: %v", s.Intervals())
	}
}

func TestIntervalSetAddRangeOutOfOrder(t *testing.T) {
	s := NewIntervalSet()
	s.AddRange(10, 20)
	s.AddRange(0, 5)
	s.AddRange(21, 25)
	if got, want := len(s.Intervals()), 2; got != want {
		t.Fatalf("expected 2 intervals after merging [10,20] and [21,25], got %d: %v", got, s.Intervals())
	}
	if s.Len() != 6+16 {
		t.Fatalf("expected cardinality 22, got %d", s.Len())
	}
}

func TestIntervalSetRemoveOneSplits(t *testing.T) {
	s := NewIntervalSet()
	s.AddRange(1, 10)
	s.removeOne(5)
	if s.Contains(5) {
		t.Fatalf("expected 5 removed")
	}
	if !s.Contains(4) || !s.Contains(6) {
		t.Fatalf("expected 4 and 6 to remain, got %v", s.Intervals())
	}
	if got, want := len(s.Intervals()), 2; got != want {
		t.Fatalf("expected split into 2 intervals, got %d: %v", got, s.Intervals())
	}
}

func TestIntervalSetAndOr(t *testing.T) {
	a := NewIntervalSetFromIntStream(1, 2, 3, 4)
	b := NewIntervalSetFromIntStream(3, 4, 5, 6)

	inter := a.and(b)
	if inter.Len() != 2 || !inter.Contains(3) || !inter.Contains(4) {
		t.Fatalf("expected intersection {3,4}, got %v", inter.Intervals())
	}

	union := a.Or([]*IntervalSet{b})
	if union.Len() != 6 {
		t.Fatalf("expected union cardinality 6, got %d", union.Len())
	}
}

func TestIntervalSetSubtractAndComplement(t *testing.T) {
	a := NewIntervalSetFromIntStream(1, 2, 3, 4, 5)
	b := NewIntervalSetFromIntStream(2, 4)

	diff := a.subtract(b)
	if diff.Contains(2) || diff.Contains(4) {
		t.Fatalf("expected 2 and 4 subtracted, got %v", diff.Intervals())
	}
	if !diff.Contains(1) || !diff.Contains(3) || !diff.Contains(5) {
		t.Fatalf("expected 1,3,5 to remain, got %v", diff.Intervals())
	}

	comp := a.complement(0, 6)
	if comp.Contains(1) || comp.Contains(5) {
		t.Fatalf("complement should exclude members of a, got %v", comp.Intervals())
	}
	if !comp.Contains(0) || !comp.Contains(6) {
		t.Fatalf("complement should include out-of-range vocabulary, got %v", comp.Intervals())
	}
}

func TestIntervalSetSingleElement(t *testing.T) {
	s := NewIntervalSetFromIntStream(7)
	v, ok := s.singleElement()
	if !ok || v != 7 {
		t.Fatalf("expected singleElement (7, true), got (%d, %v)", v, ok)
	}

	s.AddOne(9)
	if _, ok := s.singleElement(); ok {
		t.Fatalf("expected singleElement to fail on a 2-valued set")
	}
}

func TestIntervalSetReadOnlyPanics(t *testing.T) {
	s := NewIntervalSet()
	s.AddOne(1)
	s.readOnly = true

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected mutating a readonly IntervalSet to panic")
		}
	}()
	s.AddOne(2)
}

func TestIntervalSetGetMinMax(t *testing.T) {
	s := NewIntervalSet()
	if got := s.GetMin(); got != TokenInvalidType {
		t.Fatalf("expected TokenInvalidType on empty set, got %d", got)
	}
	s.AddRange(5, 10)
	s.AddRange(20, 30)
	if s.GetMin() != 5 || s.GetMax() != 30 {
		t.Fatalf("expected min 5 max 30, got min %d max %d", s.GetMin(), s.GetMax())
	}
}
