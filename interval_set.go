// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

import (
	"bytes"
	"fmt"

	"golang.org/x/exp/slices"
)

// Interval is a closed range [Start, Stop] of symbol values.
type Interval struct {
	Start, Stop int
}

// NewInterval returns the half-open-looking but actually closed [a,b]
// interval used throughout: Stop is inclusive.
func NewInterval(start, stop int) Interval {
	return Interval{Start: start, Stop: stop}
}

func (i Interval) Length() int {
	return i.Stop - i.Start + 1
}

func (i Interval) String() string {
	if i.Start == i.Stop {
		return fmt.Sprint(i.Start)
	}
	return fmt.Sprintf("%d..%d", i.Start, i.Stop)
}

// IntervalSet is a sorted list of disjoint, non-adjacent closed intervals.
// It is the label representation for Set/NotSet/Range transitions and the
// result type of FIRST/FOLLOW computation. A set may be marked readOnly,
// in which case every mutator panics instead of silently no-opping — the
// sets cached on ATN states (GetNextTokenWithinRule) and on DFA states must
// never be mutated after publication.
type IntervalSet struct {
	intervals []Interval
	readOnly  bool
}

// NewIntervalSet creates a new empty, mutable interval set.
func NewIntervalSet() *IntervalSet {
	return &IntervalSet{}
}

// NewIntervalSetFromIntStream is a thin constructor for tests and callers
// who already have a slice of individual symbols to seed the set with.
func NewIntervalSetFromIntStream(symbols ...int) *IntervalSet {
	s := NewIntervalSet()
	for _, sym := range symbols {
		s.AddOne(sym)
	}
	return s
}

func (i *IntervalSet) mustBeMutable() {
	if i.readOnly {
		panic("cannot alter readonly IntervalSet")
	}
}

// AddOne adds a single value to the set.
func (i *IntervalSet) AddOne(v int) {
	i.mustBeMutable()
	i.addInterval(NewInterval(v, v))
}

// AddRange adds an inclusive range [l,r] to the set.
func (i *IntervalSet) AddRange(l, r int) {
	i.mustBeMutable()
	i.addInterval(NewInterval(l, r))
}

func (i *IntervalSet) addInterval(v Interval) {
	if len(i.intervals) == 0 {
		i.intervals = append(i.intervals, v)
		return
	}
	// Find insertion point keeping the list sorted by Start, merging any
	// overlapping or adjacent interval as we go.
	for k, existing := range i.intervals {
		if v == existing {
			return
		}
		if v.Stop+1 < existing.Start {
			// v comes entirely before existing and is not adjacent: insert here.
			fresh := make([]Interval, 0, len(i.intervals)+1)
			fresh = append(fresh, i.intervals[:k]...)
			fresh = append(fresh, v)
			fresh = append(fresh, i.intervals[k:]...)
			i.intervals = fresh
			return
		}
		if v.Start <= existing.Stop+1 && v.Stop+1 >= existing.Start {
			merged := NewInterval(intMin(v.Start, existing.Start), intMax(v.Stop, existing.Stop))
			i.intervals[k] = merged
			i.coalesceFrom(k)
			return
		}
	}
	i.intervals = append(i.intervals, v)
}

// coalesceFrom merges i.intervals[k] forward into any later interval it now
// overlaps or touches, after a merge may have extended its Stop.
func (i *IntervalSet) coalesceFrom(k int) {
	for k+1 < len(i.intervals) {
		cur := i.intervals[k]
		next := i.intervals[k+1]
		if cur.Stop+1 < next.Start {
			break
		}
		i.intervals[k] = NewInterval(intMin(cur.Start, next.Start), intMax(cur.Stop, next.Stop))
		i.intervals = append(i.intervals[:k+1], i.intervals[k+2:]...)
	}
}

// addSet unions another set's intervals into this one.
func (i *IntervalSet) addSet(other *IntervalSet) *IntervalSet {
	i.mustBeMutable()
	if other == nil {
		return i
	}
	for _, iv := range other.intervals {
		i.addInterval(iv)
	}
	return i
}

// removeOne removes a single value, splitting an interval if necessary.
func (i *IntervalSet) removeOne(v int) {
	i.mustBeMutable()
	for k, existing := range i.intervals {
		if v < existing.Start || v > existing.Stop {
			continue
		}
		if existing.Start == existing.Stop {
			i.intervals = append(i.intervals[:k], i.intervals[k+1:]...)
			return
		}
		if v == existing.Start {
			i.intervals[k] = NewInterval(existing.Start+1, existing.Stop)
			return
		}
		if v == existing.Stop {
			i.intervals[k] = NewInterval(existing.Start, existing.Stop-1)
			return
		}
		left := NewInterval(existing.Start, v-1)
		right := NewInterval(v+1, existing.Stop)
		fresh := make([]Interval, 0, len(i.intervals)+1)
		fresh = append(fresh, i.intervals[:k]...)
		fresh = append(fresh, left, right)
		fresh = append(fresh, i.intervals[k+1:]...)
		i.intervals = fresh
		return
	}
}

// Contains reports whether v is a member of the set.
func (i *IntervalSet) Contains(v int) bool {
	for _, iv := range i.intervals {
		if v < iv.Start {
			return false
		}
		if v <= iv.Stop {
			return true
		}
	}
	return false
}

// Len returns the number of distinct values (cardinality), not the number
// of intervals.
func (i *IntervalSet) Len() int {
	n := 0
	for _, iv := range i.intervals {
		n += iv.Length()
	}
	return n
}

func (i *IntervalSet) Intervals() []Interval {
	return i.intervals
}

func (i *IntervalSet) isEmpty() bool {
	return len(i.intervals) == 0
}

// singleElement returns (value, true) iff the set contains exactly one
// value.
func (i *IntervalSet) singleElement() (int, bool) {
	if len(i.intervals) == 1 && i.intervals[0].Start == i.intervals[0].Stop {
		return i.intervals[0].Start, true
	}
	return 0, false
}

func (i *IntervalSet) GetMin() int {
	if len(i.intervals) == 0 {
		return TokenInvalidType
	}
	return i.intervals[0].Start
}

func (i *IntervalSet) GetMax() int {
	if len(i.intervals) == 0 {
		return TokenInvalidType
	}
	return i.intervals[len(i.intervals)-1].Stop
}

// Or returns the union of this set with each of the others, without
// mutating any operand.
func (i *IntervalSet) Or(sets []*IntervalSet) *IntervalSet {
	out := NewIntervalSet()
	out.addSet(i)
	for _, s := range sets {
		out.addSet(s)
	}
	return out
}

// and returns the intersection of i and other.
func (i *IntervalSet) and(other *IntervalSet) *IntervalSet {
	out := NewIntervalSet()
	if other == nil {
		return out
	}
	ai, bi := 0, 0
	for ai < len(i.intervals) && bi < len(other.intervals) {
		a := i.intervals[ai]
		b := other.intervals[bi]
		lo := intMax(a.Start, b.Start)
		hi := intMin(a.Stop, b.Stop)
		if lo <= hi {
			out.addInterval(NewInterval(lo, hi))
		}
		if a.Stop < b.Stop {
			ai++
		} else {
			bi++
		}
	}
	return out
}

// subtract returns the elements of i that are not in other.
func (i *IntervalSet) subtract(other *IntervalSet) *IntervalSet {
	if other == nil || other.isEmpty() {
		out := NewIntervalSet()
		out.addSet(i)
		return out
	}
	out := NewIntervalSet()
	for _, iv := range i.intervals {
		lo := iv.Start
		for _, ov := range other.intervals {
			if ov.Stop < lo {
				continue
			}
			if ov.Start > iv.Stop {
				break
			}
			if ov.Start > lo {
				out.addInterval(NewInterval(lo, ov.Start-1))
			}
			lo = ov.Stop + 1
			if lo > iv.Stop {
				break
			}
		}
		if lo <= iv.Stop {
			out.addInterval(NewInterval(lo, iv.Stop))
		}
	}
	return out
}

// complement returns vocabulary minus i, where vocabulary is [minElement, maxElement].
func (i *IntervalSet) complement(minElement, maxElement int) *IntervalSet {
	vocab := NewIntervalSet()
	vocab.AddRange(minElement, maxElement)
	return vocab.subtract(i)
}

func (i *IntervalSet) removeSet(other *IntervalSet) *IntervalSet {
	diff := i.subtract(other)
	i.mustBeMutable()
	i.intervals = diff.intervals
	return i
}

// Hash hashes the sorted (Start, Stop) pair stream.
func (i *IntervalSet) Hash() int {
	h := murmurInit(0)
	for _, iv := range i.intervals {
		h = murmurUpdate(h, iv.Start)
		h = murmurUpdate(h, iv.Stop)
	}
	return murmurFinish(h, len(i.intervals)*2)
}

func (i *IntervalSet) Equals(other interface{}) bool {
	o, ok := other.(*IntervalSet)
	if !ok {
		return false
	}
	return slices.Equal(i.intervals, o.intervals)
}

// String renders the set using numeric symbols, listing every value, e.g.
// "{1, 4, 5, 6}".
func (i *IntervalSet) String() string {
	return i.StringVerbose(nil, nil, false)
}

// StringVerbose renders using literalNames/symbolicNames from a Vocabulary
// when elemsAreChar is false and names are available, matching the
// teacher's error-message rendering of expected-token sets.
func (i *IntervalSet) StringVerbose(literalNames, symbolicNames []string, elemsAreChar bool) string {
	if i.intervals == nil {
		return "{}"
	}
	var buf bytes.Buffer
	if i.Len() > 1 {
		buf.WriteString("{")
	}
	first := true
	for _, iv := range i.intervals {
		for v := iv.Start; v <= iv.Stop; v++ {
			if !first {
				buf.WriteString(", ")
			}
			first = false
			buf.WriteString(i.elementName(literalNames, symbolicNames, v, elemsAreChar))
		}
	}
	if i.Len() > 1 {
		buf.WriteString("}")
	}
	return buf.String()
}

func (i *IntervalSet) elementName(literalNames, symbolicNames []string, v int, elemsAreChar bool) string {
	if v == TokenEOF {
		return "<EOF>"
	}
	if v == TokenEpsilon {
		return "<EPSILON>"
	}
	if elemsAreChar {
		return "'" + string(rune(v)) + "'"
	}
	if literalNames != nil && v < len(literalNames) && literalNames[v] != "" {
		return literalNames[v]
	}
	if symbolicNames != nil && v < len(symbolicNames) {
		return symbolicNames[v]
	}
	return fmt.Sprint(v)
}
