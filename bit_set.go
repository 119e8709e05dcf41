// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// BitSet is a sparse set of non-negative ints, used for the LL(1) analyzer's
// called-rule guard and for the alt bitsets produced by predicate
// evaluation. It is deliberately map-backed rather than a fixed-width word
// array: rule indexes and alt numbers are small and dense in practice, but
// nothing bounds them in principle.
type BitSet struct {
	data map[int]bool
}

// NewBitSet creates a new bitset with the optionally given set of bits set.
func NewBitSet(values ...int) *BitSet {
	b := &BitSet{data: make(map[int]bool)}
	for _, v := range values {
		b.data[v] = true
	}
	return b
}

func (b *BitSet) add(value int) {
	b.data[value] = true
}

func (b *BitSet) clear(index int) {
	delete(b.data, index)
}

func (b *BitSet) or(set *BitSet) {
	for k := range set.data {
		b.add(k)
	}
}

func (b *BitSet) remove(value int) {
	b.clear(value)
}

func (b *BitSet) contains(value int) bool {
	return b.data[value]
}

func (b *BitSet) values() []int {
	vs := maps.Keys(b.data)
	slices.Sort(vs)
	return vs
}

func (b *BitSet) minValue() int {
	min := int(^uint(0) >> 1)
	for k := range b.data {
		if k < min {
			min = k
		}
	}
	return min
}

func (b *BitSet) equals(other interface{}) bool {
	otherBitSet, ok := other.(*BitSet)
	if !ok {
		return false
	}
	if len(b.data) != len(otherBitSet.data) {
		return false
	}
	for k := range b.data {
		if !otherBitSet.data[k] {
			return false
		}
	}
	return true
}

func (b *BitSet) length() int {
	return len(b.data)
}

func (b *BitSet) String() string {
	vals := b.values()
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprint(v)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
