// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

// Collection wrappers used throughout the runtime in place of bare
// map[something]something. Equality for keys here is *structural* (a
// Comparator), not Go's built-in ==, because the keys are interfaces
// (ATNConfig, PredictionContext, DFAState) whose equality is defined by
// hash + a deep Equals method, not by pointer identity.

// Comparator generalizes structural equality and hashing for a key type.
type Comparator[T any] interface {
	Equals2(T, T) bool
	Hash1(T) int
}

// ObjEqComparator uses a value's own Hash()/Equals() for Hash1/Equals2 when
// the value type satisfies collectable, which almost everything in this
// runtime that is used as a map key does (ATNConfig, PredictionContext, …).
type ObjEqComparator[T collectable] struct{}

type collectable interface {
	Hash() int
	Equals(interface{}) bool
}

func (ObjEqComparator[T]) Hash1(o T) int {
	return o.Hash()
}

func (ObjEqComparator[T]) Equals2(a, b T) bool {
	return a.Equals(b)
}

type jMapEntry[K, V any] struct {
	key K
	val V
}

// JMap is a hash map keyed by a Comparator rather than Go's built-in
// comparability, bucketed by hash code to avoid O(n) scans on collision.
type JMap[K, V any] struct {
	store map[int][]*jMapEntry[K, V]
	len   int
	cmp   Comparator[K]
}

func NewJMap[K, V any](cmp Comparator[K]) *JMap[K, V] {
	return &JMap[K, V]{
		store: make(map[int][]*jMapEntry[K, V]),
		cmp:   cmp,
	}
}

func (m *JMap[K, V]) Put(key K, val V) (V, bool) {
	h := m.cmp.Hash1(key)
	bucket := m.store[h]
	for _, e := range bucket {
		if m.cmp.Equals2(e.key, key) {
			old := e.val
			e.val = val
			return old, true
		}
	}
	m.store[h] = append(bucket, &jMapEntry[K, V]{key: key, val: val})
	m.len++
	var zero V
	return zero, false
}

func (m *JMap[K, V]) Get(key K) (V, bool) {
	h := m.cmp.Hash1(key)
	for _, e := range m.store[h] {
		if m.cmp.Equals2(e.key, key) {
			return e.val, true
		}
	}
	var zero V
	return zero, false
}

func (m *JMap[K, V]) Delete(key K) {
	h := m.cmp.Hash1(key)
	bucket := m.store[h]
	for i, e := range bucket {
		if m.cmp.Equals2(e.key, key) {
			m.store[h] = append(bucket[:i], bucket[i+1:]...)
			m.len--
			return
		}
	}
}

func (m *JMap[K, V]) Len() int {
	return m.len
}

func (m *JMap[K, V]) Values() []V {
	vs := make([]V, 0, m.len)
	for _, bucket := range m.store {
		for _, e := range bucket {
			vs = append(vs, e.val)
		}
	}
	return vs
}

// JStore is a set keyed by a Comparator, with insertion returning whether
// the value was already present; it backs visited-sets such as the LL(1)
// analyzer's lookBusy and ATNConfigSet.GetStates.
type JStore[T any, C Comparator[T]] struct {
	store map[int][]T
	len   int
	cmp   Comparator[T]
}

func NewJStore[T any, C Comparator[T]](cmp Comparator[T]) *JStore[T, C] {
	return &JStore[T, C]{
		store: make(map[int][]T),
		cmp:   cmp,
	}
}

// Put inserts v if no structurally-equal element exists yet, returning the
// canonical (possibly pre-existing) element and whether it was already
// present.
func (s *JStore[T, C]) Put(v T) (T, bool) {
	h := s.cmp.Hash1(v)
	bucket := s.store[h]
	for _, existing := range bucket {
		if s.cmp.Equals2(existing, v) {
			return existing, true
		}
	}
	s.store[h] = append(bucket, v)
	s.len++
	return v, false
}

func (s *JStore[T, C]) Get(v T) (T, bool) {
	h := s.cmp.Hash1(v)
	for _, existing := range s.store[h] {
		if s.cmp.Equals2(existing, v) {
			return existing, true
		}
	}
	var zero T
	return zero, false
}

func (s *JStore[T, C]) Len() int {
	return s.len
}

func (s *JStore[T, C]) Each(f func(T) bool) {
	for _, bucket := range s.store {
		for _, v := range bucket {
			if !f(v) {
				return
			}
		}
	}
}

func (s *JStore[T, C]) SortedSlice(less func(a, b T) bool) []T {
	out := make([]T, 0, s.len)
	for _, bucket := range s.store {
		out = append(out, bucket...)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && less(out[j], out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// JPCMap is the two-key memoization table the prediction-context merge
// algorithm uses: merge(a, b, wildcard) is commutative in a/b, so the cache
// is addressed by an unordered pair of PredictionContext operands.
type JPCMap struct {
	store *JMap[*PredictionContext, *JMap[*PredictionContext, *PredictionContext]]
}

func NewJPCMap() *JPCMap {
	return &JPCMap{
		store: NewJMap[*PredictionContext, *JMap[*PredictionContext, *PredictionContext]](pcCmp{}),
	}
}

type pcCmp struct{}

func (pcCmp) Hash1(p *PredictionContext) int      { return p.Hash() }
func (pcCmp) Equals2(a, b *PredictionContext) bool { return a.Equals(b) }

func (m *JPCMap) Get(a, b *PredictionContext) (*PredictionContext, bool) {
	if inner, ok := m.store.Get(a); ok {
		return inner.Get(b)
	}
	return nil, false
}

func (m *JPCMap) Put(a, b, merged *PredictionContext) {
	inner, ok := m.store.Get(a)
	if !ok {
		inner = NewJMap[*PredictionContext, *PredictionContext](pcCmp{})
		m.store.Put(a, inner)
	}
	inner.Put(b, merged)
}
