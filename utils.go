// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

import "fmt"

// murmurInit and murmurUpdate implement the running hash used throughout
// the runtime for structural hash codes (prediction contexts, configs,
// interval sets, DFA states): the 32-bit MurmurHash3 block mixing step,
// an order-sensitive accumulator that is finished by murmurFinish (the
// MurmurHash3 finalizer).
func murmurInit(seed int) int {
	return seed
}

func murmurUpdate(h int, value int) int {
	const c1 = 0xcc9e2d51
	const c2 = 0x1b873593
	const r1 = 15
	const r2 = 13
	const m = 5
	const n = 0xe6546b64

	k := uint32(value)
	k *= c1
	k = (k << r1) | (k >> (32 - r1))
	k *= c2

	hash := uint32(h) ^ k
	hash = (hash << r2) | (hash >> (32 - r2))
	hash = hash*m + n
	return int(hash)
}

func murmurFinish(h int, numberOfWords int) int {
	hash := uint32(h)
	hash ^= uint32(numberOfWords) * 4
	hash ^= hash >> 16
	hash *= 0x85ebca6b
	hash ^= hash >> 13
	hash *= 0xc2b2ae35
	hash ^= hash >> 16
	return int(hash)
}

func intMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func intMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// goRuneToANTLRChar maps negative sentinel symbols (EOF) through unchanged
// and otherwise passes runes through directly; kept as a single crossing
// point in case future mode changes need to intercept it.
func goRuneToANTLRChar(r rune) int {
	return int(r)
}

func panicf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}
