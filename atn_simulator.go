// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

// ATNSimulatorError is the canonical error returned when closure or reach
// computation cannot proceed (no viable configs survive); it carries no
// payload since callers synthesize a richer RecognitionException from the
// ATNConfigSet they were working from.
type ATNSimulatorError struct {
	msg string
}

func (e *ATNSimulatorError) Error() string { return e.msg }

// BaseATNSimulator holds what the lexer and parser ATN simulators share
// (spec.md §3): the ATN itself and the shared context cache used to intern
// PredictionContext nodes on DFA publication.
type BaseATNSimulator struct {
	atn *ATN

	// sharedContextCache interns PredictionContext nodes across closures.
	// It is only consulted (via ATNConfigSet.OptimizeConfigs) when a config
	// set is about to be frozen into a DFA state, never during closure
	// itself (spec.md §3, §4.D: caching only at commit points keeps the
	// expensive structural merge off the hot path).
	sharedContextCache *PredictionContextCache
}

func NewBaseATNSimulator(atn *ATN, sharedContextCache *PredictionContextCache) *BaseATNSimulator {
	return &BaseATNSimulator{atn: atn, sharedContextCache: sharedContextCache}
}

func (b *BaseATNSimulator) GetATN() *ATN { return b.atn }

func (b *BaseATNSimulator) getCachedContext(context *PredictionContext) *PredictionContext {
	if b.sharedContextCache == nil {
		return context
	}
	return b.sharedContextCache.GetCachedContext(context)
}
