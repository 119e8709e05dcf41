// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

import "testing"

// encodeCodeUnits builds the uint16 stream Deserialize expects: every
// logical value shifted by +2, mirroring the -2 shift Deserialize applies
// on the way in (spec.md §6).
func encodeCodeUnits(values ...int) []uint16 {
	out := make([]uint16, len(values))
	for i, v := range values {
		out[i] = uint16(v + 2)
	}
	return out
}

// minimalParserATNValues builds the logical value stream for a one-rule
// parser ATN: rule 0 is just RuleStart --epsilon--> RuleStop.
func minimalParserATNValues() []int {
	values := []int{serializedVersion}
	for _, u := range baseSerializedUUID {
		values = append(values, int(u))
	}
	values = append(values,
		ATNTypeParser, // grammarType
		1,             // maxTokenType

		// states
		2,                  // nstates
		ATNStateRuleStart, 0, // state 0: RuleStart, rule 0
		ATNStateRuleStop, 0, // state 1: RuleStop, rule 0
		0, // numNonGreedyStates

		// rules
		1, // nrules
		0, // rule 0 start state number

		// modes
		0, // nmodes

		// sets
		0, // nsets

		// edges
		1,                 // nedges
		0, 1, TransitionEPSILON, 0, 0, 0, // state0 -epsilon-> state1

		// decisions
		0, // ndecisions
	)
	return values
}

func TestATNDeserializerMinimalParserATN(t *testing.T) {
	data := encodeCodeUnits(minimalParserATNValues()...)

	atn := NewATNDeserializer().Deserialize(data)

	if atn.GetGrammarType() != ATNTypeParser {
		t.Fatalf("expected parser grammar type, got %d", atn.GetGrammarType())
	}
	if got := len(atn.ruleToStartState); got != 1 {
		t.Fatalf("expected 1 rule, got %d", got)
	}
	if atn.ruleToStartState[0] == nil || atn.ruleToStopState[0] == nil {
		t.Fatalf("expected rule 0's start/stop states to be wired")
	}

	// generateRuleBypassTransitions should have added a bypass
	// start/stop/match state and registered a decision for it.
	if got, want := len(atn.DecisionToState), 1; got != want {
		t.Fatalf("expected 1 decision (the synthesized bypass), got %d", got)
	}
	if got, want := len(atn.ruleToStartState[0].GetTransitions()), 1; got != want {
		t.Fatalf("expected rule start to carry a single epsilon into the bypass, got %d", got)
	}
}

func TestATNDeserializerRejectsBadVersion(t *testing.T) {
	values := minimalParserATNValues()
	values[0] = serializedVersion + 1
	data := encodeCodeUnits(values...)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a panic for an unsupported version")
		}
		if _, ok := r.(*UnsupportedAtnVersionError); !ok {
			t.Fatalf("expected *UnsupportedAtnVersionError, got %T (%v)", r, r)
		}
	}()
	NewATNDeserializer().Deserialize(data)
}

func TestATNDeserializerRejectsBadUUID(t *testing.T) {
	values := minimalParserATNValues()
	values[1] = values[1] + 1 // corrupt the first UUID word
	data := encodeCodeUnits(values...)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected a panic for an unrecognized UUID")
		}
		if _, ok := r.(*UnsupportedAtnUUIDError); !ok {
			t.Fatalf("expected *UnsupportedAtnUUIDError, got %T (%v)", r, r)
		}
	}()
	NewATNDeserializer().Deserialize(data)
}

func TestATNDeserializerLexerSynthesizesLegacyActions(t *testing.T) {
	values := []int{serializedVersion}
	for _, u := range baseSerializedUUID {
		values = append(values, int(u))
	}
	values = append(values,
		ATNTypeLexer,
		1, // maxTokenType

		2,
		ATNStateRuleStart, 0,
		ATNStateRuleStop, 0,
		0, // numNonGreedyStates

		1, // nrules
		0, // rule 0 start state
		1, // rule 0 token type
		3, // legacy per-rule action-index placeholder (consumed, unused)

		0, // nmodes
		0, // nsets

		1,
		0, 1, TransitionACTION, 0, 5, 0, // legacy ActionTransition(ruleIndex=0, actionIndex=5)

		0, // ndecisions
	)
	data := encodeCodeUnits(values...)

	atn := NewATNDeserializer().Deserialize(data)

	if atn.GetGrammarType() != ATNTypeLexer {
		t.Fatalf("expected lexer grammar type, got %d", atn.GetGrammarType())
	}
	actions := atn.GetLexerActions()
	if len(actions) != 1 {
		t.Fatalf("expected 1 synthesized lexer action, got %d", len(actions))
	}
	custom, ok := actions[0].(*LexerCustomAction)
	if !ok {
		t.Fatalf("expected a synthesized *LexerCustomAction, got %T", actions[0])
	}
	if custom.ruleIndex != 0 || custom.actionIndex != 5 {
		t.Fatalf("expected ruleIndex 0 actionIndex 5, got %d/%d", custom.ruleIndex, custom.actionIndex)
	}
}
