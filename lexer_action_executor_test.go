// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

import "testing"

func TestLexerActionExecutorAppendBuildsOrderedList(t *testing.T) {
	var e *LexerActionExecutor
	e = LexerActionExecutorAppend(e, LexerSkipActionINSTANCE)
	e = LexerActionExecutorAppend(e, NewLexerTypeAction(5))

	if len(e.lexerActions) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(e.lexerActions))
	}
	if e.lexerActions[0] != LexerAction(LexerSkipActionINSTANCE) {
		t.Fatalf("expected first action to be skip")
	}
}

func TestLexerActionExecutorEqualsHash(t *testing.T) {
	a := NewLexerActionExecutor([]LexerAction{LexerSkipActionINSTANCE, NewLexerTypeAction(3)})
	b := NewLexerActionExecutor([]LexerAction{LexerSkipActionINSTANCE, NewLexerTypeAction(3)})
	c := NewLexerActionExecutor([]LexerAction{LexerSkipActionINSTANCE, NewLexerTypeAction(4)})

	if !a.Equals(b) {
		t.Fatalf("expected equal action lists to be Equals")
	}
	if a.Hash() != b.Hash() {
		t.Fatalf("expected equal action lists to hash the same")
	}
	if a.Equals(c) {
		t.Fatalf("did not expect different type() argument to be Equals")
	}
}

func TestLexerActionExecutorFixOffsetOnlyRewritesPositionDependent(t *testing.T) {
	custom := NewLexerCustomAction(1, 2)
	e := NewLexerActionExecutor([]LexerAction{LexerSkipActionINSTANCE, custom})

	fixed := LexerActionExecutorFixOffsetBeforeMatch(e, 7)
	if fixed == e {
		t.Fatalf("expected a new executor when a position-dependent action is present")
	}
	if fixed.lexerActions[0] != LexerAction(LexerSkipActionINSTANCE) {
		t.Fatalf("expected the position-independent action to be left untouched")
	}
	indexed, ok := fixed.lexerActions[1].(*LexerIndexedCustomAction)
	if !ok {
		t.Fatalf("expected the custom action to be wrapped in a LexerIndexedCustomAction, got %T", fixed.lexerActions[1])
	}
	if indexed.offset != 7 {
		t.Fatalf("expected offset 7, got %d", indexed.offset)
	}
}

func TestLexerActionExecutorFixOffsetNoopWithoutPositionDependent(t *testing.T) {
	e := NewLexerActionExecutor([]LexerAction{LexerSkipActionINSTANCE, NewLexerTypeAction(1)})
	fixed := LexerActionExecutorFixOffsetBeforeMatch(e, 7)
	if fixed != e {
		t.Fatalf("expected the same executor back when nothing is position-dependent")
	}
}

func TestLexerActionExecutorFixOffsetNilIsNil(t *testing.T) {
	if got := LexerActionExecutorFixOffsetBeforeMatch(nil, 3); got != nil {
		t.Fatalf("expected nil in, nil out, got %v", got)
	}
}
