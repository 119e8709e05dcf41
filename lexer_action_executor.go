// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

// LexerActionExecutor is the ordered, immutable command list attached to a
// lexer DFA accept state (spec.md §4.H): every LexerAction a matched rule's
// alternative carries, to be replayed once the longest match is known. Two
// executors are Equal/Hash-identical when their action lists are, which
// lets accept states sharing the same command sequence share one executor.
type LexerActionExecutor struct {
	lexerActions []LexerAction
	cachedHash   int
}

func NewLexerActionExecutor(lexerActions []LexerAction) *LexerActionExecutor {
	e := &LexerActionExecutor{lexerActions: lexerActions}
	h := murmurInit(0)
	for _, a := range lexerActions {
		h = murmurUpdate(h, a.Hash())
	}
	e.cachedHash = murmurFinish(h, len(lexerActions))
	return e
}

// LexerActionExecutorAppend returns a new executor with action appended to
// lexerActionExecutor's list (nil lexerActionExecutor means "start fresh");
// used while collecting the actions reachable in a single closure/reach
// step (spec.md §4.H).
func LexerActionExecutorAppend(lexerActionExecutor *LexerActionExecutor, action LexerAction) *LexerActionExecutor {
	if lexerActionExecutor == nil {
		return NewLexerActionExecutor([]LexerAction{action})
	}
	actions := make([]LexerAction, len(lexerActionExecutor.lexerActions)+1)
	copy(actions, lexerActionExecutor.lexerActions)
	actions[len(actions)-1] = action
	return NewLexerActionExecutor(actions)
}

// LexerActionExecutorFixOffsetBeforeMatch rewrites every position-dependent
// action in lexerActionExecutor into a LexerIndexedCustomAction carrying the
// offset between the rule's start and the current input position, so the
// actions can be replayed later, once the full token has been matched and
// the input cursor has moved on (spec.md §4.H, §9 "actions replayed from a
// recorded (ruleIndex, offset) pair rather than at the moment of match").
func LexerActionExecutorFixOffsetBeforeMatch(lexerActionExecutor *LexerActionExecutor, offset int) *LexerActionExecutor {
	if lexerActionExecutor == nil {
		return nil
	}
	var updated []LexerAction
	for i, action := range lexerActionExecutor.lexerActions {
		if action.getIsPositionDependent() {
			if updated == nil {
				updated = make([]LexerAction, len(lexerActionExecutor.lexerActions))
				copy(updated, lexerActionExecutor.lexerActions)
			}
			updated[i] = NewLexerIndexedCustomAction(offset, action)
		}
	}
	if updated == nil {
		return lexerActionExecutor
	}
	return NewLexerActionExecutor(updated)
}

// execute replays every action in order against lexer. An indexed action
// runs with the input at startIndex plus its offset; any other
// position-dependent action runs with the input at the index it had on
// entry, and that index is restored afterward, matching the real-match/lookahead-match boundary lexer rules
// may straddle (spec.md §4.H step: "actions execute against the input
// position recorded at match time, not the simulator's lookahead position").
func (e *LexerActionExecutor) execute(lexer Lexer, input CharStream, startIndex int) {
	requiresSeek := false
	stopIndex := input.Index()
	defer func() {
		if requiresSeek {
			input.Seek(stopIndex)
		}
	}()

	for _, action := range e.lexerActions {
		lexerAction := action
		if indexed, ok := action.(*LexerIndexedCustomAction); ok {
			offset := indexed.offset
			input.Seek(startIndex + offset)
			lexerAction = indexed.action
			requiresSeek = startIndex+offset != stopIndex
		} else if action.getIsPositionDependent() {
			input.Seek(stopIndex)
			requiresSeek = false
		}
		lexerAction.execute(lexer)
	}
}

func (e *LexerActionExecutor) Hash() int { return e.cachedHash }

func (e *LexerActionExecutor) Equals(other interface{}) bool {
	o, ok := other.(*LexerActionExecutor)
	if !ok {
		return false
	}
	if e == o {
		return true
	}
	if len(e.lexerActions) != len(o.lexerActions) {
		return false
	}
	for i, a := range e.lexerActions {
		if !a.Equals(o.lexerActions[i]) {
			return false
		}
	}
	return true
}
