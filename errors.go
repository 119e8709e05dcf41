// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

import "fmt"

// RecognitionException is the common interface for every runtime failure
// the core can raise while predicting or matching. Unlike a plain Go error,
// it carries enough recognizer state (offending token, input, context) for
// a caller's error strategy to attempt recovery; the core raises these but
// never decides how to recover from them (error recovery strategies are a
// Non-goal, spec.md §1).
type RecognitionException interface {
	error
	GetOffendingToken() Token
	GetRecognizer() Recognizer
	GetInputStream() IntStream
	GetCtx() RuleContext
}

type baseRecognitionException struct {
	message        string
	recognizer     Recognizer
	offendingToken Token
	offendingState int
	ctx            RuleContext
	input          IntStream
}

func (b *baseRecognitionException) Error() string {
	return b.message
}

func (b *baseRecognitionException) GetOffendingToken() Token {
	return b.offendingToken
}

func (b *baseRecognitionException) GetRecognizer() Recognizer {
	return b.recognizer
}

func (b *baseRecognitionException) GetInputStream() IntStream {
	return b.input
}

func (b *baseRecognitionException) GetCtx() RuleContext {
	return b.ctx
}

// NoViableAltException is raised by the parser ATN simulator when no
// alternative of a decision can match the remaining input: it carries the
// dead-end configuration set alongside the usual recognition-exception
// fields so that the caller's error strategy (or a diagnostic listener) can
// explain exactly which alternatives were ruled out and why (spec.md §7).
type NoViableAltException struct {
	*baseRecognitionException

	StartToken  Token
	DeadEndConfigs *ATNConfigSet
}

// NewNoViableAltException builds the exception raised when decision
// prediction runs out of viable alternatives between startToken and the
// offending token, carrying the dead-end config set for diagnostics.
func NewNoViableAltException(recognizer Parser, input TokenStream, startToken, offendingToken Token, deadEndConfigs *ATNConfigSet, ctx *ParserRuleContext) *NoViableAltException {
	var rc RuleContext
	if ctx != nil {
		rc = ctx
	}
	if input == nil && recognizer != nil {
		input = recognizer.GetTokenStream()
	}
	if startToken == nil && recognizer != nil {
		startToken = recognizer.GetCurrentToken()
	}
	if offendingToken == nil && recognizer != nil {
		offendingToken = recognizer.GetCurrentToken()
	}
	var ii IntStream
	if input != nil {
		ii = input
	}
	return &NoViableAltException{
		baseRecognitionException: &baseRecognitionException{
			message:        "no viable alternative",
			recognizer:     recognizer,
			offendingToken: offendingToken,
			ctx:            rc,
			input:          ii,
		},
		StartToken:     startToken,
		DeadEndConfigs: deadEndConfigs,
	}
}

// LexerNoViableAltException is raised by the lexer ATN simulator when no
// token can be matched starting at the current input position.
type LexerNoViableAltException struct {
	*baseRecognitionException

	StartIndex     int
	DeadEndConfigs *ATNConfigSet
}

func NewLexerNoViableAltException(lexer Lexer, input CharStream, startIndex int, deadEndConfigs *ATNConfigSet) *LexerNoViableAltException {
	var ii IntStream
	if input != nil {
		ii = input
	}
	var rec Recognizer
	if lexer != nil {
		rec = lexer
	}
	return &LexerNoViableAltException{
		baseRecognitionException: &baseRecognitionException{
			message:    "no viable alternative at input",
			recognizer: rec,
			input:      ii,
		},
		StartIndex:     startIndex,
		DeadEndConfigs: deadEndConfigs,
	}
}

func (l *LexerNoViableAltException) Error() string {
	return fmt.Sprintf("%s, start index %d", l.message, l.StartIndex)
}

// InputMisMatchException is raised when the current token does not satisfy
// the ATN edge the parser is trying to Match against.
type InputMisMatchException struct {
	*baseRecognitionException
}

func NewInputMisMatchException(recognizer Parser) *InputMisMatchException {
	return &InputMisMatchException{
		baseRecognitionException: &baseRecognitionException{
			message:        "input mismatch",
			recognizer:     recognizer,
			offendingToken: recognizer.GetCurrentToken(),
			offendingState: recognizer.GetState(),
			input:          recognizer.GetTokenStream(),
		},
	}
}

// FailedPredicateException is raised when a semantic predicate transition
// being matched (not merely evaluated during prediction) fails.
type FailedPredicateException struct {
	*baseRecognitionException

	RuleIndex, PredicateIndex int
	predicate                 string
}

func NewFailedPredicateException(recognizer Parser, predicate, message string) *FailedPredicateException {
	msg := message
	if msg == "" {
		msg = fmt.Sprintf("failed predicate: {%s}?", predicate)
	}
	return &FailedPredicateException{
		baseRecognitionException: &baseRecognitionException{
			message:    msg,
			recognizer: recognizer,
			input:      recognizer.GetTokenStream(),
			ctx:        recognizer.GetParserRuleContext(),
		},
		predicate: predicate,
	}
}
