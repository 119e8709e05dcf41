// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

// CharStream is the lexer's view of its input: an IntStream of Unicode code
// points plus the ability to slice out the text the lexer just matched
// (GetTextFromInterval), used by LexerActionExecutor and by token
// construction. No concrete implementation (file/string backed) lives in
// the core; that is a token-source/I-O concern.
type CharStream interface {
	IntStream
	GetText(start, stop int) string
	GetTextFromInterval(Interval) string
}

// TokenSource produces Tokens from a CharStream; generated lexers implement
// it. The core only calls back through Lexer (which embeds TokenSource),
// never constructs one.
type TokenSource interface {
	NextToken() Token
	GetLine() int
	GetCharPositionInLine() int
	GetInputStream() CharStream
	GetSourceName() string
}

// TokenStream is the parser's view of its input: an IntStream of Tokens
// with the ability to fetch an already-consumed or look-ahead token and to
// slice text across a span of them.
type TokenStream interface {
	IntStream
	LT(k int) Token
	Get(index int) Token
	GetTokenSource() TokenSource
	GetTextFromInterval(Interval) string
	GetAllText() string
}
