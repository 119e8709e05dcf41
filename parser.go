// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

// Parser is the recognizer callback interface (spec.md §6) the parser ATN
// simulator drives: it owns the token stream, the rule-context call stack,
// and the current left-recursive precedence, and exposes the predicate/
// action callbacks and error-listener notification the simulator needs.
// Tree construction, rule-method dispatch, and error-recovery strategy
// selection are generated-code / Non-goal concerns (spec.md §1) and are
// deliberately absent here.
type Parser interface {
	Recognizer

	GetInterpreter() *ParserATNSimulator

	GetTokenStream() TokenStream
	GetCurrentToken() Token

	GetParserRuleContext() *ParserRuleContext
	SetParserRuleContext(*ParserRuleContext)

	GetPrecedence() int

	NotifyErrorListeners(msg string, offendingToken Token, err RecognitionException)

	IsExpectedToken(symbol int) bool
}

// BaseParser implements the plumbing every generated parser needs around
// adaptivePredict: a token stream cursor, a rule-context stack, and the
// precedence counter left-recursive rules push/pop as they recurse.
type BaseParser struct {
	*BaseRecognizer

	Interpreter *ParserATNSimulator
	input       TokenStream
	ctx         *ParserRuleContext
	precedenceStack []int

	// Virt is the outermost (possibly generated) parser, threaded through
	// to predicate/error callbacks the same way BaseLexer.Virt is; nil
	// means the BaseParser itself is the outermost recognizer.
	Virt Parser

	BuildParseTrees bool
}

// NewBaseParser wires a BaseParser to the given token stream, starting at
// precedence -1 (no enclosing left-recursive rule).
func NewBaseParser(input TokenStream) *BaseParser {
	return &BaseParser{
		BaseRecognizer:  NewBaseRecognizer(),
		input:           input,
		precedenceStack: []int{-1},
		BuildParseTrees: true,
	}
}

func (p *BaseParser) GetATN() *ATN                       { return p.Interpreter.atn }
func (p *BaseParser) GetInterpreter() *ParserATNSimulator { return p.Interpreter }

func (p *BaseParser) GetTokenStream() TokenStream { return p.input }
func (p *BaseParser) SetTokenStream(input TokenStream) {
	p.input = input
}

func (p *BaseParser) GetCurrentToken() Token {
	return p.input.LT(1)
}

func (p *BaseParser) GetParserRuleContext() *ParserRuleContext { return p.ctx }
func (p *BaseParser) SetParserRuleContext(ctx *ParserRuleContext) { p.ctx = ctx }

func (p *BaseParser) GetPrecedence() int {
	if len(p.precedenceStack) == 0 {
		return -1
	}
	return p.precedenceStack[len(p.precedenceStack)-1]
}

func (p *BaseParser) PushPrecedence(prec int) {
	p.precedenceStack = append(p.precedenceStack, prec)
}

func (p *BaseParser) PopPrecedence() {
	p.precedenceStack = p.precedenceStack[:len(p.precedenceStack)-1]
}

// NotifyErrorListeners reports a syntax error against the current (or
// given) token through every registered ErrorListener.
func (p *BaseParser) NotifyErrorListeners(msg string, offendingToken Token, err RecognitionException) {
	if offendingToken == nil {
		offendingToken = p.GetCurrentToken()
	}
	line := offendingToken.GetLine()
	column := offendingToken.GetColumn()
	listener := p.GetErrorListenerDispatch()
	listener.SyntaxError(p.virt(), offendingToken, line, column, msg, err)
}

func (p *BaseParser) virt() Parser {
	if p.Virt != nil {
		return p.Virt
	}
	return p
}

// IsExpectedToken reports whether symbol could follow in the current
// parser state, consulting the ATN's FOLLOW computation across the whole
// rule-invocation stack.
func (p *BaseParser) IsExpectedToken(symbol int) bool {
	atn := p.Interpreter.atn
	ctx := p.ctx
	s := atn.states[p.GetState()]
	following := atn.NextTokens(s, nil)
	if following.Contains(symbol) {
		return true
	}
	if !following.Contains(TokenEpsilon) {
		return false
	}
	for ctx != nil && ctx.GetInvokingState() >= 0 && following.Contains(TokenEpsilon) {
		invokingState := atn.states[ctx.GetInvokingState()]
		rt := invokingState.GetTransitions()[0]
		following = atn.NextTokens(rt.(*RuleTransition).followState, nil)
		if following.Contains(symbol) {
			return true
		}
		ctx = ctx.GetParentCtx()
	}
	if following.Contains(TokenEpsilon) && symbol == TokenEOF {
		return true
	}
	return false
}

// Match consumes the current token if it has the expected ttype, raising an
// InputMisMatchException otherwise; recovery from the mismatch is left to
// the caller (error recovery strategies are a Non-goal).
func (p *BaseParser) Match(ttype int) (Token, error) {
	t := p.GetCurrentToken()
	if t.GetTokenType() == ttype {
		p.input.Consume()
		return t, nil
	}
	return nil, NewInputMisMatchException(p.virt())
}
