// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

const (
	LexerDefaultMode  = 0
	LexerMore         = -2
	LexerSkip         = -3
	LexerDefaultTokenChannel = TokenDefaultChannel
	LexerHidden              = TokenHiddenChannel
	LexerMinCharValue = 0x0000
	LexerMaxCharValue = 0x10FFFF
)

// Lexer is the recognizer callback interface (spec.md §6) the lexer ATN
// simulator drives: it owns the input CharStream, the mode stack, and the
// pending token attributes (type/channel/text override) that lexer actions
// mutate, plus Action/Sempred for custom and predicate rule actions.
type Lexer interface {
	Recognizer
	TokenSource

	GetInterpreter() *LexerATNSimulator

	GetCharPositionInLine() int
	SetCharPositionInLine(int)
	GetLine() int
	SetLine(int)

	PushMode(mode int)
	PopMode() int
	GetMode() int
	SetMode(mode int)

	SetType(t int)
	GetType() int
	SetChannel(ch int)
	GetChannel() int

	More()
	Skip()

	Action(ctx RuleContext, ruleIndex, actionIndex int)
	NotifyListeners(e RecognitionException)
}

// BaseLexer drives NextToken by repeatedly consulting its
// LexerATNSimulator; it carries no grammar-specific rule methods (those are
// generated) but implements every piece of state the simulator and lexer
// actions touch.
type BaseLexer struct {
	*BaseRecognizer

	Interpreter *LexerATNSimulator
	Input       CharStream
	Virt        Lexer // the outermost (possibly generated) lexer, for Action/Sempred dispatch

	Factory TokenSourceFactory

	tokenStartCharIndex int
	tokenStartLine      int
	tokenStartColumn    int
	thetype             int
	channel             int
	mode                int
	modeStack           []int
	text                string
	hitEOF              bool
}

// TokenSourceFactory mints a Token once a lexer rule has matched; kept as
// an injectable seam so callers may swap in a pooling factory without the
// core depending on one concretely.
type TokenSourceFactory func(source TokenSource, input CharStream, tokenType, channel, start, stop, line, column int) Token

func defaultTokenFactory(source TokenSource, input CharStream, tokenType, channel, start, stop, line, column int) Token {
	t := NewCommonToken(source, input, tokenType, channel, start, stop)
	t.SetLine(line)
	t.SetColumn(column)
	return t
}

// NewBaseLexer wires a CharStream to a fresh lexer with TokenDefaultChannel,
// mode 0, and no pending token.
func NewBaseLexer(input CharStream) *BaseLexer {
	return &BaseLexer{
		BaseRecognizer: NewBaseRecognizer(),
		Input:          input,
		Factory:        defaultTokenFactory,
		thetype:        TokenInvalidType,
		channel:        TokenDefaultChannel,
		mode:           LexerDefaultMode,
	}
}

func (b *BaseLexer) GetInterpreter() *LexerATNSimulator { return b.Interpreter }
func (b *BaseLexer) GetATN() *ATN                       { return b.Interpreter.atn }
func (b *BaseLexer) GetInputStream() CharStream         { return b.Input }
func (b *BaseLexer) GetSourceName() string              { return b.Input.GetSourceName() }

func (b *BaseLexer) GetLine() int                { return b.tokenStartLine }
func (b *BaseLexer) SetLine(l int)               { b.tokenStartLine = l }
func (b *BaseLexer) GetCharPositionInLine() int  { return b.tokenStartColumn }
func (b *BaseLexer) SetCharPositionInLine(c int) { b.tokenStartColumn = c }

func (b *BaseLexer) GetMode() int      { return b.mode }
func (b *BaseLexer) SetMode(m int)     { b.mode = m }
func (b *BaseLexer) PushMode(m int) {
	b.modeStack = append(b.modeStack, b.mode)
	b.mode = m
}
func (b *BaseLexer) PopMode() int {
	if len(b.modeStack) == 0 {
		panic("empty mode stack")
	}
	b.mode = b.modeStack[len(b.modeStack)-1]
	b.modeStack = b.modeStack[:len(b.modeStack)-1]
	return b.mode
}

func (b *BaseLexer) SetType(t int)  { b.thetype = t }
func (b *BaseLexer) GetType() int   { return b.thetype }
func (b *BaseLexer) SetChannel(c int) { b.channel = c }
func (b *BaseLexer) GetChannel() int  { return b.channel }

func (b *BaseLexer) More() { b.thetype = LexerMore }
func (b *BaseLexer) Skip() { b.thetype = LexerSkip }

// Action and Sempred are overridden by generated lexers that carry custom
// actions or predicates; the base versions are unreachable unless a
// grammar declares none, in which case they are never called.
func (b *BaseLexer) Action(RuleContext, int, int) {}

func (b *BaseLexer) NotifyListeners(e RecognitionException) {
	text := b.Input.GetText(b.tokenStartCharIndex, b.Input.Index())
	msg := "token recognition error at: '" + text + "'"
	listener := b.GetErrorListenerDispatch()
	listener.SyntaxError(b.virt(), nil, b.tokenStartLine, b.tokenStartColumn, msg, e)
}

func (b *BaseLexer) virt() Lexer {
	if b.Virt != nil {
		return b.Virt
	}
	return b
}

// NextToken repeatedly runs the interpreter over the input starting at the
// current index: Skip/More re-enter the loop without emitting, anything
// else becomes an emitted Token.
func (b *BaseLexer) NextToken() Token {
	if b.Input == nil {
		panic("NextToken requires a non-nil input stream")
	}
	if b.hitEOF {
		return b.emitEOF()
	}

	for {
		if b.Input.LA(1) == TokenEOF {
			b.hitEOF = true
			return b.emitEOF()
		}

		b.thetype = TokenInvalidType
		b.channel = TokenDefaultChannel
		b.tokenStartCharIndex = b.Input.Index()
		b.tokenStartColumn = b.Interpreter.CharPositionInLine
		b.tokenStartLine = b.Interpreter.Line

		continueOuter := false
		for {
			b.thetype = TokenInvalidType
			ttype, err := func() (ttype int, err error) {
				defer func() {
					if r := recover(); r != nil {
						lnva, ok := r.(*LexerNoViableAltException)
						if !ok {
							panic(r)
						}
						err = lnva
					}
				}()
				return b.Interpreter.Match(b.Input, b.mode), nil
			}()
			if err != nil {
				if lnva, ok := err.(*LexerNoViableAltException); ok {
					b.NotifyListeners(lnva)
					b.Skip()
					ttype = LexerSkip
				} else {
					panic(err)
				}
			}
			if ttype != LexerMore {
				b.thetype = ttype
			}
			if b.thetype == LexerSkip {
				continueOuter = true
				break
			}
			if b.thetype != LexerMore {
				break
			}
		}
		if continueOuter {
			continue
		}
		if b.thetype == TokenInvalidType {
			b.thetype = LexerSkip
			continue
		}
		return b.Emit()
	}
}

// Emit stages the matched [tokenStartCharIndex, Input.Index()-1] span as a
// token of the currently-set type/channel.
func (b *BaseLexer) Emit() Token {
	t := b.Factory(b.virt(), b.Input, b.thetype, b.channel, b.tokenStartCharIndex, b.Input.Index()-1, b.tokenStartLine, b.tokenStartColumn)
	return t
}

func (b *BaseLexer) emitEOF() Token {
	return b.Factory(b.virt(), b.Input, TokenEOF, TokenDefaultChannel, b.Input.Index(), b.Input.Index()-1, b.GetLine(), b.GetCharPositionInLine())
}
