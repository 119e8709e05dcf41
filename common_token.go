// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

// CommonToken is the minimal concrete Token the core's BaseLexer emits.
// Richer token factories (pooling, custom text laziness) are a token-source
// concern outside the core's scope (spec.md §1); this exists only so
// BaseLexer.Emit has something to return.
type CommonToken struct {
	source       TokenSource
	input        CharStream
	tokenType    int
	channel      int
	start, stop  int
	tokenIndex   int
	line, column int
	text         string
}

func NewCommonToken(source TokenSource, input CharStream, tokenType, channel, start, stop int) *CommonToken {
	return &CommonToken{
		source:     source,
		input:      input,
		tokenType:  tokenType,
		channel:    channel,
		start:      start,
		stop:       stop,
		tokenIndex: -1,
		line:       0,
		column:     -1,
	}
}

func (c *CommonToken) GetSource() (TokenSource, CharStream) { return c.source, c.input }
func (c *CommonToken) GetTokenType() int                    { return c.tokenType }
func (c *CommonToken) GetChannel() int                      { return c.channel }
func (c *CommonToken) GetStart() int                        { return c.start }
func (c *CommonToken) GetStop() int                         { return c.stop }
func (c *CommonToken) GetLine() int                         { return c.line }
func (c *CommonToken) GetColumn() int                       { return c.column }
func (c *CommonToken) GetTokenIndex() int                   { return c.tokenIndex }
func (c *CommonToken) SetTokenIndex(i int)                  { c.tokenIndex = i }
func (c *CommonToken) GetTokenSource() TokenSource          { return c.source }
func (c *CommonToken) GetInputStream() CharStream           { return c.input }

func (c *CommonToken) SetLine(l int)   { c.line = l }
func (c *CommonToken) SetColumn(col int) { c.column = col }

func (c *CommonToken) GetText() string {
	if c.text != "" {
		return c.text
	}
	if c.input == nil {
		return ""
	}
	n := c.input.Size()
	if c.stop < n && c.start <= c.stop {
		return c.input.GetText(c.start, c.stop)
	}
	if c.start >= n {
		return "<EOF>"
	}
	return ""
}

func (c *CommonToken) SetText(t string) { c.text = t }
