// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

// ParserRuleContext extends RuleContext with the bookkeeping the parser
// simulator reads directly: the recognition exception recorded against this
// frame (if any) and typed access to the parent frame. Concrete parse-tree
// construction (child nodes, start/stop tokens, visitor dispatch) is a
// Non-goal of the core (spec.md §1) and lives in generated code, not here.
type ParserRuleContext struct {
	*BaseRuleContext

	exception RecognitionException
}

// NewParserRuleContext pushes a new frame invoked from invokingState in
// parent.
func NewParserRuleContext(parent *ParserRuleContext, invokingState int) *ParserRuleContext {
	var p RuleContext
	if parent != nil {
		p = parent
	}
	return &ParserRuleContext{BaseRuleContext: NewBaseRuleContext(p, invokingState)}
}

// GetParentCtx returns the parent frame typed as *ParserRuleContext, or nil at
// the outermost frame.
func (p *ParserRuleContext) GetParentCtx() *ParserRuleContext {
	parent := p.BaseRuleContext.GetParent()
	if parent == nil {
		return nil
	}
	return parent.(*ParserRuleContext)
}

func (p *ParserRuleContext) SetException(e RecognitionException) {
	p.exception = e
}

func (p *ParserRuleContext) GetException() RecognitionException {
	return p.exception
}
