// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

// ATNConfig is the (state, alt, stackContext, semContext,
// reachesIntoOuterContext) tuple that the closure/reach algorithm threads
// through the ATN (spec.md §3). Equality (and therefore hashing) ignores
// reachesIntoOuterContext, so two configs that differ only in how deep
// into an outer context they dipped are still the same config for set
// membership purposes.
type ATNConfig struct {
	state                   ATNState
	alt                     int
	context                 *PredictionContext
	semanticContext         SemanticContext
	reachesIntoOuterContext int

	// lexer-only extensions (spec.md §3)
	lexerActionExecutor       *LexerActionExecutor
	passedThroughNonGreedyDecision bool
}

// NewBaseATNConfig6 builds a fresh config with SemanticContextNONE and no
// reaches-into-outer-context depth, the common case during closure seeding.
func NewBaseATNConfig6(state ATNState, alt int, context *PredictionContext) *ATNConfig {
	return NewBaseATNConfig5(state, alt, context, SemanticContextNONE)
}

func NewBaseATNConfig5(state ATNState, alt int, context *PredictionContext, semanticContext SemanticContext) *ATNConfig {
	if semanticContext == nil {
		semanticContext = SemanticContextNONE
	}
	return &ATNConfig{state: state, alt: alt, context: context, semanticContext: semanticContext}
}

// NewBaseATNConfigDup copies c, optionally overriding state/context/
// semanticContext — the shape every closure step uses to advance a config
// without mutating the original.
func NewBaseATNConfigDup(c *ATNConfig, state ATNState, context *PredictionContext, semanticContext SemanticContext) *ATNConfig {
	if state == nil {
		state = c.state
	}
	if context == nil {
		context = c.context
	}
	if semanticContext == nil {
		semanticContext = c.semanticContext
	}
	return &ATNConfig{
		state:                          state,
		alt:                            c.alt,
		context:                        context,
		semanticContext:                semanticContext,
		reachesIntoOuterContext:        c.reachesIntoOuterContext,
		lexerActionExecutor:            c.lexerActionExecutor,
		passedThroughNonGreedyDecision: c.passedThroughNonGreedyDecision,
	}
}

func (c *ATNConfig) GetState() ATNState             { return c.state }
func (c *ATNConfig) GetAlt() int                    { return c.alt }
func (c *ATNConfig) GetContext() *PredictionContext { return c.context }
func (c *ATNConfig) SetContext(ctx *PredictionContext) { c.context = ctx }
func (c *ATNConfig) GetSemanticContext() SemanticContext { return c.semanticContext }

func (c *ATNConfig) getReachesIntoOuterContext() int    { return c.reachesIntoOuterContext }
func (c *ATNConfig) setReachesIntoOuterContext(v int)   { c.reachesIntoOuterContext = v }

func (c *ATNConfig) getLexerActionExecutor() *LexerActionExecutor { return c.lexerActionExecutor }
func (c *ATNConfig) getPassedThroughNonGreedyDecision() bool      { return c.passedThroughNonGreedyDecision }

// Hash/Equals implement the (state.number, alt, stackContext, semContext)
// key (spec.md §4.F); reachesIntoOuterContext is deliberately excluded.
func (c *ATNConfig) Hash() int {
	h := murmurInit(7)
	h = murmurUpdate(h, c.state.GetStateNumber())
	h = murmurUpdate(h, c.alt)
	h = murmurUpdate(h, hashPC(c.context))
	h = murmurUpdate(h, c.semanticContext.Hash())
	return murmurFinish(h, 4)
}

func (c *ATNConfig) Equals(other interface{}) bool {
	o, ok := other.(*ATNConfig)
	if !ok {
		return false
	}
	if c == o {
		return true
	}
	if c.alt != o.alt || c.state.GetStateNumber() != o.state.GetStateNumber() {
		return false
	}
	ctxEqual := (c.context == nil && o.context == nil) || (c.context != nil && o.context != nil && c.context.Equals(o.context))
	if !ctxEqual {
		return false
	}
	return c.semanticContext.Equals(o.semanticContext)
}

func (c *ATNConfig) String() string {
	s := "(" + intToString(c.state.GetStateNumber()) + "," + intToString(c.alt)
	if c.context != nil {
		s += ",[" + intToString(c.context.length()) + "]"
	}
	if c.semanticContext != SemanticContextNONE {
		s += "," + c.semanticContext.String()
	}
	if c.reachesIntoOuterContext > 0 {
		s += ",up=" + intToString(c.reachesIntoOuterContext)
	}
	return s + ")"
}

// ATNConfigComparator lets an *ATNConfig be used directly as a JMap/JStore
// key via its own Hash/Equals.
type ATNConfigComparator struct{}

func (ATNConfigComparator) Hash1(c *ATNConfig) int          { return c.Hash() }
func (ATNConfigComparator) Equals2(a, b *ATNConfig) bool    { return a.Equals(b) }
