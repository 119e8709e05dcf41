// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

import (
	"fmt"
	"sort"
)

// SemanticContext is a tree of semantic predicates gating an alternative
// (spec.md §4.E): a Predicate/PrecedencePredicate leaf, or an And/Or
// combinator over a small set of operands. The sentinel SemanticContextNONE
// means "always true" (no predicate).
type SemanticContext interface {
	evaluate(parser Recognizer, outerContext RuleContext) bool
	evalPrecedence(parser Recognizer, outerContext RuleContext) SemanticContext
	Hash() int
	Equals(interface{}) bool
	String() string
}

// Predicate is a leaf referring back to a user-written {pred}? action.
// ctxDependent predicates reference rule arguments/locals and so cannot be
// evaluated outside the context they were written in.
type Predicate struct {
	ruleIndex      int
	predIndex      int
	isCtxDependent bool
}

func NewPredicate(ruleIndex, predIndex int, isCtxDependent bool) *Predicate {
	return &Predicate{ruleIndex: ruleIndex, predIndex: predIndex, isCtxDependent: isCtxDependent}
}

// SemanticContextNONE is the always-true predicate; it dominates in Or and
// is absorbed (dropped) from And.
var SemanticContextNONE SemanticContext = NewPredicate(-1, -1, false)

func (p *Predicate) evalPrecedence(Recognizer, RuleContext) SemanticContext {
	return p
}

func (p *Predicate) evaluate(parser Recognizer, outerContext RuleContext) bool {
	var localctx RuleContext
	if p.isCtxDependent {
		localctx = outerContext
	}
	return parser.Sempred(localctx, p.ruleIndex, p.predIndex)
}

func (p *Predicate) Hash() int {
	h := murmurInit(0)
	h = murmurUpdate(h, p.ruleIndex)
	h = murmurUpdate(h, p.predIndex)
	bi := 0
	if p.isCtxDependent {
		bi = 1
	}
	h = murmurUpdate(h, bi)
	return murmurFinish(h, 3)
}

func (p *Predicate) Equals(other interface{}) bool {
	o, ok := other.(*Predicate)
	if !ok {
		return false
	}
	return p.ruleIndex == o.ruleIndex && p.predIndex == o.predIndex && p.isCtxDependent == o.isCtxDependent
}

func (p *Predicate) String() string {
	return fmt.Sprintf("{%d:%d}?", p.ruleIndex, p.predIndex)
}

// PrecedencePredicate is comparable solely by its precedence level
// (spec.md §4.E): it tests the parser's current left-recursive precedence
// against n.
type PrecedencePredicate struct {
	precedence int
}

func NewPrecedencePredicate(precedence int) *PrecedencePredicate {
	return &PrecedencePredicate{precedence: precedence}
}

func (p *PrecedencePredicate) evaluate(parser Recognizer, outerContext RuleContext) bool {
	return parser.Precpred(outerContext, p.precedence)
}

func (p *PrecedencePredicate) evalPrecedence(parser Recognizer, outerContext RuleContext) SemanticContext {
	if parser.Precpred(outerContext, p.precedence) {
		return SemanticContextNONE
	}
	return nil
}

func (p *PrecedencePredicate) compareTo(other *PrecedencePredicate) int {
	return p.precedence - other.precedence
}

func (p *PrecedencePredicate) Hash() int {
	h := murmurInit(1)
	h = murmurUpdate(h, p.precedence)
	return murmurFinish(h, 1)
}

func (p *PrecedencePredicate) Equals(other interface{}) bool {
	o, ok := other.(*PrecedencePredicate)
	if !ok {
		return false
	}
	return p.precedence == o.precedence
}

func (p *PrecedencePredicate) String() string {
	return fmt.Sprintf("{%d>=prec}?", p.precedence)
}

// AndOperands / OrOperands implement the flatten-and-normalize rules
// spec.md §4.E describes: nested same-kind operands flatten, and a
// conjunction retains only the single lowest PrecedencePredicate among its
// operands (there is at most one meaningful precedence test in an AND).

type AndOperands struct {
	opnds []SemanticContext
}

func semanticContextAnd(a, b SemanticContext) SemanticContext {
	if a == nil || a == SemanticContextNONE {
		return b
	}
	if b == nil || b == SemanticContextNONE {
		return a
	}
	result := NewAndOperands(a, b)
	if len(result.opnds) == 1 {
		return result.opnds[0]
	}
	return result
}

func NewAndOperands(a, b SemanticContext) *AndOperands {
	var operands []SemanticContext
	if andA, ok := a.(*AndOperands); ok {
		operands = append(operands, andA.opnds...)
	} else {
		operands = append(operands, a)
	}
	if andB, ok := b.(*AndOperands); ok {
		operands = append(operands, andB.opnds...)
	} else {
		operands = append(operands, b)
	}

	precedencePredicates := filterPrecedencePredicates(&operands)
	if len(precedencePredicates) > 0 {
		// keep only the one with the smallest precedence
		reduced := precedencePredicates[0]
		for _, pp := range precedencePredicates[1:] {
			if pp.precedence < reduced.precedence {
				reduced = pp
			}
		}
		operands = append(operands, reduced)
	}

	return &AndOperands{opnds: operands}
}

func (a *AndOperands) evaluate(parser Recognizer, outerContext RuleContext) bool {
	for _, o := range a.opnds {
		if !o.evaluate(parser, outerContext) {
			return false
		}
	}
	return true
}

func (a *AndOperands) evalPrecedence(parser Recognizer, outerContext RuleContext) SemanticContext {
	differs := false
	operands := make([]SemanticContext, 0, len(a.opnds))
	for _, context := range a.opnds {
		evaluated := context.evalPrecedence(parser, outerContext)
		differs = differs || evaluated != context
		if evaluated == nil {
			return nil
		}
		if evaluated != SemanticContextNONE {
			operands = append(operands, evaluated)
		}
	}
	if !differs {
		return a
	}
	if len(operands) == 0 {
		return SemanticContextNONE
	}
	result := operands[0]
	for _, o := range operands[1:] {
		result = semanticContextAnd(result, o)
	}
	return result
}

func (a *AndOperands) Hash() int {
	h := murmurInit(37)
	for _, o := range a.opnds {
		h = murmurUpdate(h, o.Hash())
	}
	return murmurFinish(h, len(a.opnds))
}

func (a *AndOperands) Equals(other interface{}) bool {
	o, ok := other.(*AndOperands)
	if !ok || len(a.opnds) != len(o.opnds) {
		return false
	}
	for i := range a.opnds {
		if !a.opnds[i].Equals(o.opnds[i]) {
			return false
		}
	}
	return true
}

func (a *AndOperands) String() string {
	return joinSemanticContexts(a.opnds, "&&")
}

type OrOperands struct {
	opnds []SemanticContext
}

func semanticContextOr(a, b SemanticContext) SemanticContext {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if a == SemanticContextNONE || b == SemanticContextNONE {
		return SemanticContextNONE
	}
	result := NewOrOperands(a, b)
	if len(result.opnds) == 1 {
		return result.opnds[0]
	}
	return result
}

func NewOrOperands(a, b SemanticContext) *OrOperands {
	var operands []SemanticContext
	if orA, ok := a.(*OrOperands); ok {
		operands = append(operands, orA.opnds...)
	} else {
		operands = append(operands, a)
	}
	if orB, ok := b.(*OrOperands); ok {
		operands = append(operands, orB.opnds...)
	} else {
		operands = append(operands, b)
	}

	precedencePredicates := filterPrecedencePredicates(&operands)
	if len(precedencePredicates) > 0 {
		sort.Slice(precedencePredicates, func(i, j int) bool {
			return precedencePredicates[i].compareTo(precedencePredicates[j]) < 0
		})
		reduced := precedencePredicates[len(precedencePredicates)-1]
		operands = append(operands, reduced)
	}

	return &OrOperands{opnds: operands}
}

func (o *OrOperands) evaluate(parser Recognizer, outerContext RuleContext) bool {
	for _, c := range o.opnds {
		if c.evaluate(parser, outerContext) {
			return true
		}
	}
	return false
}

func (o *OrOperands) evalPrecedence(parser Recognizer, outerContext RuleContext) SemanticContext {
	differs := false
	operands := make([]SemanticContext, 0, len(o.opnds))
	for _, context := range o.opnds {
		evaluated := context.evalPrecedence(parser, outerContext)
		differs = differs || evaluated != context
		if evaluated == SemanticContextNONE {
			return SemanticContextNONE
		}
		if evaluated != nil {
			operands = append(operands, evaluated)
		}
	}
	if !differs {
		return o
	}
	if len(operands) == 0 {
		return nil
	}
	result := operands[0]
	for _, c := range operands[1:] {
		result = semanticContextOr(result, c)
	}
	return result
}

func (o *OrOperands) Hash() int {
	h := murmurInit(41)
	for _, c := range o.opnds {
		h = murmurUpdate(h, c.Hash())
	}
	return murmurFinish(h, len(o.opnds))
}

func (o *OrOperands) Equals(other interface{}) bool {
	x, ok := other.(*OrOperands)
	if !ok || len(o.opnds) != len(x.opnds) {
		return false
	}
	for i := range o.opnds {
		if !o.opnds[i].Equals(x.opnds[i]) {
			return false
		}
	}
	return true
}

func (o *OrOperands) String() string {
	return joinSemanticContexts(o.opnds, "||")
}

func filterPrecedencePredicates(operands *[]SemanticContext) []*PrecedencePredicate {
	var result []*PrecedencePredicate
	kept := (*operands)[:0]
	for _, o := range *operands {
		if pp, ok := o.(*PrecedencePredicate); ok {
			result = append(result, pp)
		} else {
			kept = append(kept, o)
		}
	}
	*operands = kept
	return result
}

func joinSemanticContexts(opnds []SemanticContext, sep string) string {
	s := ""
	for i, o := range opnds {
		if i > 0 {
			s += sep
		}
		s += o.String()
	}
	return s
}
