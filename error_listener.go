// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

import (
	"fmt"
	"os"
)

// ErrorListener is how the parser ATN simulator reports the non-fatal
// conditions spec.md §7 describes: ambiguity, context sensitivity, and
// attempting-full-context fallback are never errors that abort prediction,
// they are callbacks. Syntax errors (raised by a caller's error strategy
// recovering from a RecognitionException) are reported the same way so a
// single listener interface covers both.
type ErrorListener interface {
	SyntaxError(recognizer Recognizer, offendingSymbol interface{}, line, column int, msg string, e RecognitionException)
	ReportAmbiguity(recognizer Parser, dfa *DFA, startIndex, stopIndex int, exact bool, ambigAlts *BitSet, configs *ATNConfigSet)
	ReportAttemptingFullContext(recognizer Parser, dfa *DFA, startIndex, stopIndex int, conflictingAlts *BitSet, configs *ATNConfigSet)
	ReportContextSensitivity(recognizer Parser, dfa *DFA, startIndex, stopIndex, prediction int, configs *ATNConfigSet)
}

// DefaultErrorListener implements every callback as a no-op; embed it to
// override only the ones you care about.
type DefaultErrorListener struct{}

func NewDefaultErrorListener() *DefaultErrorListener { return &DefaultErrorListener{} }

func (d *DefaultErrorListener) SyntaxError(Recognizer, interface{}, int, int, string, RecognitionException) {
}
func (d *DefaultErrorListener) ReportAmbiguity(Parser, *DFA, int, int, bool, *BitSet, *ATNConfigSet) {
}
func (d *DefaultErrorListener) ReportAttemptingFullContext(Parser, *DFA, int, int, *BitSet, *ATNConfigSet) {
}
func (d *DefaultErrorListener) ReportContextSensitivity(Parser, *DFA, int, int, int, *ATNConfigSet) {
}

// ConsoleErrorListener writes syntax errors to stderr; it is the listener
// every BaseRecognizer starts out with, matching the teacher's default.
type ConsoleErrorListener struct {
	*DefaultErrorListener
}

func NewConsoleErrorListener() *ConsoleErrorListener {
	return &ConsoleErrorListener{DefaultErrorListener: NewDefaultErrorListener()}
}

var ConsoleErrorListenerINSTANCE = NewConsoleErrorListener()

func (c *ConsoleErrorListener) SyntaxError(_ Recognizer, _ interface{}, line, column int, msg string, _ RecognitionException) {
	fmt.Fprintf(os.Stderr, "line %d:%d %s\n", line, column, msg)
}

// ProxyErrorListener fans a single callback out to every listener
// registered on a recognizer.
type ProxyErrorListener struct {
	*DefaultErrorListener
	delegates []ErrorListener
}

func NewProxyErrorListener(delegates []ErrorListener) *ProxyErrorListener {
	return &ProxyErrorListener{DefaultErrorListener: NewDefaultErrorListener(), delegates: delegates}
}

func (p *ProxyErrorListener) SyntaxError(recognizer Recognizer, offendingSymbol interface{}, line, column int, msg string, e RecognitionException) {
	for _, d := range p.delegates {
		d.SyntaxError(recognizer, offendingSymbol, line, column, msg, e)
	}
}

func (p *ProxyErrorListener) ReportAmbiguity(recognizer Parser, dfa *DFA, startIndex, stopIndex int, exact bool, ambigAlts *BitSet, configs *ATNConfigSet) {
	for _, d := range p.delegates {
		d.ReportAmbiguity(recognizer, dfa, startIndex, stopIndex, exact, ambigAlts, configs)
	}
}

func (p *ProxyErrorListener) ReportAttemptingFullContext(recognizer Parser, dfa *DFA, startIndex, stopIndex int, conflictingAlts *BitSet, configs *ATNConfigSet) {
	for _, d := range p.delegates {
		d.ReportAttemptingFullContext(recognizer, dfa, startIndex, stopIndex, conflictingAlts, configs)
	}
}

func (p *ProxyErrorListener) ReportContextSensitivity(recognizer Parser, dfa *DFA, startIndex, stopIndex, prediction int, configs *ATNConfigSet) {
	for _, d := range p.delegates {
		d.ReportContextSensitivity(recognizer, dfa, startIndex, stopIndex, prediction, configs)
	}
}

// DiagnosticErrorListener turns ambiguity/context-sensitivity reports into
// readable syntax-error-shaped text; useful in grammar development and in
// this module's own end-to-end tests to assert S3/S6 fire as specified.
type DiagnosticErrorListener struct {
	*DefaultErrorListener
	exactOnly bool
}

func NewDiagnosticErrorListener(exactOnly bool) *DiagnosticErrorListener {
	return &DiagnosticErrorListener{DefaultErrorListener: NewDefaultErrorListener(), exactOnly: exactOnly}
}

func (d *DiagnosticErrorListener) ReportAmbiguity(recognizer Parser, dfa *DFA, startIndex, stopIndex int, exact bool, ambigAlts *BitSet, configs *ATNConfigSet) {
	if d.exactOnly && !exact {
		return
	}
	msg := fmt.Sprintf("reportAmbiguity d=%d: ambigAlts=%v, input='%s'",
		dfa.decision, ambigAlts, recognizer.GetTokenStream().GetTextFromInterval(NewInterval(startIndex, stopIndex)))
	recognizer.NotifyErrorListeners(msg, nil, nil)
}

func (d *DiagnosticErrorListener) ReportAttemptingFullContext(recognizer Parser, dfa *DFA, startIndex, stopIndex int, _ *BitSet, _ *ATNConfigSet) {
	msg := fmt.Sprintf("reportAttemptingFullContext d=%d, input='%s'",
		dfa.decision, recognizer.GetTokenStream().GetTextFromInterval(NewInterval(startIndex, stopIndex)))
	recognizer.NotifyErrorListeners(msg, nil, nil)
}

func (d *DiagnosticErrorListener) ReportContextSensitivity(recognizer Parser, dfa *DFA, startIndex, stopIndex, _ int, _ *ATNConfigSet) {
	msg := fmt.Sprintf("reportContextSensitivity d=%d, input='%s'",
		dfa.decision, recognizer.GetTokenStream().GetTextFromInterval(NewInterval(startIndex, stopIndex)))
	recognizer.NotifyErrorListeners(msg, nil, nil)
}
