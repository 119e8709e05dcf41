// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

// Lexer action type tags, serialized into the ATN byte stream (spec.md §6)
// and also used as the discriminant for LexerAction.getActionType.
const (
	LexerActionTypeChannel = 0
	LexerActionTypeCustom  = 1
	LexerActionTypeMode    = 2
	LexerActionTypeMore    = 3
	LexerActionTypePopMode = 4
	LexerActionTypePushMode = 5
	LexerActionTypeSkip    = 6
	LexerActionTypeType    = 7
)

// LexerAction is one step of a lexer rule's command list (spec.md §4.H):
// a channel/type/mode switch, a skip/more/pushMode/popMode command, or a
// callback into the recognizer's user-written action code. isPositionDependent
// distinguishes actions whose effect depends on where in the input they run
// (Custom actions reference $text/$line) from ones that don't, which
// matters when an executor is cached across distinct token start offsets.
type LexerAction interface {
	getActionType() int
	getIsPositionDependent() bool
	execute(lexer Lexer)
	Hash() int
	Equals(interface{}) bool
	String() string
}

type baseLexerAction struct {
	actionType         int
	isPositionDependent bool
}

func (b *baseLexerAction) getActionType() int          { return b.actionType }
func (b *baseLexerAction) getIsPositionDependent() bool { return b.isPositionDependent }

// LexerSkipAction discards the current token; a process-wide singleton
// since it carries no parameters.
type LexerSkipAction struct{ baseLexerAction }

var LexerSkipActionINSTANCE = &LexerSkipAction{baseLexerAction{actionType: LexerActionTypeSkip}}

func NewLexerSkipAction() *LexerSkipAction { return LexerSkipActionINSTANCE }

func (a *LexerSkipAction) execute(lexer Lexer) { lexer.Skip() }
func (a *LexerSkipAction) Hash() int {
	h := murmurInit(0)
	return murmurFinish(murmurUpdate(h, a.actionType), 1)
}
func (a *LexerSkipAction) Equals(other interface{}) bool {
	_, ok := other.(*LexerSkipAction)
	return ok
}
func (a *LexerSkipAction) String() string { return "skip" }

// LexerTypeAction overrides the token type the current match is emitted as.
type LexerTypeAction struct {
	baseLexerAction
	thetype int
}

func NewLexerTypeAction(thetype int) *LexerTypeAction {
	return &LexerTypeAction{baseLexerAction{actionType: LexerActionTypeType}, thetype}
}

func (a *LexerTypeAction) execute(lexer Lexer) { lexer.SetType(a.thetype) }
func (a *LexerTypeAction) Hash() int {
	h := murmurInit(0)
	h = murmurUpdate(h, a.actionType)
	h = murmurUpdate(h, a.thetype)
	return murmurFinish(h, 2)
}
func (a *LexerTypeAction) Equals(other interface{}) bool {
	o, ok := other.(*LexerTypeAction)
	return ok && a.thetype == o.thetype
}
func (a *LexerTypeAction) String() string { return "type(" + intToString(a.thetype) + ")" }

// LexerPushModeAction enters a new lexer mode, saving the current one.
type LexerPushModeAction struct {
	baseLexerAction
	mode int
}

func NewLexerPushModeAction(mode int) *LexerPushModeAction {
	return &LexerPushModeAction{baseLexerAction{actionType: LexerActionTypePushMode}, mode}
}

func (a *LexerPushModeAction) execute(lexer Lexer) { lexer.PushMode(a.mode) }
func (a *LexerPushModeAction) Hash() int {
	h := murmurInit(0)
	h = murmurUpdate(h, a.actionType)
	h = murmurUpdate(h, a.mode)
	return murmurFinish(h, 2)
}
func (a *LexerPushModeAction) Equals(other interface{}) bool {
	o, ok := other.(*LexerPushModeAction)
	return ok && a.mode == o.mode
}
func (a *LexerPushModeAction) String() string { return "pushMode(" + intToString(a.mode) + ")" }

// LexerPopModeAction restores the mode saved by the matching PushMode; a
// singleton, since popping has no parameters.
type LexerPopModeAction struct{ baseLexerAction }

var LexerPopModeActionINSTANCE = &LexerPopModeAction{baseLexerAction{actionType: LexerActionTypePopMode}}

func NewLexerPopModeAction() *LexerPopModeAction { return LexerPopModeActionINSTANCE }

func (a *LexerPopModeAction) execute(lexer Lexer) { lexer.PopMode() }
func (a *LexerPopModeAction) Hash() int {
	return murmurFinish(murmurUpdate(murmurInit(0), a.actionType), 1)
}
func (a *LexerPopModeAction) Equals(other interface{}) bool {
	_, ok := other.(*LexerPopModeAction)
	return ok
}
func (a *LexerPopModeAction) String() string { return "popMode" }

// LexerMoreAction abandons the current token without resetting the match
// start, letting the next rule continue accumulating text; a singleton.
type LexerMoreAction struct{ baseLexerAction }

var LexerMoreActionINSTANCE = &LexerMoreAction{baseLexerAction{actionType: LexerActionTypeMore}}

func NewLexerMoreAction() *LexerMoreAction { return LexerMoreActionINSTANCE }

func (a *LexerMoreAction) execute(lexer Lexer) { lexer.More() }
func (a *LexerMoreAction) Hash() int {
	return murmurFinish(murmurUpdate(murmurInit(0), a.actionType), 1)
}
func (a *LexerMoreAction) Equals(other interface{}) bool {
	_, ok := other.(*LexerMoreAction)
	return ok
}
func (a *LexerMoreAction) String() string { return "more" }

// LexerModeAction switches to mode directly, without pushing a return mode.
type LexerModeAction struct {
	baseLexerAction
	mode int
}

func NewLexerModeAction(mode int) *LexerModeAction {
	return &LexerModeAction{baseLexerAction{actionType: LexerActionTypeMode}, mode}
}

func (a *LexerModeAction) execute(lexer Lexer) { lexer.SetMode(a.mode) }
func (a *LexerModeAction) Hash() int {
	h := murmurInit(0)
	h = murmurUpdate(h, a.actionType)
	h = murmurUpdate(h, a.mode)
	return murmurFinish(h, 2)
}
func (a *LexerModeAction) Equals(other interface{}) bool {
	o, ok := other.(*LexerModeAction)
	return ok && a.mode == o.mode
}
func (a *LexerModeAction) String() string { return "mode(" + intToString(a.mode) + ")" }

// LexerCustomAction invokes the generated recognizer's user action code for
// (ruleIndex, actionIndex). It is position-dependent: the action may
// reference $text or $line, which differ at each occurrence in the input.
type LexerCustomAction struct {
	baseLexerAction
	ruleIndex, actionIndex int
}

func NewLexerCustomAction(ruleIndex, actionIndex int) *LexerCustomAction {
	return &LexerCustomAction{
		baseLexerAction{actionType: LexerActionTypeCustom, isPositionDependent: true},
		ruleIndex, actionIndex,
	}
}

func (a *LexerCustomAction) execute(lexer Lexer) { lexer.Action(nil, a.ruleIndex, a.actionIndex) }
func (a *LexerCustomAction) Hash() int {
	h := murmurInit(0)
	h = murmurUpdate(h, a.actionType)
	h = murmurUpdate(h, a.ruleIndex)
	h = murmurUpdate(h, a.actionIndex)
	return murmurFinish(h, 3)
}
func (a *LexerCustomAction) Equals(other interface{}) bool {
	o, ok := other.(*LexerCustomAction)
	return ok && a.ruleIndex == o.ruleIndex && a.actionIndex == o.actionIndex
}
func (a *LexerCustomAction) String() string {
	return "action(" + intToString(a.ruleIndex) + "," + intToString(a.actionIndex) + ")"
}

// LexerChannelAction overrides the channel the current token is emitted on.
type LexerChannelAction struct {
	baseLexerAction
	channel int
}

func NewLexerChannelAction(channel int) *LexerChannelAction {
	return &LexerChannelAction{baseLexerAction{actionType: LexerActionTypeChannel}, channel}
}

func (a *LexerChannelAction) execute(lexer Lexer) { lexer.SetChannel(a.channel) }
func (a *LexerChannelAction) Hash() int {
	h := murmurInit(0)
	h = murmurUpdate(h, a.actionType)
	h = murmurUpdate(h, a.channel)
	return murmurFinish(h, 2)
}
func (a *LexerChannelAction) Equals(other interface{}) bool {
	o, ok := other.(*LexerChannelAction)
	return ok && a.channel == o.channel
}
func (a *LexerChannelAction) String() string { return "channel(" + intToString(a.channel) + ")" }

// LexerIndexedCustomAction wraps a position-dependent action together with
// the offset from the token start at which it was reached, so it can be
// replayed at that offset; LexerActionExecutorFixOffsetBeforeMatch creates
// these when an executor is stored for reuse at other token start offsets.
type LexerIndexedCustomAction struct {
	baseLexerAction
	offset int
	action LexerAction
}

func NewLexerIndexedCustomAction(offset int, action LexerAction) *LexerIndexedCustomAction {
	return &LexerIndexedCustomAction{
		baseLexerAction{actionType: action.getActionType(), isPositionDependent: true},
		offset, action,
	}
}

func (a *LexerIndexedCustomAction) execute(lexer Lexer) { a.action.execute(lexer) }
func (a *LexerIndexedCustomAction) Hash() int {
	h := murmurInit(0)
	h = murmurUpdate(h, a.offset)
	h = murmurUpdate(h, a.action.Hash())
	return murmurFinish(h, 2)
}
func (a *LexerIndexedCustomAction) Equals(other interface{}) bool {
	o, ok := other.(*LexerIndexedCustomAction)
	return ok && a.offset == o.offset && a.action.Equals(o.action)
}
func (a *LexerIndexedCustomAction) String() string { return a.action.String() }

// LexerActionComparator lets LexerAction be used as a JMap/JStore key.
type LexerActionComparator struct{}

func (LexerActionComparator) Hash1(a LexerAction) int { return a.Hash() }
func (LexerActionComparator) Equals2(a, b LexerAction) bool { return a.Equals(b) }
