// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package allstar

// ATN grammar types, as encoded in the serialized stream (spec.md §6).
const (
	ATNTypeLexer  = 0
	ATNTypeParser = 1
)

// ATNState type tags, matching the serialization type codes 1..12
// (spec.md §9 "Dynamic dispatch on states").
const (
	ATNStateInvalidType        = 0
	ATNStateBasic              = 1
	ATNStateRuleStart          = 2
	ATNStateBlockStart         = 3
	ATNStatePlusBlockStart     = 4
	ATNStateStarBlockStart     = 5
	ATNStateTokenStart         = 6
	ATNStateRuleStop           = 7
	ATNStateBlockEnd           = 8
	ATNStateStarLoopBack       = 9
	ATNStateStarLoopEntry      = 10
	ATNStatePlusLoopBack       = 11
	ATNStateLoopEnd            = 12

	ATNStateInvalidStateNumber = -1
)

// InvalidStateNumber mirrors ATNStateInvalidStateNumber under a shorter
// name: the state number of a state not yet added to an ATN.
const InvalidStateNumber = ATNStateInvalidStateNumber
