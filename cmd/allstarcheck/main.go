// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

// Command allstarcheck loads a serialized ATN file and reports its shape:
// grammar type, state/rule/decision counts, and lexer action count. It
// exists to exercise the deserializer against real files without pulling in
// a generated grammar, and to give a quick sanity check that a .atn file
// produced elsewhere is loadable by this runtime.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"

	allstar "github.com/go-allstar/allstar"
)

func main() {
	atnPath := flag.String("atn", "", "path to a serialized ATN file (little-endian uint16 code units)")
	verbose := flag.Bool("v", false, "print per-decision detail")
	flag.Parse()

	if *atnPath == "" {
		fmt.Fprintln(os.Stderr, "usage: allstarcheck -atn <file> [-v]")
		os.Exit(2)
	}

	data, err := readCodeUnits(*atnPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "allstarcheck: %v\n", err)
		os.Exit(1)
	}

	atn, err := deserialize(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "allstarcheck: %v\n", err)
		os.Exit(1)
	}

	report(atn, *verbose)
}

// readCodeUnits reads a file as a sequence of little-endian uint16 values,
// the on-disk form of the code-unit stream spec.md §6 describes.
func readCodeUnits(path string) ([]uint16, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(raw)%2 != 0 {
		return nil, fmt.Errorf("%s: odd byte length %d, not a whole number of code units", path, len(raw))
	}
	units := make([]uint16, len(raw)/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(raw[i*2:])
	}
	return units, nil
}

// deserialize recovers from the deserializer's panics (it panics rather
// than returning an error on a corrupt or unsupported stream) and turns
// them into a plain error for the CLI to report.
func deserialize(data []uint16) (atn *allstar.ATN, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed ATN: %v", r)
		}
	}()
	atn = allstar.NewATNDeserializer().Deserialize(data)
	return atn, nil
}

func report(atn *allstar.ATN, verbose bool) {
	grammarType := "parser"
	if atn.GetGrammarType() == allstar.ATNTypeLexer {
		grammarType = "lexer"
	}

	fmt.Printf("grammar type:   %s\n", grammarType)
	fmt.Printf("max token type: %d\n", atn.GetMaxTokenType())
	fmt.Printf("states:         %d\n", atn.GetNumberOfStates())
	rules := 0
	for i := 0; i < atn.GetNumberOfStates(); i++ {
		if _, ok := atn.GetState(i).(*allstar.RuleStartState); ok {
			rules++
		}
	}
	fmt.Printf("rules:          %d\n", rules)
	fmt.Printf("decisions:      %d\n", len(atn.DecisionToState))
	fmt.Printf("lexer actions:  %d\n", len(atn.GetLexerActions()))

	if !verbose {
		return
	}

	for i, d := range atn.DecisionToState {
		if d == nil {
			continue
		}
		fmt.Printf("  decision %d: state %d, rule %d\n", i, d.GetStateNumber(), d.GetRuleIndex())
	}
}
