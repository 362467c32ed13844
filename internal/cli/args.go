// args.go - Unified argument parsing for all CLI commands in adam.
//
// Each command shares one parser instead of growing its own flag
// handling with inconsistent formats.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"strconv"
	"strings"
)

// =============================================================================
// ARG PARSER
// =============================================================================

// ArgParser provides unified argument parsing for CLI commands.
// It handles multiple flag formats consistently:
//   - Long flags: --flag value or --flag=value
//   - Short flags: -f value
//   - Boolean flags: --flag (no value needed)
//   - Positional arguments: arguments without flags
//   - Subcommands: first positional argument
type ArgParser struct {
	subcommand string
	flags      map[string]string
	boolFlags  map[string]bool
	positional []string
}

// NewArgParser creates a new argument parser from raw arguments.
//
// Example:
//
//	args := NewArgParser([]string{"show", "--limit", "50", "--json"})
//	args.Subcommand()     // "show"
//	args.Flag("limit")    // "50"
//	args.BoolFlag("json") // true
func NewArgParser(raw []string) *ArgParser {
	parser := &ArgParser{
		flags:      make(map[string]string),
		boolFlags:  make(map[string]bool),
		positional: make([]string, 0),
	}

	i := 0
	for i < len(raw) {
		arg := raw[i]

		if strings.HasPrefix(arg, "-") {
			// --flag=value format
			if strings.Contains(arg, "=") {
				parts := strings.SplitN(arg, "=", 2)
				name := strings.TrimLeft(parts[0], "-")
				value := parts[1]

				// Boolean flags can be explicit: --json=true
				if value == "true" || value == "false" {
					parser.boolFlags[name] = value == "true"
				} else {
					parser.flags[name] = value
				}
				i++
				continue
			}

			name := strings.TrimLeft(arg, "-")

			if i+1 < len(raw) && !strings.HasPrefix(raw[i+1], "-") {
				parser.flags[name] = raw[i+1]
				i += 2
			} else {
				parser.boolFlags[name] = true
				i++
			}
		} else {
			parser.positional = append(parser.positional, arg)
			i++
		}
	}

	if len(parser.positional) > 0 {
		parser.subcommand = parser.positional[0]
	}

	return parser
}

// Subcommand returns the first positional argument, or "" if none.
func (p *ArgParser) Subcommand() string {
	return p.subcommand
}

// Flag returns the value of a string flag, or "" if not set.
func (p *ArgParser) Flag(name string) string {
	if val, ok := p.flags[name]; ok {
		return val
	}
	name = strings.TrimLeft(name, "-")
	if val, ok := p.flags[name]; ok {
		return val
	}
	return ""
}

// FlagOrDefault returns the flag value or a default if not set.
func (p *ArgParser) FlagOrDefault(name, defaultValue string) string {
	if val := p.Flag(name); val != "" {
		return val
	}
	return defaultValue
}

// FlagIntOrDefault returns the flag value as an integer, or the default
// when the flag is missing or not a valid integer.
func (p *ArgParser) FlagIntOrDefault(name string, defaultValue int) int {
	val := p.Flag(name)
	if val == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return n
}

// BoolFlag returns the value of a boolean flag, or false if not set.
func (p *ArgParser) BoolFlag(name string) bool {
	if val, ok := p.boolFlags[name]; ok {
		return val
	}
	name = strings.TrimLeft(name, "-")
	if val, ok := p.boolFlags[name]; ok {
		return val
	}
	return false
}

// Positional returns the positional argument at index, or "" when out of
// range. Index 0 is the subcommand.
func (p *ArgParser) Positional(index int) string {
	if index < 0 || index >= len(p.positional) {
		return ""
	}
	return p.positional[index]
}

// PositionalFrom returns all positional arguments from index onward.
func (p *ArgParser) PositionalFrom(index int) []string {
	if index < 0 || index >= len(p.positional) {
		return nil
	}
	return p.positional[index:]
}

// PositionalCount returns the number of positional arguments.
func (p *ArgParser) PositionalCount() int {
	return len(p.positional)
}
