// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rewrite

import (
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrInvalidPattern is returned by AddRule when a rule's pattern does not compile
	ErrInvalidPattern = errors.Base("invalid pattern")

	// ErrDuplicateRuleName is returned by AddRule when a rule name is already registered
	ErrDuplicateRuleName = errors.Base("duplicate rule name")
)

// 🎛️ Mode controls how many matches a rule replaces
type Mode int

const (
	// OneShot replaces at most the first match
	OneShot Mode = iota

	// AllOccurrences replaces every non-overlapping match
	AllOccurrences
)

// 📝 String returns a string representation of the mode
func (m Mode) String() string {
	switch m {
	case AllOccurrences:
		return "all-occurrences"
	default:
		return "one-shot"
	}
}

// 🔄 Rule is a single named text transformation. Immutable once added to a
// pipeline. Pattern uses Go regexp syntax; multi-line rules should opt into
// (?s) and lazy quantifiers so a block rule stops at the nearest terminator
// instead of consuming the rest of the buffer.
type Rule struct {
	Name        string                    // Unique descriptive id
	Pattern     string                    // Regexp over the buffer
	Replace     string                    // Replacement text, expanded like regexp.Expand ($1 etc.)
	ReplaceFunc func(match string) string // Optional, takes precedence over Replace
	Mode        Mode                      // OneShot or AllOccurrences
}

// 📊 Applied records the outcome of one rule during a run. A rule whose
// pattern is absent from the buffer reports Occurrences: 0, Changed: false —
// a normal result, not an error.
type Applied struct {
	Name        string `yaml:"name"`
	Occurrences int    `yaml:"occurrences"`
	Changed     bool   `yaml:"changed"`
}

// 📦 Result is the outcome of a full pipeline run
type Result struct {
	// FinalText is the buffer after every rule has been applied in order
	FinalText string

	// Applied logs one entry per rule, in declaration order
	Applied []Applied
}

// 🔍 Changed reports whether any rule modified the buffer
func (r *Result) Changed() bool {
	for _, a := range r.Applied {
		if a.Changed {
			return true
		}
	}
	return false
}

// 🔢 Occurrences returns the total number of replacements across all rules
func (r *Result) Occurrences() int {
	total := 0
	for _, a := range r.Applied {
		total += a.Occurrences
	}
	return total
}
