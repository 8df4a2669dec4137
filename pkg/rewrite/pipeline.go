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
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ⚙️ compiledRule pairs a rule with its compiled pattern
type compiledRule struct {
	rule Rule
	re   *regexp.Regexp
}

// 🎯 Pipeline holds an ordered sequence of named text transformations.
// Rules are applied in declaration order, each operating on the output of
// the previous rule, so ordering is semantically significant: a rule that
// deletes a whole block must run before (or be independent of) a rule that
// deletes a line inside that block, otherwise the narrower rule becomes a
// silent no-op. The Applied log is the only way to tell a silent no-op from
// "rule already satisfied".
//
// A pipeline holds no state across runs; independent pipelines may run
// concurrently without coordination.
type Pipeline struct {
	rules []compiledRule
	names map[string]struct{}
}

// 🏭 New creates an empty pipeline
func New() *Pipeline {
	return &Pipeline{
		names: make(map[string]struct{}),
	}
}

// 🏭 NewPipeline builds a pipeline from a fixed rule list. If any rule is
// invalid, no pipeline is returned — all-or-nothing, so a broken rule set
// can never partially rewrite a buffer.
func NewPipeline(rules ...Rule) (*Pipeline, error) {
	p := New()
	for _, r := range rules {
		if err := p.AddRule(r); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// 📝 AddRule appends a rule, compiling its pattern immediately so that
// configuration errors surface before any text is touched
func (p *Pipeline) AddRule(r Rule) error {
	if r.Name == "" {
		return errors.Errorf("rule name is required")
	}
	if _, ok := p.names[r.Name]; ok {
		return errors.Errorf("rule %q: %w", r.Name, ErrDuplicateRuleName)
	}

	re, err := regexp.Compile(r.Pattern)
	if err != nil {
		return errors.Errorf("rule %q: %w: %v", r.Name, ErrInvalidPattern, err)
	}

	p.rules = append(p.rules, compiledRule{rule: r, re: re})
	p.names[r.Name] = struct{}{}
	return nil
}

// 🔢 Len returns the number of registered rules
func (p *Pipeline) Len() int {
	return len(p.rules)
}

// 🚀 Run applies every rule in order to a buffer seeded with input.
// It is a pure fold over the rule list: same rules + same input always
// produce byte-identical output and log. An absent matcher is recorded as
// Occurrences: 0, never an error.
func (p *Pipeline) Run(input string) Result {
	buf := input
	applied := make([]Applied, 0, len(p.rules))

	for _, cr := range p.rules {
		next, count := cr.apply(buf)
		applied = append(applied, Applied{
			Name:        cr.rule.Name,
			Occurrences: count,
			Changed:     next != buf,
		})
		buf = next
	}

	return Result{FinalText: buf, Applied: applied}
}

// 🔄 apply replaces matches of the rule in buf, honoring the rule's mode,
// and returns the new buffer plus the number of matches replaced
func (cr compiledRule) apply(buf string) (string, int) {
	limit := -1
	if cr.rule.Mode == OneShot {
		limit = 1
	}

	matches := cr.re.FindAllStringSubmatchIndex(buf, limit)
	if len(matches) == 0 {
		return buf, 0
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(buf[last:m[0]])
		if cr.rule.ReplaceFunc != nil {
			b.WriteString(cr.rule.ReplaceFunc(buf[m[0]:m[1]]))
		} else {
			b.Write(cr.re.ExpandString(nil, cr.rule.Replace, buf, m))
		}
		last = m[1]
	}
	b.WriteString(buf[last:])

	return b.String(), len(matches)
}
