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

// Package report renders a pipeline result for humans. Presentation only:
// nothing here touches the pipeline or the files it rewrites.
package report

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"

	"github.com/walteh/rewrite/pkg/rewrite"
)

// 🎨 Display configuration
const (
	ruleIndent  = 4  // spaces to indent rule entries
	nameWidth   = 32 // Base width for rule name
	modeWidth   = 17 // Width for replacement mode
	statusWidth = 12 // Width for status text
)

// 🎯 Renderer writes per-rule report lines to a console writer and mirrors
// them as structured zerolog events
type Renderer struct {
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new renderer
func New(console io.Writer) *Renderer {
	return &Renderer{console: console}
}

// 📝 formatRule formats a single applied-log entry for display
func formatRule(rule rewrite.Rule, applied rewrite.Applied) string {
	var symbol rune
	var symbolColor color.Attribute
	var status string
	switch {
	case applied.Changed:
		symbol = '✓'
		symbolColor = color.FgGreen
		status = fmt.Sprintf("rewritten x%d", applied.Occurrences)
	case applied.Occurrences > 0:
		symbol = '•'
		symbolColor = color.FgCyan
		status = "unchanged"
	default:
		symbol = '-'
		symbolColor = color.FgYellow
		status = "no match"
	}

	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", ruleIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, applied.Name),
		color.New(color.Faint).Sprint(fmt.Sprintf("%-*s", modeWidth, rule.Mode.String())),
		fmt.Sprintf("%-*s", statusWidth, status))
}

// 📝 RenderResult prints one line per rule and logs the run summary.
// Rules and the applied log line up index for index: the pipeline logs
// every rule in declaration order.
func (r *Renderer) RenderResult(ctx context.Context, rules []rewrite.Rule, result rewrite.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()

	zlog := zerolog.Ctx(ctx)
	for i, applied := range result.Applied {
		var rule rewrite.Rule
		if i < len(rules) {
			rule = rules[i]
		}
		fmt.Fprintln(r.console, formatRule(rule, applied))

		zlog.Debug().
			Str("rule", applied.Name).
			Str("mode", rule.Mode.String()).
			Int("occurrences", applied.Occurrences).
			Bool("changed", applied.Changed).
			Msg("rule applied")
	}

	zlog.Info().
		Int("rules", len(result.Applied)).
		Int("occurrences", result.Occurrences()).
		Bool("changed", result.Changed()).
		Msg("pipeline run complete")
}

// 📝 Header prints the report header
func (r *Renderer) Header(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("rewrite")
	fmt.Fprintf(r.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+path))
}

// 📝 Success prints a success message
func (r *Renderer) Success(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
}

// 📝 Warning prints a warning message
func (r *Renderer) Warning(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
}

// 📄 document is the machine-readable shape of a run report
type document struct {
	Changed     bool              `yaml:"changed"`
	Occurrences int               `yaml:"occurrences"`
	Applied     []rewrite.Applied `yaml:"applied"`
}

// 📝 MarshalYAML renders the applied log as a YAML document
func MarshalYAML(result rewrite.Result) ([]byte, error) {
	doc := document{
		Changed:     result.Changed(),
		Occurrences: result.Occurrences(),
		Applied:     result.Applied,
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, errors.Errorf("marshaling report: %w", err)
	}
	return data, nil
}
