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

// Package rules holds the built-in rule sets applied by the rewrite CLI.
package rules

import (
	"regexp"

	"github.com/walteh/rewrite/pkg/rewrite"
)

// literal builds a pattern that matches s verbatim
func literal(s string) string {
	return regexp.QuoteMeta(s)
}

// 🧹 Cleanup returns the ordered rule set that strips debug logging, unused
// imports, and dead variables from a picks page component.
//
// Ordering matters: each rule rewrites the output of the one before it.
// The block rules (removeDebugLogsEffect, removeReloadKeyEffect) swallow
// the lines inside them, so any rule targeting one of those inner lines
// must come first or it becomes a silent no-op. The set below keeps every
// block rule independent of the line rules that precede it.
func Cleanup() []rewrite.Rule {
	return []rewrite.Rule{
		// Unused import, present at most once
		{
			Name:    "removeImportBetCard",
			Pattern: literal("import { BetCard } from './BetCard';\n"),
			Mode:    rewrite.OneShot,
		},

		// Debug logs that dump entire data structures
		{
			Name:    "removeSupabaseStructureLog",
			Pattern: `console\.log\('Complete Supabase data structure:',.*?\);\n`,
			Mode:    rewrite.AllOccurrences,
		},
		{
			Name:    "removeTimeFieldCheckLog",
			Pattern: `console\.log\('Direct time field check:',.*?\);\n`,
			Mode:    rewrite.AllOccurrences,
		},
		{
			Name:    "removeValidPickLog",
			Pattern: `console\.log\('Processing valid pick from Supabase:',.*?\);\n`,
			Mode:    rewrite.AllOccurrences,
		},
		{
			Name:    "removeGameTimeLog",
			Pattern: `console\.log\('Game time from database:',.*?\);\n`,
			Mode:    rewrite.AllOccurrences,
		},
		{
			// Spans the log call plus its continuation call on the next lines
			Name:    "removeTimeVariationsLog",
			Pattern: `(?s)console\.log\('Time field variations:',.*?\);\n.*?\);\n`,
			Mode:    rewrite.AllOccurrences,
		},
		{
			Name:    "removeRenderReadyLog",
			Pattern: `console\.log\('Valid pick ready for rendering:',.*?\);\n`,
			Mode:    rewrite.AllOccurrences,
		},
		{
			Name:    "removePicksArrayLog",
			Pattern: `console\.log\('Parsed and enhanced picksArray:',.*?\);\n`,
			Mode:    rewrite.AllOccurrences,
		},
		{
			Name:    "removeTimePartsLog",
			Pattern: "console\\.log\\(`Original time parts:.*?\\);\n",
			Mode:    rewrite.AllOccurrences,
		},

		// The whole troubleshooting effect that prints picks/loading/error.
		// Lazy so it stops at its own dependency array, not a later effect's.
		{
			Name:    "removeDebugLogsEffect",
			Pattern: `(?s)// Debug logs for troubleshooting\s*\n\s*useEffect\(\(\) => \{\s*\n.*?console\.log.*?\n.*?console\.log.*?\n.*?console\.log.*?\n\s*\}, \[picks, loading, error\]\);\n`,
			Mode:    rewrite.OneShot,
		},

		// Verbose comments
		{
			Name:    "removeHardcodedPerfComment",
			Pattern: literal("\n  // Using hardcoded performance values\n"),
			Mode:    rewrite.AllOccurrences,
		},
		{
			Name:    "removeBetTrackingComment",
			Pattern: literal("// Removed unused state variables for bet tracking\n"),
			Mode:    rewrite.AllOccurrences,
		},
		{
			Name:    "removeToastComment",
			Pattern: literal("\n  // Toast notification system"),
			Mode:    rewrite.AllOccurrences,
		},

		// Unused reloadKey state and the effect block that bumps it.
		// The state line is not inside the effect block, so these two are
		// order-independent of each other.
		{
			Name:    "removeReloadKeyState",
			Pattern: literal("  const [reloadKey, setReloadKey] = useState(0);\n"),
			Mode:    rewrite.OneShot,
		},
		{
			Name:    "removeReloadKeyEffect",
			Pattern: `(?s)// Increment reloadKey to force BetCard to reload\s*\n\s*setReloadKey\(prev => \{\s*\n.*?\n.*?\n\s*\}\);\s*\n`,
			Mode:    rewrite.OneShot,
		},

		// Unused pageTitle variable, ternary spanning multiple lines
		{
			Name:    "removePageTitle",
			Pattern: `(?s)const pageTitle = visiblePicks\.length.*?"Gary's Picks";\n`,
			Mode:    rewrite.OneShot,
		},
	}
}

// 🏭 NewCleanupPipeline builds a pipeline from the cleanup rule set
func NewCleanupPipeline() (*rewrite.Pipeline, error) {
	return rewrite.NewPipeline(Cleanup()...)
}
