/*
Package rewrite implements an idempotent text-transformation pipeline.

	+-----------+     +-----------+     +-----------+
	|  Rule 1   | --> |  Rule 2   | --> |  Rule N   |
	| (pattern) |     | (pattern) |     | (pattern) |
	+-----+-----+     +-----+-----+     +-----+-----+
	      |                 |                 |
	      v                 v                 v
	 buffer -> buffer' -> buffer'' -> ... -> FinalText
	                                        + Applied log

🎯 Purpose:
- Applies an ordered sequence of named pattern rewrites to a text buffer
- Reports, per rule, how many matches were replaced and whether the
  buffer changed
- Surfaces configuration errors (bad pattern, duplicate name) at
  registration time, before any text is touched

🔄 Flow:
1. Rules are added in order; each pattern is compiled immediately
2. Run seeds a buffer with the input text
3. Each rule rewrites the output of the previous rule
4. The final buffer and the full per-rule log are returned together

⚡ Key Responsibilities:
- Rule registration and validation
- Ordered, deterministic application
- One-shot vs all-occurrences replacement modes
- Match accounting (a no-op is a reportable result, not an error)

📝 Design Philosophy:
The pipeline is a pure fold over the rule list: no storage, no network,
no state across runs. Persisting the result is the caller's job. Because
each rule sees the previous rule's output, rule order carries meaning —
the Applied log exists so callers can tell "already satisfied" apart
from "shadowed by an earlier rule".
*/
package rewrite
