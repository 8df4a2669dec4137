package rewrite_test

import (
	"fmt"

	"github.com/walteh/rewrite/pkg/rewrite"
)

func ExamplePipeline_Run() {
	// Build a pipeline from a fixed rule list
	p, err := rewrite.NewPipeline(
		rewrite.Rule{
			Name:    "removeImportBetCard",
			Pattern: `import \{ BetCard \} from '\./BetCard';\n`,
			Mode:    rewrite.OneShot,
		},
		rewrite.Rule{
			Name:    "removeConsoleLogs",
			Pattern: `console\.log\(.*?\);\n`,
			Mode:    rewrite.AllOccurrences,
		},
	)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// Run it over a buffer
	result := p.Run("import { BetCard } from './BetCard';\nconsole.log('x', data);\nconst a = 1;\n")

	// Print results
	fmt.Printf("Final: %q\n", result.FinalText)
	for _, a := range result.Applied {
		fmt.Printf("%s: occurrences=%d changed=%v\n", a.Name, a.Occurrences, a.Changed)
	}

	// Output:
	// Final: "const a = 1;\n"
	// removeImportBetCard: occurrences=1 changed=true
	// removeConsoleLogs: occurrences=1 changed=true
}

func ExamplePipeline_Run_noop() {
	p, err := rewrite.NewPipeline(
		rewrite.Rule{Name: "removeDebugLine", Pattern: `debugger;\n`, Mode: rewrite.OneShot},
	)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// An absent matcher is a normal outcome, not an error
	result := p.Run("const a = 1;\n")
	fmt.Printf("Changed: %v\n", result.Changed())

	// Output:
	// Changed: false
}
