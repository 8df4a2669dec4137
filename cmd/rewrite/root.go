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

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/rewrite/pkg/report"
	"github.com/walteh/rewrite/pkg/rules"
)

// 🎛️ rootOpts holds the root command flags
type rootOpts struct {
	output       string
	dryRun       bool
	reportFormat string
	debug        bool
}

// 🏭 newRootCmd creates the root command. The filesystem is injected so
// tests can run against an in-memory FS.
func newRootCmd(fsys afero.Fs) *cobra.Command {
	opts := &rootOpts{}

	cmd := &cobra.Command{
		Use:   "rewrite <input-path>",
		Short: "Apply an ordered set of cleanup rewrites to a source file",
		Long: `rewrite runs the built-in cleanup rule set over a single source file:
it strips debug logging, unused imports, and dead variables, then writes
the result back (in place unless --output is given).

Every rule reports whether it matched; a rule whose target is absent is a
normal no-op, not an error. Running twice is safe: the second run changes
nothing.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context(), opts.debug)
			return run(ctx, fsys, cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the result to this path instead of in place")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print the report without writing")
	cmd.Flags().StringVar(&opts.reportFormat, "report", "text", "report format (text or yaml)")
	cmd.Flags().BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")

	return cmd
}

// setupLogging configures the context logger based on flags
func setupLogging(ctx context.Context, debug bool) context.Context {
	logLevel := zerolog.InfoLevel
	if debug {
		logLevel = zerolog.DebugLevel
	}
	logger := zerolog.New(os.Stderr).Level(logLevel).With().Timestamp().Logger()
	return logger.WithContext(ctx)
}

// 🚀 run loads the input, applies the cleanup pipeline, renders the report,
// and persists the result unless --dry-run is set
func run(ctx context.Context, fsys afero.Fs, out io.Writer, input string, opts *rootOpts) error {
	if opts.reportFormat != "text" && opts.reportFormat != "yaml" {
		return errors.Errorf("unsupported report format %q", opts.reportFormat)
	}

	// A broken rule set aborts before any text is touched
	ruleSet := rules.Cleanup()
	pipeline, err := rules.NewCleanupPipeline()
	if err != nil {
		return errors.Errorf("building rule set: %w", err)
	}

	data, err := afero.ReadFile(fsys, input)
	if err != nil {
		return errors.Errorf("reading %s: %w", input, err)
	}

	result := pipeline.Run(string(data))

	renderer := report.New(out)
	switch opts.reportFormat {
	case "yaml":
		doc, err := report.MarshalYAML(result)
		if err != nil {
			return err
		}
		fmt.Fprint(out, string(doc))
	default:
		renderer.Header(input)
		renderer.RenderResult(ctx, ruleSet, result)
	}

	// Keep yaml output machine-readable, no trailing status lines
	textReport := opts.reportFormat == "text"

	if opts.dryRun {
		if textReport {
			renderer.Warning("dry run, nothing written")
		}
		return nil
	}

	outPath := opts.output
	if outPath == "" {
		outPath = input
	}

	if err := afero.WriteFile(fsys, outPath, []byte(result.FinalText), 0o644); err != nil {
		return errors.Errorf("writing %s: %w", outPath, err)
	}

	if textReport {
		renderer.Success("wrote " + outPath)
	}
	return nil
}
