// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"     // semantic version (e.g., "v1.2.3")
	commit  = "none"    // git commit SHA
	date    = "unknown" // build timestamp
)

// SetVersion sets the version information displayed by --version. The
// main package calls this during initialization with values injected
// via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the atlas CLI and returns an error if any command fails.
//
// The root command wires up all subcommands and configures logging from
// the --verbose flag before any command runs. The logger is attached to
// the context and accessible to all commands via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "atlas",
		Short:        "atlas generates and inspects texture atlas layouts",
		Long:         `atlas is a CLI for texture atlas layout descriptors: generate grid layouts, inspect and convert manifest or snapshot files, preview section geometry, slice sprite sheets, and validate animation clips.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			routeLibraryLogs(logger)
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("atlas %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGridCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newPreviewCmd())
	root.AddCommand(newSliceCmd())
	root.AddCommand(newClipsCmd())

	return root.ExecuteContext(ctx)
}
