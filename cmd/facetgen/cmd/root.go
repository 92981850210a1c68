// Package cmd provides the CLI commands for facetgen.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	ferrors "github.com/lodgekit/facetgen/internal/errors"
	"github.com/lodgekit/facetgen/internal/logging"
	"github.com/lodgekit/facetgen/internal/ui"
	"github.com/lodgekit/facetgen/pkg/version"
)

var (
	debugMode bool
	noColor   bool
)

// NewRootCmd creates the root command for the facetgen CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "facetgen",
		Short: "Build-time faceted navigation generator for static sites",
		Long: `Facetgen turns a directory of item records into the full set of
faceted navigation pages for a static site: every reachable filter
combination, the navigation data for each page, and redirects for
dangling URLs.

Run 'facetgen init' once, then 'facetgen generate' as part of your
site build.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.SetVersionTemplate("facetgen version {{.Version}}\n")

	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	cmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		logging.SetupDefault(debugMode)
	}

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newInspectCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command. Errors are reported here because the
// commands run with SilenceErrors; structured errors print their
// suggestion alongside the message.
func Execute() error {
	err := NewRootCmd().Execute()
	if err == nil {
		return nil
	}

	fmt.Fprintln(os.Stderr, "Error:", err)
	var ferr *ferrors.FacetError
	if errors.As(err, &ferr) && ferr.Suggestion != "" {
		fmt.Fprintln(os.Stderr, "Hint:", ferr.Suggestion)
	}
	return err
}

// styles resolves the style set for a command's stdout.
func styles() ui.Styles {
	if noColor || !ui.ColorEnabled(os.Stdout) {
		return ui.NoColorStyles()
	}
	return ui.DefaultStyles()
}
