package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lodgekit/facetgen/configs"
	"github.com/lodgekit/facetgen/internal/config"
	"github.com/lodgekit/facetgen/internal/output"
	"github.com/lodgekit/facetgen/pkg/version"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize facetgen for a project",
		Long: `Initialize facetgen in the current directory.

This command:
1. Writes a commented ` + config.ConfigFileName + ` configuration template
2. Creates the content directory if it does not exist

Edit the catalogs section afterwards, then run 'facetgen generate'.`,
		Example: `  # Initialize in the current project
  facetgen init

  # Overwrite an existing configuration
  facetgen init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func runInit(cmd *cobra.Command, force bool) error {
	out := output.New(cmd.OutOrStdout())

	out.Statusf("🚀", "facetgen %s - Initializing...", version.Version)
	out.Newline()

	if _, err := os.Stat(config.ConfigFileName); err == nil && !force {
		out.Warning("Project already initialized (" + config.ConfigFileName + " exists)")
		out.Status("💡", "Use --force to overwrite")
		return nil
	}

	if err := os.WriteFile(config.ConfigFileName, []byte(configs.ProjectConfigTemplate), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", config.ConfigFileName, err)
	}
	out.Statusf("📝", "Created %s", config.ConfigFileName)

	cfg, err := config.Load(".")
	if err != nil {
		return err
	}
	if _, err := os.Stat(cfg.Content.Dir); os.IsNotExist(err) {
		if err := os.MkdirAll(cfg.Content.Dir, 0o755); err != nil {
			return fmt.Errorf("create content dir: %w", err)
		}
		out.Statusf("📁", "Created %s/", cfg.Content.Dir)
	}

	out.Newline()
	out.Success("Initialization complete!")
	out.Newline()
	out.Status("📋", "Next steps:")
	out.Status("", "  1. Edit the catalogs section of "+config.ConfigFileName)
	out.Status("", "  2. Add item records under "+cfg.Content.Dir+"/")
	out.Status("", "  3. Run 'facetgen generate'")

	return nil
}
