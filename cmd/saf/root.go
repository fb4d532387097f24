package main

import (
	"github.com/spf13/cobra"

	"saf/internal/config"
)

// commandContext carries the persistent flag values and lazily loaded
// settings shared by all subcommands.
type commandContext struct {
	configFlag  *string
	verboseFlag *bool
	settings    *config.Settings
}

// configPath resolves the settings file location: the --config flag when
// given, the per-user default otherwise.
func (c *commandContext) configPath() string {
	if *c.configFlag != "" {
		return *c.configFlag
	}
	return config.DefaultPath()
}

// ensureSettings loads the settings file once and applies flag overrides.
func (c *commandContext) ensureSettings() (*config.Settings, error) {
	if c.settings != nil {
		return c.settings, nil
	}
	settings, err := config.Load(c.configPath())
	if err != nil {
		return nil, err
	}
	if *c.verboseFlag {
		settings.Verbose = true
	}
	c.settings = settings
	return settings, nil
}

func newRootCommand() *cobra.Command {
	var configFlag string
	var verboseFlag bool

	ctx := &commandContext{configFlag: &configFlag, verboseFlag: &verboseFlag}

	rootCmd := &cobra.Command{
		Use:           "saf",
		Short:         "Build Simple Archive Format packages from CSV",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Show verbose output")

	rootCmd.AddCommand(newImportCommand(ctx))
	rootCmd.AddCommand(newInspectCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
