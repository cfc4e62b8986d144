package main

import (
	"github.com/spf13/cobra"

	"github.com/julien-sobczak/ulysses-export/internal/core"
)

// newConfig merges the configuration file, if any, with the command-line flags.
// Flags explicitly set on the command line win.
func newConfig(cmd *cobra.Command, inputDir, outputDir string) (*core.Config, error) {
	config := core.NewConfig(inputDir, outputDir)

	if configPath != "" {
		configFile, err := core.ReadConfigFile(configPath)
		if err != nil {
			return nil, err
		}
		config.Apply(configFile)
	}

	flags := cmd.Flags()
	if flags.Changed("keep-groups") {
		config.KeepGroups = keepGroups
	}
	if flags.Changed("skip-meta") {
		config.SkipMeta = skipMeta
	}
	if flags.Changed("parallel") {
		config.SetParallel(parallel)
	}
	return config, nil
}
