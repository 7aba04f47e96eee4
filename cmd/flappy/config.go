package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the engine configuration",
	Long: `Print the default engine configuration as YAML. Save it to
~/.flappy/configs/flappy.yaml or ./configs/flappy.yaml and edit it, or pass
a file with --config.

With --resolved, print the configuration that would actually be used,
after the search order and validation.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective configuration")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagResolved {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	params, err := loadParams()
	if err != nil {
		fail("%v", err)
	}
	data, err := config.Marshal(config.FromParams(params))
	if err != nil {
		fail("%v", err)
	}
	fmt.Print(string(data))
}
