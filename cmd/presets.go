package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/logtt/logtt/internal/logconfig"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List built-in log format presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := logconfig.PresetNames()
		sort.Strings(names)
		for _, name := range names {
			preset := logconfig.Builtin[name]
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", name, preset.LogFormat)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
