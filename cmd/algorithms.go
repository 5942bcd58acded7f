package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/logtt/logtt/internal/miner"

	// Blank-imported so their init() functions register with the
	// miner registry; nothing in cmd calls these packages directly.
	_ "github.com/logtt/logtt/internal/miner/ael"
	_ "github.com/logtt/logtt/internal/miner/brain"
	_ "github.com/logtt/logtt/internal/miner/drain"
	_ "github.com/logtt/logtt/internal/miner/spell"
)

var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List registered mining algorithms",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := miner.Names()
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(algorithmsCmd)
}
