package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "logtt",
	Short: "Mine parametric templates from log files",
	Long: `logtt ingests unstructured log files and mines parametric
templates from them, using a choice of unsupervised clustering
algorithms (Drain, JaccardDrain, Spell, AEL, Brain).

Examples:
  logtt parse --preset HDFS --algorithm drain /var/log/hadoop/*.log
  logtt presets
  logtt algorithms
  logtt watch --dir /var/log/incoming --preset Linux`,
}

// Execute is called by main.main(). It runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.logtt.yaml)")
	rootCmd.PersistentFlags().StringP("format", "f", "text", "output format (text, json, table)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".logtt")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("LOGTT")
	viper.AutomaticEnv()

	viper.SetDefault("format", "text")
	viper.SetDefault("verbose", false)
	viper.SetDefault("storage_dir", ".")
	viper.SetDefault("max_workers", runtime.NumCPU())

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}
