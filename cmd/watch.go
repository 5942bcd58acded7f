package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/logtt/logtt/internal/logconfig"
	"github.com/logtt/logtt/internal/pool"
	"github.com/logtt/logtt/internal/storage/memory"
	"github.com/logtt/logtt/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch --dir <directory> [flags]",
	Short: "Watch a directory and mine templates from each new file",
	Long: `Watch submits a parse job for every file that appears in a
watched directory after the command starts. It does not follow a
file's growth after it appears — only whole new files are picked up.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().String("dir", "", "directory to watch for new files (required)")
	watchCmd.Flags().String("preset", "", "built-in log format preset name")
	watchCmd.Flags().String("log-format", "", "explicit log format string")
	watchCmd.Flags().String("algorithm", "drain", "mining algorithm")
	watchCmd.Flags().Bool("keep-params", false, "extract and include each line's parameter values")
	watchCmd.Flags().String("config-override", "", "path to a YAML file overriding the resolved preset's fields")
	_ = watchCmd.MarkFlagRequired("dir")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	presetName, _ := cmd.Flags().GetString("preset")
	logFormat, _ := cmd.Flags().GetString("log-format")
	algorithm, _ := cmd.Flags().GetString("algorithm")
	keepParams, _ := cmd.Flags().GetBool("keep-params")
	configOverride, _ := cmd.Flags().GetString("config-override")

	cfg, err := resolveLogConfig(presetName, logFormat)
	if err != nil {
		return err
	}
	if configOverride != "" {
		override, err := logconfig.LoadOverride(configOverride)
		if err != nil {
			return err
		}
		cfg = logconfig.ApplyOverride(cfg, override)
	}

	publisher := memory.New()
	p := pool.New(viper.GetInt("max_workers"), publisher)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		for ev := range p.Events() {
			switch ev.Kind {
			case pool.EventFinished:
				fmt.Fprintf(cmd.ErrOrStderr(), "finished: %d lines\n", ev.LineCount)
			case pool.EventError:
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", ev.Err)
			}
		}
	}()

	w := watch.New(dir, func(path string) error {
		_, err := p.Submit(pool.Job{
			FilePath:        path,
			Algorithm:       algorithm,
			Config:          cfg,
			StructuredTable: path + ".structured",
			TemplatesTable:  path + ".templates",
			KeepParams:      keepParams,
		})
		return err
	})

	fmt.Fprintf(cmd.ErrOrStderr(), "watching %s (ctrl-c to stop)\n", dir)
	err = w.Run(ctx)
	p.Kill()
	p.Wait()
	return err
}
