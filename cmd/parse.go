package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/logtt/logtt/internal/appconfig"
	"github.com/logtt/logtt/internal/clioutput"
	"github.com/logtt/logtt/internal/logconfig"
	"github.com/logtt/logtt/internal/pool"
	"github.com/logtt/logtt/internal/storage"
	"github.com/logtt/logtt/internal/storage/memory"
	"github.com/logtt/logtt/internal/storage/sqlite"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file>...",
	Short: "Mine templates from one or more log files",
	Long: `Parse reads each given log file (or glob pattern), masks and
tokenizes every accepted line, and mines parametric templates from it
using the chosen algorithm, publishing a structured relation and a
templates relation per file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("preset", "", "built-in log format preset name (see 'logtt presets')")
	parseCmd.Flags().String("log-format", "", "explicit log format string, e.g. \"<Date> <Time> <Level>: <Content>\" (overrides --preset's format)")
	parseCmd.Flags().String("algorithm", "drain", "mining algorithm: drain, jaccard_drain, spell, ael, brain")
	parseCmd.Flags().Bool("keep-params", false, "extract and include each line's parameter values")
	parseCmd.Flags().Bool("overwrite", false, "overwrite existing output tables instead of failing")
	parseCmd.Flags().String("storage", "memory", "output backend: memory or sqlite")
	parseCmd.Flags().String("db", "logtt.db", "sqlite database path, used when --storage=sqlite")
	parseCmd.Flags().String("config-override", "", "path to a YAML file overriding the resolved preset's fields")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	presetName, _ := cmd.Flags().GetString("preset")
	logFormat, _ := cmd.Flags().GetString("log-format")
	algorithm, _ := cmd.Flags().GetString("algorithm")
	keepParams, _ := cmd.Flags().GetBool("keep-params")
	overwrite, _ := cmd.Flags().GetBool("overwrite")
	storageKind, _ := cmd.Flags().GetString("storage")
	dbPath, _ := cmd.Flags().GetString("db")
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

	files, err := appconfig.ExpandGlobs(args)
	if err != nil {
		return fmt.Errorf("expanding file arguments: %w", err)
	}

	publisher, closeFn, err := openPublisher(storageKind, dbPath)
	if err != nil {
		return err
	}
	if closeFn != nil {
		defer closeFn()
	}

	p := pool.New(viper.GetInt("max_workers"), publisher)

	jobIDs := make(map[string]string, len(files))
	for _, f := range files {
		job := pool.Job{
			FilePath:        f,
			Algorithm:       algorithm,
			Config:          cfg,
			StructuredTable: f + ".structured",
			TemplatesTable:  f + ".templates",
			KeepParams:      keepParams,
			Overwrite:       overwrite,
		}
		id, err := p.Submit(job)
		if err != nil {
			return err
		}
		jobIDs[id] = f
	}

	go func() {
		p.Wait()
	}()

	format := clioutput.ParseFormat(viper.GetString("format"))
	writer := clioutput.New(cmd.OutOrStdout(), format)
	exitErr := error(nil)

	for ev := range p.Events() {
		file := jobIDs[ev.JobID]
		switch ev.Kind {
		case pool.EventFinished:
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d lines parsed\n", file, ev.LineCount)
			if mem, ok := publisher.(*memory.Store); ok {
				if templates, ok := mem.Templates(file + ".templates"); ok {
					_ = writer.WriteTemplates(templates)
				}
			}
		case pool.EventError:
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: error: %v\n", file, ev.Err)
			exitErr = ev.Err
		}
	}

	return exitErr
}

func resolveLogConfig(presetName, logFormatOverride string) (logconfig.LogParserConfig, error) {
	cfg := logconfig.LogParserConfig{UseBuiltinMasking: true}
	if presetName != "" {
		preset, ok := logconfig.Preset(presetName)
		if !ok {
			return cfg, fmt.Errorf("unknown preset %q (see 'logtt presets')", presetName)
		}
		cfg = preset
	}
	if logFormatOverride != "" {
		cfg.LogFormat = logFormatOverride
	}
	if cfg.LogFormat == "" {
		return cfg, fmt.Errorf("no log format: pass --preset or --log-format")
	}
	return cfg, nil
}

func openPublisher(kind, dbPath string) (storage.Publisher, func(), error) {
	switch kind {
	case "sqlite":
		if !filepath.IsAbs(dbPath) {
			if cfg, err := appconfig.Load(); err == nil && cfg.StorageDir != "" {
				dbPath = filepath.Join(cfg.StorageDir, dbPath)
			}
		}
		store, err := sqlite.Open(dbPath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	default:
		return memory.New(), nil, nil
	}
}
