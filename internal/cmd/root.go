// Package cmd implements the xchip command line.
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/bjaus/sheet"
	"github.com/bjaus/sheet/internal/chip"
	"github.com/bjaus/sheet/internal/config"
	"github.com/bjaus/sheet/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries the state shared by every command of one invocation.
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	logger *zap.Logger
	chips  *chip.Registry
}

// Execute runs the xchip command line with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the xchip command tree.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	var (
		chipName string
		list     bool
	)

	root := &cobra.Command{
		Use:   "xchip",
		Short: "A quick way to see xChip stats",
		Long: `xchip prints reference data about XinaBox xChip modules as tables.

Run without arguments, or with --list, to list every registered chip.
Use --chip NAME (or "xchip show NAME") to see the details of one chip.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if chipName != "" {
				return a.runShow(cmd, chipName)
			}
			return a.runList(cmd, "")
		},
	}

	root.Flags().StringVarP(&chipName, "chip", "c", "", "lists data about the given chip")
	root.Flags().BoolVar(&list, "list", false, "lists the (currently registered) xChips")
	root.MarkFlagsMutuallyExclusive("chip", "list")

	pf := root.PersistentFlags()
	pf.String(config.KeyConfig, "", configUsage())
	pf.String(config.KeyDataset, "", "chip dataset file, JSON or YAML (default is the built-in dataset)")
	pf.StringP(config.KeyFormat, "o", sheet.Table.String(), fmt.Sprintf("output format %v or go-template=TEMPLATE", sheet.Formats()))
	pf.String(config.KeyBorder, sheet.BorderHeavy.String(), "table border: heavy, rounded, ascii, double, none")
	pf.String(config.KeyWidth, sheet.WidthDisplay.String(), "column width measure: display or bytes")
	pf.String("log-level", "warn", "log level: debug, info, warn, error")

	root.AddCommand(
		newListCommand(a),
		newShowCommand(a),
		newFormatsCommand(),
	)
	return root
}

func configUsage() string {
	if dir := config.Dir(); dir != "" {
		return "config file (default is " + filepath.Join(dir, "config.yaml") + ")"
	}
	return "config file (default is ./config.yaml)"
}

// setup loads configuration and builds the logger. Flags override the
// environment, which overrides the config file.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	pf := cmd.Root().PersistentFlags()
	for key, flag := range map[string]string{
		config.KeyDataset:  config.KeyDataset,
		config.KeyFormat:   config.KeyFormat,
		config.KeyBorder:   config.KeyBorder,
		config.KeyWidth:    config.KeyWidth,
		config.KeyLogLevel: "log-level",
	} {
		if err := a.v.BindPFlag(key, pf.Lookup(flag)); err != nil {
			return fmt.Errorf("failed to bind flag %q: %w", flag, err)
		}
	}

	path, err := pf.GetString(config.KeyConfig)
	if err != nil {
		return err
	}
	if err := config.Init(a.v, path); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.LogLevel, zapcore.AddSync(cmd.ErrOrStderr()))
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	a.logger.Debug("configuration loaded",
		zap.String("config_file", a.v.ConfigFileUsed()),
		zap.Stringer("format", cfg.Format),
		zap.Stringer("border", cfg.Border),
		zap.Stringer("width", cfg.Width),
		zap.Stringer("log_level", cfg.LogLevel),
	)
	return nil
}

// registry loads the chip dataset on first use.
func (a *app) registry() (*chip.Registry, error) {
	if a.chips != nil {
		return a.chips, nil
	}
	r, err := chip.Load(a.cfg.Dataset)
	if err != nil {
		return nil, err
	}
	source := a.cfg.Dataset
	if source == "" {
		source = "built-in"
	}
	a.logger.Debug("dataset loaded", zap.String("source", source), zap.Int("chips", r.Len()))
	a.chips = r
	return r, nil
}

// render writes s to the command's output in the configured format.
func (a *app) render(cmd *cobra.Command, s *sheet.Sheet) error {
	a.cfg.Apply(s)
	return sheet.Write(cmd.OutOrStdout(), a.cfg.Format, s)
}
