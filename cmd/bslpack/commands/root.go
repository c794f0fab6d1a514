package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"bslpack/internal/app"
)

var (
	configPath string
	verbose    bool

	modulePath     string
	exportsPath    string
	extensionsPath string
	outputPath     string

	appCtx *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "bslpack",
		Short: "Build a 1C DataProcessor export XML from BSL sources",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.DefaultConfig()
			if configPath != "" {
				loaded, err := app.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			// Flags given explicitly win over config-file values.
			if cmd.Flags().Changed("module") {
				cfg.ModulePath = modulePath
			}
			if cmd.Flags().Changed("exports") {
				cfg.ExportsPath = exportsPath
			}
			if cmd.Flags().Changed("extensions") {
				cfg.ExtensionsPath = extensionsPath
			}
			if cmd.Flags().Changed("out") {
				cfg.OutputPath = outputPath
			}

			log, err := newLogger(verbose)
			if err != nil {
				return err
			}
			appCtx = app.New(cfg, log)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "optional YAML config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(buildCmd())
	return root.Execute()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}
