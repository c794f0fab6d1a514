package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"bslpack/internal/app"
)

func buildCmd() *cobra.Command {
	defaults := app.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Assemble the module sources and write the export document",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := appCtx.Build()
			if err != nil {
				return err
			}
			fmt.Println(summary)
			return nil
		},
	}

	cmd.Flags().StringVar(&modulePath, "module", defaults.ModulePath, "primary module source")
	cmd.Flags().StringVar(&exportsPath, "exports", defaults.ExportsPath, "export-functions source (region-extracted)")
	cmd.Flags().StringVar(&extensionsPath, "extensions", defaults.ExtensionsPath, "extensions source (appended in full)")
	cmd.Flags().StringVar(&outputPath, "out", defaults.OutputPath, "output XML path")
	return cmd
}
