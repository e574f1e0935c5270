package cmd

import (
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/nfrund/risq/internal/config"
	"github.com/nfrund/risq/internal/export"
	"github.com/nfrund/risq/internal/logging"
	"github.com/nfrund/risq/internal/rendering"
	"github.com/nfrund/risq/internal/storage"
	"github.com/nfrund/risq/web"
	"github.com/nfrund/risq/web/src/templates/layouts"
)

var outDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the landing page and its assets into a directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		if outDir == "" {
			return fmt.Errorf("--out is required")
		}
		cfg := config.New()
		logger := logging.NewWithWriter(cmd.ErrOrStderr(), "text")

		assets, err := fs.Sub(web.FS, "static")
		if err != nil {
			return fmt.Errorf("open embedded assets: %w", err)
		}

		exp := export.New(
			rendering.NewUniversalRenderer(),
			storage.NewDirStore(outDir),
			assets,
			layouts.PageConfig{BaseURL: cfg.GetAppBaseURL()},
			logger,
		)
		res, err := exp.Export(cmd.Context())
		if err != nil {
			return err
		}

		logger.Info("Export complete", "dir", outDir, "files", len(res.Files), "bytes", res.Bytes)
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d files to %s\n", len(res.Files), outDir)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory")
	rootCmd.AddCommand(exportCmd)
}
