package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arabello/hub-frontend-new/internal/config"
	"github.com/arabello/hub-frontend-new/internal/export"
	"github.com/arabello/hub-frontend-new/internal/index"
	"github.com/arabello/hub-frontend-new/internal/render"
	"github.com/arabello/hub-frontend-new/internal/usecase"
)

func newExportCommand() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Build the static site from the current package index",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			initLogger(cfg)

			if outDir == "" {
				outDir = cfg.Export.Dir
			}

			source := index.NewClient(cfg.Index.URL, cfg.Index.Timeout, cfg.Index.TTL)
			catalogUC := usecase.NewCatalogUseCase(source, cfg.Site.Featured)
			searchUC := usecase.NewSearchUseCase(catalogUC)

			tpl, err := render.Templates()
			if err != nil {
				return fmt.Errorf("parse templates: %w", err)
			}

			exporter := export.New(catalogUC, searchUC, tpl, cfg.Site.Title)
			return exporter.Export(cmd.Context(), outDir)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (defaults to EXPORT_DIR)")

	return cmd
}
