package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nownext/nownext/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved notebook configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if outputFormat() == output.FormatJSON {
		specs := cfg.PageSpecs()
		pages := make([]map[string]string, 0, len(specs))
		for _, spec := range specs {
			pages = append(pages, map[string]string{
				"kind":         string(spec.Kind),
				"file":         spec.File,
				"display_name": spec.DisplayName,
			})
		}
		return output.JSON(os.Stdout, map[string]any{
			"dir":           cfg.Dir(),
			"name":          cfg.Notebook.Name,
			"description":   cfg.Notebook.Description,
			"pages_dir":     cfg.PagesPath(),
			"archive_dir":   cfg.ArchivePath(),
			"pages":         pages,
			"preview_lines": cfg.PreviewLines(),
		})
	}

	output.Messagef(os.Stdout, "Notebook: %s", cfg.Notebook.Name)
	if cfg.Notebook.Description != "" {
		output.Messagef(os.Stdout, "  %s", cfg.Notebook.Description)
	}
	output.Messagef(os.Stdout, "Dir:     %s", cfg.Dir())
	output.Messagef(os.Stdout, "Pages:   %s", cfg.PagesPath())
	output.Messagef(os.Stdout, "Archive: %s", cfg.ArchivePath())
	for _, spec := range cfg.PageSpecs() {
		output.Messagef(os.Stdout, "  %-5s %s (%s)", spec.Kind, spec.File, spec.DisplayName)
	}
	return nil
}
