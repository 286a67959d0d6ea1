package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nownext/nownext/internal/clierr"
	"github.com/nownext/nownext/internal/config"
	"github.com/nownext/nownext/internal/output"
	"github.com/nownext/nownext/internal/page"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new notebook",
	Long:  `Creates a notebook directory with config.yml, seeded Now/Next pages, and an archive folder.`,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().String("name", "", "notebook name (defaults to current directory name)")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	dir := flagDir
	if dir == "" {
		dir = config.DefaultDir
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}

	// Check if already initialized.
	if _, err := os.Stat(filepath.Join(absDir, config.ConfigFileName)); err == nil {
		return clierr.Newf(clierr.NotebookAlreadyExists, "notebook already initialized in %s", absDir).
			WithDetails(map[string]any{"dir": absDir})
	}

	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		name = filepath.Base(cwd)
	}

	cfg, err := config.Init(absDir, name)
	if err != nil {
		return err
	}
	if err := seedPages(cfg, today()); err != nil {
		return err
	}

	// Output result.
	format := outputFormat()
	if format == output.FormatJSON {
		return output.JSON(os.Stdout, map[string]string{
			"status":  "initialized",
			"dir":     absDir,
			"name":    name,
			"config":  cfg.ConfigPath(),
			"pages":   cfg.PagesPath(),
			"archive": cfg.ArchivePath(),
		})
	}

	output.Messagef(os.Stdout, "Initialized notebook %q in %s", name, absDir)
	output.Messagef(os.Stdout, "  Config:  %s", cfg.ConfigPath())
	output.Messagef(os.Stdout, "  Pages:   %s", cfg.PagesPath())
	output.Messagef(os.Stdout, "  Archive: %s", cfg.ArchivePath())
	output.Messagef(os.Stdout, "  Kinds:   %s", strings.Join(page.KindNames(), ", "))
	return nil
}
