package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nownext/nownext/internal/output"
	"github.com/nownext/nownext/internal/store"
)

var archivesCmd = &cobra.Command{
	Use:     "archives",
	Aliases: []string{"archive", "history"},
	Short:   "List archived pages",
	RunE:    runArchives,
}

func init() {
	rootCmd.AddCommand(archivesCmd)
}

func runArchives(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	entries, err := store.New(cfg).ListArchives()
	if err != nil {
		return err
	}

	switch outputFormat() {
	case output.FormatJSON:
		if entries == nil {
			entries = []store.ArchiveEntry{}
		}
		return output.JSON(os.Stdout, entries)
	case output.FormatCompact:
		output.ArchiveCompact(os.Stdout, entries)
		return nil
	default:
		output.ArchiveTable(os.Stdout, entries)
		return nil
	}
}
