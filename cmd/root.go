// Package cmd implements the nownext CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nownext/nownext/internal/clierr"
	"github.com/nownext/nownext/internal/config"
	"github.com/nownext/nownext/internal/date"
	"github.com/nownext/nownext/internal/output"
	"github.com/nownext/nownext/internal/page"
	"github.com/nownext/nownext/internal/store"
)

// version is set at build time via ldflags.
var version = "dev"

// Global flags.
var (
	flagJSON    bool
	flagTable   bool
	flagCompact bool
	flagDir     string
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "nownext",
	Short: "Rolling Now/Next checklist pages",
	Long: `nownext keeps a small notebook of markdown checklist pages ("Now", "Next")
and rolls unfinished tasks into a fresh page while archiving the old one.
Run nownext without arguments to open the TUI.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runTUI,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagNoColor || os.Getenv("NO_COLOR") != "" {
			output.DisableColor()
			return
		}
		output.AutoDetectColor()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagTable, "table", false, "output as table")
	rootCmd.PersistentFlags().BoolVar(&flagCompact, "compact", false, "compact one-line-per-record output")
	rootCmd.PersistentFlags().BoolVar(&flagCompact, "oneline", false, "alias for --compact")
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "", "path to notebook directory")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable color output")
}

// Execute runs the root command.
func Execute() {
	_, err := rootCmd.ExecuteC()
	if err == nil {
		return
	}

	// Handle SilentError — exit with code, no output.
	var silent *clierr.SilentError
	if errors.As(err, &silent) {
		os.Exit(silent.Code)
	}

	// Determine if JSON mode is active.
	jsonMode := flagJSON
	if !jsonMode {
		jsonMode = os.Getenv("NOWNEXT_OUTPUT") == "json"
	}

	if jsonMode {
		var cliErr *clierr.Error
		if errors.As(err, &cliErr) {
			output.JSONError(os.Stdout, cliErr.Code, cliErr.Message, cliErr.Details)
			os.Exit(cliErr.ExitCode())
		}
		// Unknown error — wrap as INTERNAL_ERROR.
		output.JSONError(os.Stdout, clierr.InternalError, err.Error(), nil)
		os.Exit(2) //nolint:mnd // exit code 2 for internal errors
	}

	// Non-JSON mode: print to stderr.
	fmt.Fprintln(os.Stderr, err)
	var cliErr *clierr.Error
	if errors.As(err, &cliErr) {
		os.Exit(cliErr.ExitCode())
	}
	os.Exit(1)
}

// defaultHomeDir returns the path to ~/.config/nownext.
func defaultHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config/nownext"), nil
}

// resolveDir returns the absolute path to the notebook directory.
// Falls back to ~/.config/nownext if no notebook is found in the current
// directory tree.
func resolveDir() (string, error) {
	if flagDir != "" {
		return flagDir, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}

	dir, err := config.FindDir(cwd)
	if err == nil {
		return dir, nil
	}

	// Fall back to ~/.config/nownext.
	return defaultHomeDir()
}

// loadConfig finds and loads the notebook config.
// If the resolved directory is ~/.config/nownext and it doesn't exist yet,
// it is auto-created with seeded pages.
func loadConfig() (*config.Config, error) {
	dir, err := resolveDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(dir)
	if err == nil {
		return cfg, nil
	}

	// Auto-create ~/.config/nownext if it's the home default and doesn't exist.
	if !errors.Is(err, config.ErrNotFound) {
		return nil, err
	}
	homeDir, homeErr := defaultHomeDir()
	if homeErr != nil || dir != homeDir {
		return nil, err
	}

	cfg, err = config.Init(homeDir, "nownext")
	if err != nil {
		return nil, err
	}
	if err := seedPages(cfg, today()); err != nil {
		return nil, err
	}
	return cfg, nil
}

// seedPages creates any missing page files with their template content.
func seedPages(cfg *config.Config, started string) error {
	st := store.New(cfg)
	for _, spec := range cfg.PageSpecs() {
		if _, err := st.SeedPage(spec, started); err != nil {
			return err
		}
	}
	return nil
}

// today returns the current date as an ISO string for page metadata.
func today() string {
	return date.Today().String()
}

// parseKind resolves a page name argument to its kind.
func parseKind(arg string) (page.Kind, error) {
	spec, ok := page.Lookup(arg)
	if !ok {
		return "", clierr.Newf(clierr.InvalidPage, "invalid page %q", arg).
			WithDetails(map[string]any{"page": arg, "allowed": page.KindNames()})
	}
	return spec.Kind, nil
}

// outputFormat returns the detected output format from flags/env.
func outputFormat() output.Format {
	return output.Detect(flagJSON, flagTable, flagCompact)
}

// printWarnings writes page read warnings to stderr.
func printWarnings(warnings []store.ReadWarning) {
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: skipping page %s: %v\n", w.Page, w.Err)
	}
}
