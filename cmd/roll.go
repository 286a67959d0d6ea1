package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nownext/nownext/internal/checklist"
	"github.com/nownext/nownext/internal/clierr"
	"github.com/nownext/nownext/internal/date"
	"github.com/nownext/nownext/internal/output"
	"github.com/nownext/nownext/internal/page"
	"github.com/nownext/nownext/internal/rollover"
	"github.com/nownext/nownext/internal/store"
)

var (
	rollYes    bool
	rollDryRun bool
	rollDate   string
)

var rollCmd = &cobra.Command{
	Use:   "roll [page]",
	Short: "Archive a page and carry unfinished tasks into a fresh one",
	Long: `Archives the current page under "<Name> <started>~<ended>.md" and writes a
fresh page containing only the unfinished tasks. Without a page argument all
pages are rolled.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRoll,
}

func init() {
	rollCmd.Flags().BoolVarP(&rollYes, "yes", "y", false, "skip confirmation prompt")
	rollCmd.Flags().BoolVar(&rollDryRun, "dry-run", false, "show what would be rolled without touching files")
	rollCmd.Flags().StringVar(&rollDate, "date", "", "end date to stamp instead of today (YYYY-MM-DD)")
	rootCmd.AddCommand(rollCmd)
}

func runRoll(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st := store.New(cfg)

	kinds := page.Kinds()
	if len(args) == 1 && !strings.EqualFold(args[0], "all") {
		kind, err := parseKind(args[0])
		if err != nil {
			return err
		}
		kinds = []page.Kind{kind}
	}

	ended := today()
	if rollDate != "" {
		d, err := date.Parse(rollDate)
		if err != nil {
			return clierr.Newf(clierr.InvalidDate, "invalid date %q: expected YYYY-MM-DD", rollDate).
				WithDetails(map[string]any{"date": rollDate})
		}
		ended = d.String()
	}

	if rollDryRun {
		return rollPreview(st, kinds)
	}

	if !rollYes {
		if err := confirmRoll(kinds, ended); err != nil {
			return err
		}
	}

	results := make([]*rollover.Result, 0, len(kinds))
	for _, kind := range kinds {
		result, err := rollover.Roll(st, kind, ended)
		if err != nil {
			return err
		}
		results = append(results, result)
	}

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, results)
	}
	for _, r := range results {
		output.Messagef(os.Stdout, "Rolled %s: %d carried, %d done dropped (%s ~ %s)",
			r.Page, r.Rolled, r.Dropped, r.Started, r.Ended)
		output.Messagef(os.Stdout, "  archived to %s", r.Archive)
	}
	return nil
}

// rollPreview shows what a rollover would carry forward without writing.
func rollPreview(st *store.Store, kinds []page.Kind) error {
	type preview struct {
		Page    string              `json:"page"`
		Started string              `json:"started"`
		Rolled  int                 `json:"rolled"`
		Dropped int                 `json:"dropped"`
		Carried []checklist.Section `json:"carried,omitempty"`
	}

	previews := make([]preview, 0, len(kinds))
	for _, kind := range kinds {
		carried, p, err := rollover.Plan(st, kind)
		if err != nil {
			return err
		}
		total := checklist.CountTasks(p.Sections())
		kept := checklist.CountTasks(carried)
		previews = append(previews, preview{
			Page:    string(kind),
			Started: p.Meta.Started,
			Rolled:  kept,
			Dropped: total - kept,
			Carried: carried,
		})
	}

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, previews)
	}
	for _, p := range previews {
		output.Messagef(os.Stdout, "Would roll %s: %d carried, %d done dropped", p.Page, p.Rolled, p.Dropped)
		for _, section := range p.Carried {
			for _, header := range section.Headers {
				output.Messagef(os.Stdout, "  %s", header)
			}
			for _, t := range section.Tasks {
				output.Messagef(os.Stdout, "  %s", t.Render())
			}
		}
	}
	return nil
}

// confirmRoll prompts for confirmation on a terminal. Non-interactive
// invocations must pass --yes.
func confirmRoll(kinds []page.Kind, ended string) error {
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, string(k))
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return clierr.Newf(clierr.ConfirmationReq,
			"rolling %s requires confirmation; pass --yes to proceed", strings.Join(names, ", ")).
			WithDetails(map[string]any{"pages": names})
	}

	fmt.Fprintf(os.Stderr, "Roll %s and archive with end date %s? [y/N] ", strings.Join(names, ", "), ended)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("reading confirmation: %w", err)
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer != "y" && answer != "yes" {
		output.Messagef(os.Stderr, "Aborted.")
		return &clierr.SilentError{Code: 1}
	}
	return nil
}
