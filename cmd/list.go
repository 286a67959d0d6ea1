package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nownext/nownext/internal/checklist"
	"github.com/nownext/nownext/internal/clierr"
	"github.com/nownext/nownext/internal/output"
	"github.com/nownext/nownext/internal/store"
)

var (
	listPages      []string
	listStates     []string
	listIncomplete bool
	listSearch     string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks across pages",
	RunE:    runList,
}

func init() {
	listCmd.Flags().StringSliceVar(&listPages, "page", nil, "restrict to pages (now, next)")
	listCmd.Flags().StringSliceVarP(&listStates, "state", "s", nil, "restrict to states (todo, in-progress, done)")
	listCmd.Flags().BoolVarP(&listIncomplete, "incomplete", "i", false, "only unfinished tasks")
	listCmd.Flags().StringVar(&listSearch, "search", "", "case-insensitive substring match on task text")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := store.FilterOptions{
		Incomplete: listIncomplete,
		Search:     listSearch,
	}
	for _, name := range listPages {
		kind, err := parseKind(name)
		if err != nil {
			return err
		}
		opts.Pages = append(opts.Pages, kind)
	}
	for _, name := range listStates {
		state, err := parseState(name)
		if err != nil {
			return err
		}
		opts.States = append(opts.States, state)
	}

	tasks, warnings, err := store.New(cfg).ListTasks(opts)
	if err != nil {
		return err
	}
	printWarnings(warnings)

	switch outputFormat() {
	case output.FormatJSON:
		if tasks == nil {
			tasks = []store.PageTask{}
		}
		return output.JSON(os.Stdout, tasks)
	case output.FormatCompact:
		output.TaskCompact(os.Stdout, tasks)
		return nil
	default:
		output.TaskTable(os.Stdout, tasks)
		return nil
	}
}

// parseState resolves a state name or literal checkbox character.
func parseState(name string) (checklist.State, error) {
	switch name {
	case "todo", "open", " ":
		return checklist.StateTodo, nil
	case "in-progress", "doing", "/":
		return checklist.StateInProgress, nil
	case "done", "x":
		return checklist.StateDone, nil
	}
	return "", clierr.Newf(clierr.InvalidInput, "invalid state %q (expected todo, in-progress, or done)", name).
		WithDetails(map[string]any{"state": name})
}
