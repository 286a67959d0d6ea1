package cmd

import (
	"errors"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nownext/nownext/internal/checklist"
	"github.com/nownext/nownext/internal/clierr"
	"github.com/nownext/nownext/internal/journal"
	"github.com/nownext/nownext/internal/output"
	"github.com/nownext/nownext/internal/store"
)

var checkCmd = &cobra.Command{
	Use:     "check <page> <line>",
	Aliases: []string{"toggle"},
	Short:   "Advance a task's checkbox state",
	Long:    `Cycles the checkbox on the given body line: todo, in-progress, done, back to todo.`,
	Args:    cobra.ExactArgs(2),
	RunE:    runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(_ *cobra.Command, args []string) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}
	line, err := strconv.Atoi(args[1])
	if err != nil {
		return clierr.Newf(clierr.InvalidLine, "invalid line %q: expected a number", args[1]).
			WithDetails(map[string]any{"line": args[1]})
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st := store.New(cfg)

	unlock, err := st.Lock()
	if err != nil {
		return err
	}
	defer func() { _ = unlock() }()

	p, err := st.ReadPage(kind)
	if err != nil {
		return err
	}

	body, task, err := checklist.ToggleLine(p.Body, line)
	if err != nil {
		switch {
		case errors.Is(err, checklist.ErrLineOutOfRange):
			return clierr.Newf(clierr.InvalidLine, "line %d is out of range for page %q", line, kind).
				WithDetails(map[string]any{"page": string(kind), "line": line})
		case errors.Is(err, checklist.ErrNotTask):
			return clierr.Newf(clierr.NotATask, "line %d of page %q is not a task", line, kind).
				WithDetails(map[string]any{"page": string(kind), "line": line})
		}
		return err
	}

	p.Body = body
	if err := st.WritePage(p); err != nil {
		return err
	}
	journal.Record(cfg.Dir(), "toggle", string(kind), "line "+strconv.Itoa(line)+" -> ["+string(task.State)+"]")

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, map[string]any{
			"page":  string(kind),
			"line":  task.Line,
			"state": string(task.State),
			"text":  task.Text,
		})
	}
	output.Messagef(os.Stdout, "%s:%d [%s] %s", kind, task.Line, task.State, task.Text)
	return nil
}
