package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/nownext/nownext/internal/checklist"
	"github.com/nownext/nownext/internal/clierr"
	"github.com/nownext/nownext/internal/journal"
	"github.com/nownext/nownext/internal/output"
	"github.com/nownext/nownext/internal/store"
)

var (
	addSection string
	addState   string
)

var addCmd = &cobra.Command{
	Use:   "add <page> <text>...",
	Short: "Append a task to a page",
	Long:  `Appends a checklist task to a page, either at the end of the body or under a named section header.`,
	Args:  cobra.MinimumNArgs(2),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addSection, "section", "", "section header to add the task under (created if missing)")
	addCmd.Flags().StringVarP(&addState, "state", "s", "todo", "initial state (todo, in-progress, done)")

	// Accept --header as an alias for --section.
	addCmd.Flags().SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "header" {
			name = "section"
		}
		return pflag.NormalizedName(name)
	})

	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}
	text := strings.TrimSpace(strings.Join(args[1:], " "))
	if text == "" {
		return clierr.New(clierr.InvalidInput, "task text must not be empty")
	}
	state, err := parseState(addState)
	if err != nil {
		return err
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

	task := checklist.Task{State: state, Text: text}
	p.Body = insertTask(p.Body, addSection, task.Render())
	if err := st.WritePage(p); err != nil {
		return err
	}
	journal.Record(cfg.Dir(), "add", string(kind), text)

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, map[string]any{
			"page":    string(kind),
			"state":   string(state),
			"text":    text,
			"section": addSection,
		})
	}
	output.Messagef(os.Stdout, "Added to %s: %s", kind, task.Render())
	return nil
}

// insertTask places taskLine into body. With an empty header the task goes at
// the end of the body; otherwise it goes at the end of the named section,
// which is created when missing. Headers may be given with or without their
// leading # marks.
func insertTask(body, header, taskLine string) string {
	if header != "" && !strings.HasPrefix(header, "#") {
		header = "## " + header
	}

	trimmed := strings.TrimRight(body, "\n")
	if trimmed == "" {
		if header == "" {
			return taskLine + "\n"
		}
		return header + "\n\n" + taskLine + "\n"
	}
	lines := strings.Split(trimmed, "\n")

	if header == "" {
		return strings.Join(append(lines, taskLine), "\n") + "\n"
	}

	// Find the section and the last non-blank line before the next header.
	insertAt := -1
	for i, line := range lines {
		if line != header {
			continue
		}
		insertAt = i
		for j := i + 1; j < len(lines); j++ {
			if checklist.IsHeader(lines[j]) {
				break
			}
			if strings.TrimSpace(lines[j]) != "" {
				insertAt = j
			}
		}
		break
	}

	if insertAt < 0 {
		// Section not found: create it at the end.
		return strings.Join(lines, "\n") + "\n\n" + header + "\n\n" + taskLine + "\n"
	}

	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:insertAt+1]...)
	out = append(out, taskLine)
	out = append(out, lines[insertAt+1:]...)
	return strings.Join(out, "\n") + "\n"
}
