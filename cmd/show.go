package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nownext/nownext/internal/output"
	"github.com/nownext/nownext/internal/store"
)

var showPretty bool

var showCmd = &cobra.Command{
	Use:   "show <page>",
	Short: "Show a page",
	Long:  `Prints a page's metadata and body. With --pretty the markdown is rendered for the terminal.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVarP(&showPretty, "pretty", "p", false, "render markdown for the terminal")
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, args []string) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := store.New(cfg).ReadPage(kind)
	if err != nil {
		return err
	}

	switch outputFormat() {
	case output.FormatJSON:
		return output.JSON(os.Stdout, p)
	case output.FormatCompact:
		output.PageCompact(os.Stdout, p)
		return nil
	default:
		if showPretty {
			width := 80
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
				width = w
			}
			rendered, err := output.RenderMarkdown(p.Body, width)
			if err != nil {
				return err
			}
			output.PageDetail(os.Stdout, &store.Page{Spec: p.Spec, Meta: p.Meta, Body: rendered, Path: p.Path})
			return nil
		}
		output.PageDetail(os.Stdout, p)
		return nil
	}
}
