// datelens is the CLI for viewing text with relative-date overlays.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/datelens/datelens/internal/config"
	"github.com/datelens/datelens/internal/overlay"
	"github.com/datelens/datelens/internal/relative"
	"github.com/datelens/datelens/internal/store"
	"github.com/datelens/datelens/internal/ui"
)

var (
	version = "dev"

	// Styles for CLI output
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

// atFormats are the accepted layouts for the --at reference time flag.
var atFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseAt(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	for _, layout := range atFormats {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q (want RFC3339 or 2006-01-02[ 15:04])", s)
}

func openConfig() (*store.Store, *config.Config, error) {
	st, err := store.Open(store.DefaultPath())
	if err != nil {
		return nil, nil, fmt.Errorf("open settings store: %w", err)
	}
	return st, config.New(st), nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
	os.Exit(1)
}

func main() {
	rootCmd := &cobra.Command{
		Use:     "datelens [file]",
		Short:   "Relative-date overlays for text files",
		Long:    "Scans text for dates in a configurable format and displays them as relative phrases.",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			st, cfg, err := openConfig()
			if err != nil {
				fail(err)
			}
			defer st.Close()

			path := ""
			if len(args) > 0 {
				path = args[0]
			} else {
				recent, _ := st.RecentDocuments(1)
				if len(recent) == 0 {
					fail(fmt.Errorf("no file given and no recent documents"))
				}
				path = recent[0]
			}

			if _, err := os.Stat(path); err != nil {
				fail(err)
			}
			if err := st.TouchDocument(path); err != nil {
				log.Warn("could not record recent document", "err", err)
			}

			p := tea.NewProgram(ui.NewAppModel(cfg, st, path), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				fail(err)
			}
		},
	}

	rootCmd.SetVersionTemplate(`{{.Version}}
`)

	rootCmd.AddCommand(scanCmd())
	rootCmd.AddCommand(phraseCmd())
	rootCmd.AddCommand(previewCmd())
	rootCmd.AddCommand(configCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func scanCmd() *cobra.Command {
	var at string
	var cursor int
	var output string

	cmd := &cobra.Command{
		Use:   "scan <file>",
		Short: "List replacement directives for a file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			now, err := parseAt(at)
			if err != nil {
				fail(err)
			}
			st, cfg, err := openConfig()
			if err != nil {
				fail(err)
			}
			defer st.Close()

			data, err := os.ReadFile(args[0])
			if err != nil {
				fail(err)
			}

			pat := cfg.Pattern()
			occs := overlay.Scan(pat, string(data))
			reps := overlay.Reconcile(pat, occs, cursor, now)

			switch output {
			case "json":
				out, err := json.MarshalIndent(reps, "", "  ")
				if err != nil {
					fail(err)
				}
				fmt.Println(string(out))
			case "yaml":
				out, err := yaml.Marshal(reps)
				if err != nil {
					fail(err)
				}
				fmt.Print(string(out))
			default:
				if len(reps) == 0 {
					fmt.Println(dimStyle.Render("no dates found"))
					return
				}
				for _, r := range reps {
					span := dimStyle.Render(fmt.Sprintf("[%d,%d)", r.From, r.To))
					fmt.Printf("%s %s %s %s\n", span, r.Original,
						dimStyle.Render("→"), boldStyle.Render(r.Display))
				}
			}
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Reference time (default: now)")
	cmd.Flags().IntVar(&cursor, "cursor", -1, "Cursor offset; the occurrence under it is suppressed")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json, yaml")
	return cmd
}

func phraseCmd() *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "phrase <date literal>",
		Short: "Print the relative phrase for one date literal",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			now, err := parseAt(at)
			if err != nil {
				fail(err)
			}
			st, cfg, err := openConfig()
			if err != nil {
				fail(err)
			}
			defer st.Close()

			d := cfg.Pattern().Parse(args[0])
			if d == nil {
				fail(fmt.Errorf("%q does not match format %q", args[0], cfg.DateFormat))
			}
			fmt.Println(relative.Phrase(d, now))
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Reference time (default: now)")
	return cmd
}

func previewCmd() *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Render the transformed document as markdown",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			now, err := parseAt(at)
			if err != nil {
				fail(err)
			}
			st, cfg, err := openConfig()
			if err != nil {
				fail(err)
			}
			defer st.Close()

			data, err := os.ReadFile(args[0])
			if err != nil {
				fail(err)
			}

			pat := cfg.Pattern()
			text := string(data)
			reps := overlay.Reconcile(pat, overlay.Scan(pat, text), -1, now)
			transformed := overlay.Apply(text, reps)

			rendered, err := glamour.Render(transformed, "dark")
			if err != nil {
				// Unstyled text beats no output.
				fmt.Print(transformed)
				return
			}
			fmt.Print(rendered)
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Reference time (default: now)")
	return cmd
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get date-format",
		Short: "Print the configured date format",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if args[0] != "date-format" {
				fail(fmt.Errorf("unknown setting %q", args[0]))
			}
			st, cfg, err := openConfig()
			if err != nil {
				fail(err)
			}
			defer st.Close()
			fmt.Println(cfg.DateFormat)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set date-format <value>",
		Short: "Set the date format",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			if args[0] != "date-format" {
				fail(fmt.Errorf("unknown setting %q", args[0]))
			}
			st, cfg, err := openConfig()
			if err != nil {
				fail(err)
			}
			defer st.Close()
			if err := cfg.SetDateFormat(args[1]); err != nil {
				fail(err)
			}
			fmt.Println(successStyle.Render("date format set to " + args[1]))
		},
	})

	return cmd
}
