package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/tokenkit/internal/config"
	"github.com/alexisbeaulieu97/tokenkit/internal/logger"
	"github.com/alexisbeaulieu97/tokenkit/internal/style"
	"github.com/alexisbeaulieu97/tokenkit/internal/tui"
)

type showcaseOptions struct {
	ConfigPath string
	LogPath    string
}

var (
	showcaseRunner = runShowcase
	isTerminal     = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
)

func newShowcaseCmd(root *rootFlags) *cobra.Command {
	opts := showcaseOptions{}

	cmd := &cobra.Command{
		Use:   "showcase",
		Short: "Launch the interactive control showcase",
		Long: `Render every control of a showcase document and drive it from the keyboard.
Without --config the built-in showcase is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ParseConfig(opts.ConfigPath)
			if err != nil {
				return err
			}

			log, err := root.logger(cmd, "showcase")
			if err != nil {
				return err
			}
			pal, err := root.loadPalette(cfg.Palette)
			if err != nil {
				return err
			}
			for _, issue := range config.Lint(cfg, pal) {
				log.Warn(issue.Error())
			}

			provider, err := root.provider()
			if err != nil {
				return err
			}

			if !isTerminal() {
				return fmt.Errorf("showcase needs an interactive terminal")
			}

			// The terminal belongs to the program while it runs.
			runLog := logger.Nop()
			if opts.LogPath != "" {
				file, err := os.OpenFile(opts.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer file.Close()
				level := "info"
				if root.verbose {
					level = "debug"
				}
				if runLog, err = logger.New(logger.Options{Level: level, Writer: file, Component: "showcase"}); err != nil {
					return err
				}
			}

			model := tui.NewModel(cfg, tui.Options{
				Engine: style.NewEngine(pal, 0),
				Theme:  provider,
				Logger: runLog,
				Bell:   os.Stderr,
			})
			return showcaseRunner(model)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to a showcase document")
	cmd.Flags().StringVar(&opts.LogPath, "log-file", "", "Write logs to this file while the showcase runs")

	return cmd
}

func runShowcase(model tui.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run showcase: %w", err)
	}
	return nil
}
