package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tokenkit/internal/logger"
	"github.com/alexisbeaulieu97/tokenkit/internal/palette"
	"github.com/alexisbeaulieu97/tokenkit/internal/theme"
)

type rootFlags struct {
	verbose bool
	palette string
	mode    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "tokenkit",
		Short:         "tokenkit resolves design tokens into concrete control styles",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.palette, "palette", "", "YAML palette layered over the built-in one")
	cmd.PersistentFlags().StringVarP(&flags.mode, "mode", "m", "", "Theme mode: light, dark or auto")

	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newPaletteCmd(flags))
	cmd.AddCommand(newShowcaseCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// logger builds the command logger on the command's error stream.
func (f *rootFlags) logger(cmd *cobra.Command, component string) (*logger.Logger, error) {
	level := "info"
	if f.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
		Component:     component,
	})
}

// loadPalette returns the built-in palette with the file at path layered
// over it. path falls back to the --palette flag, then to nothing.
func (f *rootFlags) loadPalette(path string) (*palette.Palette, error) {
	if f.palette != "" {
		path = f.palette
	}
	base := palette.Default()
	if path == "" {
		return base, nil
	}
	top, err := palette.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return base.Overlay(top), nil
}

// modes returns the modes selected by --mode. No flag selects both; "auto"
// asks the terminal.
func (f *rootFlags) modes() ([]theme.Mode, error) {
	switch f.mode {
	case "":
		return theme.Modes, nil
	case "auto":
		return []theme.Mode{theme.NewTerminal().Mode()}, nil
	}
	mode, ok := theme.ParseMode(f.mode)
	if !ok {
		return nil, fmt.Errorf("unknown mode %q: want light, dark or auto", f.mode)
	}
	return []theme.Mode{mode}, nil
}

// provider returns the theme override selected by --mode, nil when unset.
func (f *rootFlags) provider() (theme.Provider, error) {
	if f.mode == "" {
		return nil, nil
	}
	if f.mode == "auto" {
		return theme.NewTerminal(), nil
	}
	mode, ok := theme.ParseMode(f.mode)
	if !ok {
		return nil, fmt.Errorf("unknown mode %q: want light, dark or auto", f.mode)
	}
	return theme.Static(mode), nil
}
