// Package cmd is the pitchdeck command line.
package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/maaslalani/pitchdeck/internal/deck"
	"github.com/maaslalani/pitchdeck/internal/logging"
	"github.com/maaslalani/pitchdeck/internal/pitch"
	"github.com/maaslalani/pitchdeck/internal/pptx"
	"github.com/muesli/coral"
	"github.com/muesli/termenv"
)

// app holds the persistent flags and the logger they configure.
type app struct {
	logLevel string
	noColor  bool
	logger   *log.Logger
}

// New returns the command tree. Without a subcommand it builds the deck and
// saves it as a .pptx file.
func New() *coral.Command {
	a := &app{logger: logging.NewNop()}
	var (
		output string
		file   string
	)

	root := &coral.Command{
		Use:           "pitchdeck",
		Short:         "Generate the BRK Atitude & Inovação 2025 pitch deck",
		Long:          "pitchdeck builds the fixed pitch deck, or one described by a YAML deck file, and saves it as PowerPoint.",
		Args:          coral.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *coral.Command, args []string) error {
			level, err := logging.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.logger = logging.New(cmd.ErrOrStderr(), level)
			if a.noColor {
				lipgloss.SetColorProfile(termenv.Ascii)
			}
			return nil
		},
		RunE: func(cmd *coral.Command, args []string) error {
			f, d, err := a.build(file)
			if err != nil {
				return err
			}
			if err := pptx.Save(output, d, pptx.Meta{Title: f.Title, Author: f.Author}); err != nil {
				return fmt.Errorf("could not save %s: %w", output, err)
			}
			a.logger.Debug("Deck saved", "path", output, "slides", len(d.Slides))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "✅ Apresentação criada com sucesso!")
			fmt.Fprintf(out, "📁 Arquivo: %s\n", output)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")
	root.Flags().StringVarP(&output, "output", "o", pitch.DefaultOutput, "path of the .pptx file to write")
	root.Flags().StringVarP(&file, "file", "f", "", "YAML deck file to build instead of the built-in deck")

	root.AddCommand(
		a.previewCmd(),
		a.renderCmd(),
		a.serveCmd(),
		a.specCmd(),
	)
	return root
}

// load returns the built-in deck, or the deck file at path with the built-in
// palette, slides and metadata filling whatever it leaves out.
func load(path string) (*deck.File, error) {
	f := pitch.File()
	if path == "" {
		return f, nil
	}
	loaded, err := deck.LoadFile(path)
	if err != nil {
		return nil, err
	}
	f.Palette = f.Palette.Merge(loaded.Palette)
	if len(loaded.Slides) > 0 {
		f.Slides = loaded.Slides
	}
	if loaded.Title != "" {
		f.Title = loaded.Title
	}
	if loaded.Author != "" {
		f.Author = loaded.Author
	}
	return f, nil
}

// build loads the deck file at path and renders it.
func (a *app) build(path string) (*deck.File, *deck.Deck, error) {
	f, err := load(path)
	if err != nil {
		return nil, nil, err
	}
	d, err := deck.Build(f.Slides, f.Palette)
	if err != nil {
		return nil, nil, err
	}
	a.logger.Debug("Deck built", "slides", len(d.Slides), "source", source(path))
	return f, d, nil
}

func source(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
