package cmd

import (
	"errors"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/maaslalani/pitchdeck/internal/model"
	"github.com/maaslalani/pitchdeck/styles"
	"github.com/muesli/coral"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when the preview is started without a terminal.
var ErrNotTerminal = errors.New("preview needs an interactive terminal")

func (a *app) previewCmd() *coral.Command {
	var file, theme string
	cmd := &coral.Command{
		Use:   "preview",
		Short: "Page through the deck in the terminal",
		Args:  coral.NoArgs,
		RunE: func(cmd *coral.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return ErrNotTerminal
			}
			f, d, err := a.build(file)
			if err != nil {
				return err
			}
			m := model.New(d, f.Author, time.Now().Format("2006-01-02"), styles.SelectTheme(theme))
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML deck file to preview instead of the built-in deck")
	cmd.Flags().StringVar(&theme, "theme", "", "glamour theme: dark, light, ascii, notty, auto or a JSON style path")
	return cmd
}
