package cmd

import (
	"github.com/maaslalani/pitchdeck/internal/deck"
	"github.com/maaslalani/pitchdeck/internal/pitch"
	"github.com/muesli/coral"
)

func (a *app) specCmd() *coral.Command {
	return &coral.Command{
		Use:   "spec",
		Short: "Print the built-in deck as a YAML deck file",
		Args:  coral.NoArgs,
		RunE: func(cmd *coral.Command, args []string) error {
			return deck.Encode(cmd.OutOrStdout(), pitch.File())
		},
	}
}
