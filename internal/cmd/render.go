package cmd

import (
	"fmt"

	"github.com/maaslalani/pitchdeck/internal/raster"
	"github.com/muesli/coral"
)

func (a *app) renderCmd() *coral.Command {
	var (
		file  string
		dir   string
		width int
	)
	cmd := &coral.Command{
		Use:   "render",
		Short: "Render every slide as a PNG image",
		Args:  coral.NoArgs,
		RunE: func(cmd *coral.Command, args []string) error {
			_, d, err := a.build(file)
			if err != nil {
				return err
			}
			r, err := raster.New()
			if err != nil {
				return fmt.Errorf("could not load fonts: %w", err)
			}
			paths, err := r.WritePNGs(dir, d, width)
			for _, p := range paths {
				a.logger.Debug("Slide rendered", "path", p)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "🖼️  %d slides rendered to %s\n", len(paths), dir)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML deck file to render instead of the built-in deck")
	cmd.Flags().StringVarP(&dir, "dir", "d", "slides", "directory for the PNG files")
	cmd.Flags().IntVar(&width, "width", raster.DefaultWidth, "image width in pixels")
	return cmd
}
