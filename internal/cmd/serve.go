package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/maaslalani/pitchdeck/internal/model"
	"github.com/maaslalani/pitchdeck/internal/server"
	"github.com/maaslalani/pitchdeck/styles"
	"github.com/muesli/coral"
)

const shutdownTimeout = 30 * time.Second

func (a *app) serveCmd() *coral.Command {
	var (
		file    string
		host    string
		port    int
		keyPath string
		theme   string
	)
	cmd := &coral.Command{
		Use:   "serve",
		Short: "Serve the terminal preview over SSH",
		Args:  coral.NoArgs,
		RunE: func(cmd *coral.Command, args []string) error {
			f, d, err := a.build(file)
			if err != nil {
				return err
			}
			m := model.New(d, f.Author, time.Now().Format("2006-01-02"), styles.SelectTheme(theme))
			s, err := server.New(keyPath, host, port, m, a.logger)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			errs := make(chan error, 1)
			go func() { errs <- s.Start() }()

			select {
			case err := <-errs:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := s.Shutdown(shutdownCtx); err != nil {
				return err
			}
			return <-errs
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML deck file to serve instead of the built-in deck")
	cmd.Flags().StringVar(&host, "host", "localhost", "host to listen on")
	cmd.Flags().IntVarP(&port, "port", "p", 53531, "port to listen on")
	cmd.Flags().StringVar(&keyPath, "keyPath", "pitchdeck", "path of the SSH host key, generated when missing")
	cmd.Flags().StringVar(&theme, "theme", "", "glamour theme for the sessions")
	return cmd
}
