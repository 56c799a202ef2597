package cmd

import (
	"context"
	"net/http"
	"path/filepath"
	"syscall"
	"time"

	w "git.sr.ht/~mariusor/wrapper"
	"github.com/go-chi/chi/v5"
	"github.com/urfave/cli"
)

var Server = cli.Command{
	Name:  "start",
	Usage: "Starts the calendar feed server",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Output debug messages",
		},
		&cli.StringFlag{
			Name:  "listen",
			Usage: "Set the address on which to listen",
		},
	},
	Action: serverStart,
}

var wait = 100 * time.Millisecond

func feedRoutes(dir string) http.Handler {
	r := chi.NewRouter()
	r.Get("/{feed}.ics", func(rw http.ResponseWriter, req *http.Request) {
		name := chi.URLParam(req, "feed") + ".ics"
		rw.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		http.ServeFile(rw, req, filepath.Join(dir, filepath.Base(name)))
	})
	return r
}

func serverStart(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	listen := cfg.Listen
	if l := c.String("listen"); l != "" {
		listen = l
	}
	info("Listening on %s", listen)

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()

	// Get start/stop functions for the http server
	srvRun, srvStop := w.HttpServer(w.Handler(feedRoutes(cfg.OutputDir)), w.OnTCP(listen))
	w.RegisterSignalHandlers(w.SignalHandlers{
		syscall.SIGHUP: func(_ chan int) {
			info("SIGHUP received, reloading configuration")
		},
		syscall.SIGINT: func(exit chan int) {
			info("SIGINT received, stopping")
			exit <- 0
		},
		syscall.SIGTERM: func(exit chan int) {
			info("SIGTERM received, force stopping")
			exit <- 0
		},
		syscall.SIGQUIT: func(exit chan int) {
			info("SIGQUIT received, force stopping with core-dump")
			exit <- 0
		},
	}).Exec(func() error {
		if err := srvRun(); err != nil {
			errFn("Error: %s", err)
			return err
		}
		var err error
		// Doesn't block if no connections, but will otherwise wait until the timeout deadline.
		go func(e error) {
			if err = srvStop(ctx); err != nil {
				errFn("Error: %s", err)
			}
		}(err)
		return err
	})

	return nil
}
