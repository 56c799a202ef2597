package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"git.sr.ht/~mariusor/lw"
	"github.com/urfave/cli"
	"golang.org/x/oauth2"

	"clubcal"
	"clubcal/ical"
	"clubcal/portal"
)

var FetchCmd = cli.Command{
	Name:  "fetch",
	Usage: "Fetches portal events and writes the calendar feeds",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Output debug messages",
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "Print the feeds instead of writing them",
		},
		&cli.BoolFlag{
			Name:  "no-browser",
			Usage: "Use the plain form login instead of a headless browser",
		},
		&cli.StringFlag{
			Name:  "name",
			Usage: "Display name for the main calendar",
		},
	},
	Action: fetchEvents,
}

func fetchEvents(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if cfg.BaseURL == "" {
		return fmt.Errorf("no portal base URL configured")
	}
	debug := c.Bool("debug") || c.GlobalBool("debug")

	logger := lw.Dev()
	ctx := context.Background()

	tok, err := authenticate(ctx, cfg, c.Bool("no-browser"))
	if err != nil {
		return err
	}

	client, err := portal.NewClient(cfg.BaseURL, tok, logger)
	if err != nil {
		return err
	}
	records, err := client.Events(ctx)
	if err != nil {
		return err
	}
	if debug {
		info("fetched %d events", len(records))
		for _, e := range records {
			if e.Start == nil || e.Start.IsZero() {
				info("skipping %s: no start date", e)
			}
		}
	}

	name := c.String("name")
	if name == "" {
		name = cfg.CalendarName
	}
	b := ical.Builder{BaseURL: cfg.BaseURL, Name: name}

	feed := b.Build(records)
	personal, kept := b.BuildPersonal(records)

	if c.Bool("dry-run") {
		fmt.Print(feed)
		if kept > 0 {
			fmt.Print(personal)
		}
		return nil
	}

	if err := MkDirIfNotExists(cfg.OutputDir); err != nil {
		return err
	}
	if err := writeFeed(filepath.Join(cfg.OutputDir, FeedFile), feed); err != nil {
		return err
	}
	if kept == 0 {
		info("no confirmed or waitlisted events, skipping the personal feed")
		return nil
	}
	return writeFeed(filepath.Join(cfg.OutputDir, PersonalFeedFile), personal)
}

func writeFeed(path, doc string) error {
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return fmt.Errorf("unable to write %s: %w", path, err)
	}
	info("wrote %s", path)
	return nil
}

// authenticate prefers a cached token, then the browser flow, then
// whatever error the fallback produced.
func authenticate(ctx context.Context, cfg *clubcal.Config, noBrowser bool) (*oauth2.Token, error) {
	if tok := portal.LoadToken(TokenPath()); tok != nil {
		return tok, nil
	}

	opts := portal.LoginOptions{
		BaseURL:  cfg.BaseURL,
		Username: cfg.Username,
		Password: cfg.Password,
	}
	login := portal.BrowserLogin
	if noBrowser {
		login = portal.FormLogin
	}
	tok, err := login(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := portal.SaveToken(tok, TokenPath()); err != nil {
		errFn("unable to cache token: %s", err)
	}
	return tok, nil
}
