package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"clubcal/ical"
)

var PersonalCmd = cli.Command{
	Name:  "personal",
	Usage: "Extracts confirmed/waitlisted entries from an existing feed, no credentials needed",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "in",
			Usage: "The calendar file to filter",
			Value: FeedFile,
		},
		&cli.StringFlag{
			Name:  "out",
			Usage: "Where to write the filtered feed, stdout when empty",
		},
	},
	Action: filterPersonal,
}

func filterPersonal(c *cli.Context) error {
	in := c.String("in")
	raw, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("unable to read calendar %s: %w", in, err)
	}

	doc, kept := ical.FilterDocument(string(raw))
	if kept == 0 {
		info("no personal events found in %s, nothing to do", in)
		return nil
	}

	if out := c.String("out"); out != "" {
		if err := writeFeed(out, doc); err != nil {
			return err
		}
		info("kept %d of the original entries", kept)
		return nil
	}
	fmt.Print(doc)
	return nil
}
