package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"clubcal/internal/cmd"
)

func main() {
	var err error

	ctl := cli.App{
		Name:    cmd.AppName,
		Version: cmd.AppVersion,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "The configuration file to use",
				Value: cmd.ConfigPath(),
			},
			&cli.StringFlag{
				Name:  "url",
				Usage: "The portal base URL, overrides the configuration file",
			},
			&cli.StringFlag{
				Name:  "path",
				Usage: "The path for generated feeds, overrides the configuration file",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Output debug messages",
			},
		},
		Commands: []cli.Command{
			cmd.FetchCmd,
			cmd.PersonalCmd,
			cmd.Server,
		},
	}

	err = ctl.Run(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
