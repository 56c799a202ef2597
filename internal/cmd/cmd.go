package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/urfave/cli"

	"clubcal"
)

const (
	AppName    = "clubcal"
	AppVersion = "(unknown)"
)

const (
	FeedFile         = "club.ics"
	PersonalFeedFile = "personal.ics"

	tokenFile = "token"
)

type logFn func(string, ...interface{})

var info = func(s string, args ...interface{}) {
	fmt.Printf(s+"\n", args...)
}

var errFn = func(s string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, s+"\n", args...)
}

func MkDirIfNotExists(p string) error {
	fi, err := os.Stat(p)
	if err != nil && os.IsNotExist(err) {
		err = os.MkdirAll(p, os.ModeDir|os.ModePerm|0700)
	}
	if err != nil {
		return err
	}
	fi, err = os.Stat(p)
	if err != nil {
		return err
	} else if !fi.IsDir() {
		return fmt.Errorf("path exists, and is not a folder %s", p)
	}
	return nil
}

func DataPath() string {
	homeDir, _ := os.UserHomeDir()
	xdgDataPath := filepath.Join(homeDir, ".local", "share")
	appPath := filepath.Join(xdgDataPath, AppName)

	if _, err := os.Stat(appPath); err != nil && errors.Is(err, os.ErrNotExist) {
		err := MkDirIfNotExists(appPath)
		if err != nil {
			log.Fatalf("Error: %s", err.Error())
		}
	}
	return appPath
}

func ConfigPath() string {
	xdgConfigPath, _ := os.UserConfigDir()
	return filepath.Join(xdgConfigPath, AppName, "config.yml")
}

func TokenPath() string {
	return filepath.Join(DataPath(), tokenFile)
}

// loadConfig resolves the configuration for a command invocation,
// letting global flags override what the file says.
func loadConfig(c *cli.Context) (*clubcal.Config, error) {
	path := c.GlobalString("config")
	if path == "" {
		path = ConfigPath()
	}
	cfg, err := clubcal.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if u := c.GlobalString("url"); u != "" {
		cfg.BaseURL = u
	}
	if p := c.GlobalString("path"); p != "" {
		cfg.OutputDir = p
	}
	cfg.Normalize()
	return cfg, nil
}
