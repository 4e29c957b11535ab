package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/lipeining/gocgroup/cgroups"
	"github.com/lipeining/gocgroup/configs"
)

const (
	exactArgs = iota
	minArgs
	maxArgs
)

func checkArgs(context *cli.Context, expected, checkType int) error {
	var err error
	cmdName := context.Command.Name
	switch checkType {
	case exactArgs:
		if context.NArg() != expected {
			err = fmt.Errorf("%s: %q requires exactly %d argument(s)", os.Args[0], cmdName, expected)
		}
	case minArgs:
		if context.NArg() < expected {
			err = fmt.Errorf("%s: %q requires a minimum of %d argument(s)", os.Args[0], cmdName, expected)
		}
	case maxArgs:
		if context.NArg() > expected {
			err = fmt.Errorf("%s: %q requires a maximum of %d argument(s)", os.Args[0], cmdName, expected)
		}
	}

	if err != nil {
		fmt.Printf("Incorrect Usage.\n\n")
		cli.ShowCommandHelp(context, cmdName)
		return err
	}
	return nil
}

func logrusToStderr() bool {
	l, ok := logrus.StandardLogger().Out.(*os.File)
	return ok && l.Fd() == os.Stderr.Fd()
}

// fatal writes the error to the logger, mirrors it to stderr when the
// logger goes elsewhere, and exits.
func fatal(err error) {
	logrus.Error(err)
	if !logrusToStderr() {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(1)
}

// parseBoolOrAuto returns (nil, nil) if s is empty or "auto"
func parseBoolOrAuto(s string) (*bool, error) {
	if s == "" || strings.ToLower(s) == "auto" {
		return nil, nil
	}
	b, err := strconv.ParseBool(s)
	return &b, err
}

// loadFileConfig loads the --config file itself, for commands that
// consume the group declarations.
func loadFileConfig(context *cli.Context) (*configs.Config, error) {
	return configs.Load(context.GlobalString("config"))
}

// loadConfig merges the optional --config file with the global flags;
// flags win where both speak.
func loadConfig(context *cli.Context) (*cgroups.Config, error) {
	fc := &configs.Config{}
	if path := context.GlobalString("config"); path != "" {
		loaded, err := configs.Load(path)
		if err != nil {
			return nil, err
		}
		fc = loaded
	}
	cfg := fc.Cgroups()
	if root := context.GlobalString("root"); root != "" {
		cfg.Root = root
	}
	if context.GlobalBool("unified") {
		cfg.Subsystems = nil
	}
	if d := context.GlobalDuration("poll-interval"); d > 0 {
		cfg.PollInterval = d
	}
	return cfg, nil
}

func newManager(context *cli.Context) (*cgroups.Manager, error) {
	cfg, err := loadConfig(context)
	if err != nil {
		return nil, err
	}
	return cgroups.New(cfg), nil
}

// groupArg validates and returns the group name given as the first
// positional argument.
func groupArg(context *cli.Context, m *cgroups.Manager) (string, error) {
	name := context.Args().First()
	if err := configs.ValidateGroupName(m.Config().Path("", ""), name); err != nil {
		return "", err
	}
	return name, nil
}

// managerAndGroup is the common prologue of the single-group commands.
func managerAndGroup(context *cli.Context) (*cgroups.Manager, string, error) {
	m, err := newManager(context)
	if err != nil {
		return nil, "", err
	}
	name, err := groupArg(context, m)
	if err != nil {
		return nil, "", err
	}
	return m, name, nil
}
