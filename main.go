package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const usage = `manage cpuset and freezer control groups

gocgroup drives the kernel's cgroup pseudo-filesystem: groups are
directories under a mount root, attributes are pseudo-files written as
text. The mount root defaults to "/sys/fs/cgroup/" and can be moved
with --root or, for test harnesses, the GOCGROUP_PATH environment
variable, which wins over everything.`

func main() {
	app := cli.NewApp()
	app.Name = "gocgroup"
	app.Usage = usage
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug output for logging",
		},
		cli.StringFlag{
			Name:  "log",
			Usage: "set the log file path where internal debug information is written",
		},
		cli.StringFlag{
			Name:  "log-format",
			Value: "text",
			Usage: "set the format used by logs ('text' or 'json')",
		},
		cli.StringFlag{
			Name:  "root",
			Usage: "mount root of the cgroup hierarchy (default: \"/sys/fs/cgroup/\")",
		},
		cli.BoolFlag{
			Name:  "unified",
			Usage: "operate on a single hierarchy without per-subsystem directories",
		},
		cli.DurationFlag{
			Name:  "poll-interval",
			Usage: "pace the freeze and drain wait loops (0 polls as fast as possible)",
		},
		cli.StringFlag{
			Name:  "config",
			Usage: "TOML file describing the hierarchy layout and the groups for apply",
		},
	}
	app.Commands = []cli.Command{
		createCommand,
		deleteCommand,
		addCommand,
		setCommand,
		freezeCommand,
		thawCommand,
		waitCommand,
		killCommand,
		psCommand,
		stateCommand,
		listCommand,
		applyCommand,
	}
	app.Before = func(context *cli.Context) error {
		if context.GlobalBool("debug") {
			logrus.SetLevel(logrus.DebugLevel)
		}
		if path := context.GlobalString("log"); path != "" {
			f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND|os.O_SYNC, 0666)
			if err != nil {
				return err
			}
			logrus.SetOutput(f)
		}
		switch format := context.GlobalString("log-format"); format {
		case "text":
			// keep logrus's default formatter
		case "json":
			logrus.SetFormatter(new(logrus.JSONFormatter))
		default:
			return fmt.Errorf("unknown log-format %q", format)
		}
		return nil
	}
	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}
