//go:build linux
// +build linux

package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli"
)

var waitCommand = cli.Command{
	Name:  "wait",
	Usage: "block until a group reaches a freezer state",
	ArgsUsage: `<group-name> <frozen|thawed>

The command polls the group's freezer state until it reads exactly the
requested one. Without --timeout it waits forever.`,
	Flags: []cli.Flag{
		cli.DurationFlag{
			Name:  "timeout",
			Usage: "give up after this long (0 waits forever)",
		},
	},
	Action: func(c *cli.Context) error {
		if err := checkArgs(c, 2, exactArgs); err != nil {
			return err
		}
		m, name, err := managerAndGroup(c)
		if err != nil {
			return err
		}
		ctx := context.Background()
		if d := c.Duration("timeout"); d > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, d)
			defer cancel()
		}
		switch state := c.Args().Get(1); state {
		case "frozen":
			return m.WaitFrozen(ctx, name)
		case "thawed":
			return m.WaitThawed(ctx, name)
		default:
			return fmt.Errorf("unknown freezer state %q", state)
		}
	},
	SkipArgReorder: true,
}
