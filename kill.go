//go:build linux
// +build linux

package main

import (
	"context"

	"github.com/urfave/cli"
)

var killCommand = cli.Command{
	Name:  "kill",
	Usage: "terminate a group's tasks, wait for it to drain, delete it",
	ArgsUsage: `<group-name>

Every member task is sent SIGTERM, except tasks of the calling process
itself. The command then waits for the membership list to empty and
removes the group. A task that ignores SIGTERM keeps the command
waiting; bound it with --timeout.`,
	Flags: []cli.Flag{
		cli.DurationFlag{
			Name:  "timeout",
			Usage: "give up draining after this long (0 waits forever)",
		},
	},
	Action: func(c *cli.Context) error {
		if err := checkArgs(c, 1, exactArgs); err != nil {
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
		return m.Kill(ctx, name)
	},
	SkipArgReorder: true,
}
