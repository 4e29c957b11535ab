//go:build linux
// +build linux

package main

import (
	"strconv"

	"github.com/urfave/cli"
)

var addCommand = cli.Command{
	Name:  "add",
	Usage: "move a task into a group",
	ArgsUsage: `<group-name> [task-id]

Where "[task-id]" is the id to move; without it the calling process
itself joins the group. Existing members are unaffected.`,
	Action: func(context *cli.Context) error {
		if err := checkArgs(context, 1, minArgs); err != nil {
			return err
		}
		if err := checkArgs(context, 2, maxArgs); err != nil {
			return err
		}
		m, name, err := managerAndGroup(context)
		if err != nil {
			return err
		}
		if arg := context.Args().Get(1); arg != "" {
			tid, err := strconv.Atoi(arg)
			if err != nil {
				return err
			}
			return m.AddTask(name, tid)
		}
		return m.AddSelf(name)
	},
	SkipArgReorder: true,
}
