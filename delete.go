//go:build linux
// +build linux

package main

import (
	"github.com/urfave/cli"
)

var deleteCommand = cli.Command{
	Name:  "delete",
	Usage: "remove a group from every configured subsystem",
	ArgsUsage: `<group-name>

The group must be empty: the kernel refuses to remove a group that
still has member tasks or child groups.`,
	Action: func(context *cli.Context) error {
		if err := checkArgs(context, 1, exactArgs); err != nil {
			return err
		}
		m, name, err := managerAndGroup(context)
		if err != nil {
			return err
		}
		return m.Delete(name)
	},
	SkipArgReorder: true,
}
