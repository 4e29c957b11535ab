//go:build linux
// +build linux

package main

import (
	"github.com/urfave/cli"
)

var createCommand = cli.Command{
	Name:  "create",
	Usage: "create a group under every configured subsystem",
	ArgsUsage: `<group-name>

Where "<group-name>" is the directory name of the group, a single path
segment. Creating a group that already exists succeeds.`,
	Action: func(context *cli.Context) error {
		if err := checkArgs(context, 1, exactArgs); err != nil {
			return err
		}
		m, name, err := managerAndGroup(context)
		if err != nil {
			return err
		}
		return m.Create(name)
	},
	SkipArgReorder: true,
}
