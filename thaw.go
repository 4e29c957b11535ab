//go:build linux
// +build linux

package main

import (
	"github.com/urfave/cli"
)

var thawCommand = cli.Command{
	Name:  "thaw",
	Usage: "resume every task in a group",
	ArgsUsage: `<group-name>`,
	Action: func(context *cli.Context) error {
		if err := checkArgs(context, 1, exactArgs); err != nil {
			return err
		}
		m, name, err := managerAndGroup(context)
		if err != nil {
			return err
		}
		return m.Thaw(name)
	},
	SkipArgReorder: true,
}
