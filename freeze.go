//go:build linux
// +build linux

package main

import (
	"github.com/urfave/cli"
)

var freezeCommand = cli.Command{
	Name:  "freeze",
	Usage: "freeze every task in a group",
	ArgsUsage: `<group-name>

The command returns once the kernel has accepted the request; the
tasks may still be freezing. Use "wait" to block until the transition
finishes. The root group cannot be frozen.`,
	Action: func(context *cli.Context) error {
		if err := checkArgs(context, 1, exactArgs); err != nil {
			return err
		}
		m, name, err := managerAndGroup(context)
		if err != nil {
			return err
		}
		return m.Freeze(name)
	},
	SkipArgReorder: true,
}
