//go:build linux
// +build linux

package main

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var applyCommand = cli.Command{
	Name:  "apply",
	Usage: "reconcile the groups declared in the config file",
	ArgsUsage: `

Reads the TOML file given with the global --config flag and, for each
declared group in order: creates it, writes its attributes, moves its
tasks in, and freezes it when marked frozen. The first failure stops
the run, leaving earlier groups applied.

EXAMPLE:

       # gocgroup --config groups.toml apply`,
	Action: func(context *cli.Context) error {
		if err := checkArgs(context, 0, exactArgs); err != nil {
			return err
		}
		path := context.GlobalString("config")
		if path == "" {
			return errors.New("apply requires --config")
		}
		fc, err := loadFileConfig(context)
		if err != nil {
			return err
		}
		m, err := newManager(context)
		if err != nil {
			return err
		}
		for _, g := range fc.Groups {
			if err := m.Create(g.Name); err != nil {
				return err
			}
			if err := m.Apply(g.Name, g.Attributes()); err != nil {
				return err
			}
			for _, tid := range g.Tasks {
				if err := m.AddTask(g.Name, tid); err != nil {
					return err
				}
			}
			if g.Frozen {
				if err := m.Freeze(g.Name); err != nil {
					return err
				}
			}
			logrus.Debugf("applied group %q", g.Name)
		}
		return nil
	},
	SkipArgReorder: true,
}
