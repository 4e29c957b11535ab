//go:build linux
// +build linux

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli"

	"github.com/lipeining/gocgroup/cgroups"
)

const formatOptions = `table or json`

// groupState is the listing row for one group.
type groupState struct {
	// Name is the group's directory name.
	Name string `json:"name"`
	// State is the freezer state of the group.
	State string `json:"state"`
	// Tasks is the number of member tasks.
	Tasks int `json:"tasks"`
}

var listCommand = cli.Command{
	Name:  "list",
	Usage: "lists the groups under the configured root",
	ArgsUsage: `

Where the root is specified via the global option "--root"
(default: "/sys/fs/cgroup/").

EXAMPLE 1:
To list groups under the default root:
       # gocgroup list

EXAMPLE 2:
To list groups under a scratch hierarchy:
       # gocgroup --root /tmp/hierarchy list`,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "format, f",
			Value: "table",
			Usage: `select one of: ` + formatOptions,
		},
		cli.BoolFlag{
			Name:  "quiet, q",
			Usage: "display only group names",
		},
	},
	Action: func(context *cli.Context) error {
		if err := checkArgs(context, 0, exactArgs); err != nil {
			return err
		}
		s, err := getGroups(context)
		if err != nil {
			return err
		}

		if context.Bool("quiet") {
			for _, item := range s {
				fmt.Println(item.Name)
			}
			return nil
		}

		switch context.String("format") {
		case "table":
			w := tabwriter.NewWriter(os.Stdout, 12, 1, 3, ' ', 0)
			fmt.Fprint(w, "NAME\tSTATE\tTASKS\n")
			for _, item := range s {
				fmt.Fprintf(w, "%s\t%s\t%d\n",
					item.Name,
					item.State,
					item.Tasks)
			}
			if err := w.Flush(); err != nil {
				return err
			}
		case "json":
			if err := json.NewEncoder(os.Stdout).Encode(s); err != nil {
				return err
			}
		default:
			return errors.New("invalid format option")
		}
		return nil
	},
}

// getGroups scans the group directories under the first configured
// subsystem and snapshots each one. Groups whose snapshot fails, for
// example because they exist in one hierarchy only, are reported to
// stderr and skipped.
func getGroups(context *cli.Context) ([]groupState, error) {
	m, err := newManager(context)
	if err != nil {
		return nil, err
	}
	cfg := m.Config()
	var sub cgroups.Name
	if len(cfg.Subsystems) > 0 {
		sub = cfg.Subsystems[0]
	}
	entries, err := os.ReadDir(cfg.Path("", sub))
	if err != nil {
		return nil, err
	}

	var s []groupState
	for _, item := range entries {
		if !item.IsDir() {
			continue
		}
		stats, err := m.Stat(item.Name())
		if err != nil {
			fmt.Fprintf(os.Stderr, "stat group %s: %v\n", item.Name(), err)
			continue
		}
		s = append(s, groupState{
			Name:  item.Name(),
			State: string(stats.State),
			Tasks: len(stats.Tasks),
		})
	}
	return s, nil
}
