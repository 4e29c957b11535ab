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
)

var stateCommand = cli.Command{
	Name:  "state",
	Usage: "print a snapshot of a group",
	ArgsUsage: `<group-name>

The snapshot is read field by field from the live control files, so it
is not atomic with respect to concurrent changes.`,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "format, f",
			Value: "table",
			Usage: `select one of: ` + formatOptions,
		},
	},
	Action: func(context *cli.Context) error {
		if err := checkArgs(context, 1, exactArgs); err != nil {
			return err
		}
		m, name, err := managerAndGroup(context)
		if err != nil {
			return err
		}
		stats, err := m.Stat(name)
		if err != nil {
			return err
		}
		switch context.String("format") {
		case "table":
			w := tabwriter.NewWriter(os.Stdout, 12, 1, 3, ' ', 0)
			fmt.Fprint(w, "NAME\tSTATE\tTASKS\tCPUS\tMEMS\n")
			fmt.Fprintf(w, "%s\t%s\t%d\t%v\t%v\n",
				name,
				stats.State,
				len(stats.Tasks),
				stats.Cpus,
				stats.Mems)
			return w.Flush()
		case "json":
			return json.NewEncoder(os.Stdout).Encode(stats)
		default:
			return errors.New("invalid format option")
		}
	},
	SkipArgReorder: true,
}
