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

	"github.com/lipeining/gocgroup/proc"
)

var psCommand = cli.Command{
	Name:  "ps",
	Usage: "ps displays the tasks inside a group",
	ArgsUsage: `<group-name> [ps options]`,
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
		tids, err := m.Tasks(name)
		if err != nil {
			return err
		}
		switch context.String("format") {
		case "table":
			w := tabwriter.NewWriter(os.Stdout, 12, 1, 3, ' ', 0)
			fmt.Fprint(w, "TID\tNAME\tSTATE\n")
			for _, tid := range tids {
				stat, err := proc.Stat(tid)
				if err != nil {
					// the task can exit between the membership read
					// and the /proc read
					fmt.Fprintf(w, "%d\t-\t-\n", tid)
					continue
				}
				fmt.Fprintf(w, "%d\t%s\t%s\n", tid, stat.Name, stat.State)
			}
			return w.Flush()
		case "json":
			return json.NewEncoder(os.Stdout).Encode(tids)
		default:
			return errors.New("invalid format option")
		}
	},
	SkipArgReorder: true,
}
