//go:build linux
// +build linux

package main

import (
	"strconv"

	"github.com/urfave/cli"

	"github.com/lipeining/gocgroup/cgroups"
)

var setCommand = cli.Command{
	Name:  "set",
	Usage: "write cpuset attributes of a group",
	ArgsUsage: `<group-name>

EXAMPLE:
To pin a group to cpus 0 to 2 plus 7 and memory node 0:

       # gocgroup set --cpus 0-2,7 --mems 0 <group-name>

Flags not given leave the kernel's current value alone.`,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "cpus",
			Usage: "cpu ids the group may run on, comma separated, ranges allowed",
		},
		cli.StringFlag{
			Name:  "mems",
			Usage: "memory node ids the group may allocate from, comma separated, ranges allowed",
		},
		cli.StringFlag{
			Name:  "memory-migrate",
			Usage: "move pages with the tasks when mems changes (true|false)",
		},
		cli.StringFlag{
			Name:  "cpu-exclusive",
			Usage: "reserve the group's cpus (true|false)",
		},
		cli.StringFlag{
			Name:  "mem-hardwall",
			Usage: "confine kernel allocations to the group's mems (true|false)",
		},
		cli.StringFlag{
			Name:  "sched-relax-domain-level",
			Usage: "scheduling relax domain level, -1 to 5",
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
		attrs, err := parseAttributes(
			context.String("cpus"),
			context.String("mems"),
			context.String("memory-migrate"),
			context.String("cpu-exclusive"),
			context.String("mem-hardwall"),
			context.String("sched-relax-domain-level"),
		)
		if err != nil {
			return err
		}
		return m.Apply(name, attrs)
	},
	SkipArgReorder: true,
}

// parseAttributes builds the attribute set from flag text. Empty
// strings leave the matching field nil.
func parseAttributes(cpus, mems, migrate, exclusive, hardwall, domain string) (*cgroups.Attributes, error) {
	attrs := &cgroups.Attributes{}
	var err error
	if cpus != "" {
		if attrs.Cpus, err = cgroups.ParseList(cpus); err != nil {
			return nil, err
		}
	}
	if mems != "" {
		if attrs.Mems, err = cgroups.ParseList(mems); err != nil {
			return nil, err
		}
	}
	if attrs.MemoryMigrate, err = parseBoolOrAuto(migrate); err != nil {
		return nil, err
	}
	if attrs.CpuExclusive, err = parseBoolOrAuto(exclusive); err != nil {
		return nil, err
	}
	if attrs.MemHardwall, err = parseBoolOrAuto(hardwall); err != nil {
		return nil, err
	}
	if domain != "" {
		level, err := strconv.Atoi(domain)
		if err != nil {
			return nil, err
		}
		attrs.SchedRelaxDomainLevel = &level
	}
	return attrs, nil
}
