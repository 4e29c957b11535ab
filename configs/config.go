// Package configs holds the file-backed configuration of the gocgroup
// tool: the hierarchy layout plus the set of groups to reconcile,
// declared in TOML.
package configs

import (
	"os"
	"path/filepath"
	"regexp"
	"time"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/lipeining/gocgroup/cgroups"
)

// groupNameRegex bounds group names to a single path segment.
var groupNameRegex = regexp.MustCompile(`^[\w+-\.]+$`)

// Duration decodes "150ms"-style TOML strings.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Group declares one group and what to apply to it.
type Group struct {
	// Name is the group's directory name, a single path segment.
	Name string `toml:"name"`

	// Cpus and Mems restrict placement. Nil leaves the kernel value
	// alone; an explicitly empty list is rejected when applied.
	Cpus []int `toml:"cpus"`
	Mems []int `toml:"mems"`

	// MemoryMigrate moves pages with the tasks when mems changes.
	MemoryMigrate *bool `toml:"memory_migrate"`
	// CpuExclusive reserves the group's cpus.
	CpuExclusive *bool `toml:"cpu_exclusive"`
	// MemHardwall confines kernel allocations to the group's mems.
	MemHardwall *bool `toml:"mem_hardwall"`
	// SchedRelaxDomainLevel is the kernel's -1..5 enumeration.
	SchedRelaxDomainLevel *int `toml:"sched_relax_domain_level"`

	// Tasks are moved into the group after the attributes are set.
	Tasks []int `toml:"tasks"`

	// Frozen freezes the group once it is set up.
	Frozen bool `toml:"frozen"`
}

// Config is the file form of the tool's runtime configuration.
type Config struct {
	// Root overrides the compiled-in mount root when set. The
	// environment variable cgroups.EnvRoot still wins over both.
	Root string `toml:"root"`

	// Unified collapses every subsystem into the mount root itself
	// instead of per-subsystem directories.
	Unified bool `toml:"unified"`

	// Subsystems lists the separately mounted hierarchies. Empty
	// means the default cpuset and freezer pair.
	Subsystems []string `toml:"subsystems"`

	// PollInterval paces the freeze and drain wait loops.
	PollInterval Duration `toml:"poll_interval"`

	// Groups are reconciled in declaration order by the apply
	// command.
	Groups []Group `toml:"group"`
}

// Load reads and validates a TOML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "validate %s", path)
	}
	return &c, nil
}

// Validate checks every declared group name against the configured
// root.
func (c *Config) Validate() error {
	root := c.Root
	if root == "" {
		root = cgroups.DefaultRoot
	}
	for _, g := range c.Groups {
		if err := ValidateGroupName(root, g.Name); err != nil {
			return err
		}
	}
	return nil
}

// ValidateGroupName rejects names that are not a plain path segment:
// empty names, separators, dot traversal, and names whose join under
// root resolves anywhere but directly inside it.
func ValidateGroupName(root, name string) error {
	if name == "" {
		return errors.New("group name is empty")
	}
	if name == "." || !groupNameRegex.MatchString(name) {
		return errors.Errorf("invalid group name %q", name)
	}
	joined, err := securejoin.SecureJoin(root, name)
	if err != nil {
		return errors.Wrapf(err, "group name %q", name)
	}
	if joined != filepath.Join(root, name) {
		return errors.Errorf("group name %q escapes %s", name, root)
	}
	return nil
}

// Cgroups maps the file configuration onto the library's layout
// configuration. A zero Config yields the default layout.
func (c *Config) Cgroups() *cgroups.Config {
	cfg := cgroups.DefaultConfig()
	if c.Root != "" {
		cfg.Root = c.Root
	}
	if c.Unified {
		cfg.Subsystems = nil
	} else if len(c.Subsystems) > 0 {
		subs := make([]cgroups.Name, len(c.Subsystems))
		for i, s := range c.Subsystems {
			subs[i] = cgroups.Name(s)
		}
		cfg.Subsystems = subs
	}
	cfg.PollInterval = c.PollInterval.Duration
	return cfg
}

// Attributes maps a group declaration onto the library's attribute
// set.
func (g *Group) Attributes() *cgroups.Attributes {
	return &cgroups.Attributes{
		Cpus:                  g.Cpus,
		Mems:                  g.Mems,
		MemoryMigrate:         g.MemoryMigrate,
		CpuExclusive:          g.CpuExclusive,
		MemHardwall:           g.MemHardwall,
		SchedRelaxDomainLevel: g.SchedRelaxDomainLevel,
	}
}
