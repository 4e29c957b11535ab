/*
   Copyright The containerd Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package cgroups manages named groups of tasks through the kernel's
// control-group pseudo-filesystem: every group is a directory under a
// mount root, every control attribute a pseudo-file read and written
// as formatted text. The package holds no state of its own; a group is
// only a name, and everything behind that name lives in the kernel.
package cgroups

import (
	"os"
	"strings"
	"time"
)

// Name is a typed name for a cgroup subsystem
type Name string

const (
	// Cpuset owns task placement: cpus, memory nodes and the related
	// flags.
	Cpuset Name = "cpuset"
	// Freezer owns the freeze/thaw state of a group.
	Freezer Name = "freezer"
)

// Control-file names inside a group's directory.
const (
	cgroupTasks                 = "tasks"
	cpusetCpus                  = "cpuset.cpus"
	cpusetMems                  = "cpuset.mems"
	cpusetMemoryMigrate         = "cpuset.memory_migrate"
	cpusetCpuExclusive          = "cpuset.cpu_exclusive"
	cpusetMemHardwall           = "cpuset.mem_hardwall"
	cpusetSchedRelaxDomainLevel = "cpuset.sched_relax_domain_level"
	freezerStateFile            = "freezer.state"

	defaultDirPerm = 0755
)

// defaultFilePerm is a var so that the test framework can change the
// filemode of all files created when the tests are running. The
// difference between the tests and real world use is that files like
// "tasks" will exist when writing to a real cgroup filesystem and do
// not exist prior when running in the tests. this is set to a non 0
// value in the test code
var defaultFilePerm = os.FileMode(0)

// DefaultRoot is the compiled-in mount point of the cgroup hierarchy.
const DefaultRoot = "/sys/fs/cgroup/"

// EnvRoot names the environment variable consulted on every path
// resolution. When set it overrides Config.Root, so a harness can
// redirect every operation into a scratch directory without touching
// the configuration.
const EnvRoot = "GOCGROUP_PATH"

// Config fixes the layout of the hierarchy for the lifetime of a
// process: the mount root and the set of separately mounted
// subsystems. It is built once at startup and shared by reference;
// every group operation walks the same subsystem list.
type Config struct {
	// Root is the mount point used when EnvRoot is not set.
	Root string

	// Subsystems lists the per-subsystem directories under the root.
	// When empty, subsystems are not separated and every control file
	// lives directly under the root.
	Subsystems []Name

	// PollInterval paces the wait loops (WaitFrozen, WaitThawed and
	// the drain in Kill). Zero keeps the tight spin.
	PollInterval time.Duration
}

// DefaultConfig returns the separated layout: cpuset and freezer each
// mounted in their own directory under /sys/fs/cgroup/.
func DefaultConfig() *Config {
	return &Config{
		Root:       DefaultRoot,
		Subsystems: []Name{Cpuset, Freezer},
	}
}

// SingleConfig returns the collapsed layout used when everything is
// mounted in one directory.
func SingleConfig() *Config {
	return &Config{Root: DefaultRoot}
}

// Path builds the directory of group under subsystem. This is pure
// string construction and never fails: the environment override is
// consulted on every call, the subsystem segment is dropped when
// subsystems are not separated, the empty group names the root group,
// and the result always ends with a separator. No part of the path is
// checked for existence.
func (c *Config) Path(group string, subsystem Name) string {
	root := c.Root
	if env := os.Getenv(EnvRoot); env != "" {
		root = env
	}
	var b strings.Builder
	b.WriteString(root)
	if !strings.HasSuffix(root, "/") {
		b.WriteByte('/')
	}
	if len(c.Subsystems) > 0 && subsystem != "" {
		b.WriteString(string(subsystem))
		b.WriteByte('/')
	}
	if group != "" {
		b.WriteString(group)
		b.WriteByte('/')
	}
	return b.String()
}

// subsystems returns the segments a multi-subsystem operation walks:
// the configured list, or the single empty segment of the collapsed
// layout.
func (c *Config) subsystems() []Name {
	if len(c.Subsystems) == 0 {
		return []Name{""}
	}
	return c.Subsystems
}

// subsystem maps the subsystem responsible for an attribute onto the
// configured layout: in the collapsed layout every attribute lives
// under the single root and the segment is empty.
func (c *Config) subsystem(want Name) Name {
	if len(c.Subsystems) == 0 {
		return ""
	}
	return want
}
