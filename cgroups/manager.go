package cgroups

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// Manager performs group operations against the layout fixed by its
// Config. It carries no per-group state; methods may be called from
// any goroutine, with the kernel arbitrating concurrent writers.
type Manager struct {
	config *Config
}

// New returns a Manager over config, or over the default separated
// layout when config is nil.
func New(config *Config) *Manager {
	if config == nil {
		config = DefaultConfig()
	}
	return &Manager{config: config}
}

// Config returns the layout the manager operates on.
func (m *Manager) Config() *Config {
	return m.config
}

// Create makes the group's directory under every configured
// subsystem. A directory that already exists counts as success, so
// Create is idempotent; any other failure aborts the walk and leaves
// the directories created so far in place.
func (m *Manager) Create(name string) error {
	for _, sub := range m.config.subsystems() {
		if err := os.Mkdir(m.config.Path(name, sub), defaultDirPerm); err != nil && !os.IsExist(err) {
			return errors.Wrapf(err, "create group %q", name)
		}
	}
	logrus.Debugf("created cgroup %q", name)
	return nil
}

// Delete removes the group's directory under every configured
// subsystem. Unlike Create it is not idempotent: a directory that is
// missing, or that the kernel still considers busy, fails the walk
// with earlier subsystems already removed.
func (m *Manager) Delete(name string) error {
	for _, sub := range m.config.subsystems() {
		if err := os.Remove(m.config.Path(name, sub)); err != nil {
			return errors.Wrapf(err, "delete group %q", name)
		}
	}
	logrus.Debugf("deleted cgroup %q", name)
	return nil
}

// AddTask moves the task with the given id into the group by
// appending the id to the membership file of every configured
// subsystem. Existing members are unaffected.
func (m *Manager) AddTask(name string, tid int) error {
	for _, sub := range m.config.subsystems() {
		tasks := m.config.Path(name, sub) + cgroupTasks
		if err := appendFile(tasks, formatInt(tid)); err != nil {
			return errors.Wrapf(err, "add task %d to group %q", tid, name)
		}
	}
	return nil
}

// AddSelf moves the calling thread into the group. The id written is
// the OS thread's, so callers that need the membership to stick to a
// particular goroutine must hold runtime.LockOSThread across the call
// and beyond.
func (m *Manager) AddSelf(name string) error {
	return m.AddTask(name, unix.Gettid())
}

// Attributes collects the optional cpuset attributes of a group; nil
// fields are left untouched. It is the unit a config file group maps
// onto.
type Attributes struct {
	Cpus                  []int
	Mems                  []int
	MemoryMigrate         *bool
	CpuExclusive          *bool
	MemHardwall           *bool
	SchedRelaxDomainLevel *int
}

// Apply writes every set attribute of attrs to the group, stopping at
// the first failure. Attributes already written stay written.
func (m *Manager) Apply(name string, attrs *Attributes) error {
	if attrs == nil {
		return nil
	}
	if attrs.Cpus != nil {
		if err := m.SetCpus(name, attrs.Cpus); err != nil {
			return err
		}
	}
	if attrs.Mems != nil {
		if err := m.SetMems(name, attrs.Mems); err != nil {
			return err
		}
	}
	if attrs.MemoryMigrate != nil {
		if err := m.SetMemoryMigrate(name, *attrs.MemoryMigrate); err != nil {
			return err
		}
	}
	if attrs.CpuExclusive != nil {
		if err := m.SetCpuExclusive(name, *attrs.CpuExclusive); err != nil {
			return err
		}
	}
	if attrs.MemHardwall != nil {
		if err := m.SetMemHardwall(name, *attrs.MemHardwall); err != nil {
			return err
		}
	}
	if attrs.SchedRelaxDomainLevel != nil {
		if err := m.SetSchedRelaxDomainLevel(name, *attrs.SchedRelaxDomainLevel); err != nil {
			return err
		}
	}
	return nil
}
