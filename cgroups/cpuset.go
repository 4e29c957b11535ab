package cgroups

import "github.com/pkg/errors"

// Scheduling relax domain levels span a fixed kernel enumeration:
// -1 requests the system default, 0 disables the behavior, 1 through
// 5 widen the domain searched for idle cpus.
const (
	SchedDomainDefault = -1
	SchedDomainMax     = 5
)

// cpusetFile resolves a control file owned by the cpuset subsystem.
func (m *Manager) cpusetFile(name, file string) string {
	return m.config.Path(name, m.config.subsystem(Cpuset)) + file
}

// SetCpus restricts the group's tasks to the given cpu ids. The list
// must be non-empty and is written comma-terminated: {0,1,3} becomes
// "0,1,3,". Whether the ids exist is the kernel's to decide.
func (m *Manager) SetCpus(name string, cpus []int) error {
	text, err := FormatList(cpus)
	if err != nil {
		return errors.Wrapf(err, "set cpus of group %q", name)
	}
	return writeFile(m.cpusetFile(name, cpusetCpus), text)
}

// SetMems restricts the group's tasks to the given memory node ids,
// encoded like SetCpus.
func (m *Manager) SetMems(name string, mems []int) error {
	text, err := FormatList(mems)
	if err != nil {
		return errors.Wrapf(err, "set mems of group %q", name)
	}
	return writeFile(m.cpusetFile(name, cpusetMems), text)
}

// SetMemoryMigrate controls whether pages move with the group's tasks
// when the memory nodes change.
func (m *Manager) SetMemoryMigrate(name string, enable bool) error {
	return writeFile(m.cpusetFile(name, cpusetMemoryMigrate), formatBool(enable))
}

// SetCpuExclusive reserves the group's cpus: no sibling group may use
// them while the flag is set.
func (m *Manager) SetCpuExclusive(name string, enable bool) error {
	return writeFile(m.cpusetFile(name, cpusetCpuExclusive), formatBool(enable))
}

// SetMemHardwall confines kernel allocations on behalf of the group's
// tasks to the group's memory nodes.
func (m *Manager) SetMemHardwall(name string, enable bool) error {
	return writeFile(m.cpusetFile(name, cpusetMemHardwall), formatBool(enable))
}

// SetSchedRelaxDomainLevel writes the scheduling relax domain level.
// Levels outside -1..5 fail with ErrPrecondition before anything is
// written.
func (m *Manager) SetSchedRelaxDomainLevel(name string, level int) error {
	if level < SchedDomainDefault || level > SchedDomainMax {
		return errors.Wrapf(ErrPrecondition, "scheduling domain level %d", level)
	}
	return writeFile(m.cpusetFile(name, cpusetSchedRelaxDomainLevel), formatInt(level))
}

// Cpus reads the group's cpu ids back from the kernel, expanding any
// range syntax in the reply.
func (m *Manager) Cpus(name string) ([]int, error) {
	line, err := readLine(m.cpusetFile(name, cpusetCpus))
	if err != nil {
		return nil, err
	}
	return ParseList(line)
}

// Mems reads the group's memory node ids back from the kernel.
func (m *Manager) Mems(name string) ([]int, error) {
	line, err := readLine(m.cpusetFile(name, cpusetMems))
	if err != nil {
		return nil, err
	}
	return ParseList(line)
}

// Tasks enumerates the group's member task ids from the cpuset
// subsystem's membership file. The list is a snapshot; tasks come and
// go underneath it.
func (m *Manager) Tasks(name string) ([]int, error) {
	return readInts(m.cpusetFile(name, cgroupTasks))
}
