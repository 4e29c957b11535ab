package cgroups

import (
	"context"
	"strings"

	"github.com/pkg/errors"
)

// State is a freezer state, spelled the way the kernel reports it.
type State string

const (
	Frozen State = "FROZEN"
	Thawed State = "THAWED"
	// Freezing is reported while a freeze is still propagating to the
	// group's tasks. It is only ever read back, never written, and the
	// wait loops treat it as not there yet.
	Freezing State = "FREEZING"
)

// freezerFile resolves the freeze-state control file of the group.
func (m *Manager) freezerFile(name string) string {
	return m.config.Path(name, m.config.subsystem(Freezer)) + freezerStateFile
}

// Freeze asks the kernel to freeze every task in the group. The write
// returns before the tasks are actually frozen; use WaitFrozen to
// block until the transition finishes. The root group cannot be
// frozen: the empty name fails with ErrPrecondition and nothing is
// written.
func (m *Manager) Freeze(name string) error {
	if name == "" {
		return errors.Wrap(ErrPrecondition, "freeze root group")
	}
	return writeFile(m.freezerFile(name), string(Frozen))
}

// Thaw resumes every task in the group.
func (m *Manager) Thaw(name string) error {
	return writeFile(m.freezerFile(name), string(Thawed))
}

// FreezerState reads the group's current freezer state.
func (m *Manager) FreezerState(name string) (State, error) {
	line, err := readLine(m.freezerFile(name))
	if err != nil {
		return "", err
	}
	return State(strings.TrimSpace(line)), nil
}

// WaitFrozen blocks until the group reports FROZEN. Like Freeze it
// rejects the root group with ErrPrecondition.
func (m *Manager) WaitFrozen(ctx context.Context, name string) error {
	if name == "" {
		return errors.Wrap(ErrPrecondition, "wait on root group")
	}
	return m.waitState(ctx, name, Frozen)
}

// WaitThawed blocks until the group reports THAWED.
func (m *Manager) WaitThawed(ctx context.Context, name string) error {
	return m.waitState(ctx, name, Thawed)
}

// waitState polls the freeze-state file until its first line is
// exactly the wanted label with its terminator; a FREEZING line keeps
// the loop going. The loop itself is unbounded, cancellation belongs
// to the caller through ctx. A non-zero Config.PollInterval paces the
// reads; zero re-reads as fast as the kernel answers.
func (m *Manager) waitState(ctx context.Context, name string, want State) error {
	var (
		file = m.freezerFile(name)
		line = string(want) + "\n"
		lim  = m.config.newPoller()
	)
	for {
		if err := pollTick(ctx, lim); err != nil {
			return errors.Wrapf(err, "wait for group %q to reach %s", name, want)
		}
		got, err := readLine(file)
		if err != nil {
			return errors.Wrapf(err, "wait for group %q to reach %s", name, want)
		}
		if got == line {
			return nil
		}
	}
}
