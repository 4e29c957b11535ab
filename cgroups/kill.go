package cgroups

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"

	"github.com/lipeining/gocgroup/proc"
)

// Kill terminates every task in the group that does not belong to the
// calling process, waits for the membership file to drain, and then
// deletes the group.
//
// The caller's own threads are snapshotted from /proc first and never
// signalled, so a process may tear down a group it is itself a member
// of. The first failed signal aborts the operation. The drain is
// unbounded: if a task ignores SIGTERM, or the group's only members
// are the caller's own threads, Kill blocks until ctx is cancelled.
// Config.PollInterval paces the drain like the freezer waits. A
// membership file that no longer exists reads as drained, since
// control files only disappear together with their group.
func (m *Manager) Kill(ctx context.Context, name string) error {
	own, err := proc.Tids(os.Getpid())
	if err != nil {
		return errors.Wrapf(err, "kill group %q", name)
	}
	mine := make(map[int]struct{}, len(own))
	for _, tid := range own {
		mine[tid] = struct{}{}
	}

	tasks := m.cpusetFile(name, cgroupTasks)
	tids, err := readMembers(tasks)
	if err != nil {
		return errors.Wrapf(err, "kill group %q", name)
	}
	for _, tid := range tids {
		if _, ok := mine[tid]; ok {
			continue
		}
		if err := unix.Kill(tid, unix.SIGTERM); err != nil {
			return errors.Wrapf(err, "signal task %d of group %q", tid, name)
		}
		logrus.Debugf("sent SIGTERM to task %d of cgroup %q", tid, name)
	}

	lim := m.config.newPoller()
	for len(tids) > 0 {
		if err := pollTick(ctx, lim); err != nil {
			return errors.Wrapf(err, "drain group %q", name)
		}
		if tids, err = readMembers(tasks); err != nil {
			return errors.Wrapf(err, "drain group %q", name)
		}
	}
	return m.Delete(name)
}

// readMembers reads a group's membership file, treating a file that
// does not exist as an empty membership.
func readMembers(path string) ([]int, error) {
	tids, err := readInts(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	return tids, err
}
