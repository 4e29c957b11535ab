package cgroups

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestMain(m *testing.M) {
	// control files exist up front on a real cgroup filesystem; in the
	// scratch hierarchies used here they are created on first write
	defaultFilePerm = 0666
	os.Unsetenv(EnvRoot)
	code := m.Run()
	defaultFilePerm = 0
	os.Exit(code)
}

// newTestManager builds a manager over a scratch hierarchy with the
// default separated layout and a gentle poll interval.
func newTestManager(t *testing.T) *Manager {
	t.Helper()
	root := t.TempDir()
	for _, sub := range []Name{Cpuset, Freezer} {
		if err := os.Mkdir(filepath.Join(root, string(sub)), 0755); err != nil {
			t.Fatal(err)
		}
	}
	return New(&Config{
		Root:         root,
		Subsystems:   []Name{Cpuset, Freezer},
		PollInterval: time.Millisecond,
	})
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestPath(t *testing.T) {
	separated := &Config{Root: "/sys/fs/cgroup/", Subsystems: []Name{Cpuset, Freezer}}
	single := &Config{Root: "/cgroups"}
	for _, test := range []struct {
		name      string
		config    *Config
		group     string
		subsystem Name
		want      string
	}{
		{"separated cpuset", separated, "job1", Cpuset, "/sys/fs/cgroup/cpuset/job1/"},
		{"separated freezer", separated, "job1", Freezer, "/sys/fs/cgroup/freezer/job1/"},
		{"separated root group", separated, "", Cpuset, "/sys/fs/cgroup/cpuset/"},
		{"single drops the subsystem", single, "job1", Cpuset, "/cgroups/job1/"},
		{"single root group", single, "", "", "/cgroups/"},
		{"missing separator is added", &Config{Root: "/mnt/cg"}, "a", "", "/mnt/cg/a/"},
	} {
		if got := test.config.Path(test.group, test.subsystem); got != test.want {
			t.Errorf("%s: Path(%q, %q) = %q, want %q",
				test.name, test.group, test.subsystem, got, test.want)
		}
	}
}

func TestPathEnvOverride(t *testing.T) {
	config := DefaultConfig()

	// the override is consulted on every resolution, not cached
	t.Setenv(EnvRoot, "/tmp/scratch")
	if got, want := config.Path("job1", Cpuset), "/tmp/scratch/cpuset/job1/"; got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
	t.Setenv(EnvRoot, "/tmp/other/")
	if got, want := config.Path("job1", Cpuset), "/tmp/other/cpuset/job1/"; got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
	t.Setenv(EnvRoot, "")
	if got, want := config.Path("job1", Cpuset), "/sys/fs/cgroup/cpuset/job1/"; got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if got, want := config.Path("", Freezer), "/sys/fs/cgroup/freezer/"; got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
	if got, want := SingleConfig().Path("job1", Freezer), "/sys/fs/cgroup/job1/"; got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
}
