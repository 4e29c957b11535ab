package proc

import (
	"os"
	"testing"
)

func TestTids(t *testing.T) {
	tids, err := Tids(os.Getpid())
	if err != nil {
		t.Fatal(err)
	}
	if len(tids) == 0 {
		t.Fatal("no threads reported")
	}
	for _, tid := range tids {
		if tid == os.Getpid() {
			return
		}
	}
	t.Errorf("main thread %d missing from %v", os.Getpid(), tids)
}

func TestTidsMissing(t *testing.T) {
	if _, err := Tids(0); err == nil {
		t.Fatal("Tids(0) did not fail")
	}
}

func TestStat(t *testing.T) {
	stat, err := Stat(os.Getpid())
	if err != nil {
		t.Fatal(err)
	}
	if stat.PID != uint(os.Getpid()) {
		t.Errorf("PID = %d, want %d", stat.PID, os.Getpid())
	}
	if stat.Name == "" {
		t.Error("empty name")
	}
}

func TestParseStat(t *testing.T) {
	for _, test := range []struct {
		name string
		data string
		pid  uint
		comm string
		s    State
	}{
		{
			"name with space",
			"89653 (gunicorn: maste) S 89630 89653 89653 0 -1 4194560 29689 28896 0 3 146 32 76 19 20 0 1 0 2971844 52965376 3920 18446744073709551615 1 1 0 0 0 0 0 16781312 137447943 0 0 0 17 1 0 0 0 0 0 0 0 0 0 0 0 0 0",
			89653, "gunicorn: maste", Sleeping,
		},
		{
			"name with parens",
			"1234 (a(b)c) R 1 1234 1234 0 -1 0 0 0 0 0",
			1234, "a(b)c", Running,
		},
		{
			"plain",
			"7 (sleep) T 1 7 7 0 -1 0",
			7, "sleep", Stopped,
		},
	} {
		stat, err := parseStat(test.data)
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		if stat.PID != test.pid || stat.Name != test.comm || stat.State != test.s {
			t.Errorf("%s: parseStat = %+v, want pid %d name %q state %q",
				test.name, stat, test.pid, test.comm, test.s)
		}
	}

	for _, data := range []string{"", "12345", "1 (x"} {
		if _, err := parseStat(data); err == nil {
			t.Errorf("parseStat(%q) did not fail", data)
		}
	}
}

func TestStateString(t *testing.T) {
	if got := Zombie.String(); got != "zombie" {
		t.Errorf("Zombie.String() = %q", got)
	}
	if got := State('?').String(); got != "unknown (?)" {
		t.Errorf("unknown state = %q", got)
	}
}
