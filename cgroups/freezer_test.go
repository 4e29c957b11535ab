package cgroups

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"
)

func TestFreezeThaw(t *testing.T) {
	m := newTestManager(t)
	if err := m.Create("job1"); err != nil {
		t.Fatal(err)
	}
	file := m.Config().Path("job1", Freezer) + "freezer.state"

	if err := m.Freeze("job1"); err != nil {
		t.Fatal(err)
	}
	if got := readTestFile(t, file); got != "FROZEN" {
		t.Fatalf("freezer.state = %q, want %q", got, "FROZEN")
	}
	if err := m.Thaw("job1"); err != nil {
		t.Fatal(err)
	}
	if got := readTestFile(t, file); got != "THAWED" {
		t.Fatalf("freezer.state = %q, want %q", got, "THAWED")
	}
}

func TestFreezeRoot(t *testing.T) {
	m := newTestManager(t)
	if err := m.Freeze(""); !errors.Is(err, ErrPrecondition) {
		t.Fatalf("Freeze(root) = %v, want ErrPrecondition", err)
	}
	// and nothing was written
	if _, err := os.Stat(m.Config().Path("", Freezer) + "freezer.state"); !os.IsNotExist(err) {
		t.Fatal("root freezer.state was touched")
	}
	if err := m.WaitFrozen(context.Background(), ""); !errors.Is(err, ErrPrecondition) {
		t.Fatalf("WaitFrozen(root) = %v, want ErrPrecondition", err)
	}
}

func TestFreezerState(t *testing.T) {
	m := newTestManager(t)
	if err := m.Create("job1"); err != nil {
		t.Fatal(err)
	}
	file := m.Config().Path("job1", Freezer) + "freezer.state"
	for _, test := range []struct {
		content string
		want    State
	}{
		{"THAWED\n", Thawed},
		{"FREEZING\n", Freezing},
		{"FROZEN\n", Frozen},
	} {
		if err := os.WriteFile(file, []byte(test.content), 0666); err != nil {
			t.Fatal(err)
		}
		got, err := m.FreezerState("job1")
		if err != nil {
			t.Fatal(err)
		}
		if got != test.want {
			t.Errorf("FreezerState = %q, want %q", got, test.want)
		}
	}
}

func TestWaitFrozen(t *testing.T) {
	m := newTestManager(t)
	if err := m.Create("job1"); err != nil {
		t.Fatal(err)
	}
	file := m.Config().Path("job1", Freezer) + "freezer.state"
	if err := os.WriteFile(file, []byte("FREEZING\n"), 0666); err != nil {
		t.Fatal(err)
	}

	// stand in for the kernel finishing the transition
	go func() {
		time.Sleep(30 * time.Millisecond)
		os.WriteFile(file, []byte("FROZEN\n"), 0666)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := m.WaitFrozen(ctx, "job1"); err != nil {
		t.Fatal(err)
	}
}

func TestWaitThawed(t *testing.T) {
	m := newTestManager(t)
	if err := m.Create("job1"); err != nil {
		t.Fatal(err)
	}
	file := m.Config().Path("job1", Freezer) + "freezer.state"
	if err := os.WriteFile(file, []byte("FROZEN\n"), 0666); err != nil {
		t.Fatal(err)
	}

	go func() {
		time.Sleep(30 * time.Millisecond)
		os.WriteFile(file, []byte("THAWED\n"), 0666)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := m.WaitThawed(ctx, "job1"); err != nil {
		t.Fatal(err)
	}
}

func TestWaitMatchesWholeLine(t *testing.T) {
	m := newTestManager(t)
	if err := m.Create("job1"); err != nil {
		t.Fatal(err)
	}
	file := m.Config().Path("job1", Freezer) + "freezer.state"
	// an unterminated label must not satisfy the wait
	if err := os.WriteFile(file, []byte("FROZEN"), 0666); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := m.WaitFrozen(ctx, "job1"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("WaitFrozen = %v, want deadline exceeded", err)
	}
}

func TestWaitCancelled(t *testing.T) {
	m := newTestManager(t)
	if err := m.Create("job1"); err != nil {
		t.Fatal(err)
	}
	file := m.Config().Path("job1", Freezer) + "freezer.state"
	if err := os.WriteFile(file, []byte("FREEZING\n"), 0666); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()
	if err := m.WaitFrozen(ctx, "job1"); !errors.Is(err, context.Canceled) {
		t.Fatalf("WaitFrozen = %v, want canceled", err)
	}
}

func TestWaitDeadline(t *testing.T) {
	m := newTestManager(t)
	if err := m.Create("job1"); err != nil {
		t.Fatal(err)
	}
	file := m.Config().Path("job1", Freezer) + "freezer.state"
	if err := os.WriteFile(file, []byte("FREEZING\n"), 0666); err != nil {
		t.Fatal(err)
	}

	// pace the loop far beyond the deadline: the limiter refuses the
	// second tick outright instead of the deadline firing mid-sleep,
	// and the caller must still see the context's error
	m.Config().PollInterval = time.Hour
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := m.WaitFrozen(ctx, "job1"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("WaitFrozen = %v, want deadline exceeded", err)
	}
}

func TestWaitMissingStateFile(t *testing.T) {
	m := newTestManager(t)
	if err := m.Create("job1"); err != nil {
		t.Fatal(err)
	}

	// freezer.state was never written; the wait must surface the read
	// failure immediately instead of polling until the deadline
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := m.WaitFrozen(ctx, "job1"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("WaitFrozen = %v, want not-exist", err)
	}
}
