package store

import (
	"sync"
	"testing"
	"time"
)

// fakeClock is a settable clock for tests
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock { return &fakeClock{now: t} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

var testStart = time.Date(2026, 3, 18, 8, 0, 0, 0, time.UTC)

func newStretchStore(t *testing.T) (*TaskStore, *fakeClock, string) {
	t.Helper()
	clock := newFakeClock(testStart)
	s := NewSeeded(clock.Now, []Seed{{Title: "Stretch"}})
	tasks := s.TodayTasks()
	if len(tasks) != 1 {
		t.Fatalf("expected 1 seeded task, got %d", len(tasks))
	}
	return s, clock, tasks[0].ID
}

func TestNewStartsEmpty(t *testing.T) {
	s := New(nil)
	if got := s.TodayTasks(); len(got) != 0 {
		t.Errorf("TodayTasks() = %d tasks, want 0", len(got))
	}
}

func TestAddTaskTrimsTitle(t *testing.T) {
	s, _, _ := newStretchStore(t)

	added := s.AddTask("  Read  ", nil)

	if added.Title != "Read" {
		t.Errorf("Title = %q, want %q", added.Title, "Read")
	}
	if added.Notification != nil {
		t.Error("expected no notification")
	}
	if len(added.CompletionLogs) != 0 {
		t.Errorf("expected empty log history, got %d", len(added.CompletionLogs))
	}
	if added.IsCompletedToday(testStart) {
		t.Error("new task should not be completed today")
	}

	tasks := s.TodayTasks()
	if len(tasks) != 2 || tasks[1].ID != added.ID {
		t.Fatalf("expected new task appended at the end, got %+v", tasks)
	}
	if tasks[0].Title != "Stretch" {
		t.Errorf("store order changed: first task is %q", tasks[0].Title)
	}
}

func TestAddTaskDoesNotValidate(t *testing.T) {
	s := New(nil)
	added := s.AddTask("   ", nil)
	if added.Title != "" {
		t.Errorf("Title = %q, want empty", added.Title)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestToggleCompleteRoundTrip(t *testing.T) {
	s, _, id := newStretchStore(t)

	s.ToggleComplete(id)
	task, _ := s.Task(id)
	if !task.IsCompletedToday(testStart) {
		t.Error("expected task completed after first toggle")
	}
	if got := task.StreakCount(testStart); got != 1 {
		t.Errorf("StreakCount() = %d, want 1", got)
	}

	s.ToggleComplete(id)
	task, _ = s.Task(id)
	if task.IsCompletedToday(testStart) {
		t.Error("expected task not completed after second toggle")
	}
	if got := task.StreakCount(testStart); got != 0 {
		t.Errorf("StreakCount() = %d, want 0", got)
	}
	if len(task.CompletionLogs) != 0 {
		t.Errorf("expected log history empty again, got %d", len(task.CompletionLogs))
	}
}

func TestToggleCompleteParity(t *testing.T) {
	s, _, id := newStretchStore(t)

	for i := 1; i <= 7; i++ {
		s.ToggleComplete(id)
		task, _ := s.Task(id)
		want := i%2 == 1
		if got := task.IsCompletedToday(testStart); got != want {
			t.Fatalf("after %d toggles IsCompletedToday() = %v, want %v", i, got, want)
		}
		if n := len(task.CompletionLogs); n > 1 {
			t.Fatalf("after %d toggles found %d logs for one day", i, n)
		}
	}
}

func TestToggleCompleteOnlyTouchesToday(t *testing.T) {
	s, clock, id := newStretchStore(t)

	s.ToggleComplete(id) // day 1
	clock.Advance(24 * time.Hour)
	s.ToggleComplete(id) // day 2
	s.ToggleComplete(id) // undo day 2

	task, _ := s.Task(id)
	if len(task.CompletionLogs) != 1 {
		t.Fatalf("expected yesterday's log to survive, got %d logs", len(task.CompletionLogs))
	}
	if !task.CompletedOn(testStart) {
		t.Error("expected remaining log on the first day")
	}
}

func TestToggleCompleteUnknownID(t *testing.T) {
	s, _, _ := newStretchStore(t)

	calls := 0
	s.Subscribe(func() { calls++ })

	s.ToggleComplete("does-not-exist")

	if calls != 0 {
		t.Errorf("expected no notification for unknown id, got %d", calls)
	}
	for _, task := range s.TodayTasks() {
		if len(task.CompletionLogs) != 0 {
			t.Error("unknown id toggle mutated a task")
		}
	}
}

func TestDeleteTask(t *testing.T) {
	s, _, id := newStretchStore(t)
	other := s.AddTask("Read", nil)

	s.DeleteTask(id)
	s.DeleteTask("missing")

	tasks := s.TodayTasks()
	if len(tasks) != 1 || tasks[0].ID != other.ID {
		t.Fatalf("TodayTasks() = %+v, want only %q", tasks, other.Title)
	}
	if _, ok := s.Task(id); ok {
		t.Error("deleted task is still retrievable")
	}
}

func TestSnapshotsAreIsolated(t *testing.T) {
	s, _, id := newStretchStore(t)
	s.ToggleComplete(id)

	tasks := s.TodayTasks()
	tasks[0].Title = "Mutated"
	tasks[0].CompletionLogs = nil

	task, _ := s.Task(id)
	if task.Title != "Stretch" || len(task.CompletionLogs) != 1 {
		t.Error("mutating a snapshot changed the store")
	}
}

func TestSubscribe(t *testing.T) {
	s, _, id := newStretchStore(t)

	var order []string
	cancelA := s.Subscribe(func() { order = append(order, "a") })
	s.Subscribe(func() {
		// State must already be updated when observers run
		task, _ := s.Task(id)
		if !task.IsCompletedToday(testStart) && len(order) == 1 {
			t.Error("observer ran before mutation was applied")
		}
		order = append(order, "b")
	})

	s.ToggleComplete(id)
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("notification order = %v, want [a b]", order)
	}

	cancelA()
	cancelA() // cancelling twice is harmless
	s.AddTask("Read", nil)
	if len(order) != 3 || order[2] != "b" {
		t.Errorf("after cancel, order = %v, want [a b b]", order)
	}
}

func TestTodayTasksIsUnfiltered(t *testing.T) {
	sat := time.Date(2026, 3, 21, 9, 0, 0, 0, time.UTC)
	s := NewSeeded(func() time.Time { return sat }, DefaultSeeds())

	if got := len(s.TodayTasks()); got != 3 {
		t.Errorf("TodayTasks() = %d tasks, want all 3", got)
	}
	// The morning stretch only reminds on weekdays
	if got := len(s.TasksScheduledOn(sat)); got != 2 {
		t.Errorf("TasksScheduledOn(Saturday) = %d tasks, want 2", got)
	}
}

func TestConcurrentToggleKeepsOneLogPerDay(t *testing.T) {
	s, _, id := newStretchStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.ToggleComplete(id)
		}()
	}
	wg.Wait()

	task, _ := s.Task(id)
	if len(task.CompletionLogs) != 0 {
		t.Errorf("after an even number of toggles expected 0 logs, got %d", len(task.CompletionLogs))
	}
}

func TestDefaultSeeds(t *testing.T) {
	seeds := DefaultSeeds()
	if len(seeds) != 3 {
		t.Fatalf("DefaultSeeds() = %d, want 3", len(seeds))
	}
	for _, seed := range seeds {
		if seed.Notification == nil {
			t.Errorf("seed %q has no notification", seed.Title)
			continue
		}
		if _, ok := seed.Notification.TimeString(); !ok {
			t.Errorf("seed %q has an invalid reminder time", seed.Title)
		}
	}
}
