package store

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/julianstephens/routinely/internal/logger"
	"github.com/julianstephens/routinely/internal/models"
)

// Clock returns the current time. Its location defines calendar days.
type Clock func() time.Time

// Seed describes a routine the store starts with.
type Seed struct {
	Title        string
	Notification *models.NotificationSetting
}

// TaskStore is the in-memory owner of all routine tasks.
//
// Tasks are kept in insertion order. Readers always get deep copies; every
// mutation goes through the store and is followed by a change notification.
// TaskStore is safe for concurrent use.
type TaskStore struct {
	mu          sync.Mutex
	clock       Clock
	tasks       []models.RoutineTask
	subscribers []subscriber
	nextSubID   int
}

type subscriber struct {
	id int
	fn func()
}

// New returns an empty store. A nil clock defaults to time.Now.
func New(clock Clock) *TaskStore {
	if clock == nil {
		clock = time.Now
	}
	return &TaskStore{
		clock: clock,
		tasks: []models.RoutineTask{},
	}
}

// NewSeeded returns a store pre-populated with seeds, in order.
func NewSeeded(clock Clock, seeds []Seed) *TaskStore {
	s := New(clock)
	now := s.clock()
	for _, seed := range seeds {
		s.tasks = append(s.tasks, models.NewRoutineTask(seed.Title, seed.Notification, now))
	}
	logger.Debug("Seeded task store", "count", len(seeds))
	return s
}

// DefaultSeeds are the example routines a fresh install starts with.
func DefaultSeeds() []Seed {
	return []Seed{
		{Title: "Morning stretch", Notification: &models.NotificationSetting{Hour: 7, Minute: 0, Weekdays: models.WorkWeek()}},
		{Title: "Brew coffee", Notification: &models.NotificationSetting{Hour: 8, Minute: 0, Weekdays: models.EveryDay()}},
		{Title: "Write journal", Notification: &models.NotificationSetting{Hour: 22, Minute: 30, Weekdays: models.EveryDay()}},
	}
}

// Now returns the store clock's current time.
func (s *TaskStore) Now() time.Time {
	return s.clock()
}

// TodayTasks returns every task in store order. It does not filter by the
// reminder weekdays; use TasksScheduledOn for that.
func (s *TaskStore) TodayTasks() []models.RoutineTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// TasksScheduledOn returns tasks whose reminder is active on day's weekday,
// plus tasks with no reminder.
func (s *TaskStore) TasksScheduledOn(day time.Time) []models.RoutineTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.RoutineTask{}
	for _, t := range s.tasks {
		if t.ScheduledOn(day) {
			out = append(out, t.Clone())
		}
	}
	return out
}

// Task returns a copy of the task with the given id.
func (s *TaskStore) Task(id string) (models.RoutineTask, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return models.RoutineTask{}, false
	}
	return s.tasks[i].Clone(), true
}

// Len returns the number of tasks.
func (s *TaskStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// ToggleComplete removes today's completion log for the task if present,
// otherwise records one at the current time. Unknown ids are ignored.
func (s *TaskStore) ToggleComplete(id string) {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		logger.Debug("Toggle ignored, task not found", "id", id)
		return
	}

	now := s.clock()
	task := &s.tasks[i]
	if j := task.LogIndexOn(now); j >= 0 {
		task.CompletionLogs = slices.Delete(task.CompletionLogs, j, j+1)
		logger.Debug("Unmarked routine", "id", id, "title", task.Title)
	} else {
		task.CompletionLogs = append(task.CompletionLogs, models.NewCompletionLog(now))
		logger.Debug("Marked routine", "id", id, "title", task.Title)
	}
	subs := s.subscribersLocked()
	s.mu.Unlock()

	notify(subs)
}

// AddTask appends a new task with a trimmed title and returns a copy of it.
// The title is not validated here; callers reject empty titles beforehand.
func (s *TaskStore) AddTask(title string, notification *models.NotificationSetting) models.RoutineTask {
	s.mu.Lock()
	task := models.NewRoutineTask(title, notification, s.clock())
	s.tasks = append(s.tasks, task)
	subs := s.subscribersLocked()
	s.mu.Unlock()

	logger.Info("Added routine", "id", task.ID, "title", task.Title)
	notify(subs)
	return task.Clone()
}

// DeleteTask removes the task with the given id. Unknown ids are ignored.
func (s *TaskStore) DeleteTask(id string) {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		logger.Debug("Delete ignored, task not found", "id", id)
		return
	}
	title := s.tasks[i].Title
	s.tasks = slices.Delete(s.tasks, i, i+1)
	subs := s.subscribersLocked()
	s.mu.Unlock()

	logger.Info("Deleted routine", "id", id, "title", title)
	notify(subs)
}

// Subscribe registers fn to be called after every mutation. Callbacks run
// synchronously on the mutating goroutine, in registration order, after the
// store's lock is released. The returned function cancels the subscription.
func (s *TaskStore) Subscribe(fn func()) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSubID++
	id := s.nextSubID
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.subscribers = slices.DeleteFunc(s.subscribers, func(sub subscriber) bool {
				return sub.id == id
			})
		})
	}
}

func (s *TaskStore) indexLocked(id string) int {
	id = strings.TrimSpace(id)
	return slices.IndexFunc(s.tasks, func(t models.RoutineTask) bool {
		return t.ID == id
	})
}

func (s *TaskStore) snapshotLocked() []models.RoutineTask {
	out := make([]models.RoutineTask, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out
}

func (s *TaskStore) subscribersLocked() []func() {
	fns := make([]func(), len(s.subscribers))
	for i, sub := range s.subscribers {
		fns[i] = sub.fn
	}
	return fns
}

func notify(fns []func()) {
	for _, fn := range fns {
		fn()
	}
}
