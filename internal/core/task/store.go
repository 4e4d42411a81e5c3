package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// maxIDAttempts bounds how many times the store asks its IDFunc for a fresh
// candidate before falling back to a counter suffix.
const maxIDAttempts = 8

// Subscriber is invoked synchronously after every effective mutation.
type Subscriber func(Change)

// Store is the authoritative, ordered, in-memory task collection.
//
// Every mutation is synchronous and visible to the next read. Calls that
// would have no effect (blank text, unknown id) are silent no-ops and report
// false instead of returning an error.
//
// Store is not safe for concurrent use; it is driven by a single actor.
type Store struct {
	tasks       []Task
	issued      map[string]struct{}
	fallback    uint64
	newID       IDFunc
	now         func() time.Time
	log         zerolog.Logger
	subscribers []Subscriber
}

// Option configures a Store.
type Option func(*Store)

// WithIDFunc sets the id generator. Defaults to UUIDs.
func WithIDFunc(fn IDFunc) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithClock sets the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger used for mutation debug logging.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		issued: make(map[string]struct{}),
		newID:  UUIDs(),
		now:    time.Now,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers fn to be called after each effective mutation.
func (s *Store) Subscribe(fn Subscriber) {
	s.subscribers = append(s.subscribers, fn)
}

// Add appends a task with the trimmed text. Blank text creates nothing and
// returns false.
func (s *Store) Add(raw string) (string, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", false
	}

	t := Task{
		ID:        s.nextID(),
		Text:      text,
		CreatedAt: s.now(),
	}
	s.tasks = append(s.tasks, t)

	s.log.Debug().Str("id", t.ID).Msg("task added")
	s.publish(Change{Kind: ChangeAdded, ID: t.ID})
	return t.ID, true
}

// Toggle flips the completed flag of the task with id.
func (s *Store) Toggle(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}

	s.tasks[i].Completed = !s.tasks[i].Completed

	s.log.Debug().Str("id", id).Bool("completed", s.tasks[i].Completed).Msg("task toggled")
	s.publish(Change{Kind: ChangeToggled, ID: id})
	return true
}

// Update replaces the text of the task with id by the trimmed raw text.
// Blank text leaves the task unchanged.
func (s *Store) Update(id, raw string) bool {
	text := strings.TrimSpace(raw)
	if text == "" {
		return false
	}

	i := s.index(id)
	if i < 0 {
		return false
	}

	s.tasks[i].Text = text

	s.log.Debug().Str("id", id).Msg("task updated")
	s.publish(Change{Kind: ChangeUpdated, ID: id})
	return true
}

// Remove deletes the task with id. The remaining tasks keep their order.
func (s *Store) Remove(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}

	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)

	s.log.Debug().Str("id", id).Msg("task removed")
	s.publish(Change{Kind: ChangeRemoved, ID: id})
	return true
}

// ClearCompleted removes every completed task in one step and returns how
// many were removed.
func (s *Store) ClearCompleted() int {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}

	removed := len(s.tasks) - len(kept)
	clear(s.tasks[len(kept):])
	s.tasks = kept

	if removed == 0 {
		return 0
	}

	s.log.Debug().Int("removed", removed).Msg("completed tasks cleared")
	s.publish(Change{Kind: ChangeCleared})
	return removed
}

// List returns a copy of all tasks in insertion order.
func (s *Store) List() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get returns the task with id.
func (s *Store) Get(id string) (Task, bool) {
	i := s.index(id)
	if i < 0 {
		return Task{}, false
	}
	return s.tasks[i], true
}

// Counts returns the derived counters for the current collection.
func (s *Store) Counts() Counts {
	return CountOf(s.tasks)
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

func (s *Store) index(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// nextID returns an id that this store has never issued before.
func (s *Store) nextID() string {
	var candidate string
	for range maxIDAttempts {
		candidate = s.newID()
		if candidate == "" {
			continue
		}
		if _, taken := s.issued[candidate]; !taken {
			s.issued[candidate] = struct{}{}
			return candidate
		}
	}

	if candidate == "" {
		candidate = "task"
	}

	s.log.Warn().Str("candidate", candidate).Msg("id generator kept colliding, using counter suffix")

	for {
		s.fallback++
		id := fmt.Sprintf("%s-%d", candidate, s.fallback)
		if _, taken := s.issued[id]; !taken {
			s.issued[id] = struct{}{}
			return id
		}
	}
}

func (s *Store) publish(c Change) {
	for _, fn := range s.subscribers {
		fn(c)
	}
}
