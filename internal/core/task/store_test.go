package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestStore_Add(t *testing.T) {
	t.Run("trims and appends", func(t *testing.T) {
		now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		store := NewStore(WithClock(fixedClock(now)))

		id, ok := store.Add("  Buy milk \n")
		require.True(t, ok)
		assert.NotEmpty(t, id)

		tasks := store.List()
		require.Len(t, tasks, 1)
		assert.Equal(t, id, tasks[0].ID)
		assert.Equal(t, "Buy milk", tasks[0].Text)
		assert.False(t, tasks[0].Completed)
		assert.Equal(t, now, tasks[0].CreatedAt)
	})

	t.Run("blank text is a no-op", func(t *testing.T) {
		store := NewStore()
		var changes []Change
		store.Subscribe(func(c Change) { changes = append(changes, c) })

		for _, s := range []string{"", " ", "\t", "\n \r\n", "   "} {
			id, ok := store.Add(s)
			assert.False(t, ok, "Add(%q)", s)
			assert.Empty(t, id, "Add(%q)", s)
		}

		assert.Equal(t, 0, store.Counts().Total)
		assert.Empty(t, changes)
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		store := NewStore()
		for _, s := range []string{"one", "two", "three"} {
			_, ok := store.Add(s)
			require.True(t, ok)
		}

		var texts []string
		for _, tk := range store.List() {
			texts = append(texts, tk.Text)
		}
		assert.Equal(t, []string{"one", "two", "three"}, texts)
	})
}

func TestStore_UniqueIDs(t *testing.T) {
	t.Run("default generator", func(t *testing.T) {
		store := NewStore(WithClock(fixedClock(time.Unix(0, 0))))

		seen := make(map[string]bool)
		for range 500 {
			id, ok := store.Add("same instant")
			require.True(t, ok)
			require.False(t, seen[id], "duplicate id %q", id)
			seen[id] = true
		}
	})

	t.Run("colliding generator", func(t *testing.T) {
		store := NewStore(WithIDFunc(func() string { return "1700000000000" }))

		seen := make(map[string]bool)
		for range 20 {
			id, ok := store.Add("task")
			require.True(t, ok)
			require.False(t, seen[id], "duplicate id %q", id)
			seen[id] = true
		}
	})

	t.Run("empty generator output", func(t *testing.T) {
		store := NewStore(WithIDFunc(func() string { return "" }))

		a, _ := store.Add("a")
		b, _ := store.Add("b")
		assert.NotEmpty(t, a)
		assert.NotEmpty(t, b)
		assert.NotEqual(t, a, b)
	})

	t.Run("ids are never reused after removal", func(t *testing.T) {
		store := NewStore(WithIDFunc(Sequence()))

		first, _ := store.Add("first")
		require.True(t, store.Remove(first))

		calls := 0
		reuse := NewStore(WithIDFunc(func() string {
			calls++
			return first
		}))
		a, _ := reuse.Add("a")
		reuse.Remove(a)
		b, _ := reuse.Add("b")
		assert.NotEqual(t, a, b)
		assert.Greater(t, calls, 1)

		second, _ := store.Add("second")
		assert.NotEqual(t, first, second)
	})
}

func TestStore_Toggle(t *testing.T) {
	store := NewStore()
	id, _ := store.Add("Write spec")
	other, _ := store.Add("Review PR")

	before := store.List()

	require.True(t, store.Toggle(id))
	got, ok := store.Get(id)
	require.True(t, ok)
	assert.True(t, got.Completed)

	require.True(t, store.Toggle(id))
	assert.Equal(t, before, store.List(), "toggle twice restores the collection")

	otherTask, _ := store.Get(other)
	assert.False(t, otherTask.Completed)

	assert.False(t, store.Toggle("missing"))
	assert.Equal(t, before, store.List())
}

func TestStore_Update(t *testing.T) {
	tests := []struct {
		name    string
		id      func(id string) string
		raw     string
		want    string
		changed bool
	}{
		{name: "replaces trimmed text", raw: "  Buy oat milk  ", want: "Buy oat milk", changed: true},
		{name: "blank keeps text", raw: "   ", want: "Buy milk", changed: false},
		{name: "empty keeps text", raw: "", want: "Buy milk", changed: false},
		{name: "unknown id", id: func(string) string { return "nope" }, raw: "other", want: "Buy milk", changed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore()
			id, _ := store.Add("Buy milk")

			target := id
			if tt.id != nil {
				target = tt.id(id)
			}

			assert.Equal(t, tt.changed, store.Update(target, tt.raw))

			got, ok := store.Get(id)
			require.True(t, ok)
			assert.Equal(t, tt.want, got.Text)
		})
	}
}

func TestStore_Remove(t *testing.T) {
	store := NewStore(WithIDFunc(Sequence()))
	a, _ := store.Add("a")
	b, _ := store.Add("b")
	c, _ := store.Add("c")

	require.True(t, store.Remove(b))
	assert.False(t, store.Remove(b))
	assert.False(t, store.Remove("missing"))

	tasks := store.List()
	require.Len(t, tasks, 2)
	assert.Equal(t, a, tasks[0].ID)
	assert.Equal(t, c, tasks[1].ID)
}

func TestStore_ClearCompleted(t *testing.T) {
	store := NewStore()
	ids := make([]string, 0, 6)
	for _, s := range []string{"a", "b", "c", "d", "e", "f"} {
		id, _ := store.Add(s)
		ids = append(ids, id)
	}
	store.Toggle(ids[0])
	store.Toggle(ids[2])
	store.Toggle(ids[5])

	before := store.Counts()
	removed := store.ClearCompleted()

	assert.Equal(t, before.Completed, removed)
	after := store.Counts()
	assert.Equal(t, before.Total-before.Completed, after.Total)
	assert.Equal(t, 0, after.Completed)

	var texts []string
	for _, tk := range store.List() {
		assert.False(t, tk.Completed)
		texts = append(texts, tk.Text)
	}
	assert.Equal(t, []string{"b", "d", "e"}, texts)

	t.Run("nothing to clear", func(t *testing.T) {
		var changes []Change
		store.Subscribe(func(c Change) { changes = append(changes, c) })

		assert.Equal(t, 0, store.ClearCompleted())
		assert.Empty(t, changes)
	})
}

func TestStore_ListIsACopy(t *testing.T) {
	store := NewStore()
	id, _ := store.Add("original")

	tasks := store.List()
	tasks[0].Text = "mutated"
	tasks[0].Completed = true

	got, _ := store.Get(id)
	assert.Equal(t, "original", got.Text)
	assert.False(t, got.Completed)

	empty := NewStore().List()
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestStore_Counts(t *testing.T) {
	store := NewStore()
	assert.Equal(t, Counts{}, store.Counts())

	a, _ := store.Add("a")
	store.Add("b")
	store.Add("c")
	store.Toggle(a)

	assert.Equal(t, Counts{Total: 3, Completed: 1, Active: 2}, store.Counts())
	assert.Equal(t, 3, store.Len())
}

func TestStore_Subscribe(t *testing.T) {
	store := NewStore(WithIDFunc(Sequence()))

	var changes []Change
	store.Subscribe(func(c Change) { changes = append(changes, c) })

	id, _ := store.Add("a")
	store.Toggle(id)
	store.Update(id, "b")
	store.Update(id, "  ")
	store.ClearCompleted()
	store.Remove(id)
	other, _ := store.Add("c")
	store.Remove(other)
	store.Remove(other)

	assert.Equal(t, []Change{
		{Kind: ChangeAdded, ID: "1"},
		{Kind: ChangeToggled, ID: "1"},
		{Kind: ChangeUpdated, ID: "1"},
		{Kind: ChangeCleared},
		{Kind: ChangeAdded, ID: "2"},
		{Kind: ChangeRemoved, ID: "2"},
	}, changes)
}
