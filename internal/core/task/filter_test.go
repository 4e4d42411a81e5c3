package task

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textsOf(tasks []Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Text)
	}
	return out
}

func TestVisible(t *testing.T) {
	tasks := []Task{
		{ID: "1", Text: "Buy milk"},
		{ID: "2", Text: "Buy bread", Completed: true},
		{ID: "3", Text: "Walk dog"},
		{ID: "4", Text: "call MOM (a.k.a. [mum])", Completed: true},
	}

	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{
			name:     "zero criteria shows everything",
			criteria: Criteria{},
			want:     []string{"Buy milk", "Buy bread", "Walk dog", "call MOM (a.k.a. [mum])"},
		},
		{
			name:     "active",
			criteria: Criteria{Status: StatusActive},
			want:     []string{"Buy milk", "Walk dog"},
		},
		{
			name:     "completed",
			criteria: Criteria{Status: StatusCompleted},
			want:     []string{"Buy bread", "call MOM (a.k.a. [mum])"},
		},
		{
			name:     "search is case-insensitive",
			criteria: Criteria{Status: StatusAll, Search: "buy"},
			want:     []string{"Buy milk", "Buy bread"},
		},
		{
			name:     "search uppercase term",
			criteria: Criteria{Search: "MILK"},
			want:     []string{"Buy milk"},
		},
		{
			name:     "status and search combine",
			criteria: Criteria{Status: StatusActive, Search: "buy"},
			want:     []string{"Buy milk"},
		},
		{
			name:     "regex metacharacters are literal",
			criteria: Criteria{Search: "a.k.a. [mum]"},
			want:     []string{"call MOM (a.k.a. [mum])"},
		},
		{
			name:     "dot does not match any character",
			criteria: Criteria{Search: "b.y"},
			want:     []string{},
		},
		{
			name:     "star is literal",
			criteria: Criteria{Search: ".*"},
			want:     []string{},
		},
		{
			name:     "no match",
			criteria: Criteria{Search: "zebra"},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, textsOf(Visible(tasks, tt.criteria)))
		})
	}
}

func TestVisible_EmptySource(t *testing.T) {
	for _, s := range Statuses() {
		got := Visible(nil, Criteria{Status: s, Search: "x"})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestVisible_Properties(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	words := []string{"Buy", "milk", "bread", "Walk", "dog", "PR", "review", "spec"}
	terms := []string{"", "b", "BUY", "mil", "o", "re", "x", "Dog"}

	for round := range 50 {
		tasks := make([]Task, r.IntN(12))
		for i := range tasks {
			tasks[i] = Task{
				ID:        fmt.Sprintf("%d-%d", round, i),
				Text:      words[r.IntN(len(words))] + " " + words[r.IntN(len(words))],
				Completed: r.IntN(2) == 0,
			}
		}

		for _, status := range Statuses() {
			for _, term := range terms {
				c := Criteria{Status: status, Search: term}
				got := Visible(tasks, c)

				// got is an order-preserving subsequence of tasks and contains
				// exactly the tasks satisfying both predicates.
				j := 0
				for _, tk := range tasks {
					statusOK := status == StatusAll ||
						(status == StatusActive && !tk.Completed) ||
						(status == StatusCompleted && tk.Completed)
					searchOK := term == "" || strings.Contains(strings.ToLower(tk.Text), strings.ToLower(term))

					if statusOK && searchOK {
						require.Less(t, j, len(got))
						assert.Equal(t, tk, got[j])
						assert.True(t, c.Matches(tk))
						j++
					} else {
						assert.False(t, c.Matches(tk))
					}
				}
				assert.Len(t, got, j)
			}
		}
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{in: "", want: StatusAll},
		{in: "all", want: StatusAll},
		{in: "Active", want: StatusActive},
		{in: " COMPLETED ", want: StatusCompleted},
		{in: "done", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatus_Next(t *testing.T) {
	assert.Equal(t, StatusActive, StatusAll.Next())
	assert.Equal(t, StatusCompleted, StatusActive.Next())
	assert.Equal(t, StatusAll, StatusCompleted.Next())
	assert.Equal(t, StatusActive, Status("").Next())
}
