package iojson

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Op   string `json:"op"`
	Text string `json:"text,omitempty"`
}

func TestWriteWith(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, WriteWith(&out, &errOut, item{Op: "add", Text: "a"}))

	assert.Equal(t, "{\n  \"op\": \"add\",\n  \"text\": \"a\"\n}\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestWriteWith_MarshalFailure(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, WriteWith(&out, &errOut, map[string]any{"ch": make(chan int)}))

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "json_error")
}

func TestWriteLine(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, WriteLine(&out, item{Op: "toggle"}))
	require.NoError(t, WriteLine(&out, item{Op: "add", Text: "b"}))

	assert.Equal(t, "{\"op\":\"toggle\"}\n{\"op\":\"add\",\"text\":\"b\"}\n", out.String())
}

func TestMarshalError(t *testing.T) {
	var got Error
	require.NoError(t, json.Unmarshal([]byte(MarshalError("bad op", map[string]any{"line": 3})), &got))

	assert.Equal(t, "bad op", got.Message)
	assert.InDelta(t, 3, got.Data["line"], 0)
}

func TestWriteErrorTo(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, WriteErrorTo(&out, "boom", nil))
	assert.Contains(t, out.String(), `"message": "boom"`)
}

func TestDecode(t *testing.T) {
	input := `{"op":"add","text":"a"}
{"op":"toggle"}

{"op":"add","text":"b"}`

	var got []item
	err := Decode(context.Background(), strings.NewReader(input), func(i int, v item) error {
		assert.Equal(t, len(got), i)
		got = append(got, v)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []item{{Op: "add", Text: "a"}, {Op: "toggle"}, {Op: "add", Text: "b"}}, got)
}

func TestDecode_Errors(t *testing.T) {
	t.Run("malformed", func(t *testing.T) {
		err := Decode(context.Background(), strings.NewReader(`{"op":"add"} {oops`), func(int, item) error { return nil })
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode JSON value 2")
	})

	t.Run("callback error stops", func(t *testing.T) {
		stop := errors.New("stop")
		calls := 0
		err := Decode(context.Background(), strings.NewReader(`{} {} {}`), func(int, item) error {
			calls++
			return stop
		})
		require.ErrorIs(t, err, stop)
		assert.Equal(t, 1, calls)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := Decode(ctx, strings.NewReader(`{}`), func(int, item) error { return nil })
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestStreamReader_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(`{"op":"add","text":"x"}`+"\n"), 0o644))

	var sr StreamReader[item]
	sr.SetFile(path)

	var got []item
	require.NoError(t, sr.Each(context.Background(), func(_ int, v item) error {
		got = append(got, v)
		return nil
	}))
	assert.Equal(t, []item{{Op: "add", Text: "x"}}, got)
}

func TestStreamReader_MissingFile(t *testing.T) {
	var sr StreamReader[item]
	sr.SetFile(filepath.Join(t.TempDir(), "missing.jsonl"))

	_, err := sr.Open()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open file")
}

func TestStreamReader_Stdin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stdin")
	require.NoError(t, os.WriteFile(path, []byte(`{"op":"cancel"}`), 0o644))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sr := StreamReader[item]{Stdin: f}

	var got []item
	require.NoError(t, sr.Each(context.Background(), func(_ int, v item) error {
		got = append(got, v)
		return nil
	}))
	assert.Equal(t, []item{{Op: "cancel"}}, got)
}

func TestStreamReader_Glob(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "b"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b", "02.jsonl"), []byte(`{"op":"commit"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.jsonl"), []byte(`{"op":"add","text":"x"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte(`not json`), 0o644))

	var sr StreamReader[item]
	sr.SetFile(filepath.Join(dir, "**", "*.jsonl"))

	var got []item
	require.NoError(t, sr.Each(context.Background(), func(_ int, v item) error {
		got = append(got, v)
		return nil
	}))
	assert.Equal(t, []item{{Op: "add", Text: "x"}, {Op: "commit"}}, got)
}

func TestStreamReader_GlobNoMatches(t *testing.T) {
	var sr StreamReader[item]
	sr.SetFile(filepath.Join(t.TempDir(), "*.jsonl"))

	_, err := sr.Open()
	require.ErrorIs(t, err, ErrNoMatches)
}
