package iojson

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

var (
	// ErrNoInput is returned when no file is given and stdin is a terminal.
	ErrNoInput = errors.New("no input provided (stdin is a terminal); use -f flag or pipe JSON input")
	// ErrNoMatches is returned when a --file glob matches nothing.
	ErrNoMatches = errors.New("no files match pattern")
)

// StreamReader decodes a stream of JSON values (one per line, or simply
// concatenated) from a file flag or stdin.
type StreamReader[T any] struct {
	fileFlagValue string

	// Stdin is read when no file is given. Defaults to os.Stdin.
	Stdin *os.File
}

// Flag returns the --file flag bound to this reader.
func (sr *StreamReader[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path or glob (e.g. 'ops/**/*.jsonl') of JSON-lines files; reads from stdin if not provided",
		Destination: &sr.fileFlagValue,
	}
}

// SetFile sets the input file path, as if passed with --file.
func (sr *StreamReader[T]) SetFile(path string) {
	sr.fileFlagValue = path
}

// Open returns the input stream. A file value containing glob meta
// characters is expanded and the matches are read in lexical order as one
// stream. The caller must close it.
func (sr *StreamReader[T]) Open() (io.ReadCloser, error) {
	if sr.fileFlagValue != "" {
		if hasMeta(sr.fileFlagValue) {
			return openGlob(sr.fileFlagValue)
		}
		f, err := os.Open(sr.fileFlagValue)
		if err != nil {
			return nil, fmt.Errorf("open file: %w", err)
		}
		return f, nil
	}

	stdin := sr.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}

	if term.IsTerminal(int(stdin.Fd())) {
		return nil, ErrNoInput
	}
	return io.NopCloser(stdin), nil
}

// Each opens the input and calls fn for every decoded value, stopping at the
// first error or when ctx is cancelled. The index passed to fn is 0-based.
func (sr *StreamReader[T]) Each(ctx context.Context, fn func(i int, v T) error) error {
	rc, err := sr.Open()
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	return Decode(ctx, rc, fn)
}

// Decode calls fn for every JSON value in r.
func Decode[T any](ctx context.Context, r io.Reader, fn func(i int, v T) error) error {
	dec := json.NewDecoder(r)
	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		var v T
		if err := dec.Decode(&v); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("decode JSON value %d: %w", i+1, err)
		}

		if err := fn(i, v); err != nil {
			return err
		}
	}
}

func hasMeta(path string) bool {
	return strings.ContainsAny(path, "*?[{")
}

func openGlob(pattern string) (io.ReadCloser, error) {
	paths, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("expand %q: %w", pattern, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMatches, pattern)
	}
	sort.Strings(paths)

	files := make([]*os.File, 0, len(paths))
	readers := make([]io.Reader, 0, len(paths))
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			_ = closeAll(files)
			return nil, fmt.Errorf("open file: %w", err)
		}
		files = append(files, f)
		readers = append(readers, f)
	}
	return &multiFile{Reader: io.MultiReader(readers...), files: files}, nil
}

// multiFile reads its files back to back.
type multiFile struct {
	io.Reader
	files []*os.File
}

func (m *multiFile) Close() error {
	return closeAll(m.files)
}

func closeAll(files []*os.File) error {
	var errs []error
	for _, f := range files {
		errs = append(errs, f.Close())
	}
	return errors.Join(errs...)
}
