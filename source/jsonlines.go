package source

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/go-git/go-billy/v5"
)

// JSONLines is a source reading newline-delimited JSON records from a file
// on a billy filesystem. Each non-blank line is one record; blank lines are
// skipped.
//
// Every operation re-reads the file, so an external writer that appends
// records is observed on the next fetch. The source performs no caching of
// its own; that is the job of the virtual.List in front of it.
type JSONLines[T any] struct {
	fs    billy.Filesystem
	path  string
	equal func(a, b T) bool
}

// JSONLinesOption configures a JSONLines source.
type JSONLinesOption[T any] func(*JSONLines[T])

// WithEqualFunc sets the equality function used by IndexOf. Without it,
// records are compared with reflect.DeepEqual.
func WithEqualFunc[T any](fn func(a, b T) bool) JSONLinesOption[T] {
	return func(s *JSONLines[T]) {
		s.equal = fn
	}
}

// NewJSONLines creates a JSONLines source for the file at path on fs.
// The file does not need to exist until the first operation.
//
// Example:
//
//	src := source.NewJSONLines[Event](osfs.New("/var/data"), "events.jsonl")
//	list, err := virtual.New[Event](src, 500)
func NewJSONLines[T any](fs billy.Filesystem, path string, opts ...JSONLinesOption[T]) *JSONLines[T] {
	s := &JSONLines[T]{
		fs:   fs,
		path: path,
		equal: func(a, b T) bool {
			return reflect.DeepEqual(a, b)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Count returns the number of records in the file.
func (s *JSONLines[T]) Count(ctx context.Context) (int, error) {
	count := 0
	err := s.scan(ctx, func(int, []byte) (bool, error) {
		count++
		return true, nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// FetchRange decodes up to count records starting at record index start.
// It returns fewer records when the file ends early and none when start is
// past the last record.
func (s *JSONLines[T]) FetchRange(ctx context.Context, start, count int) ([]T, error) {
	if start < 0 || count <= 0 {
		return nil, nil
	}
	var items []T
	err := s.scan(ctx, func(record int, line []byte) (bool, error) {
		if record < start {
			return true, nil
		}
		var item T
		if err := json.Unmarshal(line, &item); err != nil {
			return false, fmt.Errorf("decoding record %d of %s: %w", record, s.path, err)
		}
		items = append(items, item)
		return len(items) < count, nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// IndexOf returns the record index of item, or -1 if no record compares
// equal under the configured equality function.
func (s *JSONLines[T]) IndexOf(ctx context.Context, item T) (int, error) {
	found := -1
	err := s.scan(ctx, func(record int, line []byte) (bool, error) {
		var candidate T
		if err := json.Unmarshal(line, &candidate); err != nil {
			return false, fmt.Errorf("decoding record %d of %s: %w", record, s.path, err)
		}
		if s.equal(candidate, item) {
			found = record
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return -1, err
	}
	return found, nil
}

// scan streams the file line by line, calling fn with each record's index
// and raw bytes. fn returns false to stop early.
func (s *JSONLines[T]) scan(ctx context.Context, fn func(record int, line []byte) (bool, error)) error {
	file, err := s.fs.Open(s.path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", s.path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	record := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		keepGoing, err := fn(record, line)
		if err != nil {
			return err
		}
		if !keepGoing {
			return nil
		}
		record++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", s.path, err)
	}
	return nil
}
