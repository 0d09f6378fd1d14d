package logging

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Follow prints entries appended to path until ctx is done. It picks up
// the new file after a rotation.
func (v *Viewer) Follow(ctx context.Context, path string) error {
	t, err := openTail(path, true)
	if err != nil {
		return err
	}
	defer func() { _ = t.close() }()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// The directory is watched so a rotated-in file is seen too.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch log directory: %w", err)
	}
	target := filepath.Clean(path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			switch {
			case event.Has(fsnotify.Create):
				reopened, err := openTail(path, false)
				if err != nil {
					return err
				}
				_ = t.close()
				t = reopened
				fallthrough
			case event.Has(fsnotify.Write):
				if err := v.emitLines(t); err != nil {
					return err
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching log file: %w", err)
		}
	}
}

func (v *Viewer) emitLines(t *tail) error {
	lines, err := t.readLines()
	if err != nil {
		return err
	}
	for _, line := range lines {
		if entry := parseLine(line); v.matches(entry) {
			_, _ = fmt.Fprintln(v.out, v.FormatEntry(entry))
		}
	}
	return nil
}

// tail reads complete lines appended to a file, keeping a trailing partial
// line until its newline arrives.
type tail struct {
	file    *os.File
	reader  *bufio.Reader
	pending string
}

func openTail(path string, fromEnd bool) (*tail, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	if fromEnd {
		if _, err := f.Seek(0, io.SeekEnd); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to seek log file: %w", err)
		}
	}
	return &tail{file: f, reader: bufio.NewReader(f)}, nil
}

func (t *tail) readLines() ([]string, error) {
	var lines []string
	for {
		chunk, err := t.reader.ReadString('\n')
		if errors.Is(err, io.EOF) {
			t.pending += chunk
			return lines, nil
		}
		if err != nil {
			return lines, fmt.Errorf("failed to read log file: %w", err)
		}
		lines = append(lines, t.pending+chunk[:len(chunk)-1])
		t.pending = ""
	}
}

func (t *tail) close() error {
	return t.file.Close()
}
