package log

import (
	"fmt"
	"os"
	"sync"
)

// FileLogger appends change records to a file. Each record is written
// with a single write, so several sessions may append to the same log
// without interleaving records. It is safe for concurrent use.
type FileLogger struct {
	mu     sync.Mutex
	file   *os.File
	err    error
	closed bool
}

// NewFileLogger opens path for appending, creating it if needed.
func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &FileLogger{file: f}, nil
}

// Log appends one record. A failing write never fails the edit that
// caused it; the first failure is kept for Err and later records are
// dropped.
func (l *FileLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed || l.err != nil {
		return
	}
	data, err := EncodeEvent(event)
	if err != nil {
		l.err = fmt.Errorf("encoding %s record: %w", event.Kind, err)
		return
	}
	if _, err := l.file.Write(data); err != nil {
		l.err = fmt.Errorf("writing change log: %w", err)
	}
}

// Err returns the first failure that caused records to be dropped.
func (l *FileLogger) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Close flushes and closes the file. Later Log calls are ignored and
// repeated Close calls return nil.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	if err := l.file.Sync(); err != nil {
		_ = l.file.Close()
		return err
	}
	return l.file.Close()
}

var _ Logger = (*FileLogger)(nil)
