package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/cwmp-model/cwmp-go/pkg/log"
	"github.com/cwmp-model/cwmp-go/pkg/model"
)

// LogCmd views a change log written by the shell or a log.FileLogger.
type LogCmd struct {
	File       string    `arg:"" name:"file" help:"Change log file (.clog)." type:"existingfile"`
	Session    string    `help:"Only events of this session ID."`
	Kind       string    `help:"Only events of this kind (value, add, load, save, validate, error)."`
	Path       string    `help:"Only events at or below this path."`
	Notify     string    `help:"Only value changes with this notify policy (normal, always, canDeny, forceEnabled)."`
	Since      time.Time `help:"Only events at or after this time (RFC 3339)."`
	Until      time.Time `help:"Only events before this time (RFC 3339)."`
	Notifiable bool      `help:"Only value changes that trigger an active notification."`
	JSON       bool      `help:"Print one JSON object per event."`
	Stats      bool      `help:"Print counts per kind and session instead of events."`
}

// Run prints the matching events.
func (c *LogCmd) Run(out io.Writer) error {
	filter, err := c.filter()
	if err != nil {
		return err
	}
	reader, err := log.NewFilteredReader(c.File, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := newLogStats()
	enc := json.NewEncoder(out)
	truncated := false
	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		// A session killed mid-write leaves a partial last record.
		if errors.Is(err, log.ErrTruncated) {
			truncated = true
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if c.Notifiable && !event.Notifiable() {
			continue
		}

		switch {
		case c.Stats:
			stats.add(event)
		case c.JSON:
			if err := enc.Encode(event); err != nil {
				return err
			}
		default:
			formatEvent(out, event)
		}
	}

	if c.Stats {
		stats.print(out)
	}
	if truncated && !c.JSON {
		fmt.Fprintln(out, "(log ends with a truncated record)")
	}
	return nil
}

func (c *LogCmd) filter() (log.Filter, error) {
	f := log.Filter{
		SessionID:  c.Session,
		PathPrefix: c.Path,
	}
	if c.Kind != "" {
		k, err := log.ParseKind(c.Kind)
		if err != nil {
			return f, err
		}
		f.Kind = &k
	}
	if c.Notify != "" {
		n, err := model.ParseNotify(c.Notify)
		if err != nil {
			return f, err
		}
		f.Notify = &n
	}
	if !c.Since.IsZero() {
		f.TimeStart = &c.Since
	}
	if !c.Until.IsZero() {
		f.TimeEnd = &c.Until
	}
	return f, nil
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [sess:%s] %-8s %s\n", ts, shortenID(event.SessionID), event.Kind, event.Path)

	switch event.Kind {
	case log.KindValueChange:
		fmt.Fprintf(w, "  %s -> %s\n", quoteValue(event.OldValue), quoteValue(event.NewValue))
		if event.Notify != model.NotifyNone {
			fmt.Fprintf(w, "  Notify: %s\n", event.Notify)
		}
		if event.Internal {
			fmt.Fprintln(w, "  Internal")
		}
	case log.KindInstanceAdded:
		fmt.Fprintf(w, "  Object: %s\n", event.Object)
	}
	if event.Message != "" {
		fmt.Fprintf(w, "  %s\n", event.Message)
	}
}

// shortenID returns the first 8 characters of a session ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func quoteValue(v *string) string {
	if v == nil {
		return "(absent)"
	}
	return fmt.Sprintf("%q", *v)
}

// logStats holds aggregate statistics about a change log.
type logStats struct {
	total      int
	notifiable int
	byKind     map[log.Kind]int
	bySession  map[string]int
	start, end time.Time
}

func newLogStats() *logStats {
	return &logStats{
		byKind:    make(map[log.Kind]int),
		bySession: make(map[string]int),
	}
}

func (s *logStats) add(event log.Event) {
	s.total++
	s.byKind[event.Kind]++
	s.bySession[event.SessionID]++
	if event.Notifiable() {
		s.notifiable++
	}
	if s.start.IsZero() || event.Timestamp.Before(s.start) {
		s.start = event.Timestamp
	}
	if event.Timestamp.After(s.end) {
		s.end = event.Timestamp
	}
}

func (s *logStats) print(w io.Writer) {
	fmt.Fprintf(w, "Events:     %d\n", s.total)
	if s.total == 0 {
		return
	}
	fmt.Fprintf(w, "Notifiable: %d\n", s.notifiable)
	fmt.Fprintf(w, "Time range: %s .. %s\n",
		s.start.UTC().Format(time.RFC3339), s.end.UTC().Format(time.RFC3339))

	kinds := make([]log.Kind, 0, len(s.byKind))
	for k := range s.byKind {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	fmt.Fprintln(w, "By kind:")
	for _, k := range kinds {
		fmt.Fprintf(w, "  %-8s %d\n", k, s.byKind[k])
	}

	sessions := make([]string, 0, len(s.bySession))
	for id := range s.bySession {
		sessions = append(sessions, id)
	}
	sort.Strings(sessions)
	fmt.Fprintln(w, "By session:")
	for _, id := range sessions {
		fmt.Fprintf(w, "  %s %d\n", shortenID(id), s.bySession[id])
	}
}
