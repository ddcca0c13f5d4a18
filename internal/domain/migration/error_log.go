package migration

import "time"

// MaxErrorEntries is the cap on per-record error entries kept for one run.
// The failed counter keeps incrementing past the cap; only the stored
// entries stop growing.
const MaxErrorEntries = 50

// TruncationNotice is the single synthetic entry appended when the cap is
// first exceeded.
const TruncationNotice = "too many errors, truncating log"

// ErrorLog is a capped error accumulator owned by one sync run. Each run
// gets a fresh instance; it is never shared across runs.
type ErrorLog struct {
	entries   []SyncError
	max       int
	truncated bool
}

// NewErrorLog creates an error log with the default cap
func NewErrorLog() *ErrorLog {
	return NewErrorLogWithLimit(MaxErrorEntries)
}

// NewErrorLogWithLimit creates an error log with a custom cap
func NewErrorLogWithLimit(max int) *ErrorLog {
	if max <= 0 {
		max = MaxErrorEntries
	}
	return &ErrorLog{
		entries: make([]SyncError, 0, max),
		max:     max,
	}
}

// Add records one per-record failure. Past the cap it appends the
// truncation notice exactly once and then drops further entries.
func (e *ErrorLog) Add(recordID, message string) {
	if len(e.entries) < e.max {
		e.entries = append(e.entries, SyncError{
			RecordID:   recordID,
			Message:    message,
			OccurredAt: time.Now(),
		})
		return
	}
	if !e.truncated {
		e.entries = append(e.entries, SyncError{
			Message:    TruncationNotice,
			OccurredAt: time.Now(),
		})
		e.truncated = true
	}
}

// Entries returns the captured errors, including the truncation notice if
// the cap was exceeded
func (e *ErrorLog) Entries() []SyncError {
	return e.entries
}

// Count returns the number of stored entries
func (e *ErrorLog) Count() int {
	return len(e.entries)
}

// IsTruncated reports whether entries were dropped past the cap
func (e *ErrorLog) IsTruncated() bool {
	return e.truncated
}
