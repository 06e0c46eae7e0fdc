package sink

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/projectdiscovery/subnetping/pkg/types"
)

// DefaultLogFile is the audit log written by every run
const DefaultLogFile = "ping_log.txt"

// AuditLog is an append-only text log with one line per probed host.
// Every line is written straight to the file so the trail survives a crash
// of the process. Writes are serialized so lines never interleave.
type AuditLog struct {
	mu   sync.Mutex
	path string
	file *os.File
}

// OpenAuditLog opens path for appending, creating it if needed
func OpenAuditLog(path string) (*AuditLog, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("could not open log file %s: %w", path, err)
	}
	return &AuditLog{path: path, file: file}, nil
}

// Path returns the log file location
func (l *AuditLog) Path() string {
	return l.path
}

// WriteOutcome appends the up/down line of outcome
func (l *AuditLog) WriteOutcome(outcome types.Outcome) error {
	return l.writeLines(outcome.LogLine())
}

// WriteSummary appends the closing summary block
func (l *AuditLog) WriteSummary(summary string, finished time.Time, interrupted bool) error {
	label := "Completed"
	if interrupted {
		label = "Interrupted"
	}
	return l.writeLines("", summary, fmt.Sprintf("%s on %s", label, FormatTimestamp(finished)))
}

func (l *AuditLog) writeLines(lines ...string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return os.ErrClosed
	}
	_, err := l.file.WriteString(strings.Join(lines, "\n") + "\n")
	return err
}

// Close closes the underlying file
func (l *AuditLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// FormatTimestamp renders t as M/D/YYYY @ H:M:S without zero padding
func FormatTimestamp(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d @ %d:%d:%d", t.Month(), t.Day(), t.Year(), t.Hour(), t.Minute(), t.Second())
}
