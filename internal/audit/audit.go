package audit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Logger records processed certificate identities. Appends are best-effort;
// callers log failures and move on.
type Logger interface {
	Append(ctx context.Context, organizationName, caseID, taxID string) error
}

// FileLogger appends tab-separated records to a local file.
type FileLogger struct {
	mu   sync.Mutex
	path string
}

// NewFileLogger constructs a FileLogger writing to path.
func NewFileLogger(path string) *FileLogger {
	return &FileLogger{path: path}
}

// Append writes one record as a single line. The file is created on first use.
func (l *FileLogger) Append(ctx context.Context, organizationName, caseID, taxID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	line := fmt.Sprintf("%s\t%s\t%s\n",
		strings.TrimSpace(organizationName),
		strings.TrimSpace(caseID),
		strings.TrimSpace(taxID),
	)

	l.mu.Lock()
	defer l.mu.Unlock()

	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir audit dir: %w", err)
		}
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("append audit log: %w", err)
	}
	return nil
}

// Noop discards all records.
type Noop struct{}

func (Noop) Append(ctx context.Context, organizationName, caseID, taxID string) error {
	return nil
}
