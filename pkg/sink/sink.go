// Package sink provides caller-side output destinations for formatted
// events.
//
// The formatter writes each complete event document to its sink in a single
// Write call and never retains the sink between calls; everything beyond
// that single call is the caller's concern and lives here:
//
// - LockedWriter serialises writes from multiple goroutines onto one
// underlying writer, so concurrent formatting never interleaves documents
// - MultiWriter fans each document out to several destinations
// - Console wraps standard output with terminal detection
package sink

import (
	"io"
	"os"
	"sync"

	"github.com/hyp3rd/ewrap"
	"github.com/mattn/go-isatty"
)

// LockedWriter wraps an io.Writer with a mutex so multiple goroutines can
// share one destination without interleaving documents.
type LockedWriter struct {
	mu     sync.Mutex
	target io.Writer
}

// NewLockedWriter wraps target in a LockedWriter.
func NewLockedWriter(target io.Writer) (*LockedWriter, error) {
	if target == nil {
		return nil, ewrap.New("target writer cannot be nil")
	}

	return &LockedWriter{target: target}, nil
}

// Write writes p to the underlying writer under the lock.
func (w *LockedWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.target.Write(p)
}

// MultiWriter duplicates each write to every registered destination.
type MultiWriter struct {
	mu      sync.RWMutex
	targets []io.Writer
}

// NewMultiWriter creates a MultiWriter over the given destinations.
func NewMultiWriter(targets ...io.Writer) (*MultiWriter, error) {
	for _, target := range targets {
		if target == nil {
			return nil, ewrap.New("cannot add nil writer")
		}
	}

	return &MultiWriter{targets: targets}, nil
}

// Add registers another destination.
func (w *MultiWriter) Add(target io.Writer) error {
	if target == nil {
		return ewrap.New("cannot add nil writer")
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.targets = append(w.targets, target)

	return nil
}

// Write writes p to every destination. A failing destination does not stop
// the others; all failures are reported together.
func (w *MultiWriter) Write(p []byte) (int, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	errorGroup := ewrap.NewErrorGroup()

	for _, target := range w.targets {
		if _, err := target.Write(p); err != nil {
			errorGroup.Add(err)
		}
	}

	if errorGroup.HasErrors() {
		return 0, ewrap.Wrap(errorGroup, "multi-writer write partially failed")
	}

	return len(p), nil
}

// Console returns standard output wrapped in a LockedWriter.
func Console() io.Writer {
	writer, _ := NewLockedWriter(os.Stdout)

	return writer
}

// IsTerminal reports whether the writer is an interactive terminal. Callers
// typically enable the rendered-message field for terminals and keep
// machine-readable output for pipes.
func IsTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
