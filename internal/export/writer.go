package export

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Writer persists the rendered export document.
type Writer struct {
	log *zap.Logger
}

func NewWriter(log *zap.Logger) *Writer { return &Writer{log: log} }

// Write stores the document at path, overwriting any existing file without
// confirmation. A write failure is fatal to the build and propagates.
func (w *Writer) Write(path, document string) error {
	if err := writeFile(path, []byte(document), 0o644); err != nil {
		return err
	}
	w.log.Info("export document written",
		zap.String("path", path),
		zap.String("fingerprint", Fingerprint([]byte(document))))
	return nil
}

// writeFile writes bytes via a temp file, then atomically replaces the target.
func writeFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}

// Summary describes a completed export for operator reporting.
type Summary struct {
	Path       string
	UUID       string
	ModuleSize int // characters in the assembled, pre-escape module text
}

// String renders the three-line console report.
func (s Summary) String() string {
	return fmt.Sprintf("Export document created: %s\nProcessing UUID: %s\nModule size: %d characters",
		s.Path, s.UUID, s.ModuleSize)
}

// ModuleSize counts the module text in characters rather than bytes, so the
// report matches what the configurator shows for Cyrillic source.
func ModuleSize(moduleText string) int { return utf8.RuneCountInString(moduleText) }
