package source

import (
	"os"

	"go.uber.org/zap"
)

// Reader loads BSL source files for the build.
type Reader struct {
	log *zap.Logger
}

func NewReader(log *zap.Logger) *Reader { return &Reader{log: log} }

// Read returns the full UTF-8 text of the file at path. A file that is
// missing or unreadable is reported and yields empty text: two of the three
// sources are optional enrichments, so a failed read never aborts a build.
func (r *Reader) Read(path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		r.log.Warn("source unavailable, fragment omitted",
			zap.String("path", path),
			zap.Error(err))
		return ""
	}
	r.log.Debug("source read",
		zap.String("path", path),
		zap.Int("bytes", len(b)))
	return string(b)
}
