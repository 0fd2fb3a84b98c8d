package extract

import (
	"log/slog"
	"path/filepath"
	"strings"

	"sortd/internal/config"
	"sortd/internal/logging"
)

// maxContentBytes bounds how much text is handed to keyword matching.
// Downloads can be arbitrarily large; a match in the first megabyte is as
// good as a match anywhere.
const maxContentBytes = 1 << 20

// Extractor is the capability the classifier consumes. Implementations must
// never fail: unsupported or unreadable files yield an empty string.
type Extractor interface {
	Extract(path string) string
}

// Nop is an Extractor that always returns empty text. It stands in when
// content scanning is disabled entirely.
type Nop struct{}

func (Nop) Extract(string) string { return "" }

type reader func(path string, limit int64) (string, error)

// Service dispatches extraction by file extension, honoring the configured
// content-scan allow-list.
type Service struct {
	allow   map[string]struct{}
	readers map[string]reader
	logger  *slog.Logger
}

// New builds the extractor for the given configuration. Formats with a
// dedicated reader (PDF, Word containers) use it; every other allow-listed
// extension is treated as plain text.
func New(cfg *config.Config, logger *slog.Logger) *Service {
	s := &Service{
		allow:   cfg.ContentScanExtensions(),
		readers: make(map[string]reader),
		logger:  logging.NewComponentLogger(logger, "extract"),
	}
	s.readers[".pdf"] = readPDF
	for _, ext := range []string{".docx", ".docm", ".dotx", ".dotm"} {
		s.readers[ext] = readDocx
	}
	return s
}

// Extract returns the plain-text content of path, or "" when the extension
// is outside the allow-list or extraction fails for any reason.
func (s *Service) Extract(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := s.allow[ext]; !ok {
		return ""
	}

	read := s.readers[ext]
	if read == nil {
		read = readText
	}

	text, err := read(path, maxContentBytes)
	if err != nil {
		s.logger.Debug("extraction failed",
			logging.String(logging.FieldPath, path),
			logging.Error(err),
		)
		return ""
	}
	return text
}
