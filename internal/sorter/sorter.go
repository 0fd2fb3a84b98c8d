package sorter

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"sortd/internal/config"
	"sortd/internal/extract"
	"sortd/internal/journal"
	"sortd/internal/logging"
	"sortd/internal/mover"
	"sortd/internal/routes"
	"sortd/internal/services"
	"sortd/internal/settle"
)

// Outcome is the terminal state of one processed candidate.
type Outcome int

const (
	// OutcomeSkipped means the settle gate rejected the file or another
	// task already owns it.
	OutcomeSkipped Outcome = iota
	// OutcomeUnmatched means no route matched; the file stays in place.
	OutcomeUnmatched
	// OutcomeMoved means the file landed in its destination folder.
	OutcomeMoved
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeUnmatched:
		return "unmatched"
	default:
		return "skipped"
	}
}

// Result describes what happened to one candidate file.
type Result struct {
	Outcome   Outcome
	FinalPath string
	Decision  routes.Decision
}

// Sorter owns the pipeline stages and the in-flight bookkeeping.
type Sorter struct {
	cfg       *config.Config
	gate      *settle.Gate
	extractor extract.Extractor
	table     *routes.Table
	mover     *mover.Mover
	recorder  journal.Recorder
	logger    *slog.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
}

// New wires the pipeline from configuration. A nil recorder disables
// journaling.
func New(cfg *config.Config, recorder journal.Recorder, logger *slog.Logger) *Sorter {
	if recorder == nil {
		recorder = journal.Nop{}
	}
	return &Sorter{
		cfg:       cfg,
		gate:      settle.New(cfg, logger),
		extractor: extract.New(cfg, logger),
		table:     routes.New(cfg.Routes),
		mover:     mover.New(cfg, logger),
		recorder:  recorder,
		logger:    logging.NewComponentLogger(logger, "sorter"),
		inflight:  make(map[string]struct{}),
	}
}

// Process runs one candidate through the full pipeline. Transient conditions
// (file vanished, temporary artifact, concurrent duplicate dispatch) come
// back as OutcomeSkipped with a nil error; only move failures are errors.
func (s *Sorter) Process(ctx context.Context, path string) (Result, error) {
	if !s.begin(path) {
		return Result{Outcome: OutcomeSkipped}, nil
	}
	defer s.end(path)

	taskID := uuid.NewString()
	log := s.logger.With(
		logging.String(logging.FieldTaskID, taskID),
		logging.String(logging.FieldPath, path),
	)

	if !s.gate.Admit(ctx, path) {
		log.Debug("candidate rejected by settle gate")
		return Result{Outcome: OutcomeSkipped}, nil
	}

	name := filepath.Base(path)
	content := s.extractor.Extract(path)

	decision, ok := s.table.Match(name, content)
	if !ok {
		log.Debug("no route matched; leaving file in place")
		return Result{Outcome: OutcomeUnmatched}, nil
	}

	final, err := s.mover.Move(path, decision.Folder)
	if err != nil {
		return Result{}, services.Wrap(nil, "sorter", "move", name, err)
	}

	if err := s.recorder.Record(ctx, journal.Entry{
		SourcePath: path,
		FinalPath:  final,
		Folder:     decision.Folder,
		Pattern:    decision.Pattern,
		Phase:      decision.Phase.String(),
	}); err != nil {
		// The move already happened; a journal hiccup must not undo it.
		log.Warn("journal record failed", logging.Error(err))
	}

	return Result{Outcome: OutcomeMoved, FinalPath: final, Decision: decision}, nil
}

func (s *Sorter) begin(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[path]; busy {
		return false
	}
	s.inflight[path] = struct{}{}
	return true
}

func (s *Sorter) end(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, path)
}
