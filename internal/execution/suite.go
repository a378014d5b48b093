package execution

import (
	"context"
	"log/slog"
	"time"

	"fsrun/internal/config"
	"fsrun/internal/discovery"
	"fsrun/internal/domain"
)

// Observer is told how a run advances. All calls happen on the goroutine
// running the suite.
type Observer interface {
	SuiteStarted(files []domain.TestFile)
	FileStarted(file domain.TestFile)
	CasePassed(tc domain.TestCase)
	FileFinished(file domain.TestFile, cases int)
}

type nullObserver struct{}

func (nullObserver) SuiteStarted([]domain.TestFile)    {}
func (nullObserver) FileStarted(domain.TestFile)       {}
func (nullObserver) CasePassed(domain.TestCase)        {}
func (nullObserver) FileFinished(domain.TestFile, int) {}

// Suite discovers the test files of a directory and runs their cases one
// after another, stopping at the first failure.
type Suite struct {
	dir      string
	scanner  *discovery.Scanner
	parser   *discovery.Parser
	executor *Executor
	observer Observer
	logger   *slog.Logger
}

// NewSuite creates a new Suite over cfg.TestDir
func NewSuite(cfg *config.Config, scanner *discovery.Scanner, parser *discovery.Parser, executor *Executor, logger *slog.Logger) *Suite {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Suite{
		dir:      cfg.TestDir,
		scanner:  scanner,
		parser:   parser,
		executor: executor,
		observer: nullObserver{},
		logger:   logger,
	}
}

// SetObserver sets the observer notified while the suite runs
func (s *Suite) SetObserver(o Observer) {
	if o == nil {
		o = nullObserver{}
	}
	s.observer = o
}

// Run executes every case of every test file in order. The first error ends
// the run and is returned as is; nothing after it is executed.
func (s *Suite) Run(ctx context.Context) (domain.Summary, error) {
	var summary domain.Summary
	start := time.Now()

	files, err := s.scanner.Scan(s.dir)
	if err != nil {
		return summary, err
	}
	s.logger.Info("discovered test files", "dir", s.dir, "count", len(files))
	s.observer.SuiteStarted(files)

	for _, file := range files {
		s.logger.Debug("running test file", "file", file.Name)
		s.observer.FileStarted(file)

		cases, err := s.parser.Each(file, func(tc domain.TestCase) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := s.executor.Run(ctx, tc); err != nil {
				return err
			}
			summary.Cases++
			s.observer.CasePassed(tc)
			return nil
		})
		if err != nil {
			return summary, err
		}

		summary.Files++
		s.observer.FileFinished(file, cases)
	}

	summary.Duration = time.Since(start)
	return summary, nil
}
