package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"fsrun/internal/domain"
)

// ProgressBar renders per-file progress of a suite run. It implements
// execution.Observer; the bar is created once the file count is known.
type ProgressBar struct {
	w      io.Writer
	colors bool
	bar    *progressbar.ProgressBar
	cases  int
}

// NewProgressBar creates a new progress bar writing to w
func NewProgressBar(w io.Writer, colors bool) *ProgressBar {
	return &ProgressBar{w: w, colors: colors}
}

// SuiteStarted creates the bar with one step per test file
func (p *ProgressBar) SuiteStarted(files []domain.TestFile) {
	saucer := "█"
	if p.colors {
		saucer = color.CyanString("█")
	}

	p.bar = progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription(p.describe("")),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        saucer,
			SaucerHead:    saucer,
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(p.colors),
		progressbar.OptionSetWriter(p.w),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(p.w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
}

// FileStarted shows the file being run
func (p *ProgressBar) FileStarted(file domain.TestFile) {
	if p.bar != nil {
		p.bar.Describe(p.describe(file.Name))
	}
}

// CasePassed counts a passing test case
func (p *ProgressBar) CasePassed(domain.TestCase) {
	p.cases++
}

// FileFinished advances the bar by one file
func (p *ProgressBar) FileFinished(file domain.TestFile, _ int) {
	if p.bar == nil {
		return
	}
	p.bar.Describe(p.describe(file.Name))
	_ = p.bar.Add(1)
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}

// Clear erases the bar so a failure diagnostic starts on a clean line
func (p *ProgressBar) Clear() {
	if p.bar != nil {
		_ = p.bar.Clear()
	}
}

func (p *ProgressBar) describe(file string) string {
	label := "Running tests: "
	passed := fmt.Sprintf("[passed: %d]", p.cases)
	if p.colors {
		label = color.CyanString(label)
		passed = color.GreenString(passed)
	}
	if file == "" {
		return label + passed
	}
	return label + passed + " " + file
}
