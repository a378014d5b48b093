package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"fsrun/internal/domain"
)

// ReporterOptions controls how diagnostics are rendered.
type ReporterOptions struct {
	Color   bool
	Verbose bool
}

// Reporter prints the diagnostic for the error that ended a run
type Reporter struct {
	w        io.Writer
	opts     ReporterOptions
	headline *color.Color
	detail   *color.Color
}

// NewReporter creates a Reporter writing to w
func NewReporter(w io.Writer, opts ReporterOptions) *Reporter {
	headline := color.New(color.FgRed, color.Bold)
	detail := color.New(color.FgYellow)
	for _, c := range []*color.Color{headline, detail} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return &Reporter{
		w:        w,
		opts:     opts,
		headline: headline,
		detail:   detail,
	}
}

// Report prints err. Failing test cases get the full TEST FAILED block,
// everything else a single ERROR line.
func (r *Reporter) Report(err error) {
	if err == nil {
		return
	}

	var caseErr *domain.CaseError
	if errors.As(err, &caseErr) {
		r.reportCase(caseErr)
		return
	}

	fmt.Fprintf(r.w, "%s %v\n", r.headline.Sprint("ERROR:"), err)
}

func (r *Reporter) reportCase(e *domain.CaseError) {
	fmt.Fprintf(r.w, "\n%s\n    %s\n\n", r.headline.Sprintf("TEST FAILED: %s:", e.Kind), e.Case)

	var details []string
	if e.Err != nil {
		details = append(details, "    "+r.detail.Sprint(e.Err.Error()))
	}
	for _, line := range outputLines(e.Output) {
		details = append(details, "    | "+line)
	}
	if r.opts.Verbose && e.Kind == domain.Mismatch && e.Err == nil {
		details = append(details, r.diffLines(e.ExpectedFile, e.ActualFile)...)
	}

	if len(details) == 0 {
		return
	}
	for _, line := range details {
		fmt.Fprintln(r.w, line)
	}
	fmt.Fprintln(r.w)
}

func (r *Reporter) diffLines(expected, actual string) []string {
	diff, err := LineDiff(expected, actual)
	if err != nil {
		return []string{"    " + r.detail.Sprintf("diff unavailable: %v", err)}
	}
	if diff == "" {
		return nil
	}

	lines := []string{"    " + r.detail.Sprint("expected (-) / actual (+):")}
	for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		lines = append(lines, "    "+line)
	}
	return lines
}

func outputLines(output []byte) []string {
	trimmed := strings.TrimRight(string(output), "\r\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}
