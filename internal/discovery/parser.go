package discovery

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"fsrun/internal/domain"
)

const (
	commentPrefix = "#"
	maxLineSize   = 1024 * 1024
)

// Parser reads test cases out of test files
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// ParseLine turns one line into a test case. ok is false for comment and
// blank lines. Runs of whitespace between expression tokens collapse to a
// single space.
func (p *Parser) ParseLine(line string) (tc domain.TestCase, ok bool) {
	if strings.HasPrefix(line, commentPrefix) {
		return domain.TestCase{}, false
	}
	fields := strings.FieldsFunc(line, isASCIISpace)
	if len(fields) == 0 {
		return domain.TestCase{}, false
	}
	return domain.TestCase{
		ExpectedResultPath: fields[0],
		Expression:         strings.Join(fields[1:], " "),
	}, true
}

// isASCIISpace matches the separators of a test line. Unicode spaces such
// as U+00A0 stay part of a token.
func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Each reads file line by line and hands every test case to fn before the
// next line is read. It stops at the first error returned by fn. A file
// without test cases yields an EmptyTestFileError. The returned count is the
// number of cases handed to fn.
func (p *Parser) Each(file domain.TestFile, fn func(domain.TestCase) error) (int, error) {
	f, err := os.Open(file.Path)
	if err != nil {
		return 0, fmt.Errorf("error reading file %s: %w", file.Path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	count, lineNo := 0, 0
	for scanner.Scan() {
		lineNo++
		tc, ok := p.ParseLine(scanner.Text())
		if !ok {
			continue
		}
		tc.File = file.Name
		tc.Line = lineNo

		count++
		if err := fn(tc); err != nil {
			return count, err
		}
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("error reading file %s: %w", file.Path, err)
	}

	if count == 0 {
		return 0, &domain.EmptyTestFileError{File: file.Name}
	}
	return count, nil
}
