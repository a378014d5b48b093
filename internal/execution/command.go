package execution

import (
	"strings"

	"github.com/alessio/shellescape"
)

// Command describes one external process invocation
type Command struct {
	Path string   // Executable to run
	Args []string // Arguments, passed through without re-splitting
	Dir  string   // Working directory; empty means the current one
}

// String renders the command as a shell-quoted line for logs
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, shellescape.Quote(c.Path))
	for _, a := range c.Args {
		parts = append(parts, shellescape.Quote(a))
	}
	return strings.Join(parts, " ")
}
