package execution

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRunner struct {
	mock.Mock
}

func (m *mockRunner) Run(ctx context.Context, cmd Command) (ProcessResult, error) {
	args := m.Called(ctx, cmd)
	if fn, ok := args.Get(0).(func(context.Context, Command) ProcessResult); ok {
		return fn(ctx, cmd), args.Error(1)
	}
	return args.Get(0).(ProcessResult), args.Error(1)
}

type mockComparator struct {
	mock.Mock
}

func (m *mockComparator) Equal(ctx context.Context, expectedPath, actualPath string) (bool, error) {
	args := m.Called(ctx, expectedPath, actualPath)
	return args.Bool(0), args.Error(1)
}

// fakeTool makes r behave like the tool under test: for every invocation it
// writes outputs[expression] to the -o target and exits 0. Expressions
// missing from outputs exit 2 without writing anything.
func fakeTool(t *testing.T, r *mockRunner, outputs map[string]string) {
	t.Helper()
	r.On("Run", mock.Anything, mock.Anything).
		Return(func(_ context.Context, cmd Command) ProcessResult {
			require.Len(t, cmd.Args, 5)
			out, ok := outputs[cmd.Args[4]]
			if !ok {
				return ProcessResult{ExitCode: 2, Output: []byte("filesets: ERROR: Invalid input\n")}
			}
			require.NoError(t, os.WriteFile(cmd.Args[3], []byte(out), 0644))
			return ProcessResult{}
		}, nil)
}

// expressions lists the expression argument of every recorded invocation
func expressions(r *mockRunner) []string {
	var exprs []string
	for _, call := range r.Calls {
		cmd := call.Arguments.Get(1).(Command)
		exprs = append(exprs, cmd.Args[len(cmd.Args)-1])
	}
	return exprs
}
