package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fsrun/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		contains []string
	}{
		{
			name: "quiet discards",
			opts: Options{Format: config.LogFormatText, RunID: "r1"},
		},
		{
			name:     "verbose text",
			opts:     Options{Verbose: true, Format: config.LogFormatText, RunID: "r1"},
			contains: []string{"level=DEBUG", "msg=checked", "run=r1", "case=1"},
		},
		{
			name:     "unknown format falls back to text",
			opts:     Options{Verbose: true, Format: "xml"},
			contains: []string{"msg=checked"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			New(&buf, tt.opts).Debug("checked", "case", 1)

			if len(tt.contains) == 0 {
				assert.Empty(t, buf.String())
				return
			}
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, Options{Verbose: true, Format: config.LogFormatJSON, RunID: "r2"}).Info("discovered", "files", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "discovered", record["msg"])
	assert.Equal(t, "r2", record["run"])
	assert.EqualValues(t, 3, record["files"])
}

func TestNewRunID(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	assert.NotEqual(t, a, b)

	id, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), id.Version())
}
