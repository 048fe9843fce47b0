package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.eeva.app/hub/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []logger.ErrorEntry
	}{
		{
			name: "standard error",
			err:  errors.New("plain"),
			want: []logger.ErrorEntry{{Message: "plain"}},
		},
		{
			name: "wrapped chain",
			err:  zerr.Wrap(zerr.Wrap(errors.New("root"), "middle"), "outer"),
			want: []logger.ErrorEntry{
				{Message: "outer", Metadata: map[string]any{}},
				{Message: "middle", Metadata: map[string]any{}},
				{Message: "root"},
			},
		},
		{
			name: "metadata on standard error folds forward",
			err:  zerr.With(errors.New("eof"), "path", "/notes"),
			want: []logger.ErrorEntry{
				{Message: "eof", Metadata: map[string]any{"path": "/notes"}},
			},
		},
		{
			name: "stacked metadata",
			err:  zerr.With(zerr.With(zerr.New("base"), "a", 1), "b", "two"),
			want: []logger.ErrorEntry{
				{Message: "base", Metadata: map[string]any{"a": 1, "b": "two"}},
			},
		},
		{
			name: "nil",
			err:  nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.CollectErrorEntries(tt.err))
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single",
			entries: []logger.ErrorEntry{{Message: "boom"}},
			want:    "Error: boom",
		},
		{
			name: "causes",
			entries: []logger.ErrorEntry{
				{Message: "outer"},
				{Message: "inner"},
				{Message: "root"},
			},
			want: "Error: outer\n\n  Caused by:\n    → inner\n    → root",
		},
		{
			name: "sorted metadata",
			entries: []logger.ErrorEntry{
				{Message: "outer", Metadata: map[string]any{"zeta": "z", "alpha": 1}},
				{Message: "inner", Metadata: map[string]any{"key": "tiles"}},
			},
			want: "Error: outer\n       alpha: 1\n       zeta: z\n\n  Caused by:\n    → inner\n      key: tiles",
		},
		{
			name: "multiline",
			entries: []logger.ErrorEntry{
				{Message: "line1\nline2"},
				{Message: "cause1\ncause2"},
			},
			want: "Error: line1\n       line2\n\n  Caused by:\n    → cause1\n      cause2",
		},
		{
			name:    "empty",
			entries: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}
