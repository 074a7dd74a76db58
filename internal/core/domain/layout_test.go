package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/easyws/internal/core/domain"
)

func TestLayoutPaths(t *testing.T) {
	base := filepath.Join("home", "u", ".config")

	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "DefaultAppPath",
			got:      domain.DefaultAppPath(base),
			expected: filepath.Join(base, "easyws"),
		},
		{
			name:     "DefaultStorePath",
			got:      domain.DefaultStorePath(base),
			expected: filepath.Join(base, "easyws", "workspaces"),
		},
		{
			name:     "DefaultConfigPath",
			got:      domain.DefaultConfigPath(base),
			expected: filepath.Join(base, "easyws", "config.yaml"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}
