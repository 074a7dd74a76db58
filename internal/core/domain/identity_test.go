package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/easyws/internal/core/domain"
)

func TestResolveIdentity(t *testing.T) {
	repo := &domain.RepoContext{RootName: "proj", Branch: "feature/x"}

	tests := []struct {
		name    string
		hint    string
		repo    *domain.RepoContext
		want    string
		wantErr error
	}{
		{name: "hint wins over repo", hint: "notes", repo: repo, want: "notes"},
		{name: "hint without repo", hint: "notes", want: "notes"},
		{name: "hint is kept verbatim", hint: "My Notes", want: "My Notes"},
		{name: "derived from repo", repo: repo, want: "proj/feature/x"},
		{name: "no hint and no repo", wantErr: domain.ErrNoRepoContext},
		{name: "repo without branch", repo: &domain.RepoContext{RootName: "proj"}, wantErr: domain.ErrNoRepoContext},
		{name: "repo without root", repo: &domain.RepoContext{Branch: "main"}, wantErr: domain.ErrNoRepoContext},
		{name: "invalid hint", hint: "a//b", repo: repo, wantErr: domain.ErrInvalidIdentity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ResolveIdentity(tt.hint, tt.repo)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveIdentity_DistinctBranches(t *testing.T) {
	a, err := domain.ResolveIdentity("", &domain.RepoContext{RootName: "proj", Branch: "main"})
	require.NoError(t, err)
	b, err := domain.ResolveIdentity("", &domain.RepoContext{RootName: "proj", Branch: "dev"})
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestValidateIdentity(t *testing.T) {
	valid := []string{"notes", "proj/main", "proj/feature/x", "a.b", "Straße", "with space"}
	for _, id := range valid {
		t.Run("valid "+id, func(t *testing.T) {
			assert.NoError(t, domain.ValidateIdentity(id))
		})
	}

	invalid := map[string]string{
		"empty":          "",
		"blank":          "   ",
		"leading slash":  "/proj",
		"trailing slash": "proj/",
		"empty segment":  "proj//main",
		"dot segment":    "proj/./main",
		"parent segment": "../etc",
		"control char":   "proj\nmain",
	}
	for name, id := range invalid {
		t.Run("invalid "+name, func(t *testing.T) {
			assert.ErrorIs(t, domain.ValidateIdentity(id), domain.ErrInvalidIdentity)
		})
	}
}
