package store_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/easyws/internal/adapters/store"
	"go.trai.ch/easyws/internal/core/domain"
)

func TestEncodePath(t *testing.T) {
	tests := []struct {
		identity string
		want     string
	}{
		{identity: "proj/main", want: "proj/main.ws"},
		{identity: "Proj/main", want: "!proj/main.ws"},
		{identity: "proj/feature-x", want: "proj/feature-x.ws"},
		{identity: "proj/v1.2", want: "proj/v1.2.ws"},
		{identity: ".dotfiles/main", want: "%2edotfiles/main.ws"},
		{identity: "my proj/a", want: "my%20proj/a.ws"},
		{identity: "a.ws/b", want: "a%2ews/b.ws"},
		{identity: "a", want: "a.ws"},
		{identity: "x%41", want: "x%2541.ws"},
		{identity: "café", want: "caf%c3%a9.ws"},
		{identity: "team/proj/release", want: "team/proj/release.ws"},
	}

	for _, tt := range tests {
		t.Run(tt.identity, func(t *testing.T) {
			got, err := store.EncodePath(tt.identity, domain.DefaultExtension)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			back, err := store.DecodePath(got, domain.DefaultExtension)
			require.NoError(t, err)
			assert.Equal(t, tt.identity, back)
		})
	}
}

func TestEncodePath_Distinct(t *testing.T) {
	identities := []string{
		"proj/main", "Proj/main", "PROJ/main", "proj/Main",
		"a", "a.ws/b", "a.ws", "A", "a/b", "a%2fb", "a_b", "a-b",
		".a", "%2ea", "a b", "a%20b",
	}

	seen := make(map[string]string, len(identities))
	for _, id := range identities {
		p, err := store.EncodePath(id, domain.DefaultExtension)
		require.NoError(t, err)

		key := strings.ToLower(p)
		if prev, ok := seen[key]; ok {
			t.Fatalf("identities %q and %q both map to %q", prev, id, p)
		}
		seen[key] = id

		for elem := range strings.SplitSeq(p, "/") {
			assert.False(t, strings.HasPrefix(elem, "."), "element %q of %q is hidden", elem, p)
		}
	}
}

func TestEncodePath_Invalid(t *testing.T) {
	for _, id := range []string{"", "  ", "a//b", "../etc", "a/./b", "a\x00b", "/abs"} {
		_, err := store.EncodePath(id, domain.DefaultExtension)
		require.ErrorIs(t, err, domain.ErrInvalidIdentity, "identity %q", id)
	}
}

func TestDecodePath_Rejects(t *testing.T) {
	for _, rel := range []string{
		"main.txt",
		".ws",
		"Main.ws",
		"a%2.ws",
		"a%zz.ws",
		"a!.ws",
		"a!A.ws",
		"a.ws/b.ws",
		"%61.ws",
	} {
		_, err := store.DecodePath(rel, domain.DefaultExtension)
		require.Error(t, err, "path %q", rel)
	}
}
