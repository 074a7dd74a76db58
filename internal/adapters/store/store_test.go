package store_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/easyws/internal/adapters/store"
	"go.trai.ch/easyws/internal/core/domain"
)

func sampleWorkspace() *domain.Workspace {
	return &domain.Workspace{
		Folders: []string{"/src/proj"},
		Files: []domain.FileEntry{
			{Path: "/src/proj/main.go"},
			{Path: "/src/proj/README.md", Meta: json.RawMessage(`{"selection":[1,4]}`)},
		},
		Layout: json.RawMessage(`{"cols":[0,0.5,1],"cells":[[0,0,1,1]]}`),
	}
}

func TestStore_SaveLoad(t *testing.T) {
	s := store.NewStore(t.TempDir(), "")
	ws := sampleWorkspace()

	require.NoError(t, s.Save("proj/main", ws))

	got, err := s.Load("proj/main")
	require.NoError(t, err)
	assert.Equal(t, "proj/main", got.Identity)
	assert.Equal(t, ws.Folders, got.Folders)
	assert.Equal(t, ws.Files, got.Files)
	assert.JSONEq(t, string(ws.Layout), string(got.Layout))

	assert.Empty(t, ws.Identity, "Save must not mutate its argument")
}

func TestStore_SaveIsIdempotent(t *testing.T) {
	s := store.NewStore(t.TempDir(), "")
	ws := sampleWorkspace()

	require.NoError(t, s.Save("proj/main", ws))
	path, err := s.Path("proj/main")
	require.NoError(t, err)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, s.Save("proj/main", ws))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestStore_SaveReplaces(t *testing.T) {
	s := store.NewStore(t.TempDir(), "")

	require.NoError(t, s.Save("proj/main", sampleWorkspace()))
	replacement := &domain.Workspace{Folders: []string{"/other"}}
	require.NoError(t, s.Save("proj/main", replacement))

	got, err := s.Load("proj/main")
	require.NoError(t, err)
	assert.Equal(t, []string{"/other"}, got.Folders)
	assert.Empty(t, got.Files)
	assert.Nil(t, got.Layout)
}

func TestStore_SaveNilWritesEmpty(t *testing.T) {
	s := store.NewStore(t.TempDir(), "")

	require.NoError(t, s.Save("proj/main", nil))

	got, err := s.Load("proj/main")
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

func TestStore_LoadNotFound(t *testing.T) {
	s := store.NewStore(t.TempDir(), "")

	_, err := s.Load("proj/missing")
	require.ErrorIs(t, err, domain.ErrWorkspaceNotFound)
	assert.Equal(t, domain.KindWorkspaceNotFound, domain.KindOf(err))
}

func TestStore_LoadCorrupt(t *testing.T) {
	s := store.NewStore(t.TempDir(), "")
	path, err := s.Path("proj/main")
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), domain.FilePerm))

	_, err = s.Load("proj/main")
	require.ErrorIs(t, err, domain.ErrStoreIOFailure)
}

func TestStore_Exists(t *testing.T) {
	s := store.NewStore(t.TempDir(), "")

	ok, err := s.Exists("proj/main")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Save("proj/main", sampleWorkspace()))

	ok, err = s.Exists("proj/main")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Exists("proj")
	require.NoError(t, err)
	assert.False(t, ok, "a directory is not a record")
}

func TestStore_Delete(t *testing.T) {
	root := t.TempDir()
	s := store.NewStore(root, "")

	require.NoError(t, s.Save("proj/main", sampleWorkspace()))
	require.NoError(t, s.Delete("proj/main"))

	ok, err := s.Exists("proj/main")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoDirExists(t, filepath.Join(root, "proj"))
	assert.DirExists(t, root)

	err = s.Delete("proj/main")
	require.ErrorIs(t, err, domain.ErrWorkspaceNotFound)
}

func TestStore_DeleteKeepsSiblings(t *testing.T) {
	s := store.NewStore(t.TempDir(), "")

	require.NoError(t, s.Save("proj/main", sampleWorkspace()))
	require.NoError(t, s.Save("proj/dev", sampleWorkspace()))
	require.NoError(t, s.Delete("proj/main"))

	ids, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"proj/dev"}, ids)
}

func TestStore_CaseDistinctIdentities(t *testing.T) {
	s := store.NewStore(t.TempDir(), "")

	require.NoError(t, s.Save("Proj/main", &domain.Workspace{Folders: []string{"/upper"}}))
	require.NoError(t, s.Save("proj/main", &domain.Workspace{Folders: []string{"/lower"}}))

	upper, err := s.Load("Proj/main")
	require.NoError(t, err)
	lower, err := s.Load("proj/main")
	require.NoError(t, err)

	assert.Equal(t, []string{"/upper"}, upper.Folders)
	assert.Equal(t, []string{"/lower"}, lower.Folders)
}

func TestStore_List(t *testing.T) {
	root := t.TempDir()
	s := store.NewStore(root, "")

	ids, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, ids)

	for _, id := range []string{"proj/main", "Proj/dev", "a.ws/b", "solo"} {
		require.NoError(t, s.Save(id, sampleWorkspace()))
	}
	require.NoError(t, s.SetCurrent("proj/main"))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), domain.FilePerm))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".hidden.ws"), []byte("{}"), domain.FilePerm))
	require.NoError(t, os.WriteFile(filepath.Join(root, "Bad.ws"), []byte("{}"), domain.FilePerm))

	ids, err = s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"Proj/dev", "a.ws/b", "proj/main", "solo"}, ids)
}

func TestStore_ListMissingRoot(t *testing.T) {
	s := store.NewStore(filepath.Join(t.TempDir(), "absent"), "")

	ids, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestStore_CustomExtension(t *testing.T) {
	root := t.TempDir()
	s := store.NewStore(root, ".layout")

	require.NoError(t, s.Save("proj/main", sampleWorkspace()))
	assert.FileExists(t, filepath.Join(root, "proj", "main.layout"))

	ids, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"proj/main"}, ids)
}

func TestStore_InvalidIdentity(t *testing.T) {
	s := store.NewStore(t.TempDir(), "")

	require.ErrorIs(t, s.Save("", sampleWorkspace()), domain.ErrInvalidIdentity)
	_, err := s.Load("../escape")
	require.ErrorIs(t, err, domain.ErrInvalidIdentity)
}

func TestStore_Current(t *testing.T) {
	s := store.NewStore(t.TempDir(), "")

	cur, err := s.Current()
	require.NoError(t, err)
	assert.Empty(t, cur)

	require.NoError(t, s.SetCurrent("proj/main"))
	cur, err = s.Current()
	require.NoError(t, err)
	assert.Equal(t, "proj/main", cur)

	require.NoError(t, s.ClearCurrent())
	require.NoError(t, s.ClearCurrent())
	cur, err = s.Current()
	require.NoError(t, err)
	assert.Empty(t, cur)
}

func TestStore_OpaqueBlobsKeepHTMLCharacters(t *testing.T) {
	s := store.NewStore(t.TempDir(), "")
	ws := &domain.Workspace{
		Identity: "proj/main",
		Folders:  []string{"/src/a&b"},
		Files:    []domain.FileEntry{{Path: "/src/<x>.go", Meta: json.RawMessage(`{"q":"a<b"}`)}},
		Layout:   json.RawMessage(`{"t":"x&y"}`),
	}

	require.NoError(t, s.Save("proj/main", ws))

	got, err := s.Load("proj/main")
	require.NoError(t, err)
	assert.True(t, ws.Equal(got), "loaded %+v", got)

	path, err := s.Path("proj/main")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"x&y"`)
	assert.Contains(t, string(data), `"a<b"`)
	assert.NotContains(t, string(data), `\u00`)
}
