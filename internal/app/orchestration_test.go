package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/easyws/internal/app"
	"go.trai.ch/easyws/internal/core/domain"
	"go.trai.ch/easyws/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type mockSet struct {
	store   *mocks.MockWorkspaceStore
	state   *mocks.MockSessionState
	session *mocks.MockSessionAdapter
	repo    *mocks.MockRepoInspector
	watcher *mocks.MockWatcher
	logger  *mocks.MockLogger
}

func newMocked(t *testing.T) (*app.App, *mockSet) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &mockSet{
		store:   mocks.NewMockWorkspaceStore(ctrl),
		state:   mocks.NewMockSessionState(ctrl),
		session: mocks.NewMockSessionAdapter(ctrl),
		repo:    mocks.NewMockRepoInspector(ctrl),
		watcher: mocks.NewMockWatcher(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
	}
	a := app.New(m.store, m.state, m.session, m.repo, m.watcher, m.logger).WithWorkDir("/work/proj")
	return a, m
}

func TestSaveWorkspace_Steps(t *testing.T) {
	a, m := newMocked(t)
	ws := &domain.Workspace{Folders: []string{"/src"}}

	gomock.InOrder(
		m.repo.EXPECT().Inspect(gomock.Any(), "/work/proj").
			Return(domain.RepoContext{RootName: "proj", Branch: "feature/login"}, nil),
		m.session.EXPECT().Capture(gomock.Any()).Return(ws, nil),
		m.store.EXPECT().Save("proj/feature/login", ws).Return(nil),
		m.state.EXPECT().SetCurrent("proj/feature/login").Return(nil),
	)
	m.logger.EXPECT().Info(gomock.Any())

	id, err := a.SaveWorkspace(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "proj/feature/login", id)
}

func TestSaveWorkspace_HintSkipsRepo(t *testing.T) {
	a, m := newMocked(t)
	ws := &domain.Workspace{}

	m.session.EXPECT().Capture(gomock.Any()).Return(ws, nil)
	m.store.EXPECT().Save("Explicit Name", ws).Return(nil)
	m.state.EXPECT().SetCurrent("Explicit Name").Return(nil)
	m.logger.EXPECT().Info(gomock.Any())

	id, err := a.SaveWorkspace(context.Background(), "Explicit Name")
	require.NoError(t, err)
	assert.Equal(t, "Explicit Name", id)
}

func TestSaveWorkspace_CaptureFailureStops(t *testing.T) {
	a, m := newMocked(t)

	m.session.EXPECT().Capture(gomock.Any()).Return(nil, domain.ErrNoActiveSession)

	_, err := a.SaveWorkspace(context.Background(), "proj/main")
	require.ErrorIs(t, err, domain.ErrNoActiveSession)
}

func TestSaveWorkspace_StoreFailureSurfaces(t *testing.T) {
	a, m := newMocked(t)

	m.session.EXPECT().Capture(gomock.Any()).Return(&domain.Workspace{}, nil)
	m.store.EXPECT().Save("proj/main", gomock.Any()).
		Return(errors.Join(domain.ErrStoreIOFailure, errors.New("disk full")))

	_, err := a.SaveWorkspace(context.Background(), "proj/main")
	require.ErrorIs(t, err, domain.ErrStoreIOFailure)
	assert.Equal(t, domain.KindStoreIOFailure, domain.KindOf(err))
}

func TestSaveWorkspace_MarkCurrentFailureIsWarning(t *testing.T) {
	a, m := newMocked(t)

	m.session.EXPECT().Capture(gomock.Any()).Return(&domain.Workspace{}, nil)
	m.store.EXPECT().Save("proj/main", gomock.Any()).Return(nil)
	m.state.EXPECT().SetCurrent("proj/main").Return(domain.ErrStoreIOFailure)
	m.logger.EXPECT().Warn(gomock.Any())
	m.logger.EXPECT().Info(gomock.Any())

	id, err := a.SaveWorkspace(context.Background(), "proj/main")
	require.NoError(t, err)
	assert.Equal(t, "proj/main", id)
}

func TestOpenWorkspace_ExistingRecord(t *testing.T) {
	a, m := newMocked(t)
	ws := &domain.Workspace{Identity: "proj/main", Folders: []string{"/src"}}

	gomock.InOrder(
		m.store.EXPECT().Exists("proj/main").Return(true, nil),
		m.store.EXPECT().Load("proj/main").Return(ws, nil),
		m.session.EXPECT().Apply(gomock.Any(), ws).Return(nil),
		m.state.EXPECT().SetCurrent("proj/main").Return(nil),
	)
	m.logger.EXPECT().Info(gomock.Any())

	_, err := a.OpenWorkspace(context.Background(), "proj/main")
	require.NoError(t, err)
}

func TestOpenWorkspace_LogMessages(t *testing.T) {
	tests := []struct {
		name    string
		exists  bool
		record  *domain.Workspace
		message string
	}{
		{"saved record", true, &domain.Workspace{Folders: []string{"/src"}}, "opened workspace proj/main"},
		{"saved empty record", true, domain.NewEmptyWorkspace("proj/main"), "opened empty workspace proj/main"},
		{"no record", false, nil, "opened new workspace proj/main"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, m := newMocked(t)

			m.store.EXPECT().Exists("proj/main").Return(tt.exists, nil)
			if tt.exists {
				m.store.EXPECT().Load("proj/main").Return(tt.record, nil)
			} else {
				m.store.EXPECT().Save("proj/main", gomock.Any()).Return(nil)
			}
			m.session.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(nil)
			m.state.EXPECT().SetCurrent("proj/main").Return(nil)
			m.logger.EXPECT().Info(tt.message)

			_, err := a.OpenWorkspace(context.Background(), "proj/main")
			require.NoError(t, err)
		})
	}
}

func TestOpenWorkspace_LoadFailureSkipsApply(t *testing.T) {
	a, m := newMocked(t)

	m.store.EXPECT().Exists("proj/main").Return(true, nil)
	m.store.EXPECT().Load("proj/main").Return(nil, domain.ErrStoreIOFailure)

	_, err := a.OpenWorkspace(context.Background(), "proj/main")
	require.ErrorIs(t, err, domain.ErrStoreIOFailure)
}

func TestOpenWorkspace_CreateFailureSkipsApply(t *testing.T) {
	a, m := newMocked(t)

	m.store.EXPECT().Exists("proj/new").Return(false, nil)
	m.store.EXPECT().Save("proj/new", gomock.Any()).Return(domain.ErrStoreIOFailure)

	_, err := a.OpenWorkspace(context.Background(), "proj/new")
	require.ErrorIs(t, err, domain.ErrStoreIOFailure)
}

func TestDeleteWorkspace_StoreFailure(t *testing.T) {
	a, m := newMocked(t)

	m.store.EXPECT().Delete("proj/main").Return(domain.ErrStoreIOFailure)

	_, err := a.DeleteWorkspace(context.Background(), "proj/main")
	require.ErrorIs(t, err, domain.ErrStoreIOFailure)
}

func TestResolve_PlainInspectorErrorIsNoRepoContext(t *testing.T) {
	a, m := newMocked(t)

	m.repo.EXPECT().Inspect(gomock.Any(), "/work/proj").Return(domain.RepoContext{}, errors.New("exec failed"))

	_, err := a.SaveWorkspace(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrNoRepoContext)
}

func TestResolve_IncompleteRepoContext(t *testing.T) {
	a, m := newMocked(t)

	m.repo.EXPECT().Inspect(gomock.Any(), "/work/proj").Return(domain.RepoContext{RootName: "proj"}, nil)

	_, err := a.OpenWorkspace(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrNoRepoContext)
}

func TestListWorkspaces_LoadFailure(t *testing.T) {
	a, m := newMocked(t)

	m.store.EXPECT().List().Return([]string{"a", "b"}, nil)
	m.state.EXPECT().Current().Return("", nil)
	m.store.EXPECT().Load("a").Return(&domain.Workspace{}, nil).MaxTimes(1)
	m.store.EXPECT().Load("b").Return(nil, domain.ErrStoreIOFailure).MaxTimes(1)

	_, err := a.ListWorkspaces(context.Background(), true)
	require.ErrorIs(t, err, domain.ErrStoreIOFailure)
}
