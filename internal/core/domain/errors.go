package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrNoRepoContext is returned when no identity hint was given and none can be derived
	// from the repository the command runs in.
	ErrNoRepoContext = zerr.New("no repository context to derive a workspace identity from")

	// ErrNotARepository is returned when the working directory is not inside a repository.
	ErrNotARepository = zerr.New("not inside a git repository")

	// ErrNoBranch is returned when the repository has no current branch (detached HEAD, no commits).
	ErrNoBranch = zerr.New("repository has no current branch")

	// ErrNoActiveSession is returned when there is no editing session to capture or apply.
	ErrNoActiveSession = zerr.New("no active editing session")

	// ErrWorkspaceNotFound is returned when no workspace is stored under an identity.
	ErrWorkspaceNotFound = zerr.New("workspace not found")

	// ErrStoreIOFailure is returned when a workspace record cannot be written, read or removed.
	ErrStoreIOFailure = zerr.New("workspace store failure")

	// ErrInvalidIdentity is returned when an identity is empty or malformed.
	ErrInvalidIdentity = zerr.New("invalid workspace identity")

	// ErrNoCurrentWorkspace is returned when there is no workspace associated with the session.
	ErrNoCurrentWorkspace = zerr.New("no workspace has been opened or saved yet")

	// ErrUnknownCommand is returned when the invocation protocol names an unknown command.
	ErrUnknownCommand = zerr.New("unknown command")

	// ErrInvalidArguments is returned when the invocation argument blob cannot be decoded.
	ErrInvalidArguments = zerr.New("invalid command arguments")

	// ErrInvocationFailed is returned by the invoke command after its failure has been reported.
	ErrInvocationFailed = zerr.New("invocation failed")

	// ErrSessionDecodeFailed is returned when the session document cannot be decoded.
	ErrSessionDecodeFailed = zerr.New("failed to decode session document")

	// ErrSessionWriteFailed is returned when the session document cannot be written.
	ErrSessionWriteFailed = zerr.New("failed to write session document")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a config value is not acceptable.
	ErrInvalidConfig = zerr.New("invalid configuration")
)

// Kind is the stable name of an error class, as reported by the invocation protocol.
type Kind string

// Known error kinds.
const (
	KindNone              Kind = ""
	KindNoRepoContext     Kind = "NoRepoContext"
	KindNoActiveSession   Kind = "NoActiveSession"
	KindWorkspaceNotFound Kind = "WorkspaceNotFound"
	KindStoreIOFailure    Kind = "StoreIOFailure"
	KindInvalidIdentity   Kind = "InvalidIdentity"
	KindSessionDecode     Kind = "SessionDecodeFailed"
	KindSessionWrite      Kind = "SessionWriteFailed"
	KindNoCurrent         Kind = "NoCurrentWorkspace"
	KindUnknownCommand    Kind = "UnknownCommand"
	KindInvalidArguments  Kind = "InvalidArguments"
	KindInternal          Kind = "Internal"
)

var kinds = []struct {
	err  error
	kind Kind
}{
	{ErrNoRepoContext, KindNoRepoContext},
	{ErrNoActiveSession, KindNoActiveSession},
	{ErrWorkspaceNotFound, KindWorkspaceNotFound},
	{ErrStoreIOFailure, KindStoreIOFailure},
	{ErrInvalidIdentity, KindInvalidIdentity},
	{ErrSessionDecodeFailed, KindSessionDecode},
	{ErrSessionWriteFailed, KindSessionWrite},
	{ErrNoCurrentWorkspace, KindNoCurrent},
	{ErrUnknownCommand, KindUnknownCommand},
	{ErrInvalidArguments, KindInvalidArguments},
}

// KindOf classifies err. Errors that match none of the known sentinels are KindInternal.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}
