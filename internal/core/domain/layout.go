package domain

import "path/filepath"

const (
	// AppDirName is the name of the easyws directory below the user config dir.
	AppDirName = "easyws"

	// WorkspacesDirName is the name of the directory holding workspace records.
	WorkspacesDirName = "workspaces"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "config.yaml"

	// DefaultExtension is the file extension of workspace records.
	DefaultExtension = ".ws"

	// CurrentFileName is the name of the marker holding the current workspace identity.
	// It is hidden so it never shows up as a workspace.
	CurrentFileName = ".current"

	// TempFilePattern is the pattern for temporary files used by atomic writes.
	TempFilePattern = ".easyws-tmp-*"

	// StdioPath selects stdin/stdout instead of a session file.
	StdioPath = "-"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultAppPath returns the easyws directory inside the given user config dir.
func DefaultAppPath(userConfigDir string) string {
	return filepath.Join(userConfigDir, AppDirName)
}

// DefaultStorePath returns the default directory for workspace records.
// It joins <config>/easyws and workspaces.
func DefaultStorePath(userConfigDir string) string {
	return filepath.Join(DefaultAppPath(userConfigDir), WorkspacesDirName)
}

// DefaultConfigPath returns the default location of the configuration file.
func DefaultConfigPath(userConfigDir string) string {
	return filepath.Join(DefaultAppPath(userConfigDir), ConfigFileName)
}
