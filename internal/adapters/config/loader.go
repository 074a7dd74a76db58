// Package config provides the configuration loader for easyws.
package config

import (
	"bytes"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"go.trai.ch/easyws/internal/core/domain"
	"go.trai.ch/easyws/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding the configuration file.
const (
	EnvConfig    = "EASYWS_CONFIG"
	EnvStoreDir  = "EASYWS_STORE_DIR"
	EnvSession   = "EASYWS_SESSION"
	EnvLogFormat = "EASYWS_LOG_FORMAT"
)

var _ ports.ConfigLoader = (*Loader)(nil)

var validExtensionRegex = regexp.MustCompile(`^\.[A-Za-z0-9_-]+$`)

// Loader implements ports.ConfigLoader using a YAML file and environment variables.
type Loader struct {
	Getenv        func(string) string
	UserConfigDir func() (string, error)
	UserHomeDir   func() (string, error)
	// Getwd anchors a relative store directory given in the environment. Defaults to os.Getwd.
	Getwd func() (string, error)
}

// NewLoader creates a Loader reading the process environment.
func NewLoader() *Loader {
	return &Loader{
		Getenv:        os.Getenv,
		UserConfigDir: os.UserConfigDir,
		UserHomeDir:   os.UserHomeDir,
		Getwd:         os.Getwd,
	}
}

// Load reads the configuration file, applies environment overrides and fills in defaults.
// A missing default configuration file is not an error.
func (l *Loader) Load() (*domain.Config, error) {
	var file Configfile

	configPath, explicit, err := l.configPath()
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		found, err := readAndUnmarshalYAML(configPath, &file)
		if err != nil {
			return nil, err
		}
		if !found && explicit {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, "config file does not exist"), "path", configPath)
		}
	}

	storeBase := filepath.Dir(configPath)
	if v := l.Getenv(EnvStoreDir); v != "" {
		file.StoreDir = v
		// A relative override is taken from the shell, so it follows the working directory.
		if storeBase, err = l.workDir(); err != nil {
			return nil, err
		}
	}
	if v := l.Getenv(EnvSession); v != "" {
		file.SessionFile = v
	}
	if v := l.Getenv(EnvLogFormat); v != "" {
		file.LogFormat = v
	}

	return l.resolve(&file, storeBase)
}

func (l *Loader) workDir() (string, error) {
	getwd := l.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}
	dir, err := getwd()
	if err != nil {
		return "", zerr.Wrap(errors.Join(domain.ErrInvalidConfig, err), "cannot determine working directory")
	}
	return dir, nil
}

func (l *Loader) configPath() (string, bool, error) {
	if v := l.Getenv(EnvConfig); v != "" {
		path, err := l.expandHome(v)
		return path, true, err
	}

	dir, err := l.UserConfigDir()
	if err != nil {
		// Without a config dir there is nothing to read; defaults may still come from the environment.
		return "", false, nil //nolint:nilerr // absence of a config dir is not fatal here
	}
	return domain.DefaultConfigPath(dir), false, nil
}

func (l *Loader) resolve(file *Configfile, baseDir string) (*domain.Config, error) {
	cfg := &domain.Config{
		Extension:        domain.DefaultExtension,
		LogFormat:        domain.LogFormatAuto,
		AutosaveDebounce: domain.DefaultAutosaveDebounce,
	}

	storeDir, err := l.resolveStoreDir(file.StoreDir, baseDir)
	if err != nil {
		return nil, err
	}
	cfg.StoreDir = storeDir

	if file.Extension != "" {
		if !validExtensionRegex.MatchString(file.Extension) {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "extension must be a dot followed by letters, digits, '-' or '_'"),
				"extension", file.Extension)
		}
		cfg.Extension = file.Extension
	}

	if file.SessionFile != "" {
		session := file.SessionFile
		if session != domain.StdioPath {
			if session, err = l.expandHome(session); err != nil {
				return nil, err
			}
		}
		cfg.SessionFile = session
	}

	if file.LogFormat != "" {
		switch format := domain.LogFormat(strings.ToLower(file.LogFormat)); format {
		case domain.LogFormatAuto, domain.LogFormatPretty, domain.LogFormatJSON:
			cfg.LogFormat = format
		default:
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "log_format must be auto, pretty or json"),
				"log_format", file.LogFormat)
		}
	}

	if file.Autosave.Debounce != "" {
		d, err := time.ParseDuration(file.Autosave.Debounce)
		if err != nil || d <= 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "autosave.debounce must be a positive duration"),
				"debounce", file.Autosave.Debounce)
		}
		cfg.AutosaveDebounce = d
	}

	return cfg, nil
}

func (l *Loader) resolveStoreDir(dir, baseDir string) (string, error) {
	if dir == "" {
		userDir, err := l.UserConfigDir()
		if err != nil {
			return "", zerr.Wrap(errors.Join(domain.ErrInvalidConfig, err), "cannot determine default store directory")
		}
		return domain.DefaultStorePath(userDir), nil
	}

	dir, err := l.expandHome(dir)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(dir) && baseDir != "" && baseDir != "." {
		dir = filepath.Join(baseDir, dir)
	}
	return filepath.Clean(dir), nil
}

func (l *Loader) expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := l.UserHomeDir()
	if err != nil {
		return "", zerr.With(zerr.Wrap(errors.Join(domain.ErrInvalidConfig, err), "cannot expand home directory"), "path", path)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// readAndUnmarshalYAML decodes the file at path into v, rejecting unknown keys.
// It reports false when the file does not exist.
func readAndUnmarshalYAML(path string, v any) (bool, error) {
	//nolint:gosec // Path comes from the user's own configuration
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return false, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return true, nil
}
