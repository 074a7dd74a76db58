package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"

	"go.trai.ch/easyws/internal/core/domain"
	"go.trai.ch/zerr"
)

// Invocation protocol command names.
const (
	CommandSave   = "save"
	CommandSaveAs = "save_as"
	CommandOpen   = "open"
	CommandDelete = "delete"
)

const commandSuffix = "_easy_workspace"

// InvokeResult is the outcome of an invocation, printed as JSON to the caller.
type InvokeResult struct {
	OK       bool        `json:"ok"`
	Command  string      `json:"command"`
	Identity string      `json:"identity,omitempty"`
	Error    domain.Kind `json:"error,omitempty"`
	Message  string      `json:"message,omitempty"`
}

// invokeArgs is the argument blob. Both fields name the workspace; identity wins.
type invokeArgs struct {
	Identity string `json:"identity"`
	Filename string `json:"filename"`
}

// NormalizeCommand maps a command name to one of the protocol commands. It accepts
// '-' for '_' and the "_easy_workspace" suffixed names.
func NormalizeCommand(name string) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "-", "_")
	name = strings.TrimSuffix(name, commandSuffix)

	switch name {
	case CommandSave, CommandSaveAs, CommandOpen, CommandDelete:
		return name, true
	default:
		return name, false
	}
}

// Invoke runs the named command with the JSON argument blob. The result is always
// returned; the error is non-nil when the command failed.
func (a *App) Invoke(ctx context.Context, name string, blob []byte) (*InvokeResult, error) {
	command, ok := NormalizeCommand(name)
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrUnknownCommand, "command is not save, save_as, open or delete"),
			"command", name)
		return NewInvokeFailure(name, "", err), err
	}

	args, err := decodeArgs(blob)
	if err != nil {
		return NewInvokeFailure(command, "", err), err
	}
	hint := args.Identity
	if hint == "" {
		hint = args.Filename
	}

	var identity string
	switch command {
	case CommandSave:
		identity, err = a.SaveWorkspace(ctx, hint)
	case CommandSaveAs:
		identity, err = a.SaveAsWorkspace(ctx, hint)
	case CommandOpen:
		identity, err = a.OpenWorkspace(ctx, hint)
	case CommandDelete:
		identity, err = a.DeleteWorkspace(ctx, hint)
	}
	if err != nil {
		return NewInvokeFailure(command, identity, err), err
	}

	return &InvokeResult{OK: true, Command: command, Identity: identity}, nil
}

func decodeArgs(blob []byte) (invokeArgs, error) {
	var args invokeArgs

	blob = bytes.TrimSpace(blob)
	if len(blob) == 0 || bytes.Equal(blob, []byte("null")) {
		return args, nil
	}

	dec := json.NewDecoder(bytes.NewReader(blob))
	if err := dec.Decode(&args); err != nil {
		return args, errors.Join(domain.ErrInvalidArguments, zerr.Wrap(err, "argument blob must be a JSON object"))
	}
	if dec.More() {
		return args, zerr.Wrap(domain.ErrInvalidArguments, "argument blob has trailing data")
	}
	return args, nil
}

// NewInvokeFailure builds the result reported for a failed command.
func NewInvokeFailure(command, identity string, err error) *InvokeResult {
	return &InvokeResult{
		Command:  command,
		Identity: identity,
		Error:    domain.KindOf(err),
		Message:  err.Error(),
	}
}
