package domain

import (
	"bytes"
	"encoding/json"
	"slices"
)

// Workspace is a persisted snapshot of an editing session: its open folders, files and layout.
//
// Files carry editor metadata and Layout describes the pane arrangement. Both are opaque
// here and travel through capture, save, load and apply unchanged.
type Workspace struct {
	Identity string
	Folders  []string
	Files    []FileEntry
	Layout   json.RawMessage
}

// FileEntry is an open file, optionally annotated with editor specific metadata
// such as selection or scroll position.
type FileEntry struct {
	Path string
	Meta json.RawMessage
}

// NewEmptyWorkspace returns a workspace without folders, files or layout.
func NewEmptyWorkspace(identity string) *Workspace {
	return &Workspace{
		Identity: identity,
		Folders:  []string{},
		Files:    []FileEntry{},
	}
}

// IsEmpty reports whether the workspace has nothing to restore.
func (w *Workspace) IsEmpty() bool {
	return w == nil || (len(w.Folders) == 0 && len(w.Files) == 0 && len(w.Layout) == 0)
}

// Clone returns a deep copy of the workspace.
func (w *Workspace) Clone() *Workspace {
	if w == nil {
		return nil
	}
	files := make([]FileEntry, len(w.Files))
	for i, f := range w.Files {
		files[i] = FileEntry{Path: f.Path, Meta: bytes.Clone(f.Meta)}
	}
	return &Workspace{
		Identity: w.Identity,
		Folders:  append([]string{}, w.Folders...),
		Files:    files,
		Layout:   bytes.Clone(w.Layout),
	}
}

// Equal reports whether both workspaces hold the same identity, folders, files and layout.
func (w *Workspace) Equal(other *Workspace) bool {
	if w == nil || other == nil {
		return w == other
	}
	return w.Identity == other.Identity &&
		slices.Equal(w.Folders, other.Folders) &&
		slices.EqualFunc(w.Files, other.Files, func(a, b FileEntry) bool {
			return a.Path == b.Path && bytes.Equal(a.Meta, b.Meta)
		}) &&
		bytes.Equal(w.Layout, other.Layout)
}

type workspaceDocument struct {
	Identity string          `json:"identity,omitempty"`
	Folders  []string        `json:"folders"`
	Files    []FileEntry     `json:"files"`
	Layout   json.RawMessage `json:"layout,omitempty"`
}

// MarshalJSON encodes the workspace as a record document.
func (w Workspace) MarshalJSON() ([]byte, error) {
	doc := workspaceDocument{
		Identity: w.Identity,
		Folders:  w.Folders,
		Files:    w.Files,
		Layout:   w.Layout,
	}
	if doc.Folders == nil {
		doc.Folders = []string{}
	}
	if doc.Files == nil {
		doc.Files = []FileEntry{}
	}
	return marshal(doc)
}

// UnmarshalJSON decodes a record document. Opaque blobs are compacted so that
// re-encoding does not change them.
func (w *Workspace) UnmarshalJSON(data []byte) error {
	var doc workspaceDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	layout, err := compactRaw(doc.Layout)
	if err != nil {
		return err
	}
	*w = Workspace{
		Identity: doc.Identity,
		Folders:  doc.Folders,
		Files:    doc.Files,
		Layout:   layout,
	}
	if w.Folders == nil {
		w.Folders = []string{}
	}
	if w.Files == nil {
		w.Files = []FileEntry{}
	}
	return nil
}

type fileEntryDocument struct {
	Path string          `json:"path"`
	Meta json.RawMessage `json:"meta,omitempty"`
}

// MarshalJSON writes entries without metadata as a bare path string.
func (f FileEntry) MarshalJSON() ([]byte, error) {
	if len(f.Meta) == 0 {
		return marshal(f.Path)
	}
	return marshal(fileEntryDocument(f))
}

// UnmarshalJSON accepts either a bare path string or a {"path", "meta"} object.
func (f *FileEntry) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var path string
		if err := json.Unmarshal(trimmed, &path); err != nil {
			return err
		}
		*f = FileEntry{Path: path}
		return nil
	}

	var doc fileEntryDocument
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return err
	}
	meta, err := compactRaw(doc.Meta)
	if err != nil {
		return err
	}
	*f = FileEntry{Path: doc.Path, Meta: meta}
	return nil
}

// compactRaw drops insignificant whitespace from raw and maps JSON null to nil.
func compactRaw(raw json.RawMessage) (json.RawMessage, error) {
	if len(raw) == 0 || string(bytes.TrimSpace(raw)) == "null" {
		return nil, nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, err
	}
	return json.RawMessage(buf.Bytes()), nil
}

// EncodeDocument encodes ws as an indented, newline terminated JSON document.
// HTML characters are not escaped so opaque blobs are written as they were read.
func EncodeDocument(ws *Workspace) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ws); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// marshal is json.Marshal without HTML escaping.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
