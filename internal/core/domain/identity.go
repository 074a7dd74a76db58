package domain

import (
	"strings"
	"unicode"

	"go.trai.ch/zerr"
)

// IdentitySeparator joins the repository root name and the branch name of a derived identity.
const IdentitySeparator = "/"

// RepoContext is the repository a command runs in.
type RepoContext struct {
	// RootName is the base name of the repository root directory.
	RootName string
	// Branch is the name of the checked out branch.
	Branch string
}

// Valid reports whether both parts needed to derive an identity are present.
func (r RepoContext) Valid() bool {
	return r.RootName != "" && r.Branch != ""
}

// Identity derives the workspace identity "<root>/<branch>".
func (r RepoContext) Identity() string {
	return r.RootName + IdentitySeparator + r.Branch
}

// ResolveIdentity returns the identity a command operates on.
//
// A non-empty hint is the identity verbatim. Without a hint the identity is derived from
// repo, which must be present and carry both a root name and a branch.
func ResolveIdentity(hint string, repo *RepoContext) (string, error) {
	if hint != "" {
		if err := ValidateIdentity(hint); err != nil {
			return "", err
		}
		return hint, nil
	}

	if repo == nil || !repo.Valid() {
		return "", ErrNoRepoContext
	}

	identity := repo.Identity()
	if err := ValidateIdentity(identity); err != nil {
		return "", err
	}
	return identity, nil
}

// ValidateIdentity checks that identity can be used as a storage key.
func ValidateIdentity(identity string) error {
	if strings.TrimSpace(identity) == "" {
		return zerr.Wrap(ErrInvalidIdentity, "identity is empty")
	}

	for _, r := range identity {
		if unicode.IsControl(r) {
			return zerr.With(zerr.Wrap(ErrInvalidIdentity, "identity contains a control character"), "identity", identity)
		}
	}

	for segment := range strings.SplitSeq(identity, IdentitySeparator) {
		switch segment {
		case "":
			return zerr.With(zerr.Wrap(ErrInvalidIdentity, "identity contains an empty segment"), "identity", identity)
		case ".", "..":
			return zerr.With(zerr.Wrap(ErrInvalidIdentity, "identity contains a relative segment"), "identity", identity)
		}
	}

	return nil
}
