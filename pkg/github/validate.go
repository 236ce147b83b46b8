package github

import (
	"regexp"
	"strings"

	apperrors "github.com/repolens/repolens/pkg/errors"
)

// ownerRE matches GitHub usernames and organizations: 1-39 alphanumerics or
// hyphens, no leading hyphen. repoRE matches repository names: 1-100
// alphanumerics, hyphens, underscores, or dots.
var (
	ownerRE = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]{0,38}$`)
	repoRE  = regexp.MustCompile(`^[a-zA-Z0-9._-]{1,100}$`)
)

// ValidateOwner checks a GitHub username or organization name. Failures are
// structured: a missing owner carries INVALID_INPUT, a malformed one
// INVALID_REPO, so callers map them to responses without re-wrapping.
func ValidateOwner(owner string) error {
	if owner == "" {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "owner is required")
	}
	if !ownerRE.MatchString(owner) {
		return apperrors.New(apperrors.ErrCodeInvalidRepo, "invalid owner %q: must be 1-39 alphanumerics or hyphens, cannot start with a hyphen", owner)
	}
	return nil
}

// ValidateRepo checks a GitHub repository name.
func ValidateRepo(repo string) error {
	if repo == "" {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "repo is required")
	}
	if !repoRE.MatchString(repo) {
		return apperrors.New(apperrors.ErrCodeInvalidRepo, "invalid repo %q: must be 1-100 alphanumerics, hyphens, underscores, or dots", repo)
	}
	return nil
}

// ValidateRepoRef checks both halves of a repository reference.
func ValidateRepoRef(owner, repo string) error {
	if err := ValidateOwner(owner); err != nil {
		return err
	}
	return ValidateRepo(repo)
}

// ParseRepoRef splits an "owner/repo" string and validates both parts.
func ParseRepoRef(ref string) (owner, repo string, err error) {
	owner, repo, found := strings.Cut(ref, "/")
	if !found {
		return "", "", apperrors.New(apperrors.ErrCodeInvalidRepo, "invalid repository reference %q: use owner/repo", ref)
	}
	if err := ValidateRepoRef(owner, repo); err != nil {
		return "", "", err
	}
	return owner, repo, nil
}
