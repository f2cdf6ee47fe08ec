package remote

import (
	"errors"

	"hgbridge/pkg/serrors"
)

// NotGitRepository is implemented by foreign-client errors reporting that
// the target is not a git repository.
type NotGitRepository interface {
	NotGitRepository() bool
}

// TranslateForeign rewrites a foreign-client not-a-git-repository failure
// into the bridge's own serrors.ErrNotGitRepository so callers can abort
// with a user-facing message. All other errors pass through unchanged.
func TranslateForeign(err error) error {
	if err == nil {
		return nil
	}

	var ngr NotGitRepository
	if errors.As(err, &ngr) && ngr.NotGitRepository() {
		return serrors.Wrap(serrors.ErrNotGitRepository, err, "not a git repository")
	}

	return err
}
