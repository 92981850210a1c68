package build

import (
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	ferrors "github.com/lodgekit/facetgen/internal/errors"
)

// lockFileName is created inside the output directory while a build runs.
const lockFileName = ".facetgen.lock"

// OutputLock provides cross-process locking of the output directory so
// two facetgen runs cannot interleave artifact writes.
type OutputLock struct {
	path   string
	flock  *flock.Flock
	locked bool
}

// NewOutputLock creates a lock for the given output directory.
func NewOutputLock(dir string) *OutputLock {
	path := filepath.Join(dir, lockFileName)
	return &OutputLock{
		path:  path,
		flock: flock.New(path),
	}
}

// Acquire takes the lock without blocking. If another process holds it,
// an ErrCodeOutputLocked error is returned.
func (l *OutputLock) Acquire() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return ferrors.Wrap(ferrors.ErrCodeArtifactWrite, err)
	}

	acquired, err := l.flock.TryLock()
	if err != nil {
		return ferrors.Wrap(ferrors.ErrCodeOutputLocked, err).
			WithDetail("path", l.path)
	}
	if !acquired {
		return ferrors.Newf(ferrors.ErrCodeOutputLocked, "output directory is locked by another facetgen process").
			WithDetail("path", l.path).
			WithSuggestion("wait for the other run to finish or remove a stale " + lockFileName)
	}

	l.locked = true
	return nil
}

// Release releases the lock.
// Safe to call multiple times or on an unacquired lock.
func (l *OutputLock) Release() error {
	if !l.locked {
		return nil
	}
	l.locked = false
	if err := l.flock.Unlock(); err != nil {
		return ferrors.Wrap(ferrors.ErrCodeOutputLocked, err)
	}
	return nil
}

// Path returns the path to the lock file.
func (l *OutputLock) Path() string {
	return l.path
}
