package tagtable

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// ErrOutputLocked reports that another run is writing the same table.
var ErrOutputLocked = errors.New("output table is locked by another run")

type runLock struct {
	path string
	lock *flock.Flock
}

// lockPath maps an output table to a stable lock file name. The name is a
// SHA-1 UUID of the absolute output path so the lock never lands inside the
// scanned tree.
func lockPath(dir, output string) (string, error) {
	abs, err := filepath.Abs(output)
	if err != nil {
		return "", fmt.Errorf("resolve output path: %w", err)
	}
	if dir == "" {
		dir = os.TempDir()
	}
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte("file://"+filepath.ToSlash(abs)))
	return filepath.Join(dir, "dicomtags-"+id.String()+".lock"), nil
}

func acquireLock(dir, output string) (*runLock, error) {
	path, err := lockPath(dir, output)
	if err != nil {
		return nil, err
	}
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrOutputLocked, output)
	}
	return &runLock{path: path, lock: lock}, nil
}

func (l *runLock) release() error {
	if l == nil {
		return nil
	}
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release lock %s: %w", l.path, err)
	}
	return nil
}
