//go:build !windows

package singleinstance

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

type lockFiles struct {
	dir string
}

// NewTokenService returns tokens backed by flock(2). The kernel drops the
// lock when the holding process dies, so a crashed instance never leaves a
// token behind. Lock files themselves are left in place.
func NewTokenService(opts TokenOptions) TokenService {
	return lockFiles{dir: opts.Dir}
}

func (l lockFiles) Create(name string) (Token, bool, error) {
	dir := l.dir
	if dir == "" {
		dir = defaultLockDir()
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, false, fmt.Errorf("unable to create lock directory: %w", err)
	}

	f := flock.New(filepath.Join(dir, name+".lock"))
	locked, err := f.TryLock()
	if err != nil {
		return nil, false, err
	}
	log.Tracef("flock %s locked=%t", f.Path(), locked)
	return f, !locked, nil
}

func defaultLockDir() string {
	if d := os.Getenv("XDG_RUNTIME_DIR"); d != "" {
		return d
	}
	return os.TempDir()
}
