package tmpfile

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// Dir is a temporary directory that is removed, with everything in it, when
// closed.
type Dir struct {
	fsys billy.Filesystem
	path string
	once sync.Once
}

// NewDir creates a uniquely named directory in the temporary-storage
// directory of the backing filesystem. WithContent and WithContentString
// are ignored.
func NewDir(opts ...Option) (*Dir, error) {
	cfg := newConfig(opts)

	if err := cfg.fsys.MkdirAll(cfg.dir, 0o755); err != nil {
		return nil, fmt.Errorf("tmpfile: prepare %s: %w", cfg.dir, err)
	}

	var path string
	for range maxCreateAttempts {
		candidate := cfg.fsys.Join(cfg.dir, cfg.namer())
		if _, err := cfg.fsys.Stat(candidate); err == nil {
			continue
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("tmpfile: stat %s: %w", candidate, err)
		}
		if err := cfg.fsys.MkdirAll(candidate, 0o700); err != nil {
			return nil, fmt.Errorf("tmpfile: mkdir %s: %w", candidate, err)
		}
		path = candidate
		break
	}
	if path == "" {
		return nil, fmt.Errorf("tmpfile: mkdir in %s: name collisions exhausted retries", cfg.dir)
	}

	return &Dir{fsys: cfg.fsys, path: path}, nil
}

// Path returns the location of the directory. The path remains valid until
// Close.
func (d *Dir) Path() string {
	return d.path
}

// Join joins path elements onto the directory path.
func (d *Dir) Join(elem ...string) string {
	return d.fsys.Join(append([]string{d.path}, elem...)...)
}

// Filesystem returns the backing filesystem, for creating entries inside
// the directory.
func (d *Dir) Filesystem() billy.Filesystem {
	return d.fsys
}

// Close removes the directory and its contents. It runs at most once; later
// calls are no-ops. Removal failures are discarded and Close always returns
// nil.
func (d *Dir) Close() error {
	d.once.Do(func() {
		_ = util.RemoveAll(d.fsys, d.path)
	})
	return nil
}
