package tmpfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// ErrClosed is returned when a resource is opened after it has been closed.
var ErrClosed = errors.New("tmpfile: already closed")

// maxCreateAttempts bounds the retry loop when a generated name collides
// with an existing entry.
const maxCreateAttempts = 8

// Option configures resource creation.
type Option func(*config)

type config struct {
	fsys    billy.Filesystem
	dir     string
	namer   Namer
	content []byte
}

// WithContent pre-populates the resource with the given bytes. Only
// meaningful for files.
func WithContent(b []byte) Option {
	return func(c *config) { c.content = b }
}

// WithContentString pre-populates the resource with the given string. Only
// meaningful for files.
func WithContentString(s string) Option {
	return func(c *config) { c.content = []byte(s) }
}

// WithDir places the resource in dir instead of the default temporary
// directory. The directory is created if it does not exist.
func WithDir(dir string) Option {
	return func(c *config) { c.dir = dir }
}

// WithFilesystem backs the resource with fsys instead of the host
// filesystem. An in-memory filesystem makes tests hermetic.
func WithFilesystem(fsys billy.Filesystem) Option {
	return func(c *config) { c.fsys = fsys }
}

// WithNamer overrides the naming strategy. See Namer.
func WithNamer(n Namer) Option {
	return func(c *config) { c.namer = n }
}

func newConfig(opts []Option) config {
	cfg := config{namer: TimestampNamer}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.fsys == nil {
		cfg.fsys = osfs.New("/")
	}
	if cfg.dir == "" {
		cfg.dir = os.TempDir()
	}
	return cfg
}

// File is a temporary file that is removed when closed. While the File is
// live, the backing file exists at Path and is exclusively identified by it.
type File struct {
	fsys   billy.Filesystem
	path   string
	once   sync.Once
	closed bool
}

// New creates a uniquely named file in the temporary-storage directory of
// the backing filesystem, optionally pre-populated via WithContent or
// WithContentString. The file is created exclusively; if a generated name
// already exists, New retries with a fresh name a bounded number of times.
func New(opts ...Option) (*File, error) {
	cfg := newConfig(opts)

	if err := cfg.fsys.MkdirAll(cfg.dir, 0o755); err != nil {
		return nil, fmt.Errorf("tmpfile: prepare %s: %w", cfg.dir, err)
	}

	var (
		path string
		f    billy.File
		err  error
	)
	for range maxCreateAttempts {
		path = cfg.fsys.Join(cfg.dir, cfg.namer())
		f, err = cfg.fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
		if err == nil {
			break
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("tmpfile: create %s: %w", path, err)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("tmpfile: create %s: %w", path, err)
	}

	if len(cfg.content) > 0 {
		if _, werr := f.Write(cfg.content); werr != nil {
			_ = f.Close()
			_ = cfg.fsys.Remove(path)
			return nil, fmt.Errorf("tmpfile: write %s: %w", path, werr)
		}
	}
	if cerr := f.Close(); cerr != nil {
		_ = cfg.fsys.Remove(path)
		return nil, fmt.Errorf("tmpfile: close %s: %w", path, cerr)
	}

	return &File{fsys: cfg.fsys, path: path}, nil
}

// Path returns the location of the backing file. The path remains valid
// until Close.
func (f *File) Path() string {
	return f.path
}

// OpenRead opens a fresh read handle to the file. Open handles do not affect
// the automatic removal on Close; reads through a handle obtained before
// Close fail once the backing file is gone.
func (f *File) OpenRead() (billy.File, error) {
	if f.closed {
		return nil, ErrClosed
	}
	return f.fsys.Open(f.path)
}

// OpenWrite opens a fresh write handle to the file, truncating its current
// contents.
func (f *File) OpenWrite() (billy.File, error) {
	if f.closed {
		return nil, ErrClosed
	}
	return f.fsys.Create(f.path)
}

// Close removes the backing file. It runs at most once; later calls are
// no-ops. Removal failures are discarded and Close always returns nil, so
// it can sit directly after defer without an error check.
func (f *File) Close() error {
	f.once.Do(func() {
		f.closed = true
		_ = f.fsys.Remove(f.path)
	})
	return nil
}
