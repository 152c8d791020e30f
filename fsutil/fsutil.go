// Package fsutil provides whole-file convenience helpers over a
// billy.Filesystem: read and write whole files, iterate lines, append,
// create parent directories, and walk a tree.
//
// Every helper takes the filesystem explicitly so the same code runs against
// the host filesystem ([Local]) or an in-memory one ([Memory]). Errors are
// the platform's I/O failures, passed through unchanged or wrapped with %w.
package fsutil

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// Local returns a filesystem backed by the host OS, rooted at the
// filesystem root.
func Local() billy.Filesystem {
	return osfs.New("/")
}

// Memory returns an empty in-memory filesystem.
func Memory() billy.Filesystem {
	return memfs.New()
}

// ReadBytes reads the named file and returns its contents.
func ReadBytes(fsys billy.Filesystem, path string) ([]byte, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

// ReadString reads the named file and returns its contents as a string.
func ReadString(fsys billy.Filesystem, path string) (string, error) {
	b, err := ReadBytes(fsys, path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// EachLine calls fn for every line of the named file, without the trailing
// newline. Iteration stops at the first error returned by fn, which is
// passed through to the caller.
func EachLine(fsys billy.Filesystem, path string, fn func(line string) error) error {
	f, err := fsys.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// ReadLines reads the named file and returns its lines.
func ReadLines(fsys billy.Filesystem, path string) ([]string, error) {
	var lines []string
	err := EachLine(fsys, path, func(line string) error {
		lines = append(lines, line)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// WriteBytes writes data to the named file, creating it if necessary and
// truncating it otherwise.
func WriteBytes(fsys billy.Filesystem, path string, data []byte) error {
	return util.WriteFile(fsys, path, data, 0o644)
}

// WriteString writes contents to the named file, creating it if necessary
// and truncating it otherwise.
func WriteString(fsys billy.Filesystem, path, contents string) error {
	return WriteBytes(fsys, path, []byte(contents))
}

// AppendString appends contents to the named file, creating it if it does
// not exist.
func AppendString(fsys billy.Filesystem, path, contents string) error {
	f, err := fsys.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write([]byte(contents)); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// EnsureParentDirs creates all missing parent directories of path.
func EnsureParentDirs(fsys billy.Filesystem, path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == string(filepath.Separator) {
		return nil
	}
	return fsys.MkdirAll(dir, 0o755)
}

// Exists reports whether the named file or directory exists. A false result
// with a non-nil error means existence could not be determined, not that
// the path is absent.
func Exists(fsys billy.Filesystem, path string) (bool, error) {
	_, err := fsys.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// WalkDir walks the tree rooted at root and returns the paths of all files
// in it, in lexical order. Directories themselves are not included.
func WalkDir(fsys billy.Filesystem, root string) ([]string, error) {
	var files []string
	if err := collectFiles(fsys, root, &files); err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func collectFiles(fsys billy.Filesystem, dir string, files *[]string) error {
	infos, err := fsys.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, info := range infos {
		p := fsys.Join(dir, info.Name())
		if info.IsDir() {
			if err := collectFiles(fsys, p, files); err != nil {
				return err
			}
			continue
		}
		*files = append(*files, p)
	}
	return nil
}
