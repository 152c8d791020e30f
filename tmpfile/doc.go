// Package tmpfile provides scoped temporary resources: files and directories
// that are created with a unique name under a temporary-storage directory and
// removed exactly once when closed, regardless of how the owning scope exits.
//
// Removal is best effort. Close never returns an error and never panics;
// cleanup has no caller to report to, so failures (already removed,
// permission denied) are discarded.
//
// Resources are backed by a billy.Filesystem. By default that is the host
// filesystem; tests can inject an in-memory filesystem with
// [WithFilesystem].
//
//	f, err := tmpfile.New(tmpfile.WithContentString("hello"))
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
package tmpfile
