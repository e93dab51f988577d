package java

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Filesystem is the subset of filesystem access discovery needs.
type Filesystem interface {
	// ReadDir lists the entries of a directory.
	ReadDir(name string) ([]fs.DirEntry, error)

	// Stat returns file info, following symbolic links.
	Stat(name string) (fs.FileInfo, error)

	// EvalSymlinks returns the absolute path of name after following
	// every symbolic link.
	EvalSymlinks(name string) (string, error)
}

// OSFilesystem is the host filesystem.
type OSFilesystem struct{}

// ReadDir implements Filesystem.
func (OSFilesystem) ReadDir(name string) ([]fs.DirEntry, error) { return os.ReadDir(name) }

// Stat implements Filesystem.
func (OSFilesystem) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }

// EvalSymlinks implements Filesystem.
func (OSFilesystem) EvalSymlinks(name string) (string, error) {
	resolved, err := filepath.EvalSymlinks(name)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}

// isDir reports whether entry names a directory, following a symlink entry
// to its target.
func isDir(fsys Filesystem, entry fs.DirEntry, full string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := fsys.Stat(full)
	return err == nil && info.IsDir()
}
