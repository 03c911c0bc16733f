// Package stat provides directory entry counting.
//
// It uses the pagegrid scanner to read the immediate entries of a single
// directory and tallies them by inode type. Only the top level is examined;
// subdirectories are counted as entries but never descended into.
package stat

import (
	"os"

	pagegrid "github.com/otuschhoff/pagegrid"
)

// Tally holds per-type entry counts for one directory.
type Tally struct {
	Files    int64 // Count of regular files
	Dirs     int64 // Count of directories
	Symlinks int64 // Count of symbolic links
	Others   int64 // Count of devices, sockets, pipes
}

// Total returns the number of entries of every type.
func (t *Tally) Total() int64 {
	return t.Files + t.Dirs + t.Symlinks + t.Others
}

// add records one entry of the given type.
func (t *Tally) add(fileType string) {
	switch fileType {
	case TypeFile:
		t.Files++
	case TypeDir:
		t.Dirs++
	case TypeSymlink:
		t.Symlinks++
	default:
		t.Others++
	}
}

// Counter counts the entries of a single directory by type.
type Counter struct {
	path string
}

// NewCounter creates a Counter for the directory at path.
func NewCounter(path string) *Counter {
	return &Counter{path: path}
}

// Count scans the directory and returns its tally.
// Any read or lstat failure aborts the count; no partial tally is returned.
func (c *Counter) Count() (*Tally, error) {
	tally := &Tally{}

	callbacks := pagegrid.Callbacks{
		OnLstat: func(name string, info os.FileInfo) {
			tally.add(FileType(info.Mode()))
		},
	}

	if err := pagegrid.NewScanner(c.path, callbacks).Run(); err != nil {
		return nil, err
	}

	return tally, nil
}

// CountFiles returns the number of regular files directly inside path.
// Directories, symbolic links and special files are not counted.
func CountFiles(path string) (int, error) {
	tally, err := NewCounter(path).Count()
	if err != nil {
		return 0, err
	}
	return int(tally.Files), nil
}
