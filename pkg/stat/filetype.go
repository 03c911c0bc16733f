package stat

import "os"

// Inode type names used as keys in a Tally.
const (
	TypeFile    = "file"
	TypeDir     = "dir"
	TypeSymlink = "symlink"
	TypeOther   = "other"
)

// FileType determines the type classification of an lstat'd mode.
// Returns one of: "dir", "symlink", "file" or "other".
//
// Only modes without any type bits count as "file"; devices, sockets and
// named pipes are "other".
func FileType(mode os.FileMode) string {
	if mode.IsDir() {
		return TypeDir
	}
	if mode&os.ModeSymlink != 0 {
		return TypeSymlink
	}
	if mode.IsRegular() {
		return TypeFile
	}
	return TypeOther
}
