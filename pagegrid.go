// Package pagegrid provides a single-level directory scanner with callbacks.
//
// A Scanner reads the immediate entries of one directory and lstat's each of
// them. Users register callbacks to observe the directory listing and the
// metadata of every entry as the scanner encounters them. The scan never
// recurses and never follows symbolic links.
//
// Basic usage:
//
//	callbacks := pagegrid.Callbacks{
//		OnLstat: func(name string, info os.FileInfo) {
//			// Inspect metadata
//		},
//	}
//	scanner := pagegrid.NewScanner(".", callbacks)
//	if err := scanner.Run(); err != nil {
//		// Handle error
//	}
//
// All callbacks are optional. Names passed to callbacks are the base names of
// the entries, relative to the root passed to NewScanner.
package pagegrid

import (
	"fmt"
	"os"
	"path/filepath"
)

// Callbacks define optional handlers that are invoked during the scan.
// All callbacks are optional (zero value means no callback).
//
// For a directory with entries the callbacks run in this order:
//  1. OnReadDir (once, with all entries)
//  2. OnEntry then OnLstat, for each entry in directory order
type Callbacks struct {
	// OnReadDir is called after the root directory has been read.
	OnReadDir func(root string, entries []os.DirEntry)

	// OnEntry is called for every immediate entry before it is lstat'd.
	OnEntry func(name string, entry os.DirEntry)

	// OnLstat is called with the metadata of every immediate entry.
	OnLstat func(name string, info os.FileInfo)
}

// Scanner lists one directory and reports its entries through callbacks.
// A Scanner is not safe for concurrent use.
type Scanner struct {
	rootPath  string
	callbacks Callbacks
}

// NewScanner creates a new Scanner for the given root path.
//
// The rootPath is cleaned using filepath.Clean before being stored.
func NewScanner(rootPath string, callbacks Callbacks) *Scanner {
	return &Scanner{
		rootPath:  filepath.Clean(rootPath),
		callbacks: callbacks,
	}
}

// Root returns the cleaned root path of the scan.
func (s *Scanner) Root() string {
	return s.rootPath
}

// Run reads the root directory and lstat's each entry.
//
// It returns an error if the root cannot be read (missing, not a directory,
// permission denied) or if the metadata of any entry cannot be retrieved.
// The first error stops the scan; callbacks already invoked are not undone.
func (s *Scanner) Run() error {
	entries, err := os.ReadDir(s.rootPath)
	if err != nil {
		return fmt.Errorf("readdir failed for '%s': %w", s.rootPath, err)
	}

	if s.callbacks.OnReadDir != nil {
		s.callbacks.OnReadDir(s.rootPath, entries)
	}

	for _, entry := range entries {
		name := entry.Name()

		if s.callbacks.OnEntry != nil {
			s.callbacks.OnEntry(name, entry)
		}

		entryPath := filepath.Join(s.rootPath, name)
		info, err := os.Lstat(entryPath)
		if err != nil {
			return fmt.Errorf("lstat failed for '%s': %w", entryPath, err)
		}

		if s.callbacks.OnLstat != nil {
			s.callbacks.OnLstat(name, info)
		}
	}

	return nil
}
