// Package discovery enumerates the files of a repository that survive path
// filtering, in a stable order and up to a file-count cap.
package discovery

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dejo1307/repomap/internal/model"
	"github.com/dejo1307/repomap/internal/pathfilter"
)

// Entry is one filtered directory entry.
type Entry struct {
	Name    string
	RelPath string
	AbsPath string
}

// ListDir returns the non-excluded subdirectories and files of absDir, each
// sorted by name. relDir is absDir relative to the root ("" for the root).
// Symlinks are not followed: a link to a directory is omitted, a link to a
// file is listed as a file.
func ListDir(absDir, relDir string, filter *pathfilter.Filter) (dirs, files []Entry, err error) {
	entries, err := os.ReadDir(absDir)
	if err != nil {
		return nil, nil, err
	}

	for _, e := range entries {
		rel := e.Name()
		if relDir != "" {
			rel = relDir + "/" + e.Name()
		}
		entry := Entry{Name: e.Name(), RelPath: rel, AbsPath: filepath.Join(absDir, e.Name())}

		isDir := e.IsDir()
		if e.Type()&fs.ModeSymlink != 0 {
			info, statErr := os.Stat(entry.AbsPath)
			if statErr == nil && info.IsDir() {
				continue
			}
		} else if !isDir && !e.Type().IsRegular() {
			// sockets, devices and pipes
			continue
		}

		if filter.IsExcluded(rel, isDir) {
			continue
		}
		if isDir {
			dirs = append(dirs, entry)
		} else {
			files = append(files, entry)
		}
	}
	return dirs, files, nil
}

// Result is the outcome of Discover.
type Result struct {
	Files []model.CandidateFile
	// Truncated is set when more files existed than maxFiles allowed.
	Truncated bool
}

// Discover walks root directory by directory. Each directory contributes its
// files before any of its subdirectories is entered; excluded directories are
// pruned before recursion so their contents are never read. Unreadable
// directories are skipped.
func Discover(root string, filter *pathfilter.Filter, maxFiles int) Result {
	d := &discoverer{filter: filter, maxFiles: maxFiles}
	d.walk(root, "")
	return Result{Files: d.files, Truncated: d.truncated}
}

type discoverer struct {
	filter    *pathfilter.Filter
	maxFiles  int
	files     []model.CandidateFile
	truncated bool
}

// walk returns false once the cap stopped the enumeration.
func (d *discoverer) walk(absDir, relDir string) bool {
	dirs, files, err := ListDir(absDir, relDir, d.filter)
	if err != nil {
		return true
	}

	for _, f := range files {
		if len(d.files) >= d.maxFiles {
			d.truncated = true
			return false
		}
		d.files = append(d.files, model.CandidateFile{RelPath: f.RelPath, AbsPath: f.AbsPath})
	}
	for _, sub := range dirs {
		if !d.walk(sub.AbsPath, sub.RelPath) {
			return false
		}
	}
	return true
}
