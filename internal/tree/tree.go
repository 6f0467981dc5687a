// Package tree renders the filtered directory structure as indented text.
package tree

import (
	"strings"

	"github.com/dejo1307/repomap/internal/discovery"
	"github.com/dejo1307/repomap/internal/pathfilter"
)

const indent = "  "

// Options bounds the rendering.
type Options struct {
	// MaxDepth is the deepest level listed; root entries are level 0.
	MaxDepth int
	// MaxChars caps the rendered length in bytes.
	MaxChars int
}

// Build renders root. Subdirectories come first at every level, each with a
// trailing "/" and followed by its own listing, then files. Entries deeper
// than MaxDepth are left out without a marker. When the rendering is longer
// than MaxChars it is cut after the last complete line that fits and
// truncated is true.
func Build(root string, filter *pathfilter.Filter, opts Options) (rendered string, truncated bool) {
	var lines []string
	walk(root, "", 0, filter, opts.MaxDepth, &lines)
	return Truncate(strings.Join(lines, "\n"), opts.MaxChars)
}

func walk(absDir, relDir string, depth int, filter *pathfilter.Filter, maxDepth int, lines *[]string) {
	if depth > maxDepth {
		return
	}
	dirs, files, err := discovery.ListDir(absDir, relDir, filter)
	if err != nil {
		return
	}

	prefix := strings.Repeat(indent, depth)
	for _, d := range dirs {
		*lines = append(*lines, prefix+d.Name+"/")
		if depth < maxDepth {
			walk(d.AbsPath, d.RelPath, depth+1, filter, maxDepth, lines)
		}
	}
	for _, f := range files {
		*lines = append(*lines, prefix+f.Name)
	}
}

// Truncate cuts s to at most maxChars bytes without splitting a line. The
// result is always a prefix of s made of whole lines.
func Truncate(s string, maxChars int) (string, bool) {
	if len(s) <= maxChars {
		return s, false
	}
	if maxChars < 0 {
		maxChars = 0
	}
	// A newline at index maxChars means the line before it fits exactly.
	cut := strings.LastIndexByte(s[:maxChars+1], '\n')
	if cut < 0 {
		return "", true
	}
	return s[:cut], true
}
