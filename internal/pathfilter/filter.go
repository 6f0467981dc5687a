// Package pathfilter decides which repository paths take part in a run.
package pathfilter

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// DefaultExcludedDirs are directory names that are never listed or scanned:
// version-control metadata, dependency caches and build output.
var DefaultExcludedDirs = []string{
	".git",
	"node_modules",
	"dist",
	"build",
	"DerivedData",
	".next",
	".turbo",
	".cache",
	".idea",
	".vscode",
	".pnpm-store",
	"Pods",
	"__pycache__",
	".pytest_cache",
	".mypy_cache",
	".ruff_cache",
	".venv",
	"venv",
	".tox",
	"target",
	"coverage",
	".build",
	".swiftpm",
}

// Options configures a Filter.
type Options struct {
	// ExtraExcludedDirs are added to DefaultExcludedDirs.
	ExtraExcludedDirs []string
	Exclude           []string
	Include           []string
	Gitignore         *Gitignore
}

// Filter evaluates relative paths against the excluded directory set, the
// caller's globs and the repository's .gitignore.
type Filter struct {
	excludedDirs map[string]struct{}
	exclude      []Pattern
	include      []Pattern
	ignore       []Pattern
	negate       []Pattern
}

// New builds a Filter.
func New(opts Options) *Filter {
	f := &Filter{
		excludedDirs: make(map[string]struct{}, len(DefaultExcludedDirs)+len(opts.ExtraExcludedDirs)),
		exclude:      parseAll(opts.Exclude),
		include:      parseAll(opts.Include),
	}
	for _, d := range DefaultExcludedDirs {
		f.excludedDirs[d] = struct{}{}
	}
	for _, d := range opts.ExtraExcludedDirs {
		if d = strings.Trim(strings.TrimSpace(d), "/"); d != "" {
			f.excludedDirs[d] = struct{}{}
		}
	}
	if opts.Gitignore != nil {
		f.ignore = opts.Gitignore.Patterns
		f.negate = opts.Gitignore.Negations
	}
	return f
}

// GitignoreApplied reports whether any positive .gitignore rule is active.
func (f *Filter) GitignoreApplied() bool {
	return len(f.ignore) > 0
}

// IsExcluded reports whether relPath (slash separated, relative to the root)
// is left out of the run. The checks run in order and the first decision wins:
// excluded directory segment, exclude glob, .gitignore (vetoed by a negation),
// and finally the include allow-list, which only applies to files.
func (f *Filter) IsExcluded(relPath string, isDir bool) bool {
	relPath = filepath.ToSlash(relPath)

	for _, seg := range strings.Split(relPath, "/") {
		if _, ok := f.excludedDirs[seg]; ok {
			return true
		}
	}

	if anyMatch(f.exclude, relPath, isDir) {
		return true
	}

	if len(f.ignore) > 0 && anyMatch(f.ignore, relPath, isDir) {
		return !anyMatch(f.negate, relPath, isDir)
	}

	if len(f.include) > 0 && !isDir {
		return !anyMatch(f.include, relPath, isDir)
	}
	return false
}

// Gitignore holds the rules read from a .gitignore file.
type Gitignore struct {
	Patterns  []Pattern
	Negations []Pattern
}

// LoadGitignore reads <root>/.gitignore. A missing file yields an empty set
// and no error.
func LoadGitignore(root string) (*Gitignore, error) {
	f, err := os.Open(filepath.Join(root, ".gitignore"))
	if err != nil {
		if os.IsNotExist(err) {
			return &Gitignore{}, nil
		}
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ParseGitignore(lines), nil
}

// ParseGitignore splits raw lines into positive and negated rules.
// Blank lines and comments are skipped.
func ParseGitignore(lines []string) *Gitignore {
	g := &Gitignore{}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "!") {
			if rest := line[1:]; rest != "" {
				g.Negations = append(g.Negations, ParsePattern(rest))
			}
			continue
		}
		g.Patterns = append(g.Patterns, ParsePattern(line))
	}
	return g
}
