package pathfilter

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Pattern is a single exclude, include or gitignore rule.
type Pattern struct {
	raw      string
	glob     string
	dirOnly  bool
	anchored bool
}

// ParsePattern compiles a raw rule. A trailing "/" restricts the rule to
// directories; a leading "/" anchors it to the repository root.
func ParsePattern(raw string) Pattern {
	p := Pattern{raw: raw}
	glob := strings.ReplaceAll(raw, "\\", "/")
	if strings.HasSuffix(glob, "/") {
		p.dirOnly = true
		glob = strings.TrimRight(glob, "/")
	}
	if strings.HasPrefix(glob, "/") {
		p.anchored = true
		glob = strings.TrimLeft(glob, "/")
	}
	p.glob = glob
	return p
}

// String returns the rule as written.
func (p Pattern) String() string {
	return p.raw
}

// Match reports whether the rule matches relPath. Directory-only rules match
// a directory itself and anything below a matching directory.
func (p Pattern) Match(relPath string, isDir bool) bool {
	if p.glob == "" {
		return false
	}
	if !p.dirOnly {
		return p.matchOne(relPath)
	}

	// Walk ancestors so that files below an ignored directory stay ignored
	// when asked about directly.
	dirs := strings.Split(relPath, "/")
	if !isDir {
		dirs = dirs[:len(dirs)-1]
	}
	for i := range dirs {
		if p.matchOne(strings.Join(dirs[:i+1], "/")) {
			return true
		}
	}
	return false
}

func (p Pattern) matchOne(relPath string) bool {
	if ok, err := doublestar.Match(p.glob, relPath); err == nil && ok {
		return true
	}
	if p.anchored {
		return false
	}
	ok, err := doublestar.Match(p.glob, path.Base(relPath))
	return err == nil && ok
}

func parseAll(raws []string) []Pattern {
	out := make([]Pattern, 0, len(raws))
	for _, r := range raws {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		out = append(out, ParsePattern(r))
	}
	return out
}

func anyMatch(patterns []Pattern, relPath string, isDir bool) bool {
	for _, p := range patterns {
		if p.Match(relPath, isDir) {
			return true
		}
	}
	return false
}
