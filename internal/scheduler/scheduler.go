// Package scheduler orders discovered files for scanning so that every
// top-level directory is represented before budgets run out.
package scheduler

import (
	"path"
	"sort"
	"strings"

	"github.com/dejo1307/repomap/internal/model"
)

// unknownExtPriority ranks extensions missing from extPriority last.
const unknownExtPriority = 100

// Lower values are scanned earlier within a group. Languages that usually
// declare more structure come first, markup and config last.
var extPriority = map[string]int{
	".swift": 0,
	".ts":    1,
	".tsx":   1,
	".js":    2,
	".jsx":   2,
	".py":    3,
	".rs":    4,
	".go":    5,
	".java":  6,
	".kt":    6,
	".md":    7,
	".yml":   8,
	".yaml":  8,
	".toml":  9,
	".json":  10,
}

// Basename tokens that hint at architecturally central files, strongest first.
var nameTokens = []string{
	"orchestrator",
	"sherpa",
	"skillkit",
	"workflowpack",
	"workflow",
	"skill",
	"registry",
	"executor",
	"planner",
	"provider",
	"session",
	"manager",
}

// ExtPriority returns the scan priority of relPath's extension.
func ExtPriority(relPath string) int {
	if p, ok := extPriority[strings.ToLower(path.Ext(relPath))]; ok {
		return p
	}
	return unknownExtPriority
}

// NamePriority returns the index of the first name token contained in the
// lower-cased basename, or len(nameTokens)+1 when none is.
func NamePriority(relPath string) int {
	base := strings.ToLower(path.Base(relPath))
	for i, tok := range nameTokens {
		if strings.Contains(base, tok) {
			return i
		}
	}
	return len(nameTokens) + 1
}

// Group returns the first path segment, or the whole path for root files.
func Group(relPath string) string {
	if i := strings.IndexByte(relPath, '/'); i >= 0 {
		return relPath[:i]
	}
	return relPath
}

// Order returns files grouped by top-level segment, each group sorted by
// (extension priority, name priority, path), and the groups interleaved
// round-robin in lexicographic group order. The input is not modified.
func Order(files []model.CandidateFile) []model.CandidateFile {
	groups := make(map[string][]model.CandidateFile)
	for _, f := range files {
		k := Group(f.RelPath)
		groups[k] = append(groups[k], f)
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		g := groups[k]
		sort.Slice(g, func(i, j int) bool {
			a, b := g[i].RelPath, g[j].RelPath
			if pa, pb := ExtPriority(a), ExtPriority(b); pa != pb {
				return pa < pb
			}
			if na, nb := NamePriority(a), NamePriority(b); na != nb {
				return na < nb
			}
			return a < b
		})
	}

	ordered := make([]model.CandidateFile, 0, len(files))
	for round := 0; len(ordered) < len(files); round++ {
		for _, k := range keys {
			if round < len(groups[k]) {
				ordered = append(ordered, groups[k][round])
			}
		}
	}
	return ordered
}
