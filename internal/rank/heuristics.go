package rank

import (
	"path"
	"strings"
)

// largeLines is the line count from which a file counts as large.
const largeLines = 400

var importantFiles = map[string]bool{
	"readme":             true,
	"readme.md":          true,
	"readme.rst":         true,
	"readme.txt":         true,
	"package.json":       true,
	"pnpm-lock.yaml":     true,
	"yarn.lock":          true,
	"package-lock.json":  true,
	"cargo.toml":         true,
	"pyproject.toml":     true,
	"requirements.txt":   true,
	"setup.py":           true,
	"tsconfig.json":      true,
	"tsconfig.base.json": true,
	"tsconfig.app.json":  true,
	"tsconfig.node.json": true,
	"config.yaml":        true,
	"config.yml":         true,
}

var entrypointFiles = map[string]bool{
	"main.ts":   true,
	"main.tsx":  true,
	"main.js":   true,
	"main.jsx":  true,
	"index.ts":  true,
	"index.tsx": true,
	"index.js":  true,
	"index.jsx": true,
	"app.ts":    true,
	"app.tsx":   true,
	"app.js":    true,
	"app.jsx":   true,
}

var coreTokens = []string{"/src/", "/sources/", "/core/", "/services/", "/plugins/"}

func lowerBase(relPath string) string {
	return strings.ToLower(path.Base(relPath))
}

// IsImportantFile reports whether the basename is a readme, manifest,
// lockfile or config file.
func IsImportantFile(relPath string) bool {
	return importantFiles[lowerBase(relPath)]
}

// IsReadme reports whether the basename starts with "readme".
func IsReadme(relPath string) bool {
	return strings.HasPrefix(lowerBase(relPath), "readme")
}

// IsEntrypoint reports whether the basename is a main/index/app source file.
func IsEntrypoint(relPath string) bool {
	return entrypointFiles[lowerBase(relPath)]
}

// IsCorePath reports whether relPath sits under a directory that usually
// holds the core of a project. The path is matched as "/"+relPath so that
// a top-level "src/" counts.
func IsCorePath(relPath string) bool {
	p := "/" + strings.ToLower(relPath)
	for _, tok := range coreTokens {
		if strings.Contains(p, tok) {
			return true
		}
	}
	return false
}
