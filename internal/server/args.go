package server

import (
	"fmt"

	"github.com/dejo1307/repomap/internal/config"
)

// repomapArgs are the arguments for the repomap tool. Unset limits keep the
// server's configured values.
type repomapArgs struct {
	RepoRoot          string   `json:"repo_root" jsonschema:"Path to the repository root to summarize"`
	MaxTreeChars      *int     `json:"max_tree_chars,omitempty" jsonschema:"Maximum characters of the rendered tree"`
	MaxSymbols        *int     `json:"max_symbols,omitempty" jsonschema:"Maximum number of symbols"`
	MaxTopFiles       *int     `json:"max_top_files,omitempty" jsonschema:"Maximum number of top files"`
	MaxHotspots       *int     `json:"max_hotspots,omitempty" jsonschema:"Maximum number of hotspots"`
	MaxTreeDepth      *int     `json:"max_tree_depth,omitempty" jsonschema:"Deepest directory level listed in the tree"`
	MaxFileKB         *int64   `json:"max_file_kb,omitempty" jsonschema:"Files larger than this many KB are not scanned"`
	MaxFileBytes      *int64   `json:"max_file_bytes,omitempty" jsonschema:"Maximum bytes read from a single file"`
	MaxScanLines      *int     `json:"max_scan_lines,omitempty" jsonschema:"Maximum lines scanned per file"`
	MaxFiles          *int     `json:"max_files,omitempty" jsonschema:"Maximum number of files discovered"`
	MaxTotalBytes     *int64   `json:"max_total_bytes,omitempty" jsonschema:"Maximum bytes read across the whole run"`
	MaxSymbolsPerFile *int     `json:"max_symbols_per_file,omitempty" jsonschema:"Maximum symbols collected from one file"`
	Include           []string `json:"include,omitempty" jsonschema:"Glob allow-list for files"`
	Exclude           []string `json:"exclude,omitempty" jsonschema:"Globs of paths to leave out"`
	Format            string   `json:"format,omitempty" jsonschema:"Output format: json (default) or markdown"`
}

// apply returns a copy of base with the arguments layered on top. Globs are
// appended to the configured ones.
func (a repomapArgs) apply(base *config.Config) (*config.Config, error) {
	cfg := *base
	cfg.Include = append(append([]string{}, base.Include...), a.Include...)
	cfg.Exclude = append(append([]string{}, base.Exclude...), a.Exclude...)

	l := &cfg.Limits
	setInt(&l.MaxTreeChars, a.MaxTreeChars)
	setInt(&l.MaxSymbols, a.MaxSymbols)
	setInt(&l.MaxTopFiles, a.MaxTopFiles)
	setInt(&l.MaxHotspots, a.MaxHotspots)
	setInt(&l.MaxTreeDepth, a.MaxTreeDepth)
	setInt(&l.MaxFileKB, a.MaxFileKB)
	setInt(&l.MaxFileBytes, a.MaxFileBytes)
	setInt(&l.MaxScanLines, a.MaxScanLines)
	setInt(&l.MaxFiles, a.MaxFiles)
	setInt(&l.MaxTotalBytes, a.MaxTotalBytes)
	setInt(&l.MaxSymbolsPerFile, a.MaxSymbolsPerFile)

	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	return &cfg, nil
}

func setInt[T int | int64](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
