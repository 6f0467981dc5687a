// Package report assembles and encodes the repomap document.
package report

import (
	"encoding/json"
	"io"
	"sort"
	"time"

	"github.com/dejo1307/repomap/internal/model"
)

// Note strings, listed in the order they appear in a report.
const (
	NoteTreeTruncated       = "tree truncated"
	NoteSymbolsTruncated    = "symbols truncated"
	NoteFilesTruncated      = "files truncated"
	NoteFileBytesTruncated  = "file bytes truncated"
	NoteTotalBytesTruncated = "total bytes truncated"
	NoteTopFilesTruncated   = "top_files truncated"
	NoteHotspotsTruncated   = "hotspots truncated"
	NoteGitignoreApplied    = ".gitignore patterns applied (basic)"
	NoteGitHeadUnavailable  = "git head unavailable"
)

// TimeFormat is the generated_at layout: UTC, second precision, Z suffix.
const TimeFormat = "2006-01-02T15:04:05Z"

// Flags are the conditions that turn into notes.
type Flags struct {
	TreeTruncated       bool
	SymbolsTruncated    bool
	FilesTruncated      bool
	FileBytesTruncated  bool
	TotalBytesTruncated bool
	TopFilesTruncated   bool
	HotspotsTruncated   bool
	GitignoreApplied    bool
	GitHeadUnavailable  bool
}

// Notes returns the notes for f in their fixed order.
func Notes(f Flags) []string {
	notes := []string{}
	for _, n := range []struct {
		set  bool
		text string
	}{
		{f.TreeTruncated, NoteTreeTruncated},
		{f.SymbolsTruncated, NoteSymbolsTruncated},
		{f.FilesTruncated, NoteFilesTruncated},
		{f.FileBytesTruncated, NoteFileBytesTruncated},
		{f.TotalBytesTruncated, NoteTotalBytesTruncated},
		{f.TopFilesTruncated, NoteTopFilesTruncated},
		{f.HotspotsTruncated, NoteHotspotsTruncated},
		{f.GitignoreApplied, NoteGitignoreApplied},
		{f.GitHeadUnavailable, NoteGitHeadUnavailable},
	} {
		if n.set {
			notes = append(notes, n.text)
		}
	}
	return notes
}

// Input carries the finished parts of a run.
type Input struct {
	RepoRoot    string
	GeneratedAt time.Time
	GitHead     string
	Tree        string
	TopFiles    []model.TopFile
	Symbols     []model.Symbol
	Hotspots    []model.Hotspot
	Flags       Flags
}

// Assemble builds the report. Symbols are sorted by path, line and name;
// nil lists become empty so they encode as [].
func Assemble(in Input) *model.Report {
	symbols := append([]model.Symbol{}, in.Symbols...)
	sort.Slice(symbols, func(i, j int) bool {
		a, b := symbols[i], symbols[j]
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Name < b.Name
	})

	return &model.Report{
		RepoRoot:    in.RepoRoot,
		GeneratedAt: in.GeneratedAt.UTC().Format(TimeFormat),
		GitHead:     in.GitHead,
		Tree:        in.Tree,
		TopFiles:    orEmpty(in.TopFiles),
		Symbols:     symbols,
		Hotspots:    orEmpty(in.Hotspots),
		Notes:       Notes(in.Flags),
	}
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// Encode writes v as one JSON document followed by a newline. HTML
// characters are written as is. Invalid UTF-8, as in some file names, is
// replaced with U+FFFD, so such paths are lossy in the document.
func Encode(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

// EncodeError writes the error payload for err.
func EncodeError(w io.Writer, err error) error {
	return Encode(w, model.ErrorReport{Error: err.Error()}, false)
}
