// Package model holds the language-agnostic records produced by a repomap run.
package model

import "time"

// Kind is the kind of an extracted symbol. Only the constants below are valid.
type Kind string

// Symbol kinds. Extractors must normalize anything else into this set.
const (
	KindClass     Kind = "class"
	KindStruct    Kind = "struct"
	KindFunc      Kind = "func"
	KindProtocol  Kind = "protocol"
	KindEnum      Kind = "enum"
	KindTypealias Kind = "typealias"
	KindVar       Kind = "var"
	KindLet       Kind = "let"
)

// NormalizeKind maps a language keyword onto the closed kind set.
// Unknown keywords become typealias.
func NormalizeKind(keyword string) Kind {
	switch keyword {
	case "class", "struct", "func", "protocol", "enum", "typealias", "var", "let":
		return Kind(keyword)
	case "actor", "object":
		return KindClass
	case "function", "fun", "def":
		return KindFunc
	case "const":
		return KindVar
	case "val":
		return KindLet
	}
	return KindTypealias
}

// CandidateFile is a file that survived path filtering.
// RelPath always uses forward slashes.
type CandidateFile struct {
	RelPath string
	AbsPath string
}

// FileInfo is the stat record of a candidate.
type FileInfo struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// Symbol is a declaration found by an extractor.
type Symbol struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
	Path string `json:"path"`
	Line int    `json:"line"`
}

// Reason explains why a file was placed in the top files list.
type Reason string

// Top file reasons.
const (
	ReasonConfig     Reason = "config"
	ReasonReadme     Reason = "readme"
	ReasonEntrypoint Reason = "entrypoint"
	ReasonCore       Reason = "core"
	ReasonLarge      Reason = "large"
	ReasonOther      Reason = "other"
)

// TopFile is one entry of the ranked file list.
type TopFile struct {
	Path   string `json:"path"`
	Reason Reason `json:"reason"`
}

// Signal is a hotspot signal.
type Signal string

// Hotspot signals, in the order they are reported.
const (
	SignalLarge Signal = "large"
	SignalCore  Signal = "core"
)

// Hotspot is a file flagged by at least one signal.
type Hotspot struct {
	Path    string   `json:"path"`
	Signals []Signal `json:"signals"`
}

// Report is the document written by a run.
type Report struct {
	RepoRoot    string    `json:"repo_root"`
	GeneratedAt string    `json:"generated_at"`
	GitHead     string    `json:"git_head"`
	Tree        string    `json:"tree"`
	TopFiles    []TopFile `json:"top_files"`
	Symbols     []Symbol  `json:"symbols"`
	Hotspots    []Hotspot `json:"hotspots"`
	Notes       []string  `json:"notes"`
}

// ErrorReport is the document written when the run cannot start.
type ErrorReport struct {
	Error string `json:"error"`
}
