// Package scanner reads one file under per-file and global byte budgets,
// counting lines and collecting symbols through an extractor.
package scanner

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dejo1307/repomap/internal/extractors"
	"github.com/dejo1307/repomap/internal/model"
)

// Options are the per-file caps.
type Options struct {
	MaxFileKB    int64
	MaxFileBytes int64
	MaxScanLines int
	// MaxSymbols is the per-file symbol cap.
	MaxSymbols int
}

// Result is the outcome of scanning one file.
type Result struct {
	// LineCount is valid only when Counted is true. Oversized and
	// unreadable files are not counted.
	LineCount int
	Counted   bool
	Symbols   []model.Symbol
	BytesRead int64
	// Truncated is set when reading stopped at the effective byte limit.
	Truncated bool
	// SymbolsOverflow is set when the file declares more symbols than
	// MaxSymbols.
	SymbolsOverflow bool
}

// Scanner scans files with fixed options.
type Scanner struct {
	opts   Options
	logger *slog.Logger
}

// New creates a Scanner. A nil logger discards output.
func New(opts Options, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scanner{opts: opts, logger: logger.With("component", "scanner")}
}

// Scan reads file, whose stat size is size, with at most remaining bytes of
// global budget left. ext may be nil, in which case only lines are counted.
//
// Reading stops without marking truncation once MaxScanLines lines are
// counted. It stops with Truncated set when the next line would push the
// bytes read past min(MaxFileBytes, remaining); that incomplete line is
// neither counted nor matched.
func (s *Scanner) Scan(file model.CandidateFile, size int64, ext extractors.Extractor, remaining int64) Result {
	if size > s.opts.MaxFileKB*1024 {
		s.logger.Debug("skipping oversized file", "path", file.RelPath, "size", size)
		return Result{}
	}

	limit := min(s.opts.MaxFileBytes, remaining)
	if limit <= 0 {
		return Result{Counted: true, Truncated: true}
	}

	f, err := os.Open(file.AbsPath)
	if err != nil {
		s.logger.Debug("cannot open file", "path", file.RelPath, "error", err)
		return Result{}
	}
	defer f.Close()

	res, err := s.read(file.RelPath, bufio.NewReader(io.LimitReader(f, limit+1)), limit, ext)
	if err != nil {
		s.logger.Debug("cannot read file", "path", file.RelPath, "error", err)
		return Result{}
	}
	return res
}

func (s *Scanner) read(relPath string, r *bufio.Reader, limit int64, ext extractors.Extractor) (Result, error) {
	res := Result{Counted: true}
	matching := ext != nil

	for res.LineCount < s.opts.MaxScanLines {
		line, err := r.ReadString('\n')
		if len(line) > 0 {
			if res.BytesRead+int64(len(line)) > limit {
				res.BytesRead = limit
				res.Truncated = true
				break
			}
			res.BytesRead += int64(len(line))
			res.LineCount++

			if matching {
				matching = s.match(relPath, line, res.LineCount, ext, &res)
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Result{}, err
		}
	}
	return res, nil
}

// match applies ext to one line and reports whether matching should go on.
func (s *Scanner) match(relPath, line string, lineNo int, ext extractors.Extractor, res *Result) bool {
	line = strings.TrimRight(line, "\r\n")
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || ext.IsComment(trimmed) {
		return true
	}
	name, kind, ok := ext.MatchLine(line)
	if !ok {
		return true
	}
	if len(res.Symbols) >= s.opts.MaxSymbols {
		res.SymbolsOverflow = true
		s.logger.Debug("per-file symbol cap reached", "path", relPath, "cap", s.opts.MaxSymbols)
		return false
	}
	res.Symbols = append(res.Symbols, model.Symbol{
		Name: name,
		Kind: kind,
		Path: relPath,
		Line: lineNo,
	})
	return true
}
