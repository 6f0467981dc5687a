// Package ledger tracks the run-wide byte and symbol budgets and the
// truncation flags derived from them.
package ledger

import (
	"github.com/dejo1307/repomap/internal/model"
	"github.com/dejo1307/repomap/internal/scanner"
)

// Ledger is the accumulator of one run. It only grows; nothing is reset
// or evicted once recorded. The zero value has no budget.
type Ledger struct {
	maxTotalBytes int64
	maxSymbols    int
	symbolsCapped bool

	TotalBytes int64
	Symbols    []model.Symbol

	TreeTruncated       bool
	SymbolsTruncated    bool
	FilesTruncated      bool
	FileBytesTruncated  bool
	TotalBytesTruncated bool
}

// New creates a ledger with the given global caps.
func New(maxTotalBytes int64, maxSymbols int) *Ledger {
	return &Ledger{maxTotalBytes: maxTotalBytes, maxSymbols: maxSymbols}
}

// Remaining returns the bytes left in the global budget, never negative.
func (l *Ledger) Remaining() int64 {
	return max(l.maxTotalBytes-l.TotalBytes, 0)
}

// Exhausted reports whether no further file may be scanned.
func (l *Ledger) Exhausted() bool {
	return l.TotalBytes >= l.maxTotalBytes
}

// Record books one scan: its bytes, its byte truncation and its symbols.
func (l *Ledger) Record(res scanner.Result) {
	l.TotalBytes += res.BytesRead
	if res.Truncated {
		if l.Exhausted() {
			l.TotalBytesTruncated = true
		} else {
			l.FileBytesTruncated = true
		}
	}
	if l.Exhausted() {
		l.TotalBytesTruncated = true
	}

	l.accept(res.Symbols)
	if res.SymbolsOverflow {
		l.SymbolsTruncated = true
	}
}

// accept keeps as many symbols as the global cap allows. Once the cap has
// dropped anything no later batch is accepted. A file overflowing its own
// cap marks the symbols truncated but does not close the ledger.
func (l *Ledger) accept(symbols []model.Symbol) {
	if len(symbols) == 0 {
		return
	}
	if l.symbolsCapped {
		return
	}
	room := l.maxSymbols - len(l.Symbols)
	if len(symbols) > room {
		symbols = symbols[:max(room, 0)]
		l.symbolsCapped = true
		l.SymbolsTruncated = true
	}
	l.Symbols = append(l.Symbols, symbols...)
}
