package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dejo1307/repomap/internal/model"
	"github.com/dejo1307/repomap/internal/scanner"
)

func syms(path string, n int) []model.Symbol {
	out := make([]model.Symbol, n)
	for i := range out {
		out[i] = model.Symbol{Name: "s", Kind: model.KindFunc, Path: path, Line: i + 1}
	}
	return out
}

func TestRecord_Bytes(t *testing.T) {
	l := New(100, 10)
	assert.Equal(t, int64(100), l.Remaining())
	assert.False(t, l.Exhausted())

	l.Record(scanner.Result{Counted: true, BytesRead: 40})
	assert.Equal(t, int64(60), l.Remaining())
	assert.False(t, l.FileBytesTruncated)
	assert.False(t, l.TotalBytesTruncated)

	l.Record(scanner.Result{Counted: true, BytesRead: 30, Truncated: true})
	assert.True(t, l.FileBytesTruncated, "per-file cap hit with budget left")
	assert.False(t, l.TotalBytesTruncated)

	l.Record(scanner.Result{Counted: true, BytesRead: 30, Truncated: true})
	assert.True(t, l.Exhausted())
	assert.True(t, l.TotalBytesTruncated)
	assert.Zero(t, l.Remaining())
}

func TestRecord_ExactExhaustionWithoutTruncation(t *testing.T) {
	l := New(10, 10)
	l.Record(scanner.Result{Counted: true, BytesRead: 10})
	assert.True(t, l.TotalBytesTruncated)
	assert.False(t, l.FileBytesTruncated)
}

func TestRecord_ZeroBudget(t *testing.T) {
	l := New(0, 10)
	assert.True(t, l.Exhausted())
	assert.Zero(t, l.Remaining())
}

func TestRecord_SymbolCap(t *testing.T) {
	l := New(1<<20, 5)

	l.Record(scanner.Result{Symbols: syms("a.py", 3)})
	assert.Len(t, l.Symbols, 3)
	assert.False(t, l.SymbolsTruncated)

	l.Record(scanner.Result{Symbols: syms("b.py", 4)})
	assert.Len(t, l.Symbols, 5)
	assert.True(t, l.SymbolsTruncated)
	assert.Equal(t, "a.py", l.Symbols[0].Path, "earlier symbols are retained")
	assert.Equal(t, "b.py", l.Symbols[4].Path)

	l.Record(scanner.Result{Symbols: syms("c.py", 1)})
	assert.Len(t, l.Symbols, 5)
}

func TestRecord_SymbolCapExactlyFilled(t *testing.T) {
	l := New(1<<20, 3)
	l.Record(scanner.Result{Symbols: syms("a.py", 3)})
	assert.False(t, l.SymbolsTruncated)

	l.Record(scanner.Result{})
	assert.False(t, l.SymbolsTruncated)

	l.Record(scanner.Result{Symbols: syms("b.py", 1)})
	assert.True(t, l.SymbolsTruncated)
	assert.Len(t, l.Symbols, 3)
}

func TestRecord_PerFileOverflow(t *testing.T) {
	l := New(1<<20, 10)
	l.Record(scanner.Result{Symbols: syms("a.py", 2), SymbolsOverflow: true})
	assert.True(t, l.SymbolsTruncated)
	assert.Len(t, l.Symbols, 2)

	l.Record(scanner.Result{Symbols: syms("b.py", 2)})
	assert.Len(t, l.Symbols, 4, "other files are still accepted")
}
