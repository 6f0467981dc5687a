package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dejo1307/repomap/internal/config"
	"github.com/dejo1307/repomap/internal/discovery"
	"github.com/dejo1307/repomap/internal/extractors"
	"github.com/dejo1307/repomap/internal/gitmeta"
	"github.com/dejo1307/repomap/internal/ledger"
	"github.com/dejo1307/repomap/internal/model"
	"github.com/dejo1307/repomap/internal/pathfilter"
	"github.com/dejo1307/repomap/internal/rank"
	"github.com/dejo1307/repomap/internal/renderers"
	"github.com/dejo1307/repomap/internal/report"
	"github.com/dejo1307/repomap/internal/scanner"
	"github.com/dejo1307/repomap/internal/scheduler"
	"github.com/dejo1307/repomap/internal/tree"
)

// ErrNotDirectory is the only fatal condition of a run.
var ErrNotDirectory = errors.New("repo_root is not a directory")

// Files with these extensions are line counted even without an extractor.
var countOnlyExts = map[string]bool{".md": true, ".yml": true, ".yaml": true}

// Engine orchestrates the pipeline: filter -> discover -> schedule -> scan
// -> rank -> assemble.
type Engine struct {
	mu         sync.Mutex
	cfg        *config.Config
	extractors *extractors.Registry
	renderers  *renderers.Registry
	base       *slog.Logger
	logger     *slog.Logger
	last       *model.Report
	now        func() time.Time
}

// New creates a new Engine with the given config.
// Extractors and renderers must be registered after creation.
func New(cfg *config.Config, logger *slog.Logger) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{
		cfg:        cfg,
		extractors: extractors.NewRegistry(),
		renderers:  renderers.NewRegistry(),
		base:       logger,
		logger:     logger.With("component", "engine"),
		now:        time.Now,
	}
}

// RegisterExtractor adds an extractor to the engine.
func (e *Engine) RegisterExtractor(ext extractors.Extractor) {
	e.extractors.Register(ext)
}

// RegisterRenderer adds a renderer to the engine.
func (e *Engine) RegisterRenderer(rnd renderers.Renderer) {
	e.renderers.Register(rnd)
}

// Config returns the engine config.
func (e *Engine) Config() *config.Config {
	return e.cfg
}

// Last returns the last generated report, or nil.
func (e *Engine) Last() *model.Report {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.last
}

// Run summarizes the tree at root with the engine config.
func (e *Engine) Run(ctx context.Context, root string) (*model.Report, error) {
	return e.RunWith(ctx, root, e.cfg)
}

// RunWith summarizes the tree at root with cfg. Runs are serialized. The
// only error besides cancellation is ErrNotDirectory; every other anomaly
// ends up in the report notes.
func (e *Engine) RunWith(ctx context.Context, root string, cfg *config.Config) (*model.Report, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := e.now()
	lim := cfg.Limits

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving repo root: %w", err)
	}
	if st, err := os.Stat(absRoot); err != nil || !st.IsDir() {
		return nil, ErrNotDirectory
	}

	gi, err := pathfilter.LoadGitignore(absRoot)
	if err != nil {
		e.logger.Debug("ignoring unreadable .gitignore", "error", err)
		gi = &pathfilter.Gitignore{}
	}
	filter := pathfilter.New(pathfilter.Options{
		ExtraExcludedDirs: cfg.ExcludedDirs,
		Exclude:           cfg.Exclude,
		Include:           cfg.Include,
		Gitignore:         gi,
	})

	head, err := gitmeta.New(cfg.GitTimeout, e.base).Head(ctx, absRoot)
	if err != nil {
		e.logger.Debug("git head unavailable", "error", err)
	}

	disc := discovery.Discover(absRoot, filter, lim.MaxFiles)
	e.logger.Info("discovered files", "count", len(disc.Files), "truncated", disc.Truncated)

	led := ledger.New(lim.MaxTotalBytes, lim.MaxSymbols)
	led.FilesTruncated = disc.Truncated

	sc := scanner.New(scanner.Options{
		MaxFileKB:    lim.MaxFileKB,
		MaxFileBytes: lim.MaxFileBytes,
		MaxScanLines: lim.MaxScanLines,
		MaxSymbols:   lim.MaxSymbolsPerFile,
	}, e.base)

	var infos []model.FileInfo
	lines := rank.LineCounts{}
	scanned := 0
	for _, f := range scheduler.Order(disc.Files) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		st, err := os.Stat(f.AbsPath)
		if err != nil {
			e.logger.Debug("cannot stat file", "path", f.RelPath, "error", err)
			continue
		}
		infos = append(infos, model.FileInfo{Path: f.RelPath, Size: st.Size(), ModTime: st.ModTime()})

		ext := e.extractors.ForExtension(strings.ToLower(path.Ext(f.RelPath)))
		if !e.eligible(f.RelPath, ext) || led.Exhausted() {
			continue
		}

		res := sc.Scan(f, st.Size(), ext, led.Remaining())
		led.Record(res)
		if res.Counted {
			lines[f.RelPath] = res.LineCount
		}
		scanned++
	}

	treeText, treeTruncated := tree.Build(absRoot, filter, tree.Options{
		MaxDepth: lim.MaxTreeDepth,
		MaxChars: lim.MaxTreeChars,
	})
	led.TreeTruncated = treeTruncated

	topFiles, topTruncated := rank.TopFiles(infos, lines, lim.MaxTopFiles)
	hotspots, hotTruncated := rank.Hotspots(lines, lim.MaxHotspots)

	rep := report.Assemble(report.Input{
		RepoRoot:    absRoot,
		GeneratedAt: e.now(),
		GitHead:     head,
		Tree:        treeText,
		TopFiles:    topFiles,
		Symbols:     led.Symbols,
		Hotspots:    hotspots,
		Flags: report.Flags{
			TreeTruncated:       led.TreeTruncated,
			SymbolsTruncated:    led.SymbolsTruncated,
			FilesTruncated:      led.FilesTruncated,
			FileBytesTruncated:  led.FileBytesTruncated,
			TotalBytesTruncated: led.TotalBytesTruncated,
			TopFilesTruncated:   topTruncated,
			HotspotsTruncated:   hotTruncated,
			GitignoreApplied:    filter.GitignoreApplied(),
			GitHeadUnavailable:  head == "",
		},
	})

	e.logger.Info("report generated",
		"files", len(infos),
		"scanned", scanned,
		"bytes", led.TotalBytes,
		"symbols", len(rep.Symbols),
		"notes", len(rep.Notes),
		"duration", e.now().Sub(start),
	)
	e.last = rep
	return rep, nil
}

// eligible reports whether a file is read at all: it has an extractor, is
// an important file, or is markdown or YAML.
func (e *Engine) eligible(relPath string, ext extractors.Extractor) bool {
	if ext != nil || rank.IsImportantFile(relPath) {
		return true
	}
	return countOnlyExts[strings.ToLower(path.Ext(relPath))]
}

// Render runs the named renderer over rep.
func (e *Engine) Render(ctx context.Context, name string, rep *model.Report) ([]byte, error) {
	rnd := e.renderers.Get(name)
	if rnd == nil {
		return nil, fmt.Errorf("unknown format %q (available: %s)", name, strings.Join(e.renderers.Names(), ", "))
	}
	return rnd.Render(ctx, rep)
}
