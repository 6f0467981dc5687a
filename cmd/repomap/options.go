package main

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dejo1307/repomap/internal/config"
)

// limitFlag ties a command line flag to one field of config.Limits.
type limitFlag struct {
	name  string
	usage string
	int   func(*config.Limits) *int
	int64 func(*config.Limits) *int64
}

var limitFlags = []limitFlag{
	{name: "max-tree-chars", usage: "Maximum characters of the rendered tree", int: func(l *config.Limits) *int { return &l.MaxTreeChars }},
	{name: "max-symbols", usage: "Maximum number of symbols", int: func(l *config.Limits) *int { return &l.MaxSymbols }},
	{name: "max-top-files", usage: "Maximum number of top files", int: func(l *config.Limits) *int { return &l.MaxTopFiles }},
	{name: "max-hotspots", usage: "Maximum number of hotspots", int: func(l *config.Limits) *int { return &l.MaxHotspots }},
	{name: "max-tree-depth", usage: "Deepest directory level listed in the tree", int: func(l *config.Limits) *int { return &l.MaxTreeDepth }},
	{name: "max-file-kb", usage: "Files larger than this many KB are not scanned", int64: func(l *config.Limits) *int64 { return &l.MaxFileKB }},
	{name: "max-file-bytes", usage: "Maximum bytes read from a single file", int64: func(l *config.Limits) *int64 { return &l.MaxFileBytes }},
	{name: "max-scan-lines", usage: "Maximum lines scanned per file", int: func(l *config.Limits) *int { return &l.MaxScanLines }},
	{name: "max-files", usage: "Maximum number of files discovered", int: func(l *config.Limits) *int { return &l.MaxFiles }},
	{name: "max-total-bytes", usage: "Maximum bytes read across the whole run", int64: func(l *config.Limits) *int64 { return &l.MaxTotalBytes }},
	{name: "max-symbols-per-file", usage: "Maximum symbols collected from one file", int: func(l *config.Limits) *int { return &l.MaxSymbolsPerFile }},
}

func addLimitFlags(f *pflag.FlagSet) {
	defaults := config.DefaultLimits()
	for _, lf := range limitFlags {
		if lf.int != nil {
			f.Int(lf.name, *lf.int(&defaults), lf.usage)
		} else {
			f.Int64(lf.name, *lf.int64(&defaults), lf.usage)
		}
	}
}

// Markdown output gets the tree cap plus a fixed allowance per listed entry
// and for headings, notes and meta.
const (
	markdownEntryChars = 160
	markdownOverhead   = 2048
)

// markdownBudget sizes the markdown document from the same caps that bound
// the JSON report.
func markdownBudget(l config.Limits) int {
	entries := l.MaxTopFiles + l.MaxHotspots + l.MaxSymbols
	return markdownOverhead + l.MaxTreeChars + entries*markdownEntryChars
}

// loadConfig merges, lowest first: defaults, the config file, REPOMAP_*
// environment variables and explicitly set flags.
func loadConfig(v *viper.Viper) (*config.Config, error) {
	cfg, err := readConfigFile(v.GetString("config"))
	if err != nil {
		return nil, err
	}

	for _, lf := range limitFlags {
		if !v.IsSet(lf.name) {
			continue
		}
		if lf.int != nil {
			*lf.int(&cfg.Limits) = v.GetInt(lf.name)
		} else {
			*lf.int64(&cfg.Limits) = v.GetInt64(lf.name)
		}
	}
	if v.IsSet("include") {
		cfg.Include = append(cfg.Include, v.GetStringSlice("include")...)
	}
	if v.IsSet("exclude") {
		cfg.Exclude = append(cfg.Exclude, v.GetStringSlice("exclude")...)
	}
	if v.IsSet("log-level") {
		cfg.Log.Level = v.GetString("log-level")
	}
	if v.IsSet("log-format") {
		cfg.Log.Format = v.GetString("log-format")
	}

	if err := cfg.Limits.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readConfigFile loads path, or DefaultFile when path is empty. Only an
// explicitly named file has to exist.
func readConfigFile(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	cfg, err := config.Load(config.DefaultFile)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

// newLogger builds the stderr logger. Unknown levels fall back to warn.
func newLogger(w io.Writer, lc config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: levelFromString(lc.Level)}
	if strings.EqualFold(lc.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func levelFromString(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
