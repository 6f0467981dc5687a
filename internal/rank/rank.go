// Package rank scores discovered files for the top files list and flags
// hotspots.
package rank

import (
	"sort"

	"github.com/dejo1307/repomap/internal/model"
)

// LineCounts maps a relative path to its scanned line count. A missing
// path was not scanned.
type LineCounts map[string]int

// Score returns the additive score of a file and the reason it is listed.
// Readme and config reasons are set first and never replaced; entrypoint
// and core only replace "other"; a large file replaces anything else.
func Score(relPath string, lines LineCounts) (int, model.Reason) {
	score := 0
	reason := model.ReasonOther

	if IsImportantFile(relPath) {
		score += 100
		reason = model.ReasonConfig
	}
	if IsReadme(relPath) {
		score += 120
		reason = model.ReasonReadme
	}
	if IsEntrypoint(relPath) {
		score += 60
		if reason == model.ReasonOther {
			reason = model.ReasonEntrypoint
		}
	}
	if IsCorePath(relPath) {
		score += 15
		if reason == model.ReasonOther {
			reason = model.ReasonCore
		}
	}
	if lc, ok := lines[relPath]; ok {
		score += min(lc/50, 40)
		if lc >= largeLines && reason != model.ReasonReadme && reason != model.ReasonConfig {
			reason = model.ReasonLarge
		}
	}
	return score, reason
}

// TopFiles ranks infos by score descending then path, keeping at most limit.
// truncated is set when the list reaches limit, which also fires when there
// were exactly limit candidates.
func TopFiles(infos []model.FileInfo, lines LineCounts, limit int) (top []model.TopFile, truncated bool) {
	type scored struct {
		score int
		entry model.TopFile
	}
	all := make([]scored, 0, len(infos))
	for _, info := range infos {
		s, reason := Score(info.Path, lines)
		all = append(all, scored{score: s, entry: model.TopFile{Path: info.Path, Reason: reason}})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].score != all[j].score {
			return all[i].score > all[j].score
		}
		return all[i].entry.Path < all[j].entry.Path
	})

	top = make([]model.TopFile, 0, min(len(all), limit))
	for _, s := range all {
		if len(top) >= limit {
			break
		}
		top = append(top, s.entry)
	}
	return top, len(top) >= limit
}

// Hotspots walks scanned files by line count descending then path and keeps
// those with at least one signal, stopping once limit entries are kept.
func Hotspots(lines LineCounts, limit int) (hotspots []model.Hotspot, truncated bool) {
	paths := make([]string, 0, len(lines))
	for p := range lines {
		paths = append(paths, p)
	}
	sort.Slice(paths, func(i, j int) bool {
		a, b := lines[paths[i]], lines[paths[j]]
		if a != b {
			return a > b
		}
		return paths[i] < paths[j]
	})

	hotspots = []model.Hotspot{}
	for _, p := range paths {
		if len(hotspots) >= limit {
			break
		}
		var signals []model.Signal
		if lines[p] >= largeLines {
			signals = append(signals, model.SignalLarge)
		}
		if IsCorePath(p) {
			signals = append(signals, model.SignalCore)
		}
		if len(signals) == 0 {
			continue
		}
		hotspots = append(hotspots, model.Hotspot{Path: p, Signals: signals})
	}
	return hotspots, len(hotspots) >= limit
}
