// Package markdown renders a report as a compact markdown summary for
// humans and LLM prompts.
package markdown

import (
	"context"
	"fmt"
	"strings"

	"github.com/dejo1307/repomap/internal/model"
)

// DefaultMaxChars bounds the rendered document when no budget is given.
const DefaultMaxChars = 64000

// Renderer produces the markdown document.
type Renderer struct {
	maxChars int
}

// New creates a Renderer with the given character budget.
func New(maxChars int) *Renderer {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	return &Renderer{maxChars: maxChars}
}

func (r *Renderer) Name() string {
	return "markdown"
}

func (r *Renderer) MIMEType() string {
	return "text/markdown"
}

type section struct {
	name    string
	content string
}

// Render writes sections in priority order. When the budget runs short the
// current section is cut on a line boundary, and if too little room is left
// for that the remaining sections are listed as omitted.
func (r *Renderer) Render(_ context.Context, rep *model.Report) ([]byte, error) {
	sections := []section{
		{"Notes", renderNotes(rep)},
		{"Top Files", renderTopFiles(rep)},
		{"Hotspots", renderHotspots(rep)},
		{"Tree", renderTree(rep)},
		{"Symbols", renderSymbols(rep)},
		{"Meta", renderMeta(rep)},
	}

	header := "# Repository Map\n\n"
	remaining := r.maxChars - len(header)

	var sb strings.Builder
	sb.WriteString(header)

	for i, sec := range sections {
		if sec.content == "" {
			continue
		}
		if len(sec.content) <= remaining {
			sb.WriteString(sec.content)
			remaining -= len(sec.content)
			continue
		}
		if remaining > 200 {
			// Only whole lines are kept; without a newline the section is omitted.
			if nl := strings.LastIndexByte(sec.content[:remaining-100], '\n'); nl >= 0 {
				sb.WriteString(sec.content[:nl+1])
				fmt.Fprintf(&sb, "\n---\n*[Truncated in: %s]*\n", sec.name)
				break
			}
		}
		var omitted []string
		for _, s := range sections[i:] {
			if s.content != "" {
				omitted = append(omitted, s.name)
			}
		}
		fmt.Fprintf(&sb, "\n---\n*[Omitted: %s]*\n", strings.Join(omitted, ", "))
		break
	}

	return []byte(sb.String()), nil
}

func renderNotes(rep *model.Report) string {
	if len(rep.Notes) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("## Notes\n\n")
	for _, n := range rep.Notes {
		fmt.Fprintf(&sb, "- %s\n", n)
	}
	sb.WriteString("\n")
	return sb.String()
}

func renderTopFiles(rep *model.Report) string {
	var sb strings.Builder
	sb.WriteString("## Top Files\n\n")
	if len(rep.TopFiles) == 0 {
		sb.WriteString("_No files found._\n\n")
		return sb.String()
	}
	sb.WriteString("| File | Reason |\n")
	sb.WriteString("|------|--------|\n")
	for _, f := range rep.TopFiles {
		fmt.Fprintf(&sb, "| `%s` | %s |\n", f.Path, f.Reason)
	}
	sb.WriteString("\n")
	return sb.String()
}

func renderHotspots(rep *model.Report) string {
	if len(rep.Hotspots) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("## Hotspots\n\n")
	for _, h := range rep.Hotspots {
		signals := make([]string, len(h.Signals))
		for i, s := range h.Signals {
			signals[i] = string(s)
		}
		fmt.Fprintf(&sb, "- `%s` (%s)\n", h.Path, strings.Join(signals, ", "))
	}
	sb.WriteString("\n")
	return sb.String()
}

func renderTree(rep *model.Report) string {
	if rep.Tree == "" {
		return ""
	}
	return "## Tree\n\n```\n" + rep.Tree + "\n```\n\n"
}

// renderSymbols groups symbols under their file. Report symbols are already
// sorted by path, so a change of path starts a new group.
func renderSymbols(rep *model.Report) string {
	if len(rep.Symbols) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("## Symbols\n\n")
	current := ""
	for _, s := range rep.Symbols {
		if s.Path != current {
			if current != "" {
				sb.WriteString("\n")
			}
			current = s.Path
			fmt.Fprintf(&sb, "### `%s`\n\n", current)
		}
		fmt.Fprintf(&sb, "- %s `%s` (line %d)\n", s.Kind, s.Name, s.Line)
	}
	sb.WriteString("\n")
	return sb.String()
}

func renderMeta(rep *model.Report) string {
	head := rep.GitHead
	if head == "" {
		head = "unknown"
	}
	return fmt.Sprintf("## Meta\n\n- Root: `%s`\n- Generated: %s\n- HEAD: %s\n",
		rep.RepoRoot, rep.GeneratedAt, head)
}
