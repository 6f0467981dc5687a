package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dejo1307/repomap/internal/model"
)

func candidates(paths ...string) []model.CandidateFile {
	out := make([]model.CandidateFile, len(paths))
	for i, p := range paths {
		out[i] = model.CandidateFile{RelPath: p, AbsPath: "/repo/" + p}
	}
	return out
}

func relPaths(files []model.CandidateFile) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.RelPath
	}
	return out
}

func TestOrder_RoundRobin(t *testing.T) {
	in := candidates(
		"README.md",
		"app/a.ts",
		"app/b.ts",
		"app/c.ts",
		"lib/x.py",
		"lib/y.py",
	)
	got := relPaths(Order(in))
	assert.Equal(t, []string{
		"README.md",
		"app/a.ts",
		"lib/x.py",
		"app/b.ts",
		"lib/y.py",
		"app/c.ts",
	}, got)
}

func TestOrder_FirstRoundCoversEveryGroup(t *testing.T) {
	in := candidates(
		"big/1.swift", "big/2.swift", "big/3.swift", "big/4.swift", "big/5.swift",
		"docs/guide.md",
		"small/main.go",
		"setup.py",
	)
	got := Order(in)
	seen := map[string]bool{}
	for _, f := range got[:4] {
		seen[Group(f.RelPath)] = true
	}
	assert.Len(t, seen, 4)
	assert.Len(t, got, len(in))
}

func TestOrder_WithinGroupPriority(t *testing.T) {
	in := candidates(
		"src/z.json",
		"src/notes.md",
		"src/util.py",
		"src/session_store.py",
		"src/plugin_registry.py",
		"src/View.swift",
		"src/index.ts",
		"src/Makefile",
	)
	got := relPaths(Order(in))
	assert.Equal(t, []string{
		"src/View.swift",
		"src/index.ts",
		"src/plugin_registry.py",
		"src/session_store.py",
		"src/util.py",
		"src/notes.md",
		"src/z.json",
		"src/Makefile",
	}, got)
}

func TestOrder_Deterministic(t *testing.T) {
	a := candidates("b/2.go", "a/1.go", "b/1.go", "c.txt")
	b := candidates("c.txt", "b/1.go", "a/1.go", "b/2.go")
	assert.Equal(t, Order(a), Order(b))
}

func TestOrder_DoesNotModifyInput(t *testing.T) {
	in := candidates("b/x.go", "a/y.go")
	_ = Order(in)
	assert.Equal(t, []string{"b/x.go", "a/y.go"}, relPaths(in))
}

func TestPriorities(t *testing.T) {
	assert.Equal(t, 0, ExtPriority("A.SWIFT"))
	assert.Equal(t, 6, ExtPriority("x/Main.kt"))
	assert.Equal(t, unknownExtPriority, ExtPriority("Makefile"))

	assert.Equal(t, 0, NamePriority("core/TaskOrchestrator.swift"))
	assert.Equal(t, 4, NamePriority("workflow.py"))
	assert.Equal(t, 3, NamePriority("workflowpack.py"))
	assert.Equal(t, len(nameTokens)+1, NamePriority("util.go"))

	assert.Equal(t, "src", Group("src/a/b.go"))
	assert.Equal(t, "README.md", Group("README.md"))
}

func TestOrder_Empty(t *testing.T) {
	assert.Empty(t, Order(nil))
}
