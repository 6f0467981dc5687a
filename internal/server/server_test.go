package server

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dejo1307/repomap/internal/config"
	"github.com/dejo1307/repomap/internal/engine"
	"github.com/dejo1307/repomap/internal/extractors/all"
	"github.com/dejo1307/repomap/internal/model"
	"github.com/dejo1307/repomap/internal/renderers"
	"github.com/dejo1307/repomap/internal/renderers/markdown"
)

func newServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Default()
	eng := engine.New(cfg, nil)
	for _, x := range all.Extractors() {
		eng.RegisterExtractor(x)
	}
	eng.RegisterRenderer(renderers.JSON{})
	eng.RegisterRenderer(markdown.New(0))
	s, err := New(eng, cfg, "test", nil)
	require.NoError(t, err)
	return s
}

func fixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("# demo\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "app.py"),
		[]byte("class App:\n    def run(self):\n        pass\ndef helper():\n"), 0o644))
	return root
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	return tc.Text
}

func intp(v int) *int { return &v }

func TestRepomapTool_JSON(t *testing.T) {
	s := newServer(t)
	root := fixture(t)

	res := s.repomap(context.Background(), repomapArgs{RepoRoot: root})
	require.False(t, res.IsError, resultText(t, res))

	var rep model.Report
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &rep))
	assert.Equal(t, root, rep.RepoRoot)
	assert.Equal(t, "README.md", rep.TopFiles[0].Path)
	assert.Len(t, rep.Symbols, 3)
}

func TestRepomapTool_LimitOverrides(t *testing.T) {
	s := newServer(t)
	root := fixture(t)

	res := s.repomap(context.Background(), repomapArgs{RepoRoot: root, MaxSymbols: intp(1), MaxTopFiles: intp(1)})
	require.False(t, res.IsError)

	var rep model.Report
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &rep))
	assert.Len(t, rep.Symbols, 1)
	assert.Len(t, rep.TopFiles, 1)
	assert.Contains(t, rep.Notes, "symbols truncated")
	assert.Contains(t, rep.Notes, "top_files truncated")

	assert.Equal(t, 200, s.cfg.Limits.MaxSymbols, "server config is not modified")
}

func TestRepomapTool_Markdown(t *testing.T) {
	s := newServer(t)
	res := s.repomap(context.Background(), repomapArgs{RepoRoot: fixture(t), Format: "markdown"})
	require.False(t, res.IsError)
	assert.Contains(t, resultText(t, res), "# Repository Map")
}

func TestRepomapTool_Errors(t *testing.T) {
	s := newServer(t)

	res := s.repomap(context.Background(), repomapArgs{})
	assert.True(t, res.IsError)
	assert.Equal(t, "repo_root is required", resultText(t, res))

	res = s.repomap(context.Background(), repomapArgs{RepoRoot: filepath.Join(t.TempDir(), "missing")})
	assert.True(t, res.IsError)
	assert.Equal(t, `{"error":"repo_root is not a directory"}`, resultText(t, res))

	res = s.repomap(context.Background(), repomapArgs{RepoRoot: fixture(t), MaxFiles: intp(-1)})
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "max_files must not be negative")

	res = s.repomap(context.Background(), repomapArgs{RepoRoot: fixture(t), Format: "xml"})
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), `unknown format "xml"`)
}

func TestLastReport(t *testing.T) {
	s := newServer(t)

	_, err := s.lastReport(context.Background())
	assert.Error(t, err)

	root := fixture(t)
	res := s.repomap(context.Background(), repomapArgs{RepoRoot: root})
	require.False(t, res.IsError)

	text, err := s.lastReport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, resultText(t, res), text)
}

func TestArgsApply_AppendsGlobs(t *testing.T) {
	base := config.Default()
	base.Exclude = []string{"*.gen.go"}

	cfg, err := repomapArgs{Exclude: []string{"docs/**"}, Include: []string{"**/*.go"}}.apply(base)
	require.NoError(t, err)
	assert.Equal(t, []string{"*.gen.go", "docs/**"}, cfg.Exclude)
	assert.Equal(t, []string{"**/*.go"}, cfg.Include)
	assert.Equal(t, []string{"*.gen.go"}, base.Exclude)
	assert.Nil(t, base.Include)
}

func TestServer_InMemorySession(t *testing.T) {
	s := newServer(t)
	root := fixture(t)
	ctx := context.Background()

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	ss, err := s.mcp.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer ss.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "test"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer cs.Close()

	res, err := cs.CallTool(ctx, &mcp.CallToolParams{
		Name:      "repomap",
		Arguments: map[string]any{"repo_root": root},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	var rep model.Report
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &rep))
	assert.Equal(t, root, rep.RepoRoot)

	read, err := cs.ReadResource(ctx, &mcp.ReadResourceParams{URI: LastReportURI})
	require.NoError(t, err)
	require.Len(t, read.Contents, 1)
	assert.Equal(t, resultText(t, res), read.Contents[0].Text)
}

func TestNew_RequiresEngine(t *testing.T) {
	_, err := New(nil, nil, "x", nil)
	assert.Error(t, err)
}
