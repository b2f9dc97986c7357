package commands

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/diogo/ollamachat/internal/api"
	"github.com/diogo/ollamachat/internal/config"
	apierrors "github.com/diogo/ollamachat/internal/errors"
)

func TestQuery_PositionalArg(t *testing.T) {
	env := newTestEnv(t, "")

	require.NoError(t, env.run("hello"))
	assert.Equal(t, "Response to: hello\n", env.stdout.String())
	assert.Equal(t, []string{api.DefaultModel}, env.models)
}

func TestQuery_ModelFlag(t *testing.T) {
	env := newTestEnv(t, "")

	require.NoError(t, env.run("-m", "mistral", "hi"))
	assert.Equal(t, []string{"mistral"}, env.models)
}

func TestQuery_ConfigDefaultModel(t *testing.T) {
	env := newTestEnv(t, "")

	cfg := config.DefaultConfig()
	cfg.DefaultModel = "phi3"
	require.NoError(t, config.SaveConfig(cfg))

	require.NoError(t, env.run("hi"))
	assert.Equal(t, []string{"phi3"}, env.models)
}

func TestQuery_Stdin(t *testing.T) {
	env := newTestEnv(t, "piped question\n")

	require.NoError(t, env.run())
	assert.Equal(t, "Response to: piped question\n", env.stdout.String())
}

func TestQuery_File(t *testing.T) {
	env := newTestEnv(t, "")
	path := filepath.Join(t.TempDir(), "prompt.md")
	require.NoError(t, os.WriteFile(path, []byte("  from file  \n"), 0o644))

	require.NoError(t, env.run("-f", path))
	assert.Equal(t, "Response to: from file\n", env.stdout.String())
}

func TestQuery_FileMissing(t *testing.T) {
	env := newTestEnv(t, "")

	err := env.run("-f", filepath.Join(t.TempDir(), "missing.md"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestQuery_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t"} {
		env := newTestEnv(t, "")
		mock := &api.MockQueryClient{Response: "unused"}
		env.deps.NewClient = func(string, *zap.Logger) api.QueryClient { return mock }

		err := env.run(input)

		assert.True(t, apierrors.IsInvalidInputError(err), "input %q: err = %v", input, err)
		assert.Zero(t, mock.Calls, "client must not be called for %q", input)
		assert.Empty(t, env.stdout.String())
	}
}

func TestQuery_ClientError(t *testing.T) {
	env := newTestEnv(t, "")
	env.deps.NewClient = func(string, *zap.Logger) api.QueryClient {
		return &api.MockQueryClient{Err: apierrors.NewBackendUnavailableError("ollama", "connection refused")}
	}

	err := env.run("hello")
	assert.True(t, apierrors.IsBackendUnavailable(err), "err = %v", err)
	assert.Empty(t, env.stdout.String())
}

func TestQuery_JSON(t *testing.T) {
	env := newTestEnv(t, "")

	require.NoError(t, env.run("hello", "--json"))

	var doc struct {
		Count     int `json:"count"`
		Exchanges []struct {
			Query    string `json:"query"`
			Response string `json:"response"`
		} `json:"exchanges"`
	}
	require.NoError(t, json.Unmarshal(env.stdout.Bytes(), &doc))
	assert.Equal(t, 1, doc.Count)
	require.Len(t, doc.Exchanges, 1)
	assert.Equal(t, "hello", doc.Exchanges[0].Query)
	assert.Equal(t, "Response to: hello", doc.Exchanges[0].Response)
}

func TestQuery_DecoratedOnTerminal(t *testing.T) {
	env := newTestEnv(t, "")
	env.setTerminal()

	require.NoError(t, env.run("hello"))

	out := env.stdout.String()
	assert.Contains(t, out, "✦ "+api.DefaultModel)
	assert.Contains(t, out, "hello")
}

func TestQuery_RawOnTerminal(t *testing.T) {
	env := newTestEnv(t, "")
	env.setTerminal()

	require.NoError(t, env.run("hello", "--raw"))
	assert.Equal(t, "Response to: hello\n", env.stdout.String())
}

func TestQuery_OutputFile(t *testing.T) {
	env := newTestEnv(t, "")
	path := filepath.Join(t.TempDir(), "answer.txt")

	require.NoError(t, env.run("hello", "-o", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Response to: hello", string(data))
	assert.Contains(t, env.stderr.String(), "Saved to "+path)
}

func TestQuery_OutputFileRawIsQuiet(t *testing.T) {
	env := newTestEnv(t, "")
	path := filepath.Join(t.TempDir(), "answer.txt")

	require.NoError(t, env.run("hello", "--raw", "-o", path))
	assert.Empty(t, env.stderr.String())
}

func TestQuery_Clipboard(t *testing.T) {
	env := newTestEnv(t, "")

	require.NoError(t, env.run("first"))
	assert.Empty(t, env.clipboard, "clipboard is off by default")

	cfg := config.DefaultConfig()
	cfg.CopyToClipboard = true
	require.NoError(t, config.SaveConfig(cfg))

	require.NoError(t, env.run("second"))
	assert.Equal(t, []string{"Response to: second"}, env.clipboard)
}

func TestQuery_ClipboardErrorIsWarning(t *testing.T) {
	env := newTestEnv(t, "")
	env.deps.CopyToClipboard = func(string) error { return errors.New("no display") }

	cfg := config.DefaultConfig()
	cfg.CopyToClipboard = true
	require.NoError(t, config.SaveConfig(cfg))

	require.NoError(t, env.run("hello"))
	assert.True(t, strings.Contains(env.stderr.String(), "no display"))
}

func TestQuery_BrokenConfigFallsBack(t *testing.T) {
	env := newTestEnv(t, "")
	path, err := config.GetConfigPath()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	require.NoError(t, env.run("hello"))
	assert.Contains(t, env.stderr.String(), "using defaults")
	assert.Equal(t, "Response to: hello\n", env.stdout.String())
}
