package render

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diogo/ollamachat/internal/config"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, 80, opts.Width)
	assert.Equal(t, StyleDark, opts.Style)
	assert.True(t, opts.EnableEmoji)
	assert.True(t, opts.PreserveNewLines)
	assert.True(t, opts.TableWrap)
	assert.False(t, opts.InlineTableLinks)
}

func TestOptionsWith(t *testing.T) {
	opts := DefaultOptions().WithWidth(120).WithStyle(StyleLight)
	assert.Equal(t, 120, opts.Width)
	assert.Equal(t, StyleLight, opts.Style)

	// Non-positive width keeps the previous value
	assert.Equal(t, 120, opts.WithWidth(0).Width)
}

func TestOptionsFromConfig(t *testing.T) {
	t.Setenv(StyleEnv, "")

	cfg := config.DefaultConfig()
	cfg.Markdown.Style = StyleLight
	cfg.Markdown.EnableEmoji = false

	opts := OptionsFromConfig(cfg)
	assert.Equal(t, StyleLight, opts.Style)
	assert.False(t, opts.EnableEmoji, "EnableEmoji should follow config")
	assert.Equal(t, 80, opts.Width)
}

func TestOptionsFromConfig_EnvOverride(t *testing.T) {
	t.Setenv(StyleEnv, StyleNoTTY)

	opts := OptionsFromConfig(config.DefaultConfig())
	assert.Equal(t, StyleNoTTY, opts.Style)
}

func TestMarkdown(t *testing.T) {
	out, err := Markdown("# Title\n\nSome **bold** text", DefaultOptions().WithStyle(StyleNoTTY))
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "bold")
}

func TestMarkdown_AllBuiltinStyles(t *testing.T) {
	for _, s := range AvailableStyles() {
		t.Run(s.Name, func(t *testing.T) {
			out, err := Markdown("Response to: hello", DefaultOptions().WithStyle(s.Name))
			require.NoError(t, err)
			assert.Contains(t, out, "hello")
		})
	}
}

func TestMarkdown_InvalidStylePath(t *testing.T) {
	ClearCache()
	_, err := Markdown("x", DefaultOptions().WithStyle("/nonexistent/style.json"))
	assert.Error(t, err)
}

func TestMarkdownOrPlain(t *testing.T) {
	out := MarkdownOrPlain("plain", DefaultOptions().WithStyle(StyleNoTTY))
	assert.False(t, strings.HasSuffix(out, "\n"), "trailing newline not trimmed: %q", out)

	fallback := MarkdownOrPlain("raw text", DefaultOptions().WithStyle("/nonexistent/style.json"))
	assert.Equal(t, "raw text", fallback)
}

func TestCache(t *testing.T) {
	ClearCache()
	require.Equal(t, 0, CacheSize())

	opts := DefaultOptions().WithStyle(StyleNoTTY)
	_, _ = Markdown("a", opts)
	_, _ = Markdown("b", opts)
	assert.Equal(t, 1, CacheSize(), "same options should share a pool")

	_, _ = Markdown("c", opts.WithWidth(40))
	assert.Equal(t, 2, CacheSize(), "different width should add a pool")
}

func TestCache_BoundedAcrossResizes(t *testing.T) {
	ClearCache()
	t.Cleanup(ClearCache)

	opts := DefaultOptions().WithStyle(StyleNoTTY)
	for width := 20; width < 20+3*maxPools; width++ {
		out, err := Markdown("resize", opts.WithWidth(width))
		require.NoError(t, err)
		require.Contains(t, out, "resize")
		assert.LessOrEqual(t, CacheSize(), maxPools)
	}
}

func TestMarkdown_Concurrent(t *testing.T) {
	opts := DefaultOptions().WithStyle(StyleNoTTY)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := Markdown("**concurrent**", opts)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}

func TestIsBuiltinStyle(t *testing.T) {
	tests := []struct {
		style    string
		expected bool
	}{
		{"dark", true},
		{"light", true},
		{"tokyonight", true},
		{"notty", true},
		{"custom_path.json", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsBuiltinStyle(tt.style))
		})
	}
}

func TestValidateStyle(t *testing.T) {
	stylePath := filepath.Join(t.TempDir(), "custom.json")
	require.NoError(t, os.WriteFile(stylePath, []byte(`{}`), 0o644))

	for _, s := range AvailableStyles() {
		assert.NoError(t, ValidateStyle(s.Name), "built-in %s", s.Name)
	}
	assert.NoError(t, ValidateStyle(stylePath))

	for _, bad := range []string{"", "no-such-style", t.TempDir()} {
		err := ValidateStyle(bad)
		require.Error(t, err, "style %q", bad)
		assert.Contains(t, err.Error(), "unknown markdown style")
	}
}

func TestGlamourStyleName(t *testing.T) {
	assert.Equal(t, "tokyo-night", glamourStyleName(StyleTokyoNight))
	assert.Equal(t, "dark", glamourStyleName(""))
	assert.Equal(t, "/path/theme.json", glamourStyleName("/path/theme.json"))
}

func TestPaletteByName(t *testing.T) {
	for _, name := range PaletteNames() {
		p, ok := PaletteByName(name)
		assert.True(t, ok, name)
		assert.Equal(t, name, p.Name)
		assert.NotEmpty(t, p.Primary, "palette %s", name)
		assert.NotEmpty(t, p.Text, "palette %s", name)
		assert.NotEmpty(t, p.Error, "palette %s", name)
	}

	p, ok := PaletteByName("unknown")
	assert.False(t, ok, "unknown palette should report false")
	assert.Equal(t, TokyoNightPalette.Name, p.Name)
}
