package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thinkscotty/contentspark/internal/models"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")
	t.Setenv("CONTENTSPARK_DB", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")
	t.Setenv("CONTENTSPARK_DB", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
storage:
  driver: redis
  redis:
    addr: cache:6379
ai:
  provider: ollama
locale: en
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host, "unset fields keep defaults")
	assert.Equal(t, "redis", cfg.Storage.Driver)
	assert.Equal(t, "cache:6379", cfg.Storage.Redis.Addr)
	assert.Equal(t, "contentspark:", cfg.Storage.Redis.KeyPrefix)
	assert.Equal(t, "ollama", cfg.AI.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.AI.TextModel)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, 30, cfg.Maintenance.LogRetentionDays)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantKey string
		wantDB  string
	}{
		{"gemini key wins", map[string]string{"GEMINI_API_KEY": "g", "API_KEY": "a"}, "g", "./contentspark.db"},
		{"api key fallback", map[string]string{"GEMINI_API_KEY": "", "API_KEY": "a"}, "a", "./contentspark.db"},
		{"database path", map[string]string{"GEMINI_API_KEY": "", "API_KEY": "", "CONTENTSPARK_DB": "/data/cs.db"}, "", "/data/cs.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CONTENTSPARK_DB", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, cfg.AI.GeminiAPIKey)
			assert.Equal(t, tt.wantDB, cfg.Database.Path)
		})
	}
}

func TestLoadPalette(t *testing.T) {
	dir := t.TempDir()

	p, err := LoadPalette(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultPalette(), p)

	custom := filepath.Join(dir, "palette.yaml")
	require.NoError(t, os.WriteFile(custom, []byte(`
accents:
  - id: green
    name: Lá non
    primary: "#22c55e"
    hover: "#16a34a"
    soft: "#dcfce7"
    soft_text: "#15803d"
    dark_text: "#4ade80"
    border: "#22c55e"
`), 0o600))
	p, err = LoadPalette(custom)
	require.NoError(t, err)
	require.Len(t, p, 1)
	assert.Equal(t, "Lá non", p[0].Name)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("accents:\n  - id: pink\n"), 0o600))
	_, err = LoadPalette(bad)
	assert.ErrorContains(t, err, "pink")
}

func TestFindAccentFallsBackToFirst(t *testing.T) {
	p := DefaultPalette()
	assert.Equal(t, models.AccentPurple, FindAccent(p, models.AccentPurple).ID)
	assert.Equal(t, p[0].ID, FindAccent(p, "pink").ID)
	assert.Equal(t, DefaultPalette()[0].ID, FindAccent(nil, models.AccentGreen).ID)
}

func TestResolveThemeCSS(t *testing.T) {
	light := ResolveThemeCSS(models.ThemeSettings{Mode: models.ModeLight, Accent: models.AccentGreen}, DefaultPalette())
	assert.Contains(t, light, "--accent: #16a34a;")
	assert.Contains(t, light, "--accent-text: #16a34a;")
	assert.Contains(t, light, "--bg: #f8fafc;")
	assert.True(t, strings.HasSuffix(light, "color-scheme: light;"))

	dark := ResolveThemeCSS(models.ThemeSettings{Mode: models.ModeDark, Accent: models.AccentGreen}, DefaultPalette())
	assert.Contains(t, dark, "--accent-text: #4ade80;")
	assert.Contains(t, dark, "--bg: #0f172a;")
	assert.Contains(t, dark, "color-scheme: dark;")
}

func TestColorHelpers(t *testing.T) {
	assert.Equal(t, rgb{0xaa, 0xbb, 0xcc}, parseHex("#abc"))
	assert.Equal(t, "#102030", hexString(parseHex("102030")))
	assert.Equal(t, rgb{127, 127, 127}, blendColors(rgb{0, 0, 0}, rgb{255, 255, 255}, 0.5))
	assert.Greater(t, luminance(rgb{255, 255, 255}), 0.99)
}
