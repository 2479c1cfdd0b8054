package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every location the config reads at a temp dir
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("TABLERO_HOME", filepath.Join(dir, "data"))
	t.Setenv("TABLERO_DB", "")
	t.Setenv("TABLERO_ADDR", "")
	t.Setenv("TABLERO_THEME_FILE", "")
	return dir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, "tablero")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644))
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	assert.Equal(t, "q", defaults.Quit)
	assert.Equal(t, "space", defaults.GrabTask)
	assert.Equal(t, "enter", defaults.Drop)
	assert.Equal(t, "esc", defaults.Cancel)
}

func TestLoadConfigWithoutFile(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "data", "tablero.db"), cfg.DatabasePath)
	assert.Equal(t, DefaultAddr, cfg.Server.Addr)
	assert.Equal(t, DefaultEventBuffer, cfg.Events.Buffer)
	assert.Equal(t, TaskDisplayCompact, cfg.Preferences.TaskDisplay)
	assert.False(t, cfg.Preferences.SidebarCollapsed)
	assert.Equal(t, "q", cfg.KeyMappings.Quit)
	assert.Equal(t, "default", cfg.ColorScheme.Preset)
}

func TestLoadConfigWithFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `database_path: /tmp/board.db
server:
  addr: ":9000"
preferences:
  sidebar_collapsed: true
  task_display: detailed
key_mappings:
  quit: "x"
  grab_task: "g"
theme:
  preset: monochrome
  accent: "#123456"
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/board.db", cfg.DatabasePath)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.True(t, cfg.Preferences.SidebarCollapsed)
	assert.Equal(t, TaskDisplayDetailed, cfg.Preferences.TaskDisplay)
	assert.Equal(t, "x", cfg.KeyMappings.Quit)
	assert.Equal(t, "g", cfg.KeyMappings.GrabTask)

	// Unspecified values should use defaults
	assert.Equal(t, "enter", cfg.KeyMappings.Drop)
	assert.Equal(t, "#123456", cfg.ColorScheme.Accent)
	assert.Equal(t, MonochromeColorScheme().ErrorBg, cfg.ColorScheme.ErrorBg)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "server: [unclosed")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadConfig_UnknownTaskDisplayFallsBack(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "preferences:\n  task_display: fancy\n")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, TaskDisplayCompact, cfg.Preferences.TaskDisplay)
}

func TestEnvOverrides(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "database_path: /from/file.db\n")
	t.Setenv("TABLERO_DB", "/from/env.db")
	t.Setenv("TABLERO_ADDR", "0.0.0.0:1234")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/from/env.db", cfg.DatabasePath)
	assert.Equal(t, "0.0.0.0:1234", cfg.Server.Addr)
}

func TestThemeFile(t *testing.T) {
	dir := isolate(t)
	themePath := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(themePath, []byte("theme:\n  error_fg: \"#ABCDEF\"\n"), 0o644))
	t.Setenv("TABLERO_THEME_FILE", themePath)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "#ABCDEF", cfg.ColorScheme.ErrorFg)
	assert.Equal(t, DefaultColorScheme().Accent, cfg.ColorScheme.Accent)
}

func TestSaveConfig(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	cfg.Preferences.SidebarCollapsed = true
	cfg.KeyMappings.Quit = "x"
	require.NoError(t, cfg.Save())

	configPath := filepath.Join(dir, "tablero", "config.yaml")
	_, err = os.Stat(configPath)
	require.NoError(t, err, "config file should be created")

	reloaded, err := Load()
	require.NoError(t, err)
	assert.True(t, reloaded.Preferences.SidebarCollapsed)
	assert.Equal(t, "x", reloaded.KeyMappings.Quit)
}

func TestColorScheme_MergeFrom(t *testing.T) {
	c := DefaultColorScheme()
	c.MergeFrom(ColorScheme{Accent: "#000001"})

	assert.Equal(t, "#000001", c.Accent)
	assert.Equal(t, DefaultColorScheme().Title, c.Title)
	assert.Equal(t, "default", c.Preset)
}
