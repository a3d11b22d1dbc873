package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateEnv points every config lookup location at empty directories so
// files on the developer's machine cannot leak into tests.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("COLX_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, " ", cfg.Delimiter)
	assert.Equal(t, " ", cfg.Separator)
	assert.Equal(t, "auto", cfg.Color)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "delimiter: ','\nseparator: '\\t'\ncolor: never\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ",", cfg.Delimiter)
	assert.Equal(t, `\t`, cfg.Separator)
	assert.Equal(t, "never", cfg.Color)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "delimiter: '\\s+'\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, `\s+`, cfg.Delimiter)
	assert.Equal(t, " ", cfg.Separator)
	assert.Equal(t, "auto", cfg.Color)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "delimiter: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadDefaultNoFiles(t *testing.T) {
	isolateEnv(t)

	cfg, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadDefaultEnvOverride(t *testing.T) {
	isolateEnv(t)
	path := writeConfig(t, "separator: \" | \"\n")
	t.Setenv("COLX_CONFIG", path)

	cfg, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, " | ", cfg.Separator)
}

func TestLoadDefaultXDGPath(t *testing.T) {
	isolateEnv(t)
	xdg := os.Getenv("XDG_CONFIG_HOME")
	require.NoError(t, os.MkdirAll(filepath.Join(xdg, "colx"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(xdg, "colx", "config.yml"), []byte("color: always\n"), 0o644))

	cfg, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, "always", cfg.Color)
}

func TestLoadDefaultHomePath(t *testing.T) {
	isolateEnv(t)
	t.Setenv("XDG_CONFIG_HOME", "")
	home := os.Getenv("HOME")
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".config", "colx"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(home, ".config", "colx", "config.yml"), []byte("delimiter: \":\"\n"), 0o644))

	cfg, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, ":", cfg.Delimiter)
}

func TestLoadDefaultMalformedFilePropagates(t *testing.T) {
	isolateEnv(t)
	path := writeConfig(t, "delimiter: [unclosed\n")
	t.Setenv("COLX_CONFIG", path)

	_, err := LoadDefault()
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
