package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	assert.Equal(t, YAML, ParseFormat(".yml"))
	assert.Equal(t, YAML, ParseFormat("yaml"))
	assert.Equal(t, TOML, ParseFormat(".toml"))
	assert.Equal(t, JSON, ParseFormat("json"))
	assert.Equal(t, Format(""), ParseFormat(".ini"))
}

func TestDirHonoursEnvironment(t *testing.T) {
	tmp := t.TempDir()
	switch runtime.GOOS {
	case "windows":
		t.Setenv("APPDATA", tmp)
	case "darwin":
		t.Skip("darwin uses the home directory")
	default:
		t.Setenv("XDG_CONFIG_HOME", tmp)
	}

	dir, err := Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, AppName), dir)

	p, err := DefaultPath(TOML)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, AppName, "keyshift.toml"), p)
}

func TestCandidatePathsPrioritizeUserFile(t *testing.T) {
	jsonPaths, yamlPaths, tomlPaths := CandidatePaths(filepath.Join("custom", "settings.yml"))

	require.NotEmpty(t, yamlPaths)
	assert.Equal(t, filepath.Join("custom", "settings.yml"), yamlPaths[0])

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "keyshift.json"), jsonPaths[0])
	assert.Equal(t, filepath.Join(wd, "keyshift.toml"), tomlPaths[0])
}

func TestCandidatePathsUnknownExtension(t *testing.T) {
	jsonPaths, _, _ := CandidatePaths("keyshift.conf")
	assert.Equal(t, "keyshift.conf", jsonPaths[0])
}

func TestEnsureDir(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a", "b", "keyshift.json")
	require.NoError(t, EnsureDir(p))
	info, err := os.Stat(filepath.Dir(p))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
