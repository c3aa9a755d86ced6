package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/typereader/internal/config"
	"github.com/verte-zerg/typereader/internal/model"
)

func TestValidateConfig(t *testing.T) {
	require.NoError(t, validateConfig(model.Config{MaxLength: 300, Theme: "dark"}))
	require.Error(t, validateConfig(model.Config{MaxLength: 0, Theme: "dark"}))
	require.Error(t, validateConfig(model.Config{MaxLength: 10, Theme: "neon"}))
}

func TestApplyConfigRespectsFlags(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.Flags().Set("max-length", "50"))

	maxLength := 120
	themeKey := "ocean"
	asciiOnly := true
	applyConfig(cmd, config.FileConfig{Practice: config.PracticeConfig{
		MaxLength: &maxLength,
		Theme:     &themeKey,
		ASCIIOnly: &asciiOnly,
	}})

	assert.Equal(t, 50, practiceMaxLength)
	assert.Equal(t, "ocean", practiceTheme)
	assert.True(t, practiceASCIIOnly)
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	var cfg config.FileConfig
	_, err := toml.Decode(defaultConfigTemplate(), &cfg)
	require.NoError(t, err)
	assert.Nil(t, cfg.Practice.MaxLength)
}

func TestEnsureConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	require.NoError(t, ensureConfigFile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# typereader configuration"))

	require.NoError(t, os.WriteFile(path, []byte("[practice]\n"), 0o644))
	require.NoError(t, ensureConfigFile(path))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[practice]\n", string(data))
}

func TestChunksCommand(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "book.txt")
	require.NoError(t, os.WriteFile(path, []byte("a bcdefgh i"), 0o644))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"chunks", "--max-length", "5", path})
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "bcdefgh")
	assert.Contains(t, lines[1], "7 chars")
}

func TestChunksCommandEmptyFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte(" \n\t"), 0o644))

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"chunks", path})
	require.Error(t, cmd.Execute())
}

func TestThemesCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"themes"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "dark")
	assert.Contains(t, out.String(), "sepia")
}

func TestPreviewTruncates(t *testing.T) {
	long := strings.Repeat("word ", 20)
	got := preview(long)
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.Equal(t, "a b", preview("a\n\nb"))
}
