package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seojun-dev/denv/internal/config"
	"github.com/seojun-dev/denv/internal/testutil"
)

func TestLoad_MissingFile_ReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(filepath.Join(t.TempDir(), "denv.toml"))
	require.NoError(t, err)
	assert.Equal(t, "pyproject.toml", cfg.Python.Manifest)
	assert.Equal(t, ".venv", cfg.Python.VenvDir)
	assert.Equal(t, []string{"uv", "sync"}, cfg.Python.SyncCommand)
	assert.Equal(t, "podman", cfg.Machine.Engine)
	assert.Equal(t, config.StartNonLinux, cfg.Machine.Start)
}

func TestLoad_ParsesFullConfig(t *testing.T) {
	t.Parallel()

	path := testutil.TempConfigFile(t, `
version = 1
shell = "fish"

[python]
manifest = "requirements.txt"
venv_dir = "venv"
sync_command = ["pip", "install", "-r", "requirements.txt"]

[machine]
engine = "docker"
name = "dev"
start = "always"

[provision]
manifest = "tasks.yaml"

[doctor]
binaries = ["jq"]
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fish", cfg.Shell)
	assert.Equal(t, "requirements.txt", cfg.Python.Manifest)
	assert.Equal(t, "venv", cfg.Python.VenvDir)
	assert.Equal(t, []string{"pip", "install", "-r", "requirements.txt"}, cfg.Python.SyncCommand)
	assert.Equal(t, "docker", cfg.Machine.Engine)
	assert.Equal(t, config.StartAlways, cfg.Machine.Start)
	assert.Equal(t, "tasks.yaml", cfg.Provision.Manifest)
	assert.Equal(t, []string{"jq"}, cfg.Doctor.Binaries)
}

func TestLoad_PartialConfig_AppliesDefaults(t *testing.T) {
	t.Parallel()

	path := testutil.TempConfigFile(t, `
version = 1

[machine]
start = "never"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.StartNever, cfg.Machine.Start)
	assert.Equal(t, "pyproject.toml", cfg.Python.Manifest)
	assert.Equal(t, []string{"uv", "sync"}, cfg.Python.SyncCommand)
}

func TestLoad_InvalidTOML_ReturnsErrConfig(t *testing.T) {
	t.Parallel()

	path := testutil.TempConfigFile(t, "version = [broken")

	_, err := config.Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestLoad_InvalidStartPolicy_ReturnsErrConfig(t *testing.T) {
	t.Parallel()

	path := testutil.TempConfigFile(t, `
[machine]
start = "sometimes"
`)

	_, err := config.Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestLoad_InvalidEngine_ReturnsErrConfig(t *testing.T) {
	t.Parallel()

	path := testutil.TempConfigFile(t, `
[machine]
engine = "firecracker"
`)

	_, err := config.Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestSave_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "denv.toml")
	cfg := config.Default()
	cfg.Shell = "bash"
	cfg.Machine.Start = config.StartAlways

	require.NoError(t, config.Save(path, cfg))

	// 파일 권한 0600 확인
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "bash", loaded.Shell)
	assert.Equal(t, config.StartAlways, loaded.Machine.Start)
}
