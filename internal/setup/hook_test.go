package setup_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seojun-dev/denv/internal/setup"
)

func TestDetectShell(t *testing.T) {
	t.Setenv("SHELL", "/usr/bin/zsh")
	assert.Equal(t, "zsh", setup.DetectShell())

	t.Setenv("SHELL", "")
	assert.Equal(t, "", setup.DetectShell())
}

func TestShellRCPath(t *testing.T) {
	assert.True(t, strings.HasSuffix(setup.ShellRCPath("zsh"), ".zshrc"))
	assert.True(t, strings.HasSuffix(setup.ShellRCPath("bash"), ".bashrc"))
	assert.True(t, strings.HasSuffix(setup.ShellRCPath("fish"),
		filepath.Join("conf.d", "denv.fish")))
	assert.Empty(t, setup.ShellRCPath("csh"))
}

func TestInstallShellHook_AppendsSnippet(t *testing.T) {
	t.Parallel()

	rcPath := filepath.Join(t.TempDir(), ".zshrc")
	require.NoError(t, os.WriteFile(rcPath, []byte("# existing rc\n"), 0600))

	require.NoError(t, setup.InstallShellHook("zsh", rcPath))

	content, err := os.ReadFile(rcPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# existing rc")
	assert.Contains(t, string(content), "denv shell integration")
}

func TestInstallShellHook_CreatesMissingFile(t *testing.T) {
	t.Parallel()

	rcPath := filepath.Join(t.TempDir(), "conf.d", "denv.fish")

	require.NoError(t, setup.InstallShellHook("fish", rcPath))

	content, err := os.ReadFile(rcPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "denv shell integration")
}

func TestInstallShellHook_Idempotent(t *testing.T) {
	t.Parallel()

	rcPath := filepath.Join(t.TempDir(), ".bashrc")

	require.NoError(t, setup.InstallShellHook("bash", rcPath))
	require.NoError(t, setup.InstallShellHook("bash", rcPath))

	content, err := os.ReadFile(rcPath)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(content), "denv shell integration"))
}

func TestInstallShellHook_UnsupportedShell(t *testing.T) {
	t.Parallel()

	err := setup.InstallShellHook("csh", filepath.Join(t.TempDir(), ".cshrc"))
	require.Error(t, err)
}
