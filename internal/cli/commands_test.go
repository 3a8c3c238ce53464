package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seojun-dev/denv/internal/cli"
	"github.com/seojun-dev/denv/internal/testutil"
)

func newTestApp(t *testing.T) (*cli.App, *testutil.FakeCommander, *bytes.Buffer) {
	t.Helper()

	fake := testutil.NewFakeCommander()
	stdout := &bytes.Buffer{}
	app := &cli.App{
		CfgPath:   t.TempDir() + "/denv.toml",
		StatePath: t.TempDir() + "/state.json",
		Commander: fake,
		Stdout:    stdout,
		Stderr:    &bytes.Buffer{},
	}
	return app, fake, stdout
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	app, _, _ := newTestApp(t)
	cmd := app.NewRootCmd()

	for _, name := range []string{"activate", "ensure", "status", "doctor", "setup", "provision"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, "subcommand %s", name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestRootCmd_HasConfigFlag(t *testing.T) {
	app, _, _ := newTestApp(t)
	cmd := app.NewRootCmd()

	flag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
}

func TestActivateCmd_HookFlag_PrintsSnippet(t *testing.T) {
	app, fake, stdout := newTestApp(t)
	cmd := app.NewRootCmd()
	cmd.SetArgs([]string{"activate", "--hook", "--shell", "zsh"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "chpwd_functions")
	assert.Contains(t, stdout.String(), "denv activate")
	assert.Empty(t, fake.Calls, "--hook must have no side effects")
}

func TestSetupCmd_HasForceFlag(t *testing.T) {
	app, _, _ := newTestApp(t)
	cmd := app.NewRootCmd()

	setupCmd, _, err := cmd.Find([]string{"setup"})
	require.NoError(t, err)

	flag := setupCmd.Flags().Lookup("force")
	require.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)
}
