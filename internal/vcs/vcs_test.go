package vcs_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seojun-dev/denv/internal/testutil"
	"github.com/seojun-dev/denv/internal/vcs"
)

func TestRepoName(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"https://aur.archlinux.org/foo-bin.git": "foo-bin",
		"https://github.com/user/tool":          "tool",
		"https://github.com/user/tool.git/":     "tool",
		"git@github.com:user/tool.git":          "tool",
		"local-repo":                            "local-repo",
	}
	for raw, want := range cases {
		assert.Equal(t, want, vcs.RepoName(raw), "input %q", raw)
	}
}

func TestClone_InvokesGit(t *testing.T) {
	t.Parallel()

	fake := testutil.NewFakeCommander()
	fake.Register("git clone", "Cloning...", nil)

	adapter := vcs.NewAdapter(fake)
	require.NoError(t, adapter.Clone(context.Background(), "https://example.com/repo.git", "/tmp/repo"))
	assert.Equal(t, []string{"git clone --depth 1 https://example.com/repo.git /tmp/repo"}, fake.Calls)
}

func TestClone_Failure_IncludesOutput(t *testing.T) {
	t.Parallel()

	fake := testutil.NewFakeCommander()
	fake.Register("git clone", "fatal: repository not found", fmt.Errorf("exit status 128"))

	adapter := vcs.NewAdapter(fake)
	err := adapter.Clone(context.Background(), "https://example.com/none.git", "/tmp/none")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "repository not found")
}
