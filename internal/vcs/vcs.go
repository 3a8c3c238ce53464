// Package vcs runs git operations for provisioning tasks via Commander.
package vcs

import (
	"context"
	"fmt"
	"strings"

	"github.com/seojun-dev/denv/internal/cmdexec"
)

// Adapter는 git CLI를 Commander를 통해 실행한다.
type Adapter struct {
	cmd cmdexec.Commander
}

// NewAdapter는 새 git Adapter를 생성한다.
func NewAdapter(cmd cmdexec.Commander) *Adapter {
	return &Adapter{cmd: cmd}
}

// Clone은 리포지토리를 dest 디렉토리로 클론한다.
func (a *Adapter) Clone(ctx context.Context, url, dest string) error {
	out, err := a.cmd.Run(ctx, "git", "clone", "--depth", "1", url, dest)
	if err != nil {
		return fmt.Errorf("vcs.Clone: %w\n%s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// RepoName은 클론 URL에서 리포지토리 이름을 추출한다.
// 예: https://aur.archlinux.org/foo-bin.git → foo-bin
func RepoName(raw string) string {
	trimmed := strings.TrimSuffix(strings.TrimRight(raw, "/"), ".git")
	if idx := strings.LastIndexAny(trimmed, "/:"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	return trimmed
}
