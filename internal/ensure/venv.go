package ensure

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/seojun-dev/denv/internal/cmdexec"
)

// ErrSync는 가상환경 동기화 명령 실패를 나타내는 sentinel error다.
var ErrSync = errors.New("가상환경 동기화 실패")

// VenvStep은 Python 가상환경의 존재를 멱등하게 보장한다.
//
//   - manifest가 있고 venv 디렉토리가 없으면 동기화 명령을 정확히 한 번 실행한다.
//   - venv 디렉토리가 이미 있으면 아무 명령도 실행하지 않는다.
//   - 둘 다 없으면 건너뛴다.
//
// 동기화 실패 시 재시도나 fallback은 없다. 실패는 그대로 반환된다.
type VenvStep struct {
	// Dir는 프로젝트 루트 절대 경로다.
	Dir string
	// Manifest는 Dir 기준 의존성 manifest 상대 경로다.
	Manifest string
	// VenvDir는 Dir 기준 가상환경 디렉토리 상대 경로다.
	VenvDir string
	// SyncCommand는 가상환경을 생성하는 외부 명령이다 (예: uv sync).
	SyncCommand []string
	Commander   cmdexec.Commander
}

// Name은 단계 식별자를 반환한다.
func (s *VenvStep) Name() string { return "venv" }

// VenvPath는 가상환경 디렉토리의 절대 경로를 반환한다.
func (s *VenvStep) VenvPath() string {
	return filepath.Join(s.Dir, s.VenvDir)
}

// Exists는 가상환경 디렉토리가 존재하는지 반환한다.
func (s *VenvStep) Exists() bool {
	info, err := os.Stat(s.VenvPath())
	return err == nil && info.IsDir()
}

// Ensure는 가상환경 존재를 보장한다.
func (s *VenvStep) Ensure(ctx context.Context) (Result, error) {
	if s.Exists() {
		return Result{
			Step:    s.Name(),
			Status:  StatusSatisfied,
			Message: fmt.Sprintf("%s 존재", s.VenvDir),
		}, nil
	}

	manifestPath := filepath.Join(s.Dir, s.Manifest)
	if _, err := os.Stat(manifestPath); err != nil {
		return Result{
			Step:    s.Name(),
			Status:  StatusSkipped,
			Message: fmt.Sprintf("%s 없음", s.Manifest),
		}, nil
	}

	// manifest만 존재 — 동기화 명령이 venv 디렉토리를 생성한다.
	// 네트워크 접근과 패키지 해석으로 수 초가 걸릴 수 있다.
	out, err := s.Commander.RunDir(ctx, s.Dir, s.SyncCommand[0], s.SyncCommand[1:]...)
	if err != nil {
		res := Result{
			Step:    s.Name(),
			Status:  StatusFailed,
			Message: fmt.Sprintf("%s 실패", strings.Join(s.SyncCommand, " ")),
		}
		return res, fmt.Errorf("ensure.VenvStep: %w: %v\n%s",
			ErrSync, err, strings.TrimSpace(string(out)))
	}

	return Result{
		Step:    s.Name(),
		Status:  StatusChanged,
		Message: fmt.Sprintf("%s 생성됨", s.VenvDir),
	}, nil
}
