package cli

import (
	"fmt"
	"os"

	"github.com/seojun-dev/denv/internal/config"
	"github.com/seojun-dev/denv/internal/ensure"
	"github.com/seojun-dev/denv/internal/machine"
	"github.com/seojun-dev/denv/internal/platform"
	"github.com/seojun-dev/denv/internal/state"
)

// venvStep은 설정으로부터 가상환경 ensure 단계를 구성한다.
func (a *App) venvStep(cfg *config.Config, dir string) *ensure.VenvStep {
	return &ensure.VenvStep{
		Dir:         dir,
		Manifest:    cfg.Python.Manifest,
		VenvDir:     cfg.Python.VenvDir,
		SyncCommand: cfg.Python.SyncCommand,
		Commander:   a.Commander,
	}
}

// machineStep은 설정으로부터 컨테이너 머신 ensure 단계를 구성한다.
func (a *App) machineStep(cfg *config.Config) *ensure.MachineStep {
	return &ensure.MachineStep{
		Adapter:     machine.NewAdapter(cfg.Machine.Engine, a.Commander),
		MachineName: cfg.Machine.Name,
		Policy:      cfg.Machine.Start,
		Host:        platform.Detect(),
	}
}

// recordRun은 ensure 실행 결과를 상태 파일에 기록한다. 실패해도 차단하지 않는다.
func (a *App) recordRun(dir string, results []ensure.Result) {
	st, err := state.Load(a.StatePath)
	if err != nil {
		fmt.Fprintf(a.Stderr, "경고: 상태 파일 읽기 실패: %v\n", err)
		return
	}
	st.Record(dir, results)
	if err := st.Save(a.StatePath); err != nil {
		fmt.Fprintf(a.Stderr, "경고: 상태 파일 저장 실패: %v\n", err)
	}
}

func workDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("cli: 작업 디렉토리 확인 실패: %w", err)
	}
	return cwd, nil
}
