package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seojun-dev/denv/internal/config"
	"github.com/seojun-dev/denv/internal/ensure"
	"github.com/seojun-dev/denv/internal/shell"
)

func (a *App) newActivateCmd() *cobra.Command {
	var shellType string
	var hookOnly bool

	cmd := &cobra.Command{
		Use:   "activate",
		Short: "개발 환경을 준비하고 활성화 셸 코드를 출력한다",
		Long: `activate는 가상환경이 없으면 동기화 명령으로 생성하고, 있으면
activation 스크립트를 source하는 셸 코드를 stdout에 출력한다. 이어서
설정된 정책에 따라 컨테이너 머신이 실행 중인지 확인하고 아니면 시작한다.

stdout은 eval 대상이므로 진단 메시지는 모두 stderr로 출력된다:

  eval "$(denv activate --shell zsh)"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if hookOnly {
				fmt.Fprint(a.Stdout, shell.HookSnippet(shellType))
				return nil
			}
			return a.runActivate(cmd.Context(), shellType)
		},
	}
	cmd.Flags().StringVar(&shellType, "shell", "zsh", "셸 유형 (bash, zsh, fish)")
	cmd.Flags().BoolVar(&hookOnly, "hook", false, "hook 스니펫만 출력")
	return cmd
}

// runActivate는 활성화 시퀀스를 실행한다. 순서는 고정이다:
// venv 보장 → activation source 출력 → 머신 보장.
func (a *App) runActivate(ctx context.Context, shellType string) error {
	cwd, err := workDir()
	if err != nil {
		return err
	}

	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		// config 로드 실패 시 deactivate만 출력하고 에러를 반환한다.
		fmt.Fprint(a.Stdout, shell.Deactivate(shellType))
		return err
	}

	venv := a.venvStep(cfg, cwd)
	venvRes, venvErr := venv.Ensure(ctx)
	if venvRes.Status == ensure.StatusChanged {
		fmt.Fprintf(a.Stderr, "denv: %s\n", venvRes.Message)
	}

	// 방금 생성되었든 원래 있었든, venv가 존재하면 source한다.
	if venv.Exists() {
		script := shell.ActivationScript(venv.VenvPath(), shellType)
		fmt.Fprint(a.Stdout, shell.SourceVenv(script, shellType))
	} else {
		fmt.Fprint(a.Stdout, shell.Deactivate(shellType))
	}

	if venvErr != nil {
		return venvErr
	}

	mach := a.machineStep(cfg)
	machRes, machErr := mach.Ensure(ctx)
	if machRes.Status == ensure.StatusChanged {
		fmt.Fprintf(a.Stderr, "denv: %s\n", machRes.Message)
	}

	a.recordRun(cwd, []ensure.Result{venvRes, machRes})
	return machErr
}
